package mergeop

import "errors"

var ErrTypeConflict = errors.New("merge type conflict")
