package rhcos

import "errors"

var ErrPullSpec = errors.New("bad pullspec")
