package assembly

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCycle       = errors.New("basis cycle")
	ErrUnknownType = errors.New("unknown assembly type")
	ErrUnknownKind = errors.New("unknown member kind")
	ErrMalformed   = errors.New("malformed releases document")
)

// CycleError reports an assembly reachable from itself through basis
// references.
type CycleError struct {
	// Assembly is where the walk started.
	Assembly string
	// Repeated is the name seen twice.
	Repeated string
	// Chain holds the names visited before Repeated came up again.
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s from %q: %q repeats after %s",
		ErrCycle, e.Assembly, e.Repeated, strings.Join(e.Chain, " -> "))
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
