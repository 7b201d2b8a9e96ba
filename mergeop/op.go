package mergeop

import "strings"

// Op is the override operator a key carries into a merge.
type Op int

const (
	// OpMerge merges the value into the base value under the same key.
	OpMerge Op = iota
	// OpForce sets the value regardless of the base, without merging.
	OpForce
	// OpDefault sets the value only when the base has no such key.
	OpDefault
)

const (
	ForceSuffix   = "!"
	DefaultSuffix = "?"
)

func (o Op) String() string {
	switch o {
	case OpMerge:
		return "merge"
	case OpForce:
		return "force"
	case OpDefault:
		return "default"
	default:
		return "<unknown op>"
	}
}

// SplitKey strips a trailing force or default suffix from key and reports the
// operator it selects.  Only one suffix is stripped.
func SplitKey(key string) (string, Op) {
	if k, ok := strings.CutSuffix(key, ForceSuffix); ok {
		return k, OpForce
	}
	if k, ok := strings.CutSuffix(key, DefaultSuffix); ok {
		return k, OpDefault
	}
	return key, OpMerge
}
