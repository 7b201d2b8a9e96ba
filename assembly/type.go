package assembly

import (
	"fmt"

	"github.com/signadot/assembly/ir"
)

type Type int

const (
	// TypeStream is continuous building with no basis event.  It applies
	// whenever no assembly is in play.
	TypeStream Type = iota
	// TypeStandard enforces all constraints, such as consistent RPMs and
	// siblings.
	TypeStandard
	// TypeCandidate is a release or feature candidate.
	TypeCandidate
	// TypeCustom enforces no constraints.
	TypeCustom
)

func Types() []Type {
	return []Type{TypeStream, TypeStandard, TypeCandidate, TypeCustom}
}

func (t Type) String() string {
	switch t {
	case TypeStream:
		return "stream"
	case TypeStandard:
		return "standard"
	case TypeCandidate:
		return "candidate"
	case TypeCustom:
		return "custom"
	default:
		return fmt.Sprintf("<type %d>", int(t))
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// AssemblyType returns the type of the named assembly.  No assembly, no
// document, or an assembly the document does not define is TypeStream.  A
// defined assembly without a type is TypeStandard.  An assembly on a basis
// cycle is a *CycleError.
func AssemblyType(rel *Releases, name string) (Type, error) {
	if name == "" || !rel.Applicable() {
		return TypeStream, nil
	}
	if _, err := rel.Chain(name); err != nil {
		return 0, err
	}
	def, err := rel.Definition(name)
	if err != nil {
		return 0, err
	}
	if def.IsAbsent() {
		return TypeStream, nil
	}
	v := def.Get("type")
	switch v.Kind() {
	case ir.AbsentType, ir.NullType:
		return TypeStandard, nil
	case ir.StringType:
	default:
		return 0, malformed("assembly %q: type is %s, not a string", name, v.Kind())
	}
	if v.String == "" {
		return TypeStandard, nil
	}
	t, err := ParseType(v.String)
	if err != nil {
		return 0, fmt.Errorf("assembly %q: %w", name, err)
	}
	return t, nil
}
