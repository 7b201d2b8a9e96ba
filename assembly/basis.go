package assembly

import (
	"github.com/signadot/assembly/ir"
)

// BasisEvent returns the brew event of the nearest assembly in the chain of
// name that sets basis.brew_event.  ok is false when none does.
func BasisEvent(rel *Releases, name string) (event int64, ok bool, err error) {
	if name == "" || !rel.Applicable() {
		return 0, false, nil
	}
	chain, err := rel.Chain(name)
	if err != nil {
		return 0, false, err
	}
	for _, n := range chain {
		def, err := rel.Definition(n)
		if err != nil {
			return 0, false, err
		}
		event, ok, err = brewEvent(n, def)
		if err != nil || ok {
			return event, ok, err
		}
	}
	return 0, false, nil
}

// Basis returns a copy of the nearest non-empty basis record in the chain of
// name, or an Absent node when there is none.
func Basis(rel *Releases, name string) (*ir.Node, error) {
	if name == "" || !rel.Applicable() {
		return ir.Absent(), nil
	}
	chain, err := rel.Chain(name)
	if err != nil {
		return nil, err
	}
	for _, n := range chain {
		def, err := rel.Definition(n)
		if err != nil {
			return nil, err
		}
		b, err := basisOf(n, def)
		if err != nil {
			return nil, err
		}
		if ir.Truth(b) {
			return b.Clone(), nil
		}
	}
	return ir.Absent(), nil
}
