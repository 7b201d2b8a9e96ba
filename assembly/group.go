package assembly

import (
	"github.com/signadot/assembly/debug"
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/mergeop"
)

// GroupConfig returns group with the group overrides of the named assembly
// and its ancestors merged in, the root ancestor first.  group itself is not
// modified.  With no assembly or no document the result is a copy of group.
func GroupConfig(rel *Releases, name string, group *ir.Node) (*ir.Node, error) {
	if name == "" || !rel.Applicable() {
		return group.Clone(), nil
	}
	res, err := rel.fold(name, group, func(n string, def, acc *ir.Node) (*ir.Node, error) {
		layer := def.Get("group")
		if !ir.Truth(layer) {
			return acc, nil
		}
		if debug.Query() {
			debug.Logf("group layer from %q: %v\n", n, layer)
		}
		return mergeop.Merge(layer, acc)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
