package assembly

import (
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/mergeop"
)

// RHCOSConfig returns the rhcos overrides of the named assembly merged over
// those of its ancestors.  With no assembly or no document the result is
// Absent; an assembly chain without any rhcos overrides gives an empty object.
func RHCOSConfig(rel *Releases, name string) (*ir.Node, error) {
	if name == "" || !rel.Applicable() {
		return ir.Absent(), nil
	}
	return rel.fold(name, ir.FromKeyVals(nil), func(_ string, def, acc *ir.Node) (*ir.Node, error) {
		layer := def.Get("rhcos")
		if layer.IsAbsent() {
			layer = ir.FromKeyVals(nil)
		}
		return mergeop.Merge(layer, acc)
	})
}
