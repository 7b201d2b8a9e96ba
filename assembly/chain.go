package assembly

import (
	"fmt"
	"slices"

	"github.com/signadot/assembly/debug"
	"github.com/signadot/assembly/ir"
)

// Chain returns name followed by its basis ancestors, nearest first.  The walk
// stops at an assembly without basis.assembly or at a name the document does
// not define.  An assembly reachable from itself is a *CycleError.
func (r *Releases) Chain(name string) ([]string, error) {
	if !r.Applicable() {
		return nil, nil
	}
	var found []string
	next := name
	for next != "" {
		if slices.Contains(found, next) {
			return nil, &CycleError{Assembly: name, Repeated: next, Chain: found}
		}
		found = append(found, next)
		def, err := r.Definition(next)
		if err != nil {
			return nil, err
		}
		next, err = basisAssembly(found[len(found)-1], def)
		if err != nil {
			return nil, err
		}
	}
	if debug.Chain() {
		debug.Logf("chain for %q: %v\n", name, found)
	}
	return found, nil
}

// layerFunc applies the contribution of one assembly definition to the
// configuration accumulated from its ancestors.
type layerFunc func(name string, def, acc *ir.Node) (*ir.Node, error)

// fold applies f over the chain of name from the root ancestor down to name,
// so the most specific assembly is applied last.
func (r *Releases) fold(name string, base *ir.Node, f layerFunc) (*ir.Node, error) {
	chain, err := r.Chain(name)
	if err != nil {
		return nil, err
	}
	acc := base.Clone()
	for _, n := range slices.Backward(chain) {
		def, err := r.Definition(n)
		if err != nil {
			return nil, err
		}
		acc, err = f(n, def, acc)
		if err != nil {
			return nil, fmt.Errorf("assembly %q: %w", n, err)
		}
	}
	return acc, nil
}
