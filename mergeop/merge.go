package mergeop

import (
	"fmt"
	"slices"

	"github.com/signadot/assembly/debug"
	"github.com/signadot/assembly/ir"
)

// Merge layers a over b and returns the result as a new tree.  Neither a nor
// b is modified.
//
//  1. a primitive or absent a is the result, whatever b holds.
//  2. an array a is appended to an array b and repeated elements are
//     dropped, keeping the first occurrence.  If the first element of the result is a primitive, the
//     result is sorted.  A non-array b is replaced by a.
//  3. an object a is merged into an object b key by key.  A key ending in
//     "!" replaces the base value, a key ending in "?" sets it only if the
//     base has no such key, and other keys merge recursively into an existing
//     value or are copied in.  A non-object b is replaced by a.
func Merge(a, b *ir.Node) (*ir.Node, error) {
	if debug.Merge() {
		debug.Logf("merge %s over %s\n", a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case ir.AbsentType, ir.NullType, ir.BoolType, ir.NumberType, ir.StringType, ir.BytesType:
		return a.Clone(), nil
	case ir.ArrayType:
		if !b.IsArray() {
			return a.Clone(), nil
		}
		return mergeArray(a, b), nil
	case ir.ObjectType:
		if !b.IsObject() {
			return a.Clone(), nil
		}
		return mergeObject(a, b)
	default:
		return nil, fmt.Errorf("%w: unexpected value type %s", ErrTypeConflict, a.Kind())
	}
}

func mergeArray(a, b *ir.Node) *ir.Node {
	c := ir.FromSlice(nil)
	for _, entry := range slices.Concat(b.Values, a.Values) {
		if containsNode(c.Values, entry) {
			continue
		}
		c.Append(entry.Clone())
	}
	if len(c.Values) != 0 && c.Values[0].IsPrimitive() {
		slices.SortStableFunc(c.Values, ir.Compare)
	}
	return c
}

func containsNode(vs []*ir.Node, v *ir.Node) bool {
	return slices.ContainsFunc(vs, func(x *ir.Node) bool {
		return ir.Equal(x, v)
	})
}

func mergeObject(a, b *ir.Node) (*ir.Node, error) {
	c := b.Clone()
	for i, key := range a.Fields {
		av := a.Values[i]
		k, op := SplitKey(key)
		switch op {
		case OpForce:
			c.Set(k, av.Clone())
		case OpDefault:
			if !c.Has(k) {
				c.Set(k, av.Clone())
			}
		default:
			if !c.Has(k) {
				c.Set(k, av.Clone())
				continue
			}
			merged, err := Merge(av, c.Get(k))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			c.Set(k, merged)
		}
	}
	return c, nil
}

// MergeAll folds layers with Merge, base first: the last layer dominates.
// Absent layers contribute nothing.  With no layers the result is Absent.
func MergeAll(layers ...*ir.Node) (*ir.Node, error) {
	res := ir.Absent()
	for i, layer := range layers {
		if layer.IsAbsent() {
			continue
		}
		if res.IsAbsent() {
			res = layer.Clone()
			continue
		}
		var err error
		res, err = Merge(layer, res)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return res, nil
}
