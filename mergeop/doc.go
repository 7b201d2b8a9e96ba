// Package mergeop layers configuration trees.
//
// Merge(a, b) puts the override a over the base b and returns a new tree.
// Primitives in a always win.  Arrays are unioned without repeats and sorted
// when they hold primitives.  Objects merge key by key, where the key may
// carry an operator suffix:
//
//	name    merge into the base value (OpMerge)
//	name!   replace the base value (OpForce)
//	name?   set only when the base has no such key (OpDefault)
//
// SplitKey separates a key from its operator.
package mergeop
