// Package ir provides the tree value on which assembly resolution operates.
//
// # Overview
//
// A Node is a recursive tagged union.  The Type field says which of the other
// fields carry the value:
//
//   - AbsentType: no value at all, distinct from null
//   - NullType, BoolType, NumberType, StringType, BytesType: primitives
//   - ArrayType: ordered Values
//   - ObjectType: Fields[i] is the key for Values[i]; keys are unique
//
// Numbers are stored under Int64 when integral and Float64 otherwise.
//
// # Absent
//
// Navigation never fails on missing data.  Get, Index, Lookup and Walk return
// an Absent node when a field or index does not exist or when the node being
// navigated has the wrong type, so chained lookups short-circuit:
//
//	event := doc.Lookup("releases.'4.8.1'.assembly.basis.brew_event")
//	if event.IsAbsent() {
//	    // no event
//	}
//
// Read accessors also accept a nil *Node and treat it as Absent.  Only a
// syntactically malformed path passed to GetPath is an error.
//
// # Ownership
//
// Get, Index and Walk return children that share storage with their parent.
// Code producing new trees must Clone before calling Set or Append.
//
// # Conversion
//
// ToPrimitive and FromPrimitive convert to and from plain Go values.
// ToMapSlice and FromPrimitive with yaml.MapSlice keep object field order, as
// do MarshalJSON and UnmarshalJSON.
//
// # Comparison
//
// Compare is a total order over nodes.  Types order by rank, numbers by value,
// and objects independently of field order.
package ir
