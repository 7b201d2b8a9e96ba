package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Bytes   []byte
	Float64 *float64
	Int64   *int64
}

func Absent() *Node {
	return &Node{Type: AbsentType}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromBytes(d []byte) *Node {
	return &Node{
		Type:  BytesType,
		Bytes: slices.Clone(d),
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, 0, len(ySlice)),
	}
	res.Values = append(res.Values, ySlice...)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object with the fields in the order given.  A repeated
// key keeps its first position and takes the last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object from a Go map with fields in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(yMap)),
		Values: make([]*Node, 0, len(yMap)),
	}
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

// Kind returns the type of y, treating nil as Absent.
func (y *Node) Kind() Type {
	if y == nil {
		return AbsentType
	}
	return y.Type
}

func (y *Node) IsAbsent() bool {
	return y.Kind() == AbsentType
}

func (y *Node) IsNull() bool {
	return y.Kind() == NullType
}

func (y *Node) IsPrimitive() bool {
	return y.Kind().IsPrimitive()
}

func (y *Node) IsObject() bool {
	return y.Kind() == ObjectType
}

func (y *Node) IsArray() bool {
	return y.Kind() == ArrayType
}

// Len returns the number of children of an object or array, and 0 otherwise.
func (y *Node) Len() int {
	switch y.Kind() {
	case ObjectType, ArrayType:
		return len(y.Values)
	}
	return 0
}

func (y *Node) fieldIndex(field string) int {
	if y.Kind() != ObjectType {
		return -1
	}
	return slices.Index(y.Fields, field)
}

// Get returns the value under field, or an Absent node if y is not an object
// or has no such field.  The result shares storage with y.
func (y *Node) Get(field string) *Node {
	i := y.fieldIndex(field)
	if i == -1 {
		return Absent()
	}
	return y.Values[i]
}

func (y *Node) Has(field string) bool {
	return y.fieldIndex(field) != -1
}

// Index returns the i'th element of an array, or an Absent node if y is not an
// array or i is out of range.  The result shares storage with y.
func (y *Node) Index(i int) *Node {
	if y.Kind() != ArrayType || i < 0 || i >= len(y.Values) {
		return Absent()
	}
	return y.Values[i]
}

// Keys returns a copy of the field names of an object, in order.
func (y *Node) Keys() []string {
	if y.Kind() != ObjectType {
		return nil
	}
	return slices.Clone(y.Fields)
}

// Set replaces the value of field in place, or appends it when y has no such
// field.  It panics if y is not an object.
func (y *Node) Set(field string, v *Node) {
	if y.Kind() != ObjectType {
		panic(fmt.Sprintf("ir: Set on %s", y.Kind()))
	}
	if i := y.fieldIndex(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Append adds v to the end of an array.  It panics if y is not an array.
func (y *Node) Append(v *Node) {
	if y.Kind() != ArrayType {
		panic(fmt.Sprintf("ir: Append on %s", y.Kind()))
	}
	y.Values = append(y.Values, v)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return Absent()
	}
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Bytes != nil {
		dst.Bytes = slices.Clone(y.Bytes)
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func (y *Node) AsString() (string, bool) {
	if y.Kind() != StringType {
		return "", false
	}
	return y.String, true
}

func (y *Node) AsBool() (bool, bool) {
	if y.Kind() != BoolType {
		return false, false
	}
	return y.Bool, true
}

// AsInt returns the integer value of a number node.  Floats with an integral
// value are accepted.
func (y *Node) AsInt() (int64, bool) {
	if y.Kind() != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return *y.Int64, true
	}
	if y.Float64 != nil {
		f := *y.Float64
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), true
		}
	}
	return 0, false
}

// AsFloat returns the value of a number node as a float64.
func (y *Node) AsFloat() (float64, bool) {
	if y.Kind() != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	return 0, false
}
