package ir

import "fmt"

type Type int

const (
	AbsentType Type = iota
	NullType
	BoolType
	NumberType
	StringType
	BytesType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		AbsentType: "Absent",
		NullType:   "Null",
		BoolType:   "Bool",
		NumberType: "Number",
		StringType: "String",
		BytesType:  "Bytes",
		ArrayType:  "Array",
		ObjectType: "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Absent": AbsentType,
		"Null":   NullType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
		"Bytes":  BytesType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		AbsentType,
		NullType,
		BoolType,
		NumberType,
		StringType,
		BytesType,
		ArrayType,
		ObjectType,
	}
}

// IsPrimitive reports whether t is a stored scalar value.  Absent is not a
// primitive.
func (t Type) IsPrimitive() bool {
	switch t {
	case NullType, BoolType, NumberType, StringType, BytesType:
		return true
	default:
		return false
	}
}
