package ir

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// ToPrimitive returns y as plain Go values: map[string]any for objects, []any
// for arrays, and bool, int64, float64, string, []byte or nil for leaves.
// Absent converts to nil.
func (y *Node) ToPrimitive() any {
	switch y.Kind() {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = y.Values[i].ToPrimitive()
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToPrimitive()
		}
		return res
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case StringType:
		return y.String
	case BytesType:
		return append([]byte(nil), y.Bytes...)
	default:
		return nil
	}
}

// ToMapSlice is ToPrimitive with objects as yaml.MapSlice, preserving field
// order for encoders.
func (y *Node) ToMapSlice() any {
	switch y.Kind() {
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f, Value: y.Values[i].ToMapSlice()}
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToMapSlice()
		}
		return res
	default:
		return y.ToPrimitive()
	}
}

// FromPrimitive converts plain Go values into a tree.  Object field order
// follows yaml.MapSlice order when given one and sorted key order for Go maps.
func FromPrimitive(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []byte:
		return FromBytes(x), nil
	case []string:
		res := &Node{Type: ArrayType, Values: make([]*Node, 0, len(x))}
		for _, s := range x {
			res.Values = append(res.Values, FromString(s))
		}
		return res, nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, 0, len(x))}
		for i, e := range x {
			node, err := FromPrimitive(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Values = append(res.Values, node)
		}
		return res, nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, 0, len(x))
		for _, item := range x {
			key := keyString(item.Key)
			node, err := FromPrimitive(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pathString(key), err)
			}
			kvs = append(kvs, KeyVal{Key: key, Val: node})
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			node, err := FromPrimitive(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pathString(k), err)
			}
			m[k] = node
		}
		return FromMap(m), nil
	case map[any]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			key := keyString(k)
			node, err := FromPrimitive(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pathString(key), err)
			}
			m[key] = node
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrPrimitive, v)
	}
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return FromFloat(float64(u)), nil
	}
	return FromInt(int64(u)), nil
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	if k == nil {
		return "null"
	}
	return fmt.Sprint(k)
}
