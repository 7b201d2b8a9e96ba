package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes y as plain JSON, keeping object field order.  Absent
// encodes as null.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	switch y.Kind() {
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, f); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := y.Values[i].writeJSON(buf); err != nil {
				return fmt.Errorf("%s: %w", pathString(f), err)
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.writeJSON(buf); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case NumberType:
		if y.Int64 != nil {
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
			return nil
		}
		if y.Float64 == nil {
			buf.WriteString("null")
			return nil
		}
		d, err := json.Marshal(*y.Float64)
		if err != nil {
			return err
		}
		buf.Write(d)
	case BoolType, StringType, BytesType:
		return writeJSONValue(buf, y.ToPrimitive())
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

func (y *Node) UnmarshalJSON(d []byte) error {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return err
	}
	node, err := FromPrimitive(v)
	if err != nil {
		return err
	}
	*y = *node
	return nil
}
