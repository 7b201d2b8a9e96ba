package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/assembly/ir"

	"github.com/goccy/go-yaml"
)

// Encode writes node to w as YAML (default) or indented JSON, keeping object
// field order.  An Absent node writes nothing.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if node.IsAbsent() {
		return nil
	}
	var (
		d   []byte
		err error
	)
	if es.format.IsJSON() {
		d, err = encodeJSON(node, es.indent)
	} else {
		d, err = yaml.MarshalWithOptions(node.ToMapSlice(), yaml.Indent(es.indent))
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", es.format, err)
	}
	if es.colors != nil {
		d = []byte(es.colors.Paint(string(d)))
	}
	_, err = w.Write(d)
	return err
}

func encodeJSON(node *ir.Node, indent int) ([]byte, error) {
	d, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
