package parse

import (
	"fmt"
	"os"

	"github.com/signadot/assembly/debug"
	"github.com/signadot/assembly/format"
	"github.com/signadot/assembly/ir"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
)

// Parse decodes a YAML (default), JSON or JSONC document into a tree,
// keeping mapping order.  Only the first document of a YAML stream is read.
// An empty document is null.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	if pOpts.format == format.JSONCFormat {
		d = jsonc.ToJSON(d)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, pOpts.format, err)
	}
	node, err := ir.FromPrimitive(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return node, nil
}

// File reads and parses the file at path.  Without a ParseFormat option the
// format follows the file extension.
func File(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	if !pOpts.formatSet {
		opts = append(opts, ParseFormat(format.FromPath(path)))
	}
	if debug.Load() {
		debug.Logf("loading %s\n", path)
	}
	node, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}
