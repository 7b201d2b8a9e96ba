package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/assembly/ir"
)

func TestParseYAMLOrder(t *testing.T) {
	node, err := Parse([]byte(`
releases:
  4.8.2:
    assembly:
      basis:
        assembly: 4.8.1
  4.8.1:
    assembly:
      basis:
        brew_event: 42
`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"4.8.2", "4.8.1"}, node.Get("releases").Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if i, ok := node.Lookup("releases.'4.8.1'.assembly.basis.brew_event").AsInt(); !ok || i != 42 {
		t.Errorf("brew_event = %d %v", i, ok)
	}
}

func TestParseJSONC(t *testing.T) {
	node, err := Parse([]byte(`{
  // the group
  "b": [1, 2,],
  "a": "x", /* trailing */
}`), ParseJSONC())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"b": []any{int64(1), int64(2)}, "a": "x"}
	if diff := cmp.Diff(want, node.ToPrimitive()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "a"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	node, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !node.IsNull() {
		t.Errorf("got %s, want null", node.Kind())
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte("a: [1, 2"), ParseYAML())
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestFileFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "group.jsonc")
	if err := os.WriteFile(path, []byte(`{"a": 1, /* c */ "b": [true,],}`), 0644); err != nil {
		t.Fatal(err)
	}
	node, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromBool(true)})},
	})
	if !ir.Equal(want, node) {
		t.Errorf("got %v", node.ToPrimitive())
	}
	if _, err := File(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not exist", err)
	}
}
