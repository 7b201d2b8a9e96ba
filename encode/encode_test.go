package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/assembly/format"
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/parse"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("4.8.1")},
		{Key: "event", Val: ir.FromInt(12)},
		{Key: "arches", Val: ir.FromSlice([]*ir.Node{ir.FromString("x86_64"), ir.FromString("s390x")})},
	})
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(), buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Index(out, "name:") > strings.Index(out, "event:") {
		t.Errorf("field order lost:\n%s", out)
	}
	back, err := parse.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(sample(), back) {
		t.Errorf("round trip differs:\n%s", out)
	}
}

func TestEncodeJSON(t *testing.T) {
	got := MustString(sample(), EncodeFormat(format.JSONFormat), EncodeIndent(1))
	want := `{
 "name": "4.8.1",
 "event": 12,
 "arches": [
  "x86_64",
  "s390x"
 ]
}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeAbsent(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.Absent(), buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeColors(t *testing.T) {
	got := MustString(sample(), EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no escapes in %q", got)
	}
	if !strings.Contains(got, "4.8.1") {
		t.Errorf("value lost in %q", got)
	}
}
