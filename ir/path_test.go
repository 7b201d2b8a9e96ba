package ir

import (
	"errors"
	"testing"
)

func TestParsePathString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"$", ""},
		{"a", "a"},
		{"$.a.b", "a.b"},
		{".a[0].b", "a[0].b"},
		{"[2]", "[2]"},
		{"releases.'4.8.1'.assembly", "releases.'4.8.1'.assembly"},
		{"a.'it\\'s'", "a.'it\\'s'"},
	}
	for _, tt := range tests {
		p, err := ParsePath(tt.in)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tt.in, err)
			continue
		}
		if got := p.String(); got != tt.want {
			t.Errorf("ParsePath(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{"a[", "a[x]", "a.'b", "a..b", "a.", "a[-1]"} {
		if _, err := ParsePath(in); !errors.Is(err, ErrPath) {
			t.Errorf("ParsePath(%q) err = %v, want ErrPath", in, err)
		}
	}
}

func TestLookup(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "releases", Val: FromKeyVals([]KeyVal{
			{Key: "4.8.1", Val: FromKeyVals([]KeyVal{
				{Key: "assembly", Val: sample()},
			})},
		})},
	})
	tests := []struct {
		path   string
		absent bool
		want   *Node
	}{
		{path: "releases.'4.8.1'.assembly.basis.brew_event", want: FromInt(123)},
		{path: "releases.'4.8.1'.assembly.tags[1]", want: FromString("b")},
		{path: "releases.'4.8.1'.assembly.nothing", want: Null()},
		{path: "releases.4.8.1", absent: true},
		{path: "releases.'4.8.1'.assembly.tags[7]", absent: true},
		{path: "releases.'4.8.1'.assembly.name.deeper.still", absent: true},
		{path: "releases[0]", absent: true},
		{path: "a[", absent: true},
	}
	for _, tt := range tests {
		got := doc.Lookup(tt.path)
		if tt.absent {
			if !got.IsAbsent() {
				t.Errorf("Lookup(%q) = %s, want absent", tt.path, got.Kind())
			}
			continue
		}
		if !Equal(got, tt.want) {
			t.Errorf("Lookup(%q) = %v, want %v", tt.path, got.ToPrimitive(), tt.want.ToPrimitive())
		}
	}
	if _, err := doc.GetPath("a["); err == nil {
		t.Error("expected error for malformed path")
	}
}
