package format

import (
	"errors"
	"testing"
)

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"releases.yml":    YAMLFormat,
		"releases.YAML":   YAMLFormat,
		"group.json":      JSONFormat,
		"group.jsonc":     JSONCFormat,
		"group":           YAMLFormat,
		"weird.j":         YAMLFormat,
		"dir.json/x.yaml": YAMLFormat,
	}
	for path, want := range tests {
		if got := FromPath(path); got != want {
			t.Errorf("FromPath(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{YAMLFormat, JSONFormat, JSONCFormat} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %s, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
}
