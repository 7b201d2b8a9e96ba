package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/assembly/assembly"
)

var summaries = []assembly.Summary{
	{Name: "4.8.1", Type: assembly.TypeStandard, Event: 100, HasEvent: true},
	{Name: "4.8.2", Type: assembly.TypeStandard, Basis: "4.8.1", Event: 100, HasEvent: true, Depth: 1},
	{Name: "rc.0", Type: assembly.TypeCandidate},
	{Name: "4.9.0", Type: assembly.TypeCustom, Event: 300, HasEvent: true},
}

func names(ss []assembly.Summary) []string {
	var res []string
	for _, s := range ss {
		res = append(res, s.Name)
	}
	return res
}

func TestSelect(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{`type == "standard"`, []string{"4.8.1", "4.8.2"}},
		{`hasEvent && event > 100`, []string{"4.9.0"}},
		{`depth > 0 || basis != ""`, []string{"4.8.2"}},
		{`name startsWith "4.8"`, []string{"4.8.1", "4.8.2"}},
		{`minor(name) == "4.9"`, []string{"4.9.0"}},
		{`!hasEvent`, []string{"rc.0"}},
		{`false`, nil},
	}
	for _, tt := range tests {
		f, err := Compile(tt.src)
		if err != nil {
			t.Fatalf("%s: %v", tt.src, err)
		}
		got, err := Select(f, summaries)
		if err != nil {
			t.Fatalf("%s: %v", tt.src, err)
		}
		if diff := cmp.Diff(tt.want, names(got)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.src, diff)
		}
	}
}

func TestSelectNil(t *testing.T) {
	got, err := Select(nil, summaries)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(summaries) {
		t.Errorf("got %d", len(got))
	}
}

func TestCompileError(t *testing.T) {
	for _, src := range []string{`name +`, `depth + 1`, `nosuch == 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrFilter) {
			t.Errorf("%s: got %v", src, err)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("ASSEMBLY_TEST_NAME", "rc.0")
	f, err := Compile(`name == getenv("ASSEMBLY_TEST_NAME")`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Select(f, summaries)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"rc.0"}, names(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
