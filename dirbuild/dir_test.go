package dirbuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/assembly/assembly"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestDir(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"group.yaml":          "name: openshift-4.8\narches: [x86_64]\n",
		"releases.yml":        "releases:\n  4.8.1:\n    assembly:\n      group: {arches: [s390x]}\n",
		"images/ose-cli.yml":  "name: openshift/ose-cli\n",
		"images/ose-cli.json": `{"name": "shadowed"}`,
		"images/README":       "not metadata",
		"rpms/kernel.jsonc":   "{\"name\": \"kernel\", // rpm\n}",
	})
	d, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}
	group, err := d.Group()
	if err != nil {
		t.Fatal(err)
	}
	rel, err := d.Releases()
	if err != nil {
		t.Fatal(err)
	}
	got, err := assembly.GroupConfig(rel, "4.8.1", group)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"name": "openshift-4.8", "arches": []any{"s390x", "x86_64"}}
	if diff := cmp.Diff(want, got.ToPrimitive()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	img, err := d.Member(assembly.KindImage, "ose-cli")
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := img.Get("name").AsString(); name != "openshift/ose-cli" {
		t.Errorf("got %q", name)
	}
	rpm, err := d.Member(assembly.KindRPM, "kernel")
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := rpm.Get("name").AsString(); name != "kernel" {
		t.Errorf("got %q", name)
	}
	missing, err := d.Member(assembly.KindRPM, "nosuch")
	if err != nil || !missing.IsAbsent() {
		t.Errorf("got %v, %v", missing.Kind(), err)
	}
	if _, err := d.Member(assembly.KindRPM, "../group"); err == nil {
		t.Error("expected error")
	}

	keys, err := d.Members(assembly.KindImage)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ose-cli"}, keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDirNoReleases(t *testing.T) {
	d, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	rel, err := d.Releases()
	if err != nil {
		t.Fatal(err)
	}
	if rel.Applicable() {
		t.Error("empty directory should have no releases")
	}
}
