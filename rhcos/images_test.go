package rhcos

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/parse"
)

const digest = "sha256:5f3fb6d8fb4a8d4cf4c3ab4ef0b2ff9d3ad9e5b8e3b7c2b8a3d4c9f0e1a2b3c4"

func TestImages(t *testing.T) {
	cfg, err := parse.Parse([]byte(`
machine-os-content:
  images:
    x86_64: quay.io/openshift-release-dev/ocp-v4.0-art-dev@` + digest + `
    s390x: registry.ci.openshift.org/rhcos/machine-os-content:4.8
notes: {}
`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Images(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := []Image{
		{
			Container: "machine-os-content",
			Arch:      "x86_64",
			PullSpec:  "quay.io/openshift-release-dev/ocp-v4.0-art-dev@" + digest,
			Registry:  "quay.io",
			Name:      "openshift-release-dev/ocp-v4.0-art-dev",
			Tag:       digest,
			Digest:    true,
		},
		{
			Container: "machine-os-content",
			Arch:      "s390x",
			PullSpec:  "registry.ci.openshift.org/rhcos/machine-os-content:4.8",
			Registry:  "registry.ci.openshift.org",
			Name:      "rhcos/machine-os-content",
			Tag:       "4.8",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestImagesAbsent(t *testing.T) {
	got, err := Images(ir.Absent())
	if err != nil || got != nil {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestImagesBadPullSpec(t *testing.T) {
	for _, src := range []string{
		"c: {images: {x86_64: 7}}",
		"c: {images: {x86_64: 'UPPER/Case:tag'}}",
	} {
		cfg, err := parse.Parse([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Images(cfg); !errors.Is(err, ErrPullSpec) {
			t.Errorf("%s: got %v", src, err)
		}
	}
}
