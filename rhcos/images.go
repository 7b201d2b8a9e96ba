package rhcos

import (
	"fmt"
	"strings"

	"github.com/signadot/assembly/ir"

	imageref "github.com/novln/docker-parser"
)

// Image is one pinned rhcos image of a resolved rhcos configuration.
type Image struct {
	Container string
	Arch      string
	PullSpec  string
	Registry  string
	// Name is the repository path without the registry.
	Name string
	// Tag holds the tag or, for a digest reference, the digest.
	Tag    string
	Digest bool
}

// Images lists the images of cfg, shaped
//
//	<container>:
//	  images:
//	    <arch>: <pullspec>
//
// in document order.  Containers without images are skipped.  A nil or
// Absent cfg has no images.
func Images(cfg *ir.Node) ([]Image, error) {
	switch cfg.Kind() {
	case ir.AbsentType, ir.NullType:
		return nil, nil
	case ir.ObjectType:
	default:
		return nil, fmt.Errorf("rhcos config is %s, not an object", cfg.Kind())
	}
	var res []Image
	for i, container := range cfg.Fields {
		images := cfg.Values[i].Get("images")
		switch images.Kind() {
		case ir.AbsentType, ir.NullType:
			continue
		case ir.ObjectType:
		default:
			return nil, fmt.Errorf("%s.images is %s, not an object", container, images.Kind())
		}
		for j, arch := range images.Fields {
			spec := images.Values[j]
			if spec.Kind() != ir.StringType {
				return nil, fmt.Errorf("%w: %s.images.%s is %s", ErrPullSpec, container, arch, spec.Kind())
			}
			img, err := parseImage(container, arch, spec.String)
			if err != nil {
				return nil, err
			}
			res = append(res, img)
		}
	}
	return res, nil
}

func parseImage(container, arch, spec string) (Image, error) {
	ref, err := imageref.Parse(spec)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %s.images.%s %q: %w", ErrPullSpec, container, arch, spec, err)
	}
	return Image{
		Container: container,
		Arch:      arch,
		PullSpec:  spec,
		Registry:  ref.Registry(),
		Name:      ref.ShortName(),
		Tag:       ref.Tag(),
		Digest:    strings.Contains(spec, "@"),
	}, nil
}
