package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/assembly/assembly"
	"github.com/signadot/assembly/dirbuild"
	"github.com/signadot/assembly/encode"
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/parse"
)

// loadDoc reads the document at path, or stdin for "-".
func loadDoc(cfg *MainConfig, path string) (*ir.Node, error) {
	if path == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return parse.Parse(d, cfg.parseOpts()...)
	}
	return parse.File(path, cfg.parseOpts()...)
}

func (cfg *MainConfig) dir() (*dirbuild.Dir, error) {
	d, err := dirbuild.Open(cfg.Data, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error opening build data: %w", err)
	}
	return d, nil
}

// loadReleases reads path, or the releases document of the data directory
// when path is empty.
func loadReleases(cfg *MainConfig, path string) (*assembly.Releases, error) {
	if path == "" {
		d, err := cfg.dir()
		if err != nil {
			return nil, err
		}
		rel, err := d.Releases()
		if err != nil {
			return nil, fmt.Errorf("error loading releases: %w", err)
		}
		if rel == nil {
			return nil, fmt.Errorf("no releases document in %s", cfg.Data)
		}
		return rel, nil
	}
	doc, err := loadDoc(cfg, path)
	if err != nil {
		return nil, fmt.Errorf("error loading releases: %w", err)
	}
	return assembly.NewReleases(doc), nil
}

// loadGroup reads path, or the group document of the data directory when
// path is empty.  A missing group document is an empty object.
func loadGroup(cfg *MainConfig, path string) (*ir.Node, error) {
	return loadOrDir(cfg, path, func(d *dirbuild.Dir) (*ir.Node, error) {
		return d.Group()
	})
}

func loadMember(cfg *MainConfig, path string, kind assembly.Kind, distgitKey string) (*ir.Node, error) {
	return loadOrDir(cfg, path, func(d *dirbuild.Dir) (*ir.Node, error) {
		return d.Member(kind, distgitKey)
	})
}

func loadOrDir(cfg *MainConfig, path string, f func(*dirbuild.Dir) (*ir.Node, error)) (*ir.Node, error) {
	var (
		res *ir.Node
		err error
	)
	if path != "" {
		res, err = loadDoc(cfg, path)
	} else {
		var d *dirbuild.Dir
		if d, err = cfg.dir(); err != nil {
			return nil, err
		}
		res, err = f(d)
	}
	if err != nil {
		return nil, err
	}
	if res.IsAbsent() {
		return ir.FromKeyVals(nil), nil
	}
	return res, nil
}

func encodeOut(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
