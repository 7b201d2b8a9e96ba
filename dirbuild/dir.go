// Package dirbuild reads a build data directory:
//
//	group.yml
//	releases.yml
//	images/<distgit_key>.yml
//	rpms/<distgit_key>.yml
//
// Each document may also be .yaml, .json or .jsonc.
package dirbuild

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/signadot/assembly/assembly"
	"github.com/signadot/assembly/debug"
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/parse"
)

// Extensions are tried in order when looking for a document.
var Extensions = []string{".yml", ".yaml", ".json", ".jsonc"}

const (
	GroupName    = "group"
	ReleasesName = "releases"
)

type Dir struct {
	Root string
	opts []parse.ParseOption
}

func Open(root string, opts ...parse.ParseOption) (*Dir, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &Dir{Root: root, opts: opts}, nil
}

// find returns the path of the document named base, or "" when there is
// none.
func (d *Dir) find(base string) (string, error) {
	for _, ext := range Extensions {
		candidate := filepath.Join(d.Root, base+ext)
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("could not read %q: %w", candidate, err)
		}
	}
	return "", nil
}

// Load parses the document named base, Absent when it does not exist.
func (d *Dir) Load(base string) (*ir.Node, error) {
	path, err := d.find(base)
	if err != nil {
		return nil, err
	}
	if path == "" {
		if debug.Load() {
			debug.Logf("no %s{%s} in %s\n", base, strings.Join(Extensions, ","), d.Root)
		}
		return ir.Absent(), nil
	}
	return parse.File(path, d.opts...)
}

func (d *Dir) Group() (*ir.Node, error) {
	return d.Load(GroupName)
}

// Releases loads the releases document.  A directory without one gives
// a nil *Releases, which no query applies to.
func (d *Dir) Releases() (*assembly.Releases, error) {
	doc, err := d.Load(ReleasesName)
	if err != nil {
		return nil, err
	}
	if doc.IsAbsent() {
		return nil, nil
	}
	return assembly.NewReleases(doc), nil
}

// Member loads the metadata of a member, Absent when it has none.
func (d *Dir) Member(kind assembly.Kind, distgitKey string) (*ir.Node, error) {
	if distgitKey == "" || strings.ContainsAny(distgitKey, `/\`) {
		return nil, fmt.Errorf("bad distgit key %q", distgitKey)
	}
	return d.Load(filepath.Join(kind.Field(), distgitKey))
}

// Members lists the distgit keys of the members of a kind, sorted.
func (d *Dir) Members(kind assembly.Kind) ([]string, error) {
	ents, err := os.ReadDir(filepath.Join(d.Root, kind.Field()))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var res []string
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		ext := filepath.Ext(name)
		if !isExtension(ext) {
			continue
		}
		key := strings.TrimSuffix(name, ext)
		if seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, key)
	}
	sort.Strings(res)
	return res, nil
}

func isExtension(ext string) bool {
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
