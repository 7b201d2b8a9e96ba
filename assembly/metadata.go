package assembly

import (
	"fmt"

	"github.com/signadot/assembly/debug"
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/mergeop"
)

// Kind selects the member list of an assembly.
type Kind string

const (
	KindRPM   Kind = "rpm"
	KindImage Kind = "image"
)

// Wildcard as a distgit_key applies an override to every member of its kind.
const Wildcard = "*"

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindRPM, KindImage:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Field returns the members field listing overrides of this kind.
func (k Kind) Field() string {
	return string(k) + "s"
}

// MetadataConfig returns meta with the member overrides for distgitKey
// merged in, ancestors first.  Within an assembly, entries apply in document
// order; both wildcard and exact entries apply.  Entries without metadata
// contribute nothing.
func MetadataConfig(rel *Releases, name string, kind Kind, distgitKey string, meta *ir.Node) (*ir.Node, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if name == "" || !rel.Applicable() {
		return meta.Clone(), nil
	}
	return rel.fold(name, meta, func(n string, def, acc *ir.Node) (*ir.Node, error) {
		entries, err := memberEntries(def, kind)
		if err != nil {
			return nil, err
		}
		for i, entry := range entries {
			key, err := entryKey(entry, kind, i)
			if err != nil {
				return nil, err
			}
			if key != Wildcard && key != distgitKey {
				continue
			}
			md := entry.Get("metadata")
			if !ir.Truth(md) {
				continue
			}
			if debug.Query() {
				debug.Logf("%s metadata for %q from %q entry %q: %v\n", kind, distgitKey, n, key, md)
			}
			acc, err = mergeop.Merge(md, acc)
			if err != nil {
				return nil, fmt.Errorf("members.%s[%d]: %w", kind.Field(), i, err)
			}
		}
		return acc, nil
	})
}

func memberEntries(def *ir.Node, kind Kind) ([]*ir.Node, error) {
	members := def.Get("members")
	switch members.Kind() {
	case ir.AbsentType, ir.NullType:
		return nil, nil
	case ir.ObjectType:
	default:
		return nil, malformed("members is %s, not an object", members.Kind())
	}
	list := members.Get(kind.Field())
	switch list.Kind() {
	case ir.AbsentType, ir.NullType:
		return nil, nil
	case ir.ArrayType:
		return list.Values, nil
	default:
		return nil, malformed("members.%s is %s, not an array", kind.Field(), list.Kind())
	}
}

// entryKey returns the distgit_key of a member override, or "" if it has
// none.
func entryKey(entry *ir.Node, kind Kind, i int) (string, error) {
	if !entry.IsObject() {
		return "", malformed("members.%s[%d] is %s, not an object", kind.Field(), i, entry.Kind())
	}
	key := entry.Get("distgit_key")
	switch key.Kind() {
	case ir.AbsentType, ir.NullType:
		return "", nil
	case ir.StringType:
		return key.String, nil
	default:
		return "", malformed("members.%s[%d].distgit_key is %s, not a string", kind.Field(), i, key.Kind())
	}
}
