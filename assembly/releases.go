package assembly

import (
	"strconv"
	"strings"

	"github.com/signadot/assembly/ir"
)

// Releases is a read-only view of a releases document:
//
//	releases:
//	  <name>:
//	    assembly:
//	      type: standard
//	      basis: {assembly: <name>, brew_event: <int>}
//	      group: {...}
//	      members: {rpms: [...], images: [...]}
//	      rhcos: {...}
//
// The assembly definition may also sit directly under the name, without the
// "assembly" wrapper.
//
// A nil *Releases is valid and is not applicable to any query.
type Releases struct {
	doc *ir.Node
}

func NewReleases(doc *ir.Node) *Releases {
	return &Releases{doc: doc}
}

// Doc returns the underlying document.
func (r *Releases) Doc() *ir.Node {
	if r == nil {
		return ir.Absent()
	}
	return r.doc
}

// Applicable reports whether r holds a document the queries can look into.
func (r *Releases) Applicable() bool {
	return r != nil && r.doc.IsObject()
}

func (r *Releases) releases() (*ir.Node, error) {
	if !r.Applicable() {
		return ir.Absent(), nil
	}
	rels := r.doc.Get("releases")
	switch rels.Kind() {
	case ir.AbsentType, ir.NullType:
		return ir.Absent(), nil
	case ir.ObjectType:
		return rels, nil
	default:
		return nil, malformed("releases is %s, not an object", rels.Kind())
	}
}

// Names returns the assembly names in document order.
func (r *Releases) Names() ([]string, error) {
	rels, err := r.releases()
	if err != nil {
		return nil, err
	}
	return rels.Keys(), nil
}

// Definition returns the assembly definition for name, or an Absent node
// when the document does not define it.  The result shares storage with the
// document.
func (r *Releases) Definition(name string) (*ir.Node, error) {
	rels, err := r.releases()
	if err != nil {
		return nil, err
	}
	entry := rels.Get(name)
	switch entry.Kind() {
	case ir.AbsentType, ir.NullType:
		return ir.Absent(), nil
	case ir.ObjectType:
	default:
		return nil, malformed("release %q is %s, not an object", name, entry.Kind())
	}
	def := entry.Get("assembly")
	switch def.Kind() {
	case ir.AbsentType:
		return entry, nil
	case ir.NullType:
		return ir.Absent(), nil
	case ir.ObjectType:
		return def, nil
	default:
		return nil, malformed("release %q: assembly is %s, not an object", name, def.Kind())
	}
}

func basisOf(name string, def *ir.Node) (*ir.Node, error) {
	b := def.Get("basis")
	switch b.Kind() {
	case ir.AbsentType, ir.NullType:
		return ir.Absent(), nil
	case ir.ObjectType:
		return b, nil
	default:
		return nil, malformed("assembly %q: basis is %s, not an object", name, b.Kind())
	}
}

// basisAssembly returns the parent named by def, or "" when it has none.
func basisAssembly(name string, def *ir.Node) (string, error) {
	b, err := basisOf(name, def)
	if err != nil {
		return "", err
	}
	parent := b.Get("assembly")
	switch parent.Kind() {
	case ir.AbsentType, ir.NullType:
		return "", nil
	case ir.StringType:
		return parent.String, nil
	default:
		return "", malformed("assembly %q: basis.assembly is %s, not a string", name, parent.Kind())
	}
}

// brewEvent returns basis.brew_event of def, if set.  Integral strings are
// accepted.
func brewEvent(name string, def *ir.Node) (int64, bool, error) {
	b, err := basisOf(name, def)
	if err != nil {
		return 0, false, err
	}
	ev := b.Get("brew_event")
	switch ev.Kind() {
	case ir.AbsentType, ir.NullType:
		return 0, false, nil
	case ir.NumberType:
		if i, ok := ev.AsInt(); ok {
			return i, true, nil
		}
	case ir.StringType:
		if i, err := strconv.ParseInt(strings.TrimSpace(ev.String), 10, 64); err == nil {
			return i, true, nil
		}
	}
	return 0, false, malformed("assembly %q: basis.brew_event %v is not an integer", name, ev.ToPrimitive())
}
