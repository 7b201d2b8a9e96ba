package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed navigation path such as "members.images[0].distgit_key".
// Fields containing path syntax are single quoted: "releases.'4.8.1'.assembly".
// A nil *Path addresses the root.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// ParsePath parses p.  A leading '$' or '.' is accepted and ignored.
func ParsePath(p string) (*Path, error) {
	frag := strings.TrimPrefix(p, "$")
	if len(frag) == 0 {
		return nil, nil
	}
	if frag[0] != '.' && frag[0] != '[' {
		frag = "." + frag
	}
	root := &Path{}
	if err := parseFrag(frag, root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := strconv.ParseUint(frag[1:i+1], 10, 31)
		if err != nil {
			return fmt.Errorf("bad index %q: %w", frag[1:i+1], err)
		}
		idx := int(index)
		parent.Index = &idx
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns the node at yPath.  Missing fields, out of range indices and
// type mismatches yield an Absent node; only a malformed path is an error.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.Walk(yp), nil
}

// Lookup is GetPath for callers with constant paths: a malformed path also
// yields an Absent node.
func (y *Node) Lookup(yPath string) *Node {
	res, err := y.GetPath(yPath)
	if err != nil {
		return Absent()
	}
	return res
}

// Walk follows a parsed path from y.  The result shares storage with y.
func (y *Node) Walk(yp *Path) *Node {
	res := y
	if res == nil {
		res = Absent()
	}
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.Field != nil:
			res = res.Get(*yp.Field)
		case yp.Index != nil:
			res = res.Index(*yp.Index)
		}
		if res.IsAbsent() {
			return res
		}
	}
	return res
}
