package libdiff

import (
	"github.com/signadot/assembly/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch turning from into to.
func MergePatch(from, to *ir.Node) (*ir.Node, error) {
	fd, err := from.MarshalJSON()
	if err != nil {
		return nil, err
	}
	td, err := to.MarshalJSON()
	if err != nil {
		return nil, err
	}
	pd, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(pd); err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyMergePatch applies an RFC 7386 merge patch to doc.
func ApplyMergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	dd, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	pd, err := patch.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(dd, pd)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(out); err != nil {
		return nil, err
	}
	return res, nil
}
