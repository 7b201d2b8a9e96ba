package libdiff

import (
	"bytes"
	"strings"

	"github.com/signadot/assembly/encode"
	"github.com/signadot/assembly/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Line struct {
	Op   Op
	Text string
}

// Lines returns a line diff turning from into to.  Text does not include the
// line terminator.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, text := range strings.SplitAfter(diff.Text, "\n") {
			if text == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Nodes encodes from and to with opts and diffs the results line by line.
func Nodes(from, to *ir.Node, opts ...encode.EncodeOption) ([]Line, error) {
	fbuf, tbuf := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.Encode(from, fbuf, opts...); err != nil {
		return nil, err
	}
	if err := encode.Encode(to, tbuf, opts...); err != nil {
		return nil, err
	}
	return Lines(fbuf.String(), tbuf.String()), nil
}
