package libdiff

import (
	"io"

	"github.com/fatih/color"
)

// Render writes lines in unified style, one prefix character per line.
func Render(w io.Writer, lines []Line, colors bool) error {
	ins, del := color.New(color.FgGreen), color.New(color.FgRed)
	if colors {
		ins.EnableColor()
		del.EnableColor()
	} else {
		ins.DisableColor()
		del.DisableColor()
	}
	for i := range lines {
		line := &lines[i]
		var err error
		switch line.Op {
		case Insert:
			_, err = ins.Fprintln(w, line.Op.Prefix()+line.Text)
		case Delete:
			_, err = del.Fprintln(w, line.Op.Prefix()+line.Text)
		default:
			_, err = io.WriteString(w, line.Op.Prefix()+line.Text+"\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}
