package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

// Colors holds the terminal attributes used for each kind of token.
type Colors struct {
	MapKey color.Attribute
	String color.Attribute
	Number color.Attribute
	Bool   color.Attribute
	Anchor color.Attribute
	Alias  color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		MapKey: color.FgHiCyan,
		String: color.FgHiGreen,
		Number: color.FgHiMagenta,
		Bool:   color.FgHiYellow,
		Anchor: color.FgHiBlue,
		Alias:  color.FgHiBlue,
	}
}

func escape(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

func (c *Colors) property(attr color.Attribute) printer.PrintFunc {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: escape(attr),
			Suffix: escape(color.Reset),
		}
	}
}

// Paint colours an encoded YAML or JSON document.
func (c *Colors) Paint(src string) string {
	tokens := lexer.Tokenize(src)
	var p printer.Printer
	p.MapKey = c.property(c.MapKey)
	p.String = c.property(c.String)
	p.Number = c.property(c.Number)
	p.Bool = c.property(c.Bool)
	p.Anchor = c.property(c.Anchor)
	p.Alias = c.property(c.Alias)
	res := p.PrintTokens(tokens)
	if strings.HasSuffix(src, "\n") && !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return res
}
