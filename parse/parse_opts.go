package parse

import "github.com/signadot/assembly/format"

type parseOpts struct {
	format    format.Format
	formatSet bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseJSONC() ParseOption {
	return ParseFormat(format.JSONCFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}
