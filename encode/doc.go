// Package encode writes ir trees as YAML or JSON.
//
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// Colors paints encoded output for terminals.
package encode
