// Package parse decodes YAML, JSON and JSONC documents into ir trees.
//
// YAML and JSON are decoded with github.com/goccy/go-yaml using ordered
// mappings, so object fields keep their document order.  JSONC has comments
// and trailing commas stripped first.
//
// Mapping keys that are not strings in YAML (for example `4.10:`) are turned
// into strings by their decoded value, so `4.10` becomes "4.1".  Quote such
// keys.
package parse
