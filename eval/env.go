package eval

import "github.com/signadot/assembly/assembly"

// Env is the environment a filter expression sees for one assembly.
type Env struct {
	Name     string `expr:"name"`
	Type     string `expr:"type"`
	Basis    string `expr:"basis"`
	Event    int64  `expr:"event"`
	HasEvent bool   `expr:"hasEvent"`
	Depth    int    `expr:"depth"`
}

func EnvOf(s assembly.Summary) Env {
	return Env{
		Name:     s.Name,
		Type:     s.Type.String(),
		Basis:    s.Basis,
		Event:    s.Event,
		HasEvent: s.HasEvent,
		Depth:    s.Depth,
	}
}
