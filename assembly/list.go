package assembly

import "fmt"

// Summary describes one assembly of a releases document.
type Summary struct {
	Name string
	Type Type
	// Basis is the parent assembly, if any.
	Basis string
	// Event is the effective basis event, inherited when the assembly does
	// not set its own.
	Event    int64
	HasEvent bool
	// Depth is the number of ancestors in the basis chain.
	Depth int
}

// List summarizes every assembly of rel in document order.
func List(rel *Releases) ([]Summary, error) {
	names, err := rel.Names()
	if err != nil {
		return nil, err
	}
	res := make([]Summary, 0, len(names))
	for _, name := range names {
		s, err := summarize(rel, name)
		if err != nil {
			return nil, fmt.Errorf("assembly %q: %w", name, err)
		}
		res = append(res, s)
	}
	return res, nil
}

func summarize(rel *Releases, name string) (Summary, error) {
	s := Summary{Name: name}
	var err error
	if s.Type, err = AssemblyType(rel, name); err != nil {
		return s, err
	}
	chain, err := rel.Chain(name)
	if err != nil {
		return s, err
	}
	s.Depth = len(chain) - 1
	def, err := rel.Definition(name)
	if err != nil {
		return s, err
	}
	if s.Basis, err = basisAssembly(name, def); err != nil {
		return s, err
	}
	s.Event, s.HasEvent, err = BasisEvent(rel, name)
	return s, err
}
