package eval

import (
	"fmt"

	"github.com/signadot/assembly/assembly"
	"github.com/signadot/assembly/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over an Env.
type Filter struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Filter, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilter, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(s assembly.Summary) (bool, error) {
	out, err := expr.Run(f.prog, EnvOf(s))
	if err != nil {
		return false, fmt.Errorf("%w: %q on %s: %w", ErrFilter, f.src, s.Name, err)
	}
	if debug.Eval() {
		debug.Logf("filter %q on %s: %v\n", f.src, s.Name, out)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrFilter, f.src, out)
	}
	return b, nil
}

// Select returns the summaries f matches, in order.  A nil filter matches
// everything.
func Select(f *Filter, summaries []assembly.Summary) ([]assembly.Summary, error) {
	if f == nil {
		return summaries, nil
	}
	var res []assembly.Summary
	for _, s := range summaries {
		ok, err := f.Match(s)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, s)
		}
	}
	return res, nil
}
