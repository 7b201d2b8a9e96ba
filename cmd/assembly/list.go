package main

import (
	"fmt"

	"github.com/signadot/assembly/assembly"
	"github.com/signadot/assembly/eval"
	"github.com/signadot/assembly/ir"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments", cli.ErrUsage)
	}
	var filter *eval.Filter
	if cfg.Where != "" {
		filter, err = eval.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	rel, err := loadReleases(cfg.MainConfig, cfg.Releases)
	if err != nil {
		return err
	}
	all, err := assembly.List(rel)
	if err != nil {
		return err
	}
	sel, err := eval.Select(filter, all)
	if err != nil {
		return err
	}
	return encodeOut(cfg.MainConfig, cc.Out, summariesNode(sel))
}

func summariesNode(ss []assembly.Summary) *ir.Node {
	res := ir.FromSlice(nil)
	for i := range ss {
		s := &ss[i]
		kvs := []ir.KeyVal{
			{Key: "name", Val: ir.FromString(s.Name)},
			{Key: "type", Val: ir.FromString(s.Type.String())},
		}
		if s.Basis != "" {
			kvs = append(kvs, ir.KeyVal{Key: "basis", Val: ir.FromString(s.Basis)})
		}
		if s.HasEvent {
			kvs = append(kvs, ir.KeyVal{Key: "brew_event", Val: ir.FromInt(s.Event)})
		}
		kvs = append(kvs, ir.KeyVal{Key: "depth", Val: ir.FromInt(int64(s.Depth))})
		res.Append(ir.FromKeyVals(kvs))
	}
	return res
}
