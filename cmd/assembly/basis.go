package main

import (
	"fmt"

	"github.com/signadot/assembly/assembly"
	"github.com/signadot/assembly/ir"

	"github.com/scott-cotton/cli"
)

func basis(cfg *BasisConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Basis.Parse(cc, args)
	if err != nil {
		cfg.Basis.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: basis requires one argument, an assembly", cli.ErrUsage)
	}
	rel, err := loadReleases(cfg.MainConfig, cfg.Releases)
	if err != nil {
		return err
	}
	if cfg.Event {
		event, ok, err := assembly.BasisEvent(rel, args[0])
		if err != nil {
			return err
		}
		res := ir.Null()
		if ok {
			res = ir.FromInt(event)
		}
		return encodeOut(cfg.MainConfig, cc.Out, res)
	}
	res, err := assembly.Basis(rel, args[0])
	if err != nil {
		return err
	}
	return encodeOut(cfg.MainConfig, cc.Out, res)
}
