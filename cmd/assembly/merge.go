package main

import (
	"fmt"

	"github.com/signadot/assembly/mergeop"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires two arguments, an override and a base", cli.ErrUsage)
	}
	override, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	base, err := loadDoc(cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[1], err)
	}
	res, err := mergeop.Merge(override, base)
	if err != nil {
		return err
	}
	return encodeOut(cfg.MainConfig, cc.Out, res)
}
