package main

import (
	"fmt"

	"github.com/signadot/assembly/assembly"

	"github.com/scott-cotton/cli"
)

func group(cfg *GroupConfig, cc *cli.Context, args []string) error {
	args, err := cfg.GroupCmd.Parse(cc, args)
	if err != nil {
		cfg.GroupCmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: group requires one argument, an assembly", cli.ErrUsage)
	}
	rel, err := loadReleases(cfg.MainConfig, cfg.Releases)
	if err != nil {
		return err
	}
	base, err := loadGroup(cfg.MainConfig, cfg.Group)
	if err != nil {
		return fmt.Errorf("error loading group: %w", err)
	}
	res, err := assembly.GroupConfig(rel, args[0], base)
	if err != nil {
		return err
	}
	return encodeOut(cfg.MainConfig, cc.Out, res)
}
