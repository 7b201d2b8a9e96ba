package main

import (
	"fmt"

	"github.com/signadot/assembly/assembly"

	"github.com/scott-cotton/cli"
)

func asmType(cfg *TypeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Type.Parse(cc, args)
	if err != nil {
		cfg.Type.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: type requires one argument, an assembly", cli.ErrUsage)
	}
	rel, err := loadReleases(cfg.MainConfig, cfg.Releases)
	if err != nil {
		return err
	}
	t, err := assembly.AssemblyType(rel, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, t)
	return err
}
