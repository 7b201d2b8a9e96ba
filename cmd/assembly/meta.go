package main

import (
	"fmt"

	"github.com/signadot/assembly/assembly"

	"github.com/scott-cotton/cli"
)

func meta(cfg *MetaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.MetaCmd.Parse(cc, args)
	if err != nil {
		cfg.MetaCmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: meta requires two arguments, an assembly and a distgit key", cli.ErrUsage)
	}
	kind, err := assembly.ParseKind(cfg.Kind)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	rel, err := loadReleases(cfg.MainConfig, cfg.Releases)
	if err != nil {
		return err
	}
	md, err := loadMember(cfg.MainConfig, cfg.Meta, kind, args[1])
	if err != nil {
		return fmt.Errorf("error loading metadata: %w", err)
	}
	res, err := assembly.MetadataConfig(rel, args[0], kind, args[1], md)
	if err != nil {
		return err
	}
	return encodeOut(cfg.MainConfig, cc.Out, res)
}
