package main

import (
	"fmt"

	"github.com/signadot/assembly/assembly"
	"github.com/signadot/assembly/encode"
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: diff requires one argument, an assembly", cli.ErrUsage)
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
	if cfg.Patch {
		patch, err := libdiff.MergePatch(base, res)
		if err != nil {
			return err
		}
		if err := checkPatch(cc, base, res, patch); err != nil {
			return err
		}
		return encodeOut(cfg.MainConfig, cc.Out, patch)
	}
	lines, err := libdiff.Nodes(base, res, encode.EncodeFormat(cfg.outFormat()))
	if err != nil {
		return err
	}
	return libdiff.Render(cc.Out, lines, cfg.colors(cc.Out))
}

// checkPatch warns when patch applied to base does not give res, which
// happens when res holds nulls: a merge patch reads them as deletions.
func checkPatch(cc *cli.Context, base, res, patch *ir.Node) error {
	back, err := libdiff.ApplyMergePatch(base, patch)
	if err != nil {
		return fmt.Errorf("error applying merge patch: %w", err)
	}
	if ir.Equal(back, res) {
		return nil
	}
	if cc.Err == nil {
		return nil
	}
	_, err = fmt.Fprintln(cc.Err, "warning: merge patch drops null values of the resolved group")
	return err
}
