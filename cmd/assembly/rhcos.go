package main

import (
	"fmt"

	"github.com/signadot/assembly/assembly"
	"github.com/signadot/assembly/ir"
	"github.com/signadot/assembly/rhcos"

	"github.com/scott-cotton/cli"
)

func rhcosCmd(cfg *RHCOSConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RHCOS.Parse(cc, args)
	if err != nil {
		cfg.RHCOS.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: rhcos requires one argument, an assembly", cli.ErrUsage)
	}
	rel, err := loadReleases(cfg.MainConfig, cfg.Releases)
	if err != nil {
		return err
	}
	res, err := assembly.RHCOSConfig(rel, args[0])
	if err != nil {
		return err
	}
	if !cfg.Images {
		return encodeOut(cfg.MainConfig, cc.Out, res)
	}
	images, err := rhcos.Images(res)
	if err != nil {
		return err
	}
	return encodeOut(cfg.MainConfig, cc.Out, imagesNode(images))
}

func imagesNode(images []rhcos.Image) *ir.Node {
	res := ir.FromSlice(nil)
	for i := range images {
		img := &images[i]
		res.Append(ir.FromKeyVals([]ir.KeyVal{
			{Key: "container", Val: ir.FromString(img.Container)},
			{Key: "arch", Val: ir.FromString(img.Arch)},
			{Key: "registry", Val: ir.FromString(img.Registry)},
			{Key: "name", Val: ir.FromString(img.Name)},
			{Key: "tag", Val: ir.FromString(img.Tag)},
			{Key: "digest", Val: ir.FromBool(img.Digest)},
			{Key: "pullspec", Val: ir.FromString(img.PullSpec)},
		}))
	}
	return res
}
