package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Data: "."}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, jsonc, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "assembly").
		WithSynopsis("assembly [opts] command [opts]").
		WithDescription("assembly resolves the effective configuration of release assemblies.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return asmMain(cfg, cc, args)
		}).
		WithSubs(
			TypeCommand(cfg),
			GroupCommand(cfg),
			MetaCommand(cfg),
			RHCOSCommand(cfg),
			BasisCommand(cfg),
			ListCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg))
}

func TypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Type, "type").
		WithAliases("t").
		WithSynopsis("type [-r releases] <assembly>").
		WithDescription("print the type of an assembly").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return asmType(cfg, cc, args)
		})
}

func GroupCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GroupConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.GroupCmd, "group").
		WithAliases("g").
		WithSynopsis("group [-r releases] [-g group] <assembly>").
		WithDescription("print the group configuration with assembly overrides applied").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return group(cfg, cc, args)
		})
}

func MetaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MetaConfig{MainConfig: mainCfg, Kind: "image"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.MetaCmd, "meta").
		WithAliases("m").
		WithSynopsis("meta [-r releases] [-k rpm|image] [-m meta] <assembly> <distgit_key>").
		WithDescription("print member metadata with assembly overrides applied").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return meta(cfg, cc, args)
		})
}

func RHCOSCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RHCOSConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.RHCOS, "rhcos").
		WithAliases("r").
		WithSynopsis("rhcos [-r releases] [-images] <assembly>").
		WithDescription("print the rhcos configuration of an assembly").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rhcosCmd(cfg, cc, args)
		})
}

func BasisCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BasisConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Basis, "basis").
		WithAliases("b").
		WithSynopsis("basis [-r releases] [-event] <assembly>").
		WithDescription("print the basis of an assembly").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return basis(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-r releases] [-where expr]").
		WithDescription("list the assemblies of a releases document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithSynopsis("merge <override> <base>").
		WithDescription("merge an override document over a base document").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r releases] [-g group] [-patch] <assembly>").
		WithDescription("show what an assembly changes in the group configuration").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
