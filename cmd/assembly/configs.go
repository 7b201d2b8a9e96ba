package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/assembly/encode"
	"github.com/signadot/assembly/format"
	"github.com/signadot/assembly/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='encode with color'"`
	Data  string `cli:"name=d aliases=data desc='build data directory'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// parseOpts gives no format when none was asked for, so that files are
// read according to their extension.
func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	switch {
	case cfg.InFormat != nil:
		return []parse.ParseOption{parse.ParseFormat(*cfg.InFormat)}
	case cfg.Y:
		return []parse.ParseOption{parse.ParseYAML()}
	case cfg.J:
		return []parse.ParseOption{parse.ParseJSON()}
	}
	return nil
}

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors reports whether output to w is coloured: -color forces it,
// otherwise terminals get colour unless -color=false was given.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type TypeConfig struct {
	*MainConfig
	Releases string `cli:"name=r aliases=releases desc='releases document overriding the one in -d'"`

	Type *cli.Command
}

type GroupConfig struct {
	*MainConfig
	Releases string `cli:"name=r aliases=releases desc='releases document overriding the one in -d'"`
	Group    string `cli:"name=g aliases=group desc='group document overriding the one in -d'"`

	GroupCmd *cli.Command
}

type MetaConfig struct {
	*MainConfig
	Releases string `cli:"name=r aliases=releases desc='releases document overriding the one in -d'"`
	Kind     string `cli:"name=k aliases=kind desc='member kind, rpm or image'"`
	Meta     string `cli:"name=m aliases=meta desc='metadata document overriding the one in -d'"`

	MetaCmd *cli.Command
}

type RHCOSConfig struct {
	*MainConfig
	Releases string `cli:"name=r aliases=releases desc='releases document overriding the one in -d'"`
	Images   bool   `cli:"name=images desc='list the pinned images'"`

	RHCOS *cli.Command
}

type BasisConfig struct {
	*MainConfig
	Releases string `cli:"name=r aliases=releases desc='releases document overriding the one in -d'"`
	Event    bool   `cli:"name=event desc='show only the basis brew event'"`

	Basis *cli.Command
}

type ListConfig struct {
	*MainConfig
	Releases string `cli:"name=r aliases=releases desc='releases document overriding the one in -d'"`
	Where    string `cli:"name=where desc='filter expression'"`

	List *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Releases string `cli:"name=r aliases=releases desc='releases document overriding the one in -d'"`
	Group    string `cli:"name=g aliases=group desc='group document overriding the one in -d'"`
	Patch    bool   `cli:"name=patch desc='output a json merge patch instead of a line diff'"`

	Diff *cli.Command
}
