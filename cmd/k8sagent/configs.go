package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/encode"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/eval"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/format"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/parse"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	OutFormat *format.Format

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

// useColor reports whether output to w is colored: always with -color,
// never with -color=false, and otherwise when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
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

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
	}
	if !fmt.IsJSON() && cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ComposeConfig struct {
	*MainConfig
	Vars map[string]any

	ShowVars bool `cli:"name=s aliases=show desc='show variables'"`
	Diff     bool `cli:"name=diff desc='show the changes made to the base'"`

	Compose *cli.Command
}

type ParseConfig struct {
	*MainConfig
	Subst *eval.Subst

	Parse *cli.Command
}

func (cfg *ParseConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.WithSubst(cfg.Subst)}
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Images bool `cli:"name=images desc='check container image references'"`

	Check *cli.Command
}
