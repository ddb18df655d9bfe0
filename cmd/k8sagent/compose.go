package main

import (
	"fmt"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/dirbuild"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/encode"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/libdiff"

	"github.com/scott-cotton/cli"
)

func compose(cfg *ComposeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compose.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = splitVarExtras(cfg.Vars, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: compose takes at most one directory, got %v", cli.ErrUsage, args)
	}
	if cfg.ShowVars && cfg.Diff {
		return fmt.Errorf("%w: cannot use -s and -diff together", cli.ErrUsage)
	}
	dirPath := "."
	if len(args) != 0 {
		dirPath = args[0]
	}
	envVars, err := dirbuild.LoadEnv()
	if err != nil {
		return err
	}
	dir, err := dirbuild.OpenDir(dirPath, mergeVars(envVars, cfg.Vars))
	if err != nil {
		return err
	}
	if cfg.ShowVars {
		vars, err := ir.FromAny(map[string]any(dir.Env()))
		if err != nil {
			return fmt.Errorf("error rendering variables: %w", err)
		}
		return encode.Encode(vars, cc.Out, cfg.encOpts(cc.Out)...)
	}
	res, err := dir.Build()
	if err != nil {
		return err
	}
	theLog.Info("composed", "dir", dirPath, "cloud", res.Cloud, "debug", res.Debug, "fragments", len(res.Fragments))
	if cfg.Diff {
		lines, err := libdiff.Nodes(res.Base, res.Tree)
		if err != nil {
			return err
		}
		return libdiff.Write(cc.Out, lines, cfg.useColor(cc.Out))
	}
	return res.Encode(cc.Out, cfg.encOpts(cc.Out)...)
}
