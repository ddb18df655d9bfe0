package main

import (
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/eval"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: markup/m, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "k8sagent").
		WithSynopsis("k8sagent [opts] command [opts]").
		WithDescription("k8sagent composes agent pod documents from fragments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return k8sagentMain(cfg, cc, args)
		}).
		WithSubs(
			ComposeCommand(cfg),
			ParseCommand(cfg),
			DumpCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			CheckCommand(cfg))
}

func ComposeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ComposeConfig{MainConfig: mainCfg, Vars: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "set a variable",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(varOptTypeFunc(cfg.Vars)), "(key=val)"),
	})
	return cli.NewCommandAt(&cfg.Compose, "compose").
		WithAliases("c").
		WithSynopsis("compose [-e key=val]... [-s] [-diff] [dir] [-- key=val ...]").
		WithDescription("compose the agent document described by dir/agent.yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compose(cfg, cc, args)
		})
}

func varOptTypeFunc(vars map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := setVar(vars, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg, Subst: eval.NewSubst()}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "S",
			Description: "replace TOKEN with val in values",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(substOptTypeFunc(cfg.Subst)), "(TOKEN=val)"),
		},
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [-S TOKEN=val]... [files]").
		WithDescription("parse fragments and print them normalised").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseFiles(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump the tree of fragments as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge base overlay...").
		WithDescription("fold overlay fragments into base").
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeFiles(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("line diff of two normalised fragments, exit 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithSynopsis("patch <patch.json> [files]").
		WithDescription("apply an RFC 6902 JSON patch to fragments").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [-images] [files]").
		WithDescription("check that documents are valid YAML mappings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
