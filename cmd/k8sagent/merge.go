package main

import (
	"fmt"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/encode"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/merge"

	"github.com/scott-cotton/cli"
)

func mergeFiles(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a base and at least one overlay, got %v", cli.ErrUsage, args)
	}
	res, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, file := range args[1:] {
		overlay, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res = merge.Merge(res, overlay)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
