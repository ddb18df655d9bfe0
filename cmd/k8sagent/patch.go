package main

import (
	"fmt"

	k8sagent "github.com/mschwehl/jenkins-k8sagent-lib-lb"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/encode"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := readObjFile(cc, args[0])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachObjFile(cc, args[1:], func(y *ir.Node) error {
		res, err := k8sagent.ApplyJSONPatch(y, p)
		if err != nil {
			return err
		}
		return encode.Encode(res, cc.Out, opts...)
	})
}
