package main

import (
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/encode"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"

	"github.com/scott-cotton/cli"
)

func parseFiles(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachObjFile(cc, args, func(y *ir.Node) error {
		return encode.Encode(y, cc.Out, opts...)
	}, cfg.parseOpts()...)
}
