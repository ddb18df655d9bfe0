package main

import (
	"bytes"
	"fmt"

	k8sagent "github.com/mschwehl/jenkins-k8sagent-lib-lb"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/encode"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		y, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(y, buf); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := k8sagent.Validate(buf.Bytes()); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if cfg.Images {
			if err := k8sagent.CheckImages(y); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
		theLog.Info("ok", "file", file, "images", countImages(y))
	}
	return nil
}

func countImages(y *ir.Node) int {
	n := 0
	y.Walk(func(_ string, v *ir.Node) error {
		if v.Key == "image" {
			n++
		}
		return nil
	})
	return n
}
