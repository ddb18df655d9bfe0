package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/parse"

	"github.com/scott-cotton/cli"
)

func readObjFile(cc *cli.Context, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readObjFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, append([]parse.ParseOption{parse.WithFilename(path)}, opts...)...)
}

// eachObjFile calls f on the tree of each file, stdin when there are none,
// writing a document separator between outputs.
func eachObjFile(cc *cli.Context, files []string, f func(*ir.Node) error, opts ...parse.ParseOption) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		y, err := getObjFile(cc, file, opts...)
		if err != nil {
			return err
		}
		if err := f(y); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
