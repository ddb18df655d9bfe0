package main

import (
	"fmt"
	"maps"
	"strings"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// setVar sets vars[key] from a key=val argument. val is decoded as YAML
// and dotted keys address nested mappings.
func setVar(vars map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmp := vars
	for i, part := range parts {
		if i == n-1 {
			tmp[part] = v
			break
		}
		next := tmp[part]
		if next == nil {
			next = map[string]any{}
			tmp[part] = next
		}
		nextVars, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmp = nextVars
	}
	return nil
}

// splitVarExtras sets the key=val arguments following "--" and returns
// the arguments before it.
func splitVarExtras(vars map[string]any, args []string) ([]string, error) {
	delim := -1
	for i, arg := range args {
		if arg == "--" {
			delim = i
			break
		}
	}
	if delim == -1 {
		return args, nil
	}
	for _, arg := range args[delim+1:] {
		if err := setVar(vars, arg); err != nil {
			return nil, err
		}
	}
	return args[:delim], nil
}

// mergeVars returns the entries of layers, later layers overriding.
func mergeVars(layers ...map[string]any) map[string]any {
	res := map[string]any{}
	for _, l := range layers {
		maps.Copy(res, l)
	}
	return res
}

func substOptTypeFunc(s *eval.Subst) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		p, err := eval.ParseSubst([]string{a})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, pair := range p.Pairs() {
			s.Add(pair.Token, pair.Value)
		}
		return 0, nil
	}
}
