// Package parse parses fragment text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("spec:\n  hostNetwork: true\n"))
//	if err != nil {
//	    return err
//	}
//
//	// with placeholder substitution
//	subst := eval.NewSubst(eval.Pair{Token: "__TAG__", Value: "13.0.0"})
//	node, err := parse.Parse(data, parse.WithSubst(subst), parse.WithFilename("tools.yaml"))
//
// The accepted input is a small indentation based subset: "key:" opens a
// nested block, "key: value" sets a scalar, and "- key: value" starts an
// item in a list of mappings. A bare "-" is an empty mapping item.
// Indentation is 2 spaces per level and tabs are rejected. Values may not
// start with '#' or '&'.
//
// Malformed input fails with a *token.FormatError matching ErrFormat; no
// partial tree is returned.
//
// # Related Packages
//
//   - github.com/mschwehl/jenkins-k8sagent-lib-lb/ir - IR representation
//   - github.com/mschwehl/jenkins-k8sagent-lib-lb/encode - Encode IR to text
//   - github.com/mschwehl/jenkins-k8sagent-lib-lb/token - Line reading
package parse
