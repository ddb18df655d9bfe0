package parse

import (
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/eval"
)

type parseOpts struct {
	subst    *eval.Subst
	filename string
}

type ParseOption func(*parseOpts)

// WithSubst applies s to every scalar value before it enters the tree.
func WithSubst(s *eval.Subst) ParseOption {
	return func(o *parseOpts) { o.subst = s }
}

// WithFilename names the fragment in format errors.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
