package k8sagent

import (
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/eval"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/merge"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/parse"
)

// DefaultBase is the document compositions start from when no base is
// given.
const DefaultBase = "spec:"

type Fragment struct {
	// Name identifies the fragment in errors, usually its file name.
	Name  string
	Text  []byte
	Subst *eval.Subst
}

// Compose parses base and folds every fragment into it in order. The
// base is parsed without substitutions. The first fragment that fails to
// parse aborts the composition.
func Compose(base []byte, frags ...Fragment) (*ir.Node, error) {
	tree, err := parse.Parse(base, parse.WithFilename("base"))
	if err != nil {
		return nil, err
	}
	return ComposeTree(tree, frags...)
}

// ComposeTree is Compose over an already parsed base. The base is not
// modified.
func ComposeTree(base *ir.Node, frags ...Fragment) (*ir.Node, error) {
	res := base.Clone()
	for _, frag := range frags {
		if debug.Compose() {
			debug.Logf("compose %s with %d substitutions\n", frag.Name, frag.Subst.Len())
		}
		node, err := parse.Parse(frag.Text, parse.WithSubst(frag.Subst), parse.WithFilename(frag.Name))
		if err != nil {
			return nil, err
		}
		res = merge.Merge(res, node)
	}
	if debug.Compose() {
		debug.Logf("composed:\n%v\n", res)
	}
	return res, nil
}
