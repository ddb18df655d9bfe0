package dirbuild

import (
	"fmt"
	"io"
	"path/filepath"

	k8sagent "github.com/mschwehl/jenkins-k8sagent-lib-lb"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/encode"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/eval"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/parse"

	"github.com/goccy/go-yaml"
)

// Result is a composed document with the metadata handed to its consumer.
type Result struct {
	Tree  *ir.Node
	Base  *ir.Node
	Cloud string
	Debug bool

	// Fragments lists the fragment files folded in, in order.
	Fragments []string
}

func (r *Result) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(r.Tree, w, opts...)
}

// Build composes the directory: the base, then the selected containers,
// then the selected specs. The optional patch and image check run on the
// composed tree.
func (d *Dir) Build() (*Result, error) {
	env := d.Env()
	base, baseName := []byte(k8sagent.DefaultBase), "base"
	if d.Base != "" {
		data, err := d.readFile(d.Base)
		if err != nil {
			return nil, err
		}
		base, baseName = data, d.Base
	}
	baseTree, err := parse.Parse(base, parse.WithFilename(baseName))
	if err != nil {
		return nil, err
	}
	global, err := d.subst(nil, d.Subst, env)
	if err != nil {
		return nil, err
	}
	var frags []k8sagent.Fragment
	for _, sel := range []struct {
		kind  string
		items []DirFragment
	}{
		{ContainersDir, d.Containers},
		{SpecsDir, d.Specs},
	} {
		for i := range sel.items {
			frag, ok, err := d.fragment(sel.kind, &sel.items[i], global, env)
			if err != nil {
				return nil, err
			}
			if ok {
				frags = append(frags, frag)
			}
		}
	}
	tree, err := k8sagent.ComposeTree(baseTree, frags...)
	if err != nil {
		return nil, err
	}
	if d.Patch != "" {
		patch, err := d.readFile(d.Patch)
		if err != nil {
			return nil, err
		}
		tree, err = k8sagent.ApplyJSONPatch(tree, patch)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", d.Patch, err)
		}
	}
	if d.CheckImages {
		if err := k8sagent.CheckImages(tree); err != nil {
			return nil, err
		}
	}
	res := &Result{
		Tree:  tree,
		Base:  baseTree,
		Cloud: d.Cloud,
		Debug: d.Debug,
	}
	for i := range frags {
		res.Fragments = append(res.Fragments, frags[i].Name)
	}
	return res, nil
}

func (d *Dir) fragment(kind string, df *DirFragment, global *eval.Subst, env eval.Env) (k8sagent.Fragment, bool, error) {
	var res k8sagent.Fragment
	if df.Name == "" && df.File == "" {
		return res, false, fmt.Errorf("%w: %s entry with no name or file", ErrResolve, kind)
	}
	ok, err := eval.Cond(df.If, env)
	if err != nil {
		return res, false, fmt.Errorf("%s %s: %w", kind, df.Name, err)
	}
	if !ok {
		if debug.Load() {
			debug.Logf("skip %s %s: %q is false\n", kind, df.Name, df.If)
		}
		return res, false, nil
	}
	file := df.File
	if file == "" {
		file = filepath.Join(kind, df.Name+FragmentExt)
	}
	text, err := d.readFile(file)
	if err != nil {
		return res, false, err
	}
	subst, err := d.subst(global, df.Subst, env)
	if err != nil {
		return res, false, fmt.Errorf("%s %s: %w", kind, df.Name, err)
	}
	res.Name = file
	res.Text = text
	res.Subst = subst
	return res, true, nil
}

// subst extends a copy of global with the entries of ms, expanding
// variables in each value.
func (d *Dir) subst(global *eval.Subst, ms yaml.MapSlice, env eval.Env) (*eval.Subst, error) {
	res := eval.NewSubst(global.Pairs()...)
	for _, item := range ms {
		tok := fmt.Sprint(item.Key)
		val := ""
		if item.Value != nil {
			val = fmt.Sprint(item.Value)
		}
		v, err := eval.ExpandString(val, env)
		if err != nil {
			return nil, fmt.Errorf("%w: substitution %s: %w", ErrResolve, tok, err)
		}
		res.Add(tok, v)
	}
	return res, nil
}
