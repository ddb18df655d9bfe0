// Package k8sagent composes pod documents from fragments.
//
// A composition starts from a base document and folds each fragment into
// it with merge.Merge, substituting placeholder tokens while the fragment
// is parsed:
//
//	tools := k8sagent.Fragment{
//	    Name:  "containers/tools.yaml",
//	    Text:  toolsText,
//	    Subst: eval.NewSubst(eval.Pair{Token: "__TAG__", Value: "13.0.0"}),
//	}
//	tree, err := k8sagent.Compose([]byte("spec:"), tools, cypress)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(encode.MustString(tree))
//
// ApplyJSONPatch, CheckImages and Validate are optional steps applied to a
// composed tree. Package dirbuild drives all of them from a directory.
package k8sagent
