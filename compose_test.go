package k8sagent

import (
	"errors"
	"strings"
	"testing"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/encode"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/eval"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/parse"

	"github.com/google/go-cmp/cmp"
)

const toolsFragment = `spec:
  containers:
  - name: tools
    image: repo/tools:__TAG__
`

const cypressFragment = `spec:
  containers:
  - name: cypress
    image: repo/cypress:13.0.0
`

func TestComposeEndToEnd(t *testing.T) {
	tag := eval.NewSubst(eval.Pair{Token: "__TAG__", Value: "13.0.0"})
	tree, err := Compose([]byte(DefaultBase),
		Fragment{Name: "tools", Text: []byte(toolsFragment), Subst: tag},
		Fragment{Name: "cypress", Text: []byte(cypressFragment)},
	)
	if err != nil {
		t.Fatal(err)
	}
	want := `spec:
  containers:
  - name: tools
    image: repo/tools:13.0.0
  - name: cypress
    image: repo/cypress:13.0.0`
	got := encode.MustString(tree)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, ln := range strings.Split(got, "\n") {
		n := len(ln) - len(strings.TrimLeft(ln, " "))
		if n%2 != 0 {
			t.Errorf("odd indentation in %q", ln)
		}
	}
	back, err := parse.ParseString(got)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(tree, back) {
		t.Errorf("composed text does not parse back to the same tree")
	}
	if err := Validate([]byte(got)); err != nil {
		t.Error(err)
	}
	if err := CheckImages(tree); err != nil {
		t.Error(err)
	}
}

func TestComposeEmpty(t *testing.T) {
	tree, err := Compose(nil)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Type != ir.MappingType || len(tree.Values) != 0 {
		t.Errorf("got %s", encode.MustString(tree))
	}
}

func TestComposeSubstScopedToFragment(t *testing.T) {
	tag := eval.NewSubst(eval.Pair{Token: "__TAG__", Value: "1"})
	tree, err := Compose([]byte(DefaultBase),
		Fragment{Name: "a", Text: []byte("spec:\n  a: __TAG__\n"), Subst: tag},
		Fragment{Name: "b", Text: []byte("spec:\n  b: __TAG__\n")},
	)
	if err != nil {
		t.Fatal(err)
	}
	spec := tree.Get("spec")
	if spec.Get("a").String != "1" || spec.Get("b").String != "__TAG__" {
		t.Errorf("got %s", encode.MustString(tree))
	}
}

func TestComposeFormatError(t *testing.T) {
	_, err := Compose([]byte(DefaultBase),
		Fragment{Name: "ok", Text: []byte("spec:\n  a: b\n")},
		Fragment{Name: "containers/bad.yaml", Text: []byte("spec:\n\ta: b\n")},
	)
	if !errors.Is(err, parse.ErrFormat) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "containers/bad.yaml") {
		t.Errorf("error does not name fragment: %v", err)
	}
}

func TestComposeScalarMeetsEmptyBlock(t *testing.T) {
	tree, err := Compose([]byte(DefaultBase), Fragment{Name: "foo", Text: []byte("spec: foo\n")})
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(tree)
	if diff := cmp.Diff("spec:\n-\n- foo", got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	back, err := parse.ParseString(got)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(tree, back) {
		t.Errorf("composed text does not parse back to the same tree")
	}
}

func TestComposeTreeBaseUnchanged(t *testing.T) {
	base, err := parse.ParseString("spec:\n  hostNetwork: false\n")
	if err != nil {
		t.Fatal(err)
	}
	before := base.Clone()
	tree, err := ComposeTree(base, Fragment{Name: "a", Text: []byte("spec:\n  hostNetwork: true\n")})
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(base, before) {
		t.Errorf("base modified: %s", encode.MustString(base))
	}
	if got := tree.Get("spec").Get("hostNetwork").String; got != "true" {
		t.Errorf("got %q", got)
	}
}

func TestComposeBaseFormatError(t *testing.T) {
	_, err := Compose([]byte("spec:\n\ta: b\n"))
	if !errors.Is(err, parse.ErrFormat) || !strings.HasPrefix(err.Error(), "base: ") {
		t.Errorf("got %v", err)
	}
}
