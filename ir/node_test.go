package ir

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetReplacesInPlace(t *testing.T) {
	m := kvs("a", FromString("1"), "b", FromString("2"))
	m.Set("a", FromString("3"))
	if diff := cmp.Diff([]string{"a", "b"}, m.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := m.Get("a").String; got != "3" {
		t.Errorf("got %q want %q", got, "3")
	}
}

func TestAppendMarksListItems(t *testing.T) {
	item := kvs("name", FromString("tools")).WithKey("stale")
	seq := FromSlice([]*Node{item, FromString("x")})
	if !seq.Values[0].ListItem {
		t.Errorf("mapping item not marked ListItem")
	}
	if seq.Values[0].Key != "" {
		t.Errorf("item key not cleared: %q", seq.Values[0].Key)
	}
	if seq.Values[1].ListItem {
		t.Errorf("scalar item marked ListItem")
	}
	name, ok := seq.Values[0].Name()
	if !ok || name != "tools" {
		t.Errorf("Name() = %q, %v", name, ok)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := kvs("spec", kvs("containers", FromSlice([]*Node{kvs("name", FromString("a"))})))
	c := orig.Clone()
	c.Get("spec").Get("containers").Values[0].Set("name", FromString("b"))
	if got, _ := orig.Get("spec").Get("containers").Values[0].Name(); got != "a" {
		t.Errorf("clone shares structure with original")
	}
}

func TestIRJSON(t *testing.T) {
	orig := kvs(
		"spec", kvs(
			"containers", FromSlice([]*Node{
				kvs("name", FromString("tools"), "image", FromString("repo/tools:1")),
			})))
	d, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(orig, back) {
		t.Errorf("IR json round trip changed the tree: %s", d)
	}
	if !back.Get("spec").Get("containers").Values[0].ListItem {
		t.Errorf("ListItem lost in IR json")
	}
}

func TestFromJSONKeepsOrder(t *testing.T) {
	node, err := FromJSON([]byte(`{"z": "1", "a": {"n": 2, "b": true}, "l": [{"name": "x"}, "s"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "l"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := node.Get("a").Get("n").String; got != "2" {
		t.Errorf("number rendered %q", got)
	}
	d, err := ToJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":"1","a":{"n":"2","b":"true"},"l":[{"name":"x"},"s"]}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
}

func TestFromJSONRejectsShapes(t *testing.T) {
	for _, in := range []string{`{"a": [[1]]}`, `{"a": [{}]}`} {
		_, err := FromJSON([]byte(in))
		if !errors.Is(err, ErrShape) {
			t.Errorf("%s: got %v want ErrShape", in, err)
		}
	}
}

func TestFromAnySortsKeys(t *testing.T) {
	node, err := FromAny(map[string]any{"b": 1, "a": []any{"x", map[string]any{"name": "n"}}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"b": "1", "a": []any{"x", map[string]any{"name": "n"}}}, ToAny(node)); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func TestWalkPaths(t *testing.T) {
	node := kvs("spec", kvs("containers", FromSlice([]*Node{kvs("image", FromString("i"))})), "a.b", FromString("c"))
	var paths []string
	err := node.Walk(func(path string, _ *Node) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"$", "$.spec", "$.spec.containers", "$.spec.containers[0]", "$.spec.containers[0].image", "$.'a.b'"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
}
