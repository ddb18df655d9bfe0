package k8sagent

import (
	"fmt"
	"slices"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyJSONPatch applies an RFC 6902 patch to node and returns the
// patched tree. Mapping keys that survive the patch keep their order from
// node; keys added by the patch follow them.
func ApplyJSONPatch(node *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := ir.ToJSON(node)
	if err != nil {
		return nil, err
	}
	if debug.Compose() {
		debug.Logf("json patch with %d ops\n", len(ops))
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if res.Type != ir.MappingType {
		return nil, fmt.Errorf("%w: result is a %s", ErrPatch, res.Type)
	}
	reorderLike(res, node)
	return res, nil
}

// reorderLike sorts the mapping keys of y by their position in orig,
// recursing into values present in both. List items are paired by name
// when they have one and by index otherwise.
func reorderLike(y, orig *ir.Node) {
	if orig == nil || y.Type != orig.Type {
		return
	}
	switch y.Type {
	case ir.MappingType:
		pos := make(map[string]int, len(orig.Values))
		for i, v := range orig.Values {
			pos[v.Key] = i
		}
		slices.SortStableFunc(y.Values, func(a, b *ir.Node) int {
			return rank(pos, a.Key) - rank(pos, b.Key)
		})
		for _, v := range y.Values {
			reorderLike(v, orig.Get(v.Key))
		}
	case ir.SequenceType:
		for i, item := range y.Values {
			var o *ir.Node
			if name, ok := item.Name(); ok {
				o = findNamed(orig, name)
			} else if i < len(orig.Values) {
				o = orig.Values[i]
			}
			reorderLike(item, o)
		}
	}
}

func rank(pos map[string]int, key string) int {
	if i, ok := pos[key]; ok {
		return i
	}
	return len(pos)
}

func findNamed(seq *ir.Node, name string) *ir.Node {
	for _, item := range seq.Values {
		if n, ok := item.Name(); ok && n == name {
			return item
		}
	}
	return nil
}
