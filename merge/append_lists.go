package merge

import (
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
)

// AppendLists merges two sequences. Base items keep their order. An
// overlay mapping item whose name matches a mapping item already in the
// result has its fields set into that item, last write wins per field;
// every other overlay item is appended.
func AppendLists(base, overlay *ir.Node) *ir.Node {
	res := ir.Sequence()
	res.Key = base.Key
	byName := map[string]int{}
	add := func(item *ir.Node) {
		if name, ok := itemName(item); ok {
			if _, seen := byName[name]; !seen {
				byName[name] = len(res.Values)
			}
		}
		res.Append(item)
	}
	for _, item := range base.Values {
		add(item.Clone())
	}
	for _, item := range overlay.Values {
		name, ok := itemName(item)
		if !ok {
			add(item.Clone())
			continue
		}
		i, found := byName[name]
		if !found {
			add(item.Clone())
			continue
		}
		if debug.Merge() {
			debug.Logf("merge list item name=%q into position %d\n", name, i)
		}
		res.Values[i] = setFields(res.Values[i], item)
	}
	return res
}

func itemName(item *ir.Node) (string, bool) {
	if item.Type != ir.MappingType {
		return "", false
	}
	return item.Name()
}

// setFields returns a copy of dst with every field of src set into it.
func setFields(dst, src *ir.Node) *ir.Node {
	res := dst.Clone()
	for _, v := range src.Values {
		res.Set(v.Key, v.Clone())
	}
	return res
}
