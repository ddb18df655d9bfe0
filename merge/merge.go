package merge

import (
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
)

// Merge folds overlay into base and returns a new tree. Neither input is
// modified.
func Merge(base, overlay *ir.Node) *ir.Node {
	if debug.Merge() {
		debug.Logf("merge %s into %s\n", overlay.Type, base.Type)
	}
	var res *ir.Node
	switch {
	case base.Type == ir.MappingType && overlay.Type == ir.MappingType:
		res = mergeMappings(base, overlay)
	case base.Type == ir.SequenceType && overlay.Type == ir.SequenceType:
		res = AppendLists(base, overlay)
	default:
		res = flatten(base, overlay)
	}
	res.Key = base.Key
	res.ListItem = base.ListItem && res.Type == ir.MappingType
	return res
}

func mergeMappings(base, overlay *ir.Node) *ir.Node {
	res := ir.Mapping()
	for _, bv := range base.Values {
		ov := overlay.Get(bv.Key)
		if ov == nil {
			res.Set(bv.Key, bv.Clone())
			continue
		}
		res.Set(bv.Key, Merge(bv, ov))
	}
	for _, ov := range overlay.Values {
		if base.Get(ov.Key) != nil {
			continue
		}
		res.Set(ov.Key, ov.Clone())
	}
	return res
}

// flatten accumulates two colliding values into one sequence, base first.
// Sequence operands contribute their items.
func flatten(base, overlay *ir.Node) *ir.Node {
	if debug.Merge() {
		debug.Logf("merge conflict %s/%s at key %q: accumulating\n", base.Type, overlay.Type, base.Key)
	}
	res := ir.Sequence()
	for _, n := range []*ir.Node{base, overlay} {
		if n.Type == ir.SequenceType {
			for _, item := range n.Values {
				res.Append(item.Clone())
			}
			continue
		}
		res.Append(n.Clone())
	}
	return res
}
