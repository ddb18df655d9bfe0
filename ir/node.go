package ir

type Node struct {
	Type Type
	Key  string

	// ListItem marks a mapping rendered after a list marker, its first
	// field inline.
	ListItem bool

	String string
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

func Mapping() *Node {
	return &Node{Type: MappingType}
}

func Sequence() *Node {
	return &Node{Type: SequenceType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a mapping from kvs in order. A repeated key replaces
// the earlier value in its original position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Mapping()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(items []*Node) *Node {
	res := Sequence()
	for _, item := range items {
		res.Append(item)
	}
	return res
}

func (y *Node) WithKey(key string) *Node {
	y.Key = key
	return y
}

// Get returns the value under key in a mapping, or nil.
func (y *Node) Get(key string) *Node {
	if y == nil || y.Type != MappingType {
		return nil
	}
	for _, v := range y.Values {
		if v.Key == key {
			return v
		}
	}
	return nil
}

// Set places val under key in a mapping, replacing any existing value in
// place.
func (y *Node) Set(key string, val *Node) {
	val.Key = key
	for i, v := range y.Values {
		if v.Key == key {
			y.Values[i] = val
			return
		}
	}
	y.Values = append(y.Values, val)
}

// Append adds an item to a sequence.
func (y *Node) Append(item *Node) {
	item.Key = ""
	if item.Type == MappingType {
		item.ListItem = true
	}
	y.Values = append(y.Values, item)
}

func (y *Node) Keys() []string {
	if y.Type != MappingType {
		return nil
	}
	res := make([]string, len(y.Values))
	for i, v := range y.Values {
		res[i] = v.Key
	}
	return res
}

// Name returns the identity field of a mapping item.
func (y *Node) Name() (string, bool) {
	n := y.Get("name")
	if n == nil || n.Type != ScalarType {
		return "", false
	}
	return n.String, true
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Key = y.Key
	dst.ListItem = y.ListItem
	dst.String = y.String
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
