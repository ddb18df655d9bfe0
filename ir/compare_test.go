package ir

import (
	"testing"
)

func kvs(pairs ...any) *Node {
	var res []KeyVal
	for i := 0; i < len(pairs); i += 2 {
		res = append(res, KeyVal{Key: pairs[i].(string), Val: pairs[i+1].(*Node)})
	}
	return FromKeyVals(res)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Scalar < Sequence < Mapping
		{"Scalar < Sequence", FromString("a"), FromSlice(nil), -1},
		{"Sequence < Mapping", FromSlice(nil), Mapping(), -1},

		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		{"Empty Sequence == Empty Sequence", FromSlice(nil), FromSlice(nil), 0},
		{"Short Sequence < Long Sequence",
			FromSlice([]*Node{FromString("1")}),
			FromSlice([]*Node{FromString("1"), FromString("2")}),
			-1},
		{"Sequence Item Comparison",
			FromSlice([]*Node{FromString("1")}),
			FromSlice([]*Node{FromString("2")}),
			-1},

		{"Empty Mapping == Empty Mapping", Mapping(), Mapping(), 0},
		{"Short Mapping < Long Mapping",
			kvs("a", FromString("1")),
			kvs("a", FromString("1"), "b", FromString("2")),
			-1},
		{"Mapping Key Comparison",
			kvs("a", FromString("1")),
			kvs("b", FromString("1")),
			-1},
		{"Mapping Value Comparison",
			kvs("a", FromString("1")),
			kvs("a", FromString("2")),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqualIgnoresListItem(t *testing.T) {
	a := kvs("name", FromString("x"))
	b := a.Clone()
	b.ListItem = !a.ListItem
	if !Equal(a, b) {
		t.Errorf("ListItem should not affect equality")
	}
}
