package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type substTest struct {
	in, out string
}

func TestSubstApply(t *testing.T) {
	s := NewSubst(
		Pair{Token: "__TAG__", Value: "13.0.0"},
		Pair{Token: "__REPO__", Value: "registry/__TAG__"},
	)
	tests := []substTest{
		{in: "repo/app:__TAG__", out: "repo/app:13.0.0"},
		{in: "no tokens here", out: "no tokens here"},
		{in: "__TAG__-__TAG__", out: "13.0.0-13.0.0"},
		{in: "__REPO__/x", out: "registry/__TAG__/x"},
		{in: "__OTHER__", out: "__OTHER__"},
		{in: "", out: ""},
	}
	for _, tc := range tests {
		if got := s.Apply(tc.in); got != tc.out {
			t.Errorf("Apply(%q) = %q want %q", tc.in, got, tc.out)
		}
	}
}

func TestSubstOrder(t *testing.T) {
	s := NewSubst(Pair{Token: "AB", Value: "1"}, Pair{Token: "A", Value: "2"})
	if got := s.Apply("ABA"); got != "12" {
		t.Errorf("got %q want %q", got, "12")
	}
	s = NewSubst(Pair{Token: "A", Value: "2"}, Pair{Token: "AB", Value: "1"})
	if got := s.Apply("ABA"); got != "2B2" {
		t.Errorf("got %q want %q", got, "2B2")
	}
}

func TestSubstMappingOrderOverlap(t *testing.T) {
	s := NewSubst(Pair{Token: "BC", Value: "y"}, Pair{Token: "AB", Value: "x"})
	if got := s.Apply("ABC"); got != "Ay" {
		t.Errorf("got %q want %q", got, "Ay")
	}
	s = NewSubst(Pair{Token: "AB", Value: "x"}, Pair{Token: "BC", Value: "y"})
	if got := s.Apply("ABC"); got != "xC" {
		t.Errorf("got %q want %q", got, "xC")
	}
}

func TestSubstNoRescan(t *testing.T) {
	s := NewSubst(Pair{Token: "A", Value: "B"}, Pair{Token: "B", Value: "C"})
	if got := s.Apply("AB"); got != "BC" {
		t.Errorf("got %q want %q", got, "BC")
	}
	s = NewSubst(Pair{Token: "A", Value: "xAx"})
	if got := s.Apply("AA"); got != "xAxxAx" {
		t.Errorf("got %q want %q", got, "xAxxAx")
	}
}

func TestSubstEmpty(t *testing.T) {
	var s *Subst
	if got := s.Apply("__TAG__"); got != "__TAG__" {
		t.Errorf("nil subst changed input: %q", got)
	}
	s = NewSubst(Pair{Token: "", Value: "x"})
	if s.Len() != 0 {
		t.Errorf("empty token was added")
	}
	if got := s.Apply("abc"); got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestSubstAddAgain(t *testing.T) {
	s := NewSubst(Pair{Token: "a", Value: "1"}, Pair{Token: "b", Value: "2"})
	s.Apply("a")
	s.Add("a", "3")
	want := []Pair{{Token: "a", Value: "3"}, {Token: "b", Value: "2"}}
	if diff := cmp.Diff(want, s.Pairs()); diff != "" {
		t.Errorf("pairs (-want +got):\n%s", diff)
	}
	if got := s.Apply("ab"); got != "32" {
		t.Errorf("got %q want %q", got, "32")
	}
}

func TestParseSubst(t *testing.T) {
	s, err := ParseSubst([]string{"__TAG__=13.0.0", "__X__=a=b"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{Token: "__TAG__", Value: "13.0.0"}, {Token: "__X__", Value: "a=b"}}
	if diff := cmp.Diff(want, s.Pairs()); diff != "" {
		t.Errorf("pairs (-want +got):\n%s", diff)
	}
	for _, bad := range []string{"novalue", "=x"} {
		if _, err := ParseSubst([]string{bad}); !errors.Is(err, ErrSubst) {
			t.Errorf("%q: got %v want ErrSubst", bad, err)
		}
	}
}

func TestExpandString(t *testing.T) {
	tests := []substTest{
		{in: "abc", out: "abc"},
		{in: "$[", out: "$["},
		{in: "$[x]", out: "X"},
		{in: " $[x]", out: " X"},
		{in: "$[x", out: "$[x"},
		{in: "some $[stuff] $[here]", out: "some STUFF HERE"},
		{in: "some $[ stuff ] $[here] trailing", out: "some STUFF HERE trailing"},
		{in: "$abc", out: "$abc"},
		{in: "v$[major].$[minor]", out: "v13.0"},
		{in: `$["a\]b"]`, out: "a]b"},
		{in: "$[debug]", out: "false"},
	}
	env := Env{
		"x":     "X",
		"stuff": "STUFF",
		"here":  "HERE",
		"major": 13,
		"minor": 0,
		"debug": false,
	}
	for _, tc := range tests {
		got, err := ExpandString(tc.in, env)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.out {
			t.Errorf("got %q want %q", got, tc.out)
		}
	}
}

func TestExpandStringUndefined(t *testing.T) {
	_, err := ExpandString("$[missing]", Env{"x": "X"})
	if !errors.Is(err, ErrExpr) {
		t.Errorf("got %v want ErrExpr", err)
	}
}

func TestCond(t *testing.T) {
	env := Env{"debug": true, "browser": "chrome"}
	tests := []struct {
		cond string
		want bool
	}{
		{cond: "", want: true},
		{cond: "debug", want: true},
		{cond: "!debug", want: false},
		{cond: `browser == "chrome" && debug`, want: true},
		{cond: `browser in ["firefox", "edge"]`, want: false},
	}
	for _, tc := range tests {
		got, err := Cond(tc.cond, env)
		if err != nil {
			t.Errorf("%q: %v", tc.cond, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Cond(%q) = %v want %v", tc.cond, got, tc.want)
		}
	}
	if _, err := Cond(`browser`, env); !errors.Is(err, ErrExpr) {
		t.Errorf("non-bool condition: got %v want ErrExpr", err)
	}
}
