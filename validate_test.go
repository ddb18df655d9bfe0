package k8sagent

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	for _, ok := range []string{"", "spec:", "spec:\n  containers:\n  - name: a\n    image: r/a:1\n"} {
		if err := Validate([]byte(ok)); err != nil {
			t.Errorf("%q: %v", ok, err)
		}
	}
	for _, bad := range []string{"- a\n- b\n", "a: [unclosed\n"} {
		if err := Validate([]byte(bad)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}
