package k8sagent

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Validate checks that text decodes as a YAML mapping, which is what the
// consumer of a composed document reads it as.
func Validate(text []byte) error {
	var v any
	if err := yaml.Unmarshal(text, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if v == nil {
		return nil
	}
	if _, ok := v.(map[string]any); !ok {
		return fmt.Errorf("%w: document is a %T, not a mapping", ErrInvalid, v)
	}
	return nil
}
