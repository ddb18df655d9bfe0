package k8sagent

import (
	"errors"
	"fmt"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"

	imageref "github.com/novln/docker-parser"
)

// CheckImages checks that every scalar field keyed "image" holds a valid
// container image reference. All invalid references are reported.
func CheckImages(node *ir.Node) error {
	var errs []error
	err := node.Walk(func(path string, n *ir.Node) error {
		if n.Key != "image" || n.Type != ir.ScalarType {
			return nil
		}
		if _, err := imageref.Parse(n.String); err != nil {
			errs = append(errs, fmt.Errorf("%w %q at %s: %w", ErrImage, n.String, path, err))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return errors.Join(errs...)
}
