package parse

import (
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/token"
)

var (
	ErrFormat = token.ErrFormat
)

func formatErr(err error, ln *token.Line) error {
	return token.NewFormatErr(err, ln.Pos)
}
