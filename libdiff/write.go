package libdiff

import (
	"io"

	"github.com/fatih/color"
)

// Write prints lines prefixed with their op, colored when useColor is set.
func Write(w io.Writer, lines []Line, useColor bool) error {
	for _, ln := range lines {
		s := ln.Op.Prefix() + ln.Text
		if useColor {
			switch ln.Op {
			case Insert:
				s = color.GreenString("%s", s)
			case Delete:
				s = color.RedString("%s", s)
			}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
