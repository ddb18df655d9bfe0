// Package token reads fragment text into indented lines.
//
// [Lines] yields the non-blank lines of a fragment with their indentation
// depth, where a list marker counts as one nesting level. Malformed
// indentation and tab characters are reported as [*FormatError].
package token
