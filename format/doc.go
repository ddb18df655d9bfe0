// Package format names the output formats of the encoder.
//
// Markup is the indentation based fragment format read by package parse;
// JSON is plain JSON with mapping order kept.
//
//	f, err := format.ParseFormat("json")
package format
