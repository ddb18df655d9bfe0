// Package encode renders IR nodes as fragment text or JSON.
//
// # Usage
//
//	// render as fragment text
//	err := encode.Encode(node, os.Stdout)
//
//	// render as JSON, mapping order kept
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
//	// with terminal colors
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Fragment text uses 2 spaces per level and puts list markers at the
// indentation of the enclosing key, so output parses back into an equal
// tree. An empty list item is written as a bare "-". A list directly inside
// a list has no text form and fails with ErrEncoding.
//
// # Related Packages
//
//   - github.com/mschwehl/jenkins-k8sagent-lib-lb/parse - Parse text to IR
//   - github.com/mschwehl/jenkins-k8sagent-lib-lb/format - Output formats
package encode
