// Package libdiff computes line diffs between documents.
//
// # Usage
//
//	lines := libdiff.Lines(before, after)
//	if libdiff.Changed(lines) {
//	    libdiff.Write(os.Stdout, lines, false)
//	}
//
//	// diff two trees by their encoded text
//	lines, err := libdiff.Nodes(base, composed)
//
// # Related Packages
//
//   - github.com/mschwehl/jenkins-k8sagent-lib-lb/encode - Encode IR to text
package libdiff
