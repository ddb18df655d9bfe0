// Package eval provides placeholder substitution and variable expansion
// for fragments.
//
// [Subst] is the ordered token to replacement mapping applied to scalar
// values while a fragment is parsed. [ExpandString] and [Cond] evaluate
// variables for the build layer which decides what a substitution maps
// to and which fragments take part.
//
// # Related Packages
//
//   - github.com/mschwehl/jenkins-k8sagent-lib-lb/parse - applies a Subst to scalars
//   - github.com/mschwehl/jenkins-k8sagent-lib-lb/dirbuild - builds Substs from variables
package eval
