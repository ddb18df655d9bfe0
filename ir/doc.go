// Package ir provides the document tree for k8s agent pod fragments.
//
// # Overview
//
// Every fragment, whether parsed from text, merged from other trees or
// decoded from JSON, is represented as an ir.Node tree. The tree is a
// recursive tagged union: the Type field says which payload is active.
//
//   - ScalarType: an opaque string under String
//   - MappingType: ordered entries under Values, each carrying its Key
//   - SequenceType: ordered items under Values, with empty keys
//
// Scalars are never typed further: "13.0.0", "true" and "1" are all
// strings, which is what the markup subset can express.
//
// # Structure Constraints
//
// Mapping keys are unique. Set replaces an existing key in place, so the
// position of a key is that of its first insertion.
//
// Sequence items are scalars or non-empty mappings. Mapping items carry
// the ListItem flag, set by Append and FromSlice, which tells the encoder
// to render the first field inline after the list marker. A mapping item
// with a scalar "name" field has an identity used when merging lists.
//
// The root of a parsed document is always a mapping.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("tools")},
//	    {Key: "image", Val: ir.FromString("repo/tools:13.0.0")},
//	})
//	list := ir.FromSlice([]*ir.Node{obj})
//
// # Comparison
//
// Compare orders nodes structurally; Equal reports structural equality and
// ignores ListItem.
//
// # JSON Interoperability
//
// The IR itself marshals to JSON (MarshalJSON/UnmarshalJSON). ToJSON and
// FromJSON convert between the document value and JSON text keeping key
// order, and ToAny/FromAny convert to and from plain Go values.
//
// # Thread Safety
//
// Nodes are not synchronized. Clone a tree before handing it to another
// goroutine.
package ir
