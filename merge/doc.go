// Package merge folds one IR tree into another.
//
// Mappings merge key by key, base keys first. Two lists are joined with
// AppendLists, which merges mapping items sharing a "name" field and
// appends everything else. Any other collision keeps both values in a
// list, base first.
//
// Merge never modifies its inputs.
package merge
