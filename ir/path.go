package ir

import (
	"strconv"
	"strings"
)

// Walk calls f on y and its descendants in document order with the
// path of each node, "$" being y itself.
func (y *Node) Walk(f func(path string, y *Node) error) error {
	return y.walk("$", f)
}

func (y *Node) walk(path string, f func(string, *Node) error) error {
	if err := f(path, y); err != nil {
		return err
	}
	for i, v := range y.Values {
		var cPath string
		switch y.Type {
		case MappingType:
			cPath = FieldPath(path, v.Key)
		case SequenceType:
			cPath = path + "[" + strconv.Itoa(i) + "]"
		}
		if err := v.walk(cPath, f); err != nil {
			return err
		}
	}
	return nil
}

func FieldPath(prefix, f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return prefix + "." + f
	}
	return prefix + ".'" + strings.Replace(f, "'", "\\'", -1) + "'"
}
