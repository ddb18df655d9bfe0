package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/format"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
)

type EncState struct {
	indent int
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. In markup format, a mapping at level L puts
// its keys at column 2L and a list at level L puts its markers at column
// 2(L-1).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsJSON() {
		return encodeJSON(node, w, es)
	}
	var err error
	switch node.Type {
	case ir.MappingType:
		err = encodeMapping(node, w, 0, "", es)
	case ir.SequenceType:
		err = encodeSequence(node, w, 1, es)
	default:
		err = writeString(w, applyColor(es, ir.ScalarType, ValueColor, node.String)+"\n")
	}
	return err
}

// encodeMapping writes the fields of node at level. When first is not
// empty it replaces the indentation of the first line.
func encodeMapping(node *ir.Node, w io.Writer, level int, first string, es *EncState) error {
	pad := strings.Repeat(" ", es.indent*level)
	for i, field := range node.Values {
		prefix := pad
		if i == 0 && first != "" {
			prefix = first
		}
		if err := encodeField(field, w, level, prefix, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeField(field *ir.Node, w io.Writer, level int, prefix string, es *EncState) error {
	key := applyColor(es, field.Type, FieldColor, field.Key) + applyColor(es, field.Type, SepColor, ":")
	switch field.Type {
	case ir.ScalarType:
		if field.String == "" {
			return writeString(w, prefix+key+"\n")
		}
		return writeString(w, prefix+key+" "+applyColor(es, ir.ScalarType, ValueColor, field.String)+"\n")
	case ir.MappingType:
		if err := writeString(w, prefix+key+"\n"); err != nil {
			return err
		}
		return encodeMapping(field, w, level+1, "", es)
	case ir.SequenceType:
		if err := writeString(w, prefix+key+"\n"); err != nil {
			return err
		}
		return encodeSequence(field, w, level+1, es)
	default:
		return fmt.Errorf("%w: field %q has type %s", ErrEncoding, field.Key, field.Type)
	}
}

func encodeSequence(node *ir.Node, w io.Writer, level int, es *EncState) error {
	bare := strings.Repeat(" ", es.indent*(level-1)) + applyColor(es, ir.SequenceType, MarkerColor, "-")
	marker := bare + " "
	for i, item := range node.Values {
		switch {
		case item.Type == ir.ScalarType && item.String != "":
			if err := writeString(w, marker+applyColor(es, ir.ScalarType, ValueColor, item.String)+"\n"); err != nil {
				return err
			}
		case item.Type == ir.ScalarType || item.Type == ir.MappingType && len(item.Values) == 0:
			// read back as an empty mapping item
			if err := writeString(w, bare+"\n"); err != nil {
				return err
			}
		case item.Type == ir.MappingType:
			if err := encodeMapping(item, w, level, marker, es); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s at item %d", ErrEncoding, item.Type, i)
		}
	}
	return nil
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := ir.ToJSON(node)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
