package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
)

type irBase struct {
	Type     Type    `json:"type"`
	Key      string  `json:"key,omitempty"`
	ListItem bool    `json:"listItem,omitempty"`
	Values   []*Node `json:"values,omitempty"`
}

// MarshalJSON encodes the IR form of a node, which is itself a plain JSON
// object tree.
func (y *Node) MarshalJSON() ([]byte, error) {
	base := irBase{
		Type:     y.Type,
		Key:      y.Key,
		ListItem: y.ListItem,
		Values:   y.Values,
	}
	if y.Type == ScalarType {
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: base, String: y.String})
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Key = tmp.Key
	y.ListItem = tmp.ListItem
	y.String = tmp.String
	y.Values = tmp.Values
	switch y.Type {
	case ScalarType:
		if len(y.Values) != 0 {
			return fmt.Errorf("scalar with %d values", len(y.Values))
		}
	case MappingType:
		seen := make(map[string]bool, len(y.Values))
		for _, v := range y.Values {
			if seen[v.Key] {
				return fmt.Errorf("duplicate key %q", v.Key)
			}
			seen[v.Key] = true
		}
	}
	return nil
}

// ToAny converts a node to plain Go values: string, map[string]any and
// []any.
func ToAny(y *Node) any {
	switch y.Type {
	case MappingType:
		res := make(map[string]any, len(y.Values))
		for _, v := range y.Values {
			res[v.Key] = ToAny(v)
		}
		return res
	case SequenceType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	default:
		return y.String
	}
}

// FromAny converts plain Go values to a node. Map keys are sorted and
// non-string leaves are formatted with fmt.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case map[string]any:
		res := Mapping()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			child, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, child)
		}
		return res, nil
	case []any:
		res := Sequence()
		for i, item := range x {
			child, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			if err := checkItem(child); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			res.Append(child)
		}
		return res, nil
	case string:
		return FromString(x), nil
	case nil:
		return FromString("null"), nil
	default:
		return FromString(fmt.Sprint(x)), nil
	}
}

// ToJSON encodes the document value of y as JSON, keeping mapping order.
func ToJSON(y *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case ScalarType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case MappingType:
		buf.WriteByte('{')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(v.Key)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case SequenceType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("%w: type %s", ErrShape, y.Type)
	}
	return nil
}

// FromJSON decodes a JSON document value into a node, keeping object
// member order.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return res, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := Mapping()
			for dec.More() {
				kTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", kTok)
				}
				child, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := Sequence()
			for dec.More() {
				child, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				if err := checkItem(child); err != nil {
					return nil, fmt.Errorf("item %d: %w", len(res.Values), err)
				}
				res.Append(child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", x)
	case string:
		return FromString(x), nil
	case json.Number:
		return FromString(x.String()), nil
	case bool:
		return FromString(fmt.Sprint(x)), nil
	case nil:
		return FromString("null"), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// checkItem rejects sequence items the markup cannot render.
func checkItem(item *Node) error {
	switch item.Type {
	case SequenceType:
		return fmt.Errorf("%w: list directly inside a list", ErrShape)
	case MappingType:
		if len(item.Values) == 0 {
			return fmt.Errorf("%w: empty mapping inside a list", ErrShape)
		}
	}
	return nil
}
