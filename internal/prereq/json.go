package prereq

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire shape: a Leaf is a bare string, And/Or are {"and": [...]} / {"or": [...]}
// and Empty is null.

func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ID)
}

func (a And) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Node{"and": a.Children})
}

func (o Or) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Node{"or": o.Children})
}

func (Empty) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Marshal encodes n in the wire shape. A nil node encodes as null.
func Marshal(n Node) ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n)
}

// Decode parses the wire shape back into a tree. Unary and/or groups collapse
// and a bare array is read as an implicit AND.
func Decode(raw []byte) (Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Empty{}, nil
	}

	switch raw[0] {
	case '"':
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, fmt.Errorf("decode leaf: %w", err)
		}
		return Leaf{ID: id}, nil
	case '[':
		children, err := decodeChildren(raw)
		if err != nil {
			return nil, err
		}
		return NewAnd(children...), nil
	case '{':
		var group map[string]json.RawMessage
		if err := json.Unmarshal(raw, &group); err != nil {
			return nil, fmt.Errorf("decode group: %w", err)
		}
		if len(group) != 1 {
			return nil, fmt.Errorf("decode group: expected exactly one of and/or, got %d keys", len(group))
		}
		for op, body := range group {
			children, err := decodeChildren(body)
			if err != nil {
				return nil, err
			}
			switch op {
			case "and":
				return NewAnd(children...), nil
			case "or":
				return NewOr(children...), nil
			default:
				return nil, fmt.Errorf("decode group: unknown operator %q", op)
			}
		}
	}
	return nil, fmt.Errorf("decode tree: unexpected value %s", raw)
}

func decodeChildren(raw []byte) ([]Node, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode children: %w", err)
	}
	children := make([]Node, 0, len(items))
	for _, item := range items {
		child, err := Decode(item)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
