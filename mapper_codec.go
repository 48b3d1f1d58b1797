package jsonptr

import (
	"context"
	"encoding/json"
	"strings"
)

// ReadTree parses a JSON string into a tree
func (m *Mapper) ReadTree(jsonStr string) (*Node, error) {
	if err := m.checkClosed(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(jsonStr) == "" {
		return nil, newOperationError("read_tree", "input is empty", ErrInvalidJSON)
	}

	n, err := ParseString(jsonStr)
	if err != nil {
		m.logError(context.Background(), "read_tree", "", err)
		return nil, err
	}
	return n, nil
}

// IsContainerJSON reports whether s parses as a JSON object or array
func (m *Mapper) IsContainerJSON(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	n, err := ParseString(s)
	return err == nil && n.IsContainer()
}

// Decode unmarshals a JSON string into v. Unknown object members are ignored.
func (m *Mapper) Decode(jsonStr string, v any) error {
	if err := m.checkClosed(); err != nil {
		return err
	}
	if strings.TrimSpace(jsonStr) == "" {
		return newOperationError("decode", "input is empty", ErrInvalidJSON)
	}

	if err := json.Unmarshal([]byte(jsonStr), v); err != nil {
		wrapped := &PointerError{Op: "decode", Message: err.Error(), Err: ErrInvalidJSON}
		m.logError(context.Background(), "decode", "", wrapped)
		return wrapped
	}
	return nil
}

// Encode renders v as compact JSON. Values are converted the way ToNode
// converts them, so time values use the configured zone and layouts; unlike
// ToNode, a value that cannot be converted is an error.
func (m *Mapper) Encode(v any) (string, error) {
	if err := m.checkClosed(); err != nil {
		return "", err
	}

	n, err := m.convertValue(v)
	if err != nil {
		m.logError(context.Background(), "encode", "", err)
		return "", err
	}
	b, err := Marshal(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Convert copies src into dst through the tree form, e.g. a struct into a
// map or a *Node into a struct
func (m *Mapper) Convert(src, dst any) error {
	if err := m.checkClosed(); err != nil {
		return err
	}

	n, err := m.convertValue(src)
	if err != nil {
		return err
	}
	b, err := Marshal(n)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return &PointerError{Op: "convert", Message: err.Error(), Err: ErrInvalidJSON}
	}
	return nil
}
