package jsonptr

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// ToNode converts an arbitrary value to a node. It never fails: a value
// that cannot be represented is logged and replaced by an explicit null.
//
// nil becomes null, strings, booleans, integers and finite floats map to the
// matching scalar, a *Node is installed as is, and time values render as
// strings in the configured zone. Everything else goes through
// encoding/json.
func (m *Mapper) ToNode(value any) *Node {
	n, err := m.convertValue(value)
	if err != nil {
		m.reportCoercion(value, err)
		return NewNull()
	}
	return n
}

// convertValue is the strict form of ToNode
func (m *Mapper) convertValue(value any) (*Node, error) {
	switch v := value.(type) {
	case nil:
		return NewNull(), nil
	case *Node:
		if v == nil {
			return NewNull(), nil
		}
		if v.IsMissing() {
			return nil, coercionError(value, "the missing sentinel cannot be stored")
		}
		return v, nil
	case Node:
		if v.IsMissing() {
			return nil, coercionError(value, "the missing sentinel cannot be stored")
		}
		return v.Clone(), nil
	case string:
		return NewString(v), nil
	case bool:
		return NewBool(v), nil
	case int:
		return NewInt(int64(v)), nil
	case int8:
		return NewInt(int64(v)), nil
	case int16:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint:
		return NewUint(uint64(v)), nil
	case uint8:
		return NewUint(uint64(v)), nil
	case uint16:
		return NewUint(uint64(v)), nil
	case uint32:
		return NewUint(uint64(v)), nil
	case uint64:
		return NewUint(v), nil
	case float32:
		return floatNode(value, float64(v))
	case float64:
		return floatNode(value, v)
	case json.Number:
		if !isNumberLiteral(v.String()) {
			return nil, coercionError(value, "invalid number literal '"+v.String()+"'")
		}
		return NewNumber(v.String()), nil
	case json.RawMessage:
		n, err := Parse(v)
		if err != nil {
			return nil, coercionError(value, err.Error())
		}
		return n, nil
	case time.Time:
		return NewString(v.In(m.config.Location()).Format(m.config.DateTimeLayout)), nil
	case DateTime:
		return NewString(v.In(m.config.Location()).Format(m.config.DateTimeLayout)), nil
	case Date:
		return NewString(v.In(m.config.Location()).Format(m.config.DateLayout)), nil
	case map[string]any:
		// Sorted like encoding/json so output is stable
		obj := NewObject()
		for _, key := range slices.Sorted(maps.Keys(v)) {
			child, err := m.convertValue(v[key])
			if err != nil {
				return nil, err
			}
			obj.Put(key, child)
		}
		return obj, nil
	case []any:
		arr := NewArray()
		for _, item := range v {
			child, err := m.convertValue(item)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
		}
		return arr, nil
	default:
		return m.convertViaJSON(value)
	}
}

// convertViaJSON serializes structured values with encoding/json and
// reads the result back as a tree
func (m *Mapper) convertViaJSON(value any) (*Node, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, coercionError(value, err.Error())
	}
	n, err := Parse(data)
	if err != nil {
		return nil, coercionError(value, err.Error())
	}
	return n, nil
}

// isNumberLiteral reports whether s is exactly one JSON number
func isNumberLiteral(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	if c := s[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(s))
}

func floatNode(value any, f float64) (*Node, error) {
	n := NewFloat(f)
	if n == nil {
		return nil, coercionError(value, fmt.Sprintf("%v has no JSON form", f))
	}
	return n, nil
}

func coercionError(value any, message string) error {
	return &PointerError{
		Op:      "to_node",
		Message: fmt.Sprintf("%T: %s", value, message),
		Err:     ErrCoercion,
	}
}
