package jsonptr

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// ParseYAML builds a tree from a YAML document. Mapping order is kept;
// non-string mapping keys are rendered with fmt.
func ParseYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, &PointerError{Op: "parse_yaml", Message: err.Error(), Err: ErrInvalidJSON}
	}

	n, err := fromYAML(v)
	if err != nil {
		return nil, &PointerError{Op: "parse_yaml", Message: err.Error(), Err: ErrInvalidJSON}
	}
	return n, nil
}

// MarshalYAML renders the tree as a YAML document with object keys in
// insertion order
func MarshalYAML(n *Node) ([]byte, error) {
	if n.IsMissing() {
		return nil, &PointerError{Op: "marshal_yaml", Message: "missing node has no YAML form", Err: ErrInvalidJSON}
	}
	out, err := yaml.Marshal(toYAML(n))
	if err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return out, nil
}

func fromYAML(v any) (*Node, error) {
	switch val := v.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(val), nil
	case string:
		return NewString(val), nil
	case int:
		return NewInt(int64(val)), nil
	case int64:
		return NewInt(val), nil
	case uint64:
		return NewUint(val), nil
	case float64:
		n := NewFloat(val)
		if n == nil {
			return nil, fmt.Errorf("number %v has no JSON form", val)
		}
		return n, nil
	case time.Time:
		return NewString(val.Format(time.RFC3339Nano)), nil
	case yaml.MapSlice:
		obj := NewObject()
		for _, item := range val {
			child, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Put(yamlKey(item.Key), child)
		}
		return obj, nil
	case map[string]any:
		obj := NewObject()
		for _, k := range slices.Sorted(maps.Keys(val)) {
			child, err := fromYAML(val[k])
			if err != nil {
				return nil, err
			}
			obj.Put(k, child)
		}
		return obj, nil
	case []any:
		arr := NewArray()
		for _, item := range val {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
		}
		return arr, nil
	default:
		return NewString(fmt.Sprint(val)), nil
	}
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func toYAML(n *Node) any {
	switch n.Kind() {
	case KindBool:
		return n.b
	case KindString:
		return n.s
	case KindNumber:
		if i, err := strconv.ParseInt(n.s, 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(n.s, 10, 64); err == nil {
			return u
		}
		if f, err := strconv.ParseFloat(n.s, 64); err == nil && !math.IsInf(f, 0) {
			return f
		}
		return n.s
	case KindArray:
		out := make([]any, len(n.elems))
		for i, e := range n.elems {
			out[i] = toYAML(e)
		}
		return out
	case KindObject:
		out := make(yaml.MapSlice, 0, len(n.keys))
		for _, k := range n.keys {
			out = append(out, yaml.MapItem{Key: k, Value: toYAML(n.props[k])})
		}
		return out
	default:
		return nil
	}
}
