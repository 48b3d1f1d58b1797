package jsonptr

import (
	"math"
	"strconv"
)

// Kind identifies the variant held by a Node
type Kind uint8

const (
	KindMissing Kind = iota // no node at the requested location
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is a mutable JSON tree node.
//
// Arrays and objects own their children; a node must not be installed in
// two places of the same tree. Scalars are replaced wholesale on write.
// Nodes are not safe for concurrent mutation.
//   - s: string value, or the literal text of a number
//   - elems: array elements
//   - keys/props: object members, keys in insertion order
type Node struct {
	kind  Kind
	b     bool
	s     string
	elems []*Node
	keys  []string
	props map[string]*Node
}

var missingNode = &Node{kind: KindMissing}

// Missing returns the read sentinel. It is distinct from an explicit null
// and no mutator or decoder writes through it.
func Missing() *Node { return missingNode }

// NewNull creates an explicit null node
func NewNull() *Node { return &Node{kind: KindNull} }

// NewBool creates a boolean node
func NewBool(b bool) *Node { return &Node{kind: KindBool, b: b} }

// NewString creates a string node
func NewString(s string) *Node { return &Node{kind: KindString, s: s} }

// NewInt creates a number node from an integer
func NewInt(i int64) *Node {
	return &Node{kind: KindNumber, s: strconv.FormatInt(i, 10)}
}

// NewUint creates a number node from an unsigned integer
func NewUint(u uint64) *Node {
	return &Node{kind: KindNumber, s: strconv.FormatUint(u, 10)}
}

// NewFloat creates a number node. NaN and infinities have no JSON form and
// yield nil.
func NewFloat(f float64) *Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &Node{kind: KindNumber, s: formatFloat(f)}
}

// NewNumber creates a number node from a JSON number literal. The literal is
// not validated; use it with text that came from a JSON decoder.
func NewNumber(literal string) *Node {
	return &Node{kind: KindNumber, s: literal}
}

// NewArray creates an array node holding elems. Nil elements become nulls.
func NewArray(elems ...*Node) *Node {
	n := &Node{kind: KindArray, elems: make([]*Node, 0, len(elems))}
	for _, e := range elems {
		n.Append(e)
	}
	return n
}

// NewObject creates an empty object node
func NewObject() *Node {
	return &Node{kind: KindObject, props: make(map[string]*Node)}
}

// formatFloat mirrors encoding/json float formatting
func formatFloat(f float64) string {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64)
}

// ─── type checks ───

// Kind returns the node kind; a nil node reports KindMissing
func (n *Node) Kind() Kind {
	if n == nil {
		return KindMissing
	}
	return n.kind
}

// IsMissing reports whether n is the read sentinel
func (n *Node) IsMissing() bool { return n.Kind() == KindMissing }

// IsNull reports whether n is an explicit JSON null
func (n *Node) IsNull() bool { return n.Kind() == KindNull }

// IsObject reports whether n is an object
func (n *Node) IsObject() bool { return n.Kind() == KindObject }

// IsArray reports whether n is an array
func (n *Node) IsArray() bool { return n.Kind() == KindArray }

// IsContainer reports whether n is an object or an array
func (n *Node) IsContainer() bool {
	k := n.Kind()
	return k == KindObject || k == KindArray
}

// ─── scalar access (type mismatch returns the zero value) ───

// Bool returns the boolean value
func (n *Node) Bool() bool {
	return n.Kind() == KindBool && n.b
}

// Text returns the string value, or the literal of a number
func (n *Node) Text() string {
	switch n.Kind() {
	case KindString, KindNumber:
		return n.s
	default:
		return ""
	}
}

// Int64 returns the number as int64. Fractional literals are truncated.
func (n *Node) Int64() (int64, bool) {
	if n.Kind() != KindNumber {
		return 0, false
	}
	if i, err := strconv.ParseInt(n.s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(n.s, 64)
	if err != nil || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Float64 returns the number as float64
func (n *Node) Float64() (float64, bool) {
	if n.Kind() != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ─── container access ───

// Len returns the number of elements or members; zero for scalars
func (n *Node) Len() int {
	switch n.Kind() {
	case KindArray:
		return len(n.elems)
	case KindObject:
		return len(n.keys)
	default:
		return 0
	}
}

// Index returns the array element at i, or nil when out of range
func (n *Node) Index(i int) *Node {
	if n.Kind() != KindArray || i < 0 || i >= len(n.elems) {
		return nil
	}
	return n.elems[i]
}

// Field returns the object member named key, or nil when absent
func (n *Node) Field(key string) *Node {
	if n.Kind() != KindObject {
		return nil
	}
	return n.props[key]
}

// Has reports whether the object has a member named key
func (n *Node) Has(key string) bool {
	if n.Kind() != KindObject {
		return false
	}
	_, ok := n.props[key]
	return ok
}

// Keys returns a copy of the object keys in insertion order
func (n *Node) Keys() []string {
	if n.Kind() != KindObject {
		return nil
	}
	keys := make([]string, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// Elements returns a copy of the array element slice
func (n *Node) Elements() []*Node {
	if n.Kind() != KindArray {
		return nil
	}
	elems := make([]*Node, len(n.elems))
	copy(elems, n.elems)
	return elems
}

// ─── container mutation ───

// Put upserts an object member, keeping the key's position when it already
// exists. A nil value is stored as null. Reports false when n is not an object.
func (n *Node) Put(key string, value *Node) bool {
	if n.Kind() != KindObject {
		return false
	}
	if value == nil {
		value = NewNull()
	}
	if _, exists := n.props[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.props[key] = value
	return true
}

// Remove deletes an object member and reports whether it existed
func (n *Node) Remove(key string) bool {
	if n.Kind() != KindObject {
		return false
	}
	if _, exists := n.props[key]; !exists {
		return false
	}
	delete(n.props, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// Append adds an element to an array. A nil value is stored as null.
func (n *Node) Append(value *Node) bool {
	if n.Kind() != KindArray {
		return false
	}
	if value == nil {
		value = NewNull()
	}
	n.elems = append(n.elems, value)
	return true
}

// SetIndex overwrites an existing array element
func (n *Node) SetIndex(i int, value *Node) bool {
	if n.Kind() != KindArray || i < 0 || i >= len(n.elems) {
		return false
	}
	if value == nil {
		value = NewNull()
	}
	n.elems[i] = value
	return true
}

// Clear removes every member or element, keeping the container kind
func (n *Node) Clear() bool {
	switch n.Kind() {
	case KindArray:
		n.elems = n.elems[:0]
		return true
	case KindObject:
		n.keys = n.keys[:0]
		n.props = make(map[string]*Node)
		return true
	default:
		return false
	}
}

// padTo appends null placeholders until the array holds length elements and
// returns how many were added
func (n *Node) padTo(length int) int {
	added := 0
	for len(n.elems) < length {
		n.elems = append(n.elems, NewNull())
		added++
	}
	return added
}

// ─── whole-tree helpers ───

// reaches reports whether target is n or lies anywhere below n
func (n *Node) reaches(target *Node) bool {
	stack := []*Node{n}
	seen := make(map[*Node]struct{})
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			return true
		}
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}
		switch cur.Kind() {
		case KindArray:
			stack = append(stack, cur.elems...)
		case KindObject:
			for _, child := range cur.props {
				stack = append(stack, child)
			}
		}
	}
	return false
}

// Equal reports deep equality. Numbers compare numerically when their
// literals differ; object member order is ignored.
func (n *Node) Equal(other *Node) bool {
	if n.Kind() != other.Kind() {
		return false
	}
	switch n.Kind() {
	case KindMissing, KindNull:
		return true
	case KindBool:
		return n.b == other.b
	case KindString:
		return n.s == other.s
	case KindNumber:
		if n.s == other.s {
			return true
		}
		a, okA := n.Float64()
		b, okB := other.Float64()
		return okA && okB && a == b
	case KindArray:
		if len(n.elems) != len(other.elems) {
			return false
		}
		for i := range n.elems {
			if !n.elems[i].Equal(other.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(n.keys) != len(other.keys) {
			return false
		}
		for _, k := range n.keys {
			ov, ok := other.props[k]
			if !ok || !n.props[k].Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy. Cloning the missing sentinel returns it.
func (n *Node) Clone() *Node {
	switch n.Kind() {
	case KindMissing:
		return missingNode
	case KindNull, KindBool, KindNumber, KindString:
		c := *n
		return &c
	case KindArray:
		c := &Node{kind: KindArray, elems: make([]*Node, len(n.elems))}
		for i, e := range n.elems {
			c.elems[i] = e.Clone()
		}
		return c
	case KindObject:
		c := &Node{
			kind:  KindObject,
			keys:  make([]string, len(n.keys)),
			props: make(map[string]*Node, len(n.props)),
		}
		copy(c.keys, n.keys)
		for k, v := range n.props {
			c.props[k] = v.Clone()
		}
		return c
	default:
		return missingNode
	}
}

// Interface converts the tree to plain Go values: map[string]any, []any,
// string, bool and nil. Numbers become int64 when the literal fits, float64
// otherwise. The missing sentinel yields nil.
func (n *Node) Interface() any {
	switch n.Kind() {
	case KindMissing, KindNull:
		return nil
	case KindBool:
		return n.b
	case KindString:
		return n.s
	case KindNumber:
		if i, err := strconv.ParseInt(n.s, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(n.s, 64)
		return f
	case KindArray:
		out := make([]any, len(n.elems))
		for i, e := range n.elems {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(n.props))
		for k, v := range n.props {
			out[k] = v.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders the node as compact JSON; the missing sentinel renders as
// an empty string
func (n *Node) String() string {
	if n.IsMissing() {
		return ""
	}
	b, err := Marshal(n)
	if err != nil {
		return ""
	}
	return string(b)
}
