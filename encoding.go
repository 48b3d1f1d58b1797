package jsonptr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse builds a tree from JSON text
func Parse(data []byte) (*Node, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseString builds a tree from a JSON string
func ParseString(s string) (*Node, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader streams one JSON value from r into a tree. Anything other
// than whitespace after the value is rejected.
func ParseReader(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	root, err := decodeValue(dec)
	if err != nil {
		return nil, &PointerError{Op: "parse", Message: err.Error(), Err: ErrInvalidJSON}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &PointerError{Op: "parse", Message: "unexpected data after top-level value", Err: ErrInvalidJSON}
	}
	return root, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(v), nil
	case string:
		return NewString(v), nil
	case json.Number:
		return NewNumber(v.String()), nil
	case json.Delim:
		switch v {
		case '[':
			arr := NewArray()
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.elems = append(arr.elems, elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				value, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Put(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// Marshal renders the tree as compact JSON. The missing sentinel cannot be
// rendered.
func Marshal(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNode(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but applies Indent to format the output
func MarshalIndent(n *Node, prefix, indent string) ([]byte, error) {
	b, err := Marshal(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler
func (n *Node) MarshalJSON() ([]byte, error) {
	return Marshal(n)
}

// UnmarshalJSON implements json.Unmarshaler, replacing n's content.
// The missing sentinel returned by failed reads cannot be overwritten.
func (n *Node) UnmarshalJSON(data []byte) error {
	if n == missingNode {
		return &PointerError{Op: "unmarshal", Message: "cannot decode into the missing sentinel", Err: ErrInvalidRoot}
	}
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

func writeNode(buf *bytes.Buffer, n *Node) error {
	switch n.Kind() {
	case KindMissing:
		return &PointerError{Op: "marshal", Message: "missing node has no JSON form", Err: ErrInvalidJSON}
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if n.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(n.s)
	case KindString:
		writeString(buf, n.s)
	case KindArray:
		buf.WriteByte('[')
		for i, e := range n.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNode(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			if err := writeNode(buf, n.props[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// writeString delegates escaping to encoding/json; a string always encodes
func writeString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}
