package jsonptr

import (
	"errors"
	"fmt"

	"github.com/cybergodev/jsonptr/internal"
)

// setLimits bounds how much a single write may grow the tree
type setLimits struct {
	maxPathDepth   int
	maxArrayGrowth int
}

// growth counts the structure a write created, kept even when it fails
type growth struct {
	containers int
	nulls      int
}

// assign writes value at pointer inside root, creating missing intermediate
// containers. Containers created before a failing step stay in the tree.
func assign(root *Node, pointer string, value *Node, limits setLimits) (growth, error) {
	var g growth

	if !root.IsContainer() {
		return g, newSetError(pointer, "", fmt.Sprintf("cannot write into a %s root", root.Kind()), ErrInvalidRoot)
	}

	segments := ParsePointer(pointer)
	if len(segments) == 0 {
		// The root's kind cannot change, so writing the root empties it
		root.Clear()
		return g, nil
	}
	if limits.maxPathDepth > 0 && len(segments) > limits.maxPathDepth {
		return g, newSetError(pointer, "", fmt.Sprintf("depth %d exceeds limit %d", len(segments), limits.maxPathDepth), ErrInvalidPath)
	}

	last := len(segments) - 1
	current := root
	for i, segment := range segments[:last] {
		child, err := descend(current, segment, segments[i+1], limits, &g)
		if err != nil {
			var pe *PointerError
			if errors.As(err, &pe) {
				pe.Pointer = pointer
			}
			return g, err
		}
		current = child
	}

	if value.IsContainer() && value.reaches(current) {
		return g, newSetError(pointer, segments[last], "value contains the container it would be written into", ErrPathMalformed)
	}

	if err := put(current, segments[last], value); err != nil {
		var pe *PointerError
		if errors.As(err, &pe) {
			pe.Pointer = pointer
		}
		return g, err
	}
	return g, nil
}

// descend returns the container named by segment under parent, creating it
// when absent. next decides the kind of a created container.
func descend(parent *Node, segment, next string, limits setLimits, g *growth) (*Node, error) {
	switch parent.Kind() {
	case KindObject:
		child, exists := parent.props[segment]
		if !exists {
			created := containerFor(next)
			parent.Put(segment, created)
			g.containers++
			return created, nil
		}
		if !child.IsContainer() {
			return nil, newSetError("", segment, fmt.Sprintf("member holds a %s, not a container", child.Kind()), ErrPathMalformed)
		}
		return child, nil

	case KindArray:
		index, ok := internal.ParseArrayIndex(segment)
		if !ok {
			return nil, newSetError("", segment, "array requires an integer segment", ErrPathMalformed)
		}
		length := len(parent.elems)
		index = internal.NormalizeIndex(index, length)
		if index < 0 {
			return nil, newSetError("", segment, fmt.Sprintf("index resolves to %d for length %d", index, length), ErrIndexOutOfRange)
		}
		if index >= length {
			if padding := index - length; padding > limits.maxArrayGrowth && limits.maxArrayGrowth > 0 {
				return nil, newSetError("", segment, fmt.Sprintf("padding %d exceeds limit %d", padding, limits.maxArrayGrowth), ErrIndexOutOfRange)
			}
			// The slot at index is overwritten below, the rest stay null
			g.nulls += parent.padTo(index+1) - 1
		}

		child := parent.elems[index]
		if child.IsNull() {
			created := containerFor(next)
			parent.elems[index] = created
			g.containers++
			return created, nil
		}
		if !child.IsContainer() {
			return nil, newSetError("", segment, fmt.Sprintf("element holds a %s, not a container", child.Kind()), ErrPathMalformed)
		}
		return child, nil

	case KindMissing, KindNull, KindBool, KindNumber, KindString:
		return nil, newSetError("", segment, fmt.Sprintf("cannot descend into a %s", parent.Kind()), ErrPathMalformed)
	default:
		return nil, newSetError("", segment, "unknown node kind", ErrPathMalformed)
	}
}

// put stores value under the final segment of the pointer.
// Arrays accept an existing index (negative counts from the end) or exactly
// the length, which appends. Larger indexes are refused.
func put(parent *Node, segment string, value *Node) error {
	switch parent.Kind() {
	case KindObject:
		parent.Put(segment, value)
		return nil

	case KindArray:
		index, ok := internal.ParseArrayIndex(segment)
		if !ok {
			return newSetError("", segment, "array requires an integer segment", ErrPathMalformed)
		}
		length := len(parent.elems)
		index = internal.NormalizeIndex(index, length)
		switch {
		case index < 0 || index > length:
			return newSetError("", segment, fmt.Sprintf("index %d outside [0, %d]", index, length), ErrIndexOutOfRange)
		case index == length:
			parent.Append(value)
		default:
			parent.SetIndex(index, value)
		}
		return nil

	case KindMissing, KindNull, KindBool, KindNumber, KindString:
		return newSetError("", segment, fmt.Sprintf("cannot write into a %s", parent.Kind()), ErrPathMalformed)
	default:
		return newSetError("", segment, "unknown node kind", ErrPathMalformed)
	}
}

// containerFor picks the container created ahead of next: an array when
// next is a non-negative index, an object otherwise
func containerFor(next string) *Node {
	if internal.IsNonNegativeIndex(next) {
		return NewArray()
	}
	return NewObject()
}
