package jsonptr

import (
	"github.com/cybergodev/jsonptr/internal"
)

// lookup returns the node at pointer, or the missing sentinel. It never fails.
func lookup(root *Node, pointer string) *Node {
	if root.IsMissing() {
		return missingNode
	}

	current := root
	for _, segment := range ParsePointer(pointer) {
		current = childOf(current, segment)
		if current == nil {
			return missingNode
		}
	}
	return current
}

// childOf resolves one segment against a node.
// Objects match the segment as a literal key; arrays accept integer
// segments, negative ones counting from the end. Anything else is nil.
func childOf(node *Node, segment string) *Node {
	switch node.Kind() {
	case KindObject:
		return node.props[segment]
	case KindArray:
		index, ok := internal.ParseArrayIndex(segment)
		if !ok {
			return nil
		}
		index = internal.NormalizeIndex(index, len(node.elems))
		if !internal.InBounds(index, len(node.elems)) {
			return nil
		}
		return node.elems[index]
	case KindMissing, KindNull, KindBool, KindNumber, KindString:
		return nil
	default:
		return nil
	}
}
