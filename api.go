package jsonptr

import (
	"context"
)

// Get returns the node at pointer inside root, or the missing sentinel
func Get(root *Node, pointer string) *Node {
	return getDefaultMapper().Get(root, pointer)
}

// Set writes value at pointer inside root, creating missing containers,
// and reports success
func Set(root *Node, pointer string, value any) bool {
	return getDefaultMapper().Set(root, pointer, value)
}

// SetE is like Set but returns the classified failure
func SetE(root *Node, pointer string, value any) error {
	return getDefaultMapper().SetE(root, pointer, value)
}

// ToNode converts a value to a node, degrading to null when it cannot
func ToNode(value any) *Node {
	return getDefaultMapper().ToNode(value)
}

// Exists reports whether pointer resolves to a node, null included
func Exists(root *Node, pointer string) bool {
	return !Get(root, pointer).IsMissing()
}

// ReadTree parses a JSON string into a tree
func ReadTree(jsonStr string) (*Node, error) {
	return getDefaultMapper().ReadTree(jsonStr)
}

// ReadTreeFile reads a JSON or YAML file into a tree
func ReadTreeFile(filePath string) (*Node, error) {
	return getDefaultMapper().ReadTreeFile(filePath)
}

// Encode renders v as compact JSON
func Encode(v any) (string, error) {
	return getDefaultMapper().Encode(v)
}

// Decode unmarshals a JSON string into v
func Decode(jsonStr string, v any) error {
	return getDefaultMapper().Decode(jsonStr, v)
}

// Convert copies src into dst through the tree form
func Convert(src, dst any) error {
	return getDefaultMapper().Convert(src, dst)
}

// Query returns the live nodes matched by a JSONPath expression
func Query(root *Node, expr string) ([]*Node, error) {
	return getDefaultMapper().Query(root, expr)
}

// QueryPointers returns the JSON Pointers matched by a JSONPath expression
func QueryPointers(root *Node, expr string) ([]string, error) {
	return getDefaultMapper().QueryPointers(root, expr)
}

// SetAll writes value at every JSONPath match and returns the write count
func SetAll(root *Node, expr string, value any) (int, error) {
	return getDefaultMapper().SetAll(root, expr, value)
}

// ApplyBatch applies ops to every document
func ApplyBatch(ctx context.Context, docs []*Node, ops []Operation) ([]BatchResult, error) {
	return getDefaultMapper().ApplyBatch(ctx, docs, ops)
}

// GetStats returns the counters of the global mapper
func GetStats() Stats {
	return getDefaultMapper().Stats()
}
