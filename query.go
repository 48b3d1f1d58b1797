package jsonptr

import (
	"context"
	"fmt"
	"strings"

	"github.com/theory/jsonpath"
)

// QueryPointers evaluates an RFC 9535 JSONPath expression against root and
// returns the JSON Pointer of every match, in selection order. Matches under
// an empty member name are skipped since pointers cannot address them.
func (m *Mapper) QueryPointers(root *Node, expr string) ([]string, error) {
	if err := m.checkClosed(); err != nil {
		return nil, err
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, &PointerError{
			Op:      "query",
			Message: fmt.Sprintf("invalid JSONPath %s: %v", expr, err),
			Err:     ErrInvalidPath,
		}
	}
	if root.IsMissing() {
		return nil, nil
	}

	located := path.SelectLocated(root.Interface())
	pointers := make([]string, 0, len(located))
	for _, match := range located {
		pointer := match.Path.Pointer()
		if !addressable(pointer) {
			continue
		}
		pointers = append(pointers, pointer)
	}
	return pointers, nil
}

// Query returns the live nodes matched by a JSONPath expression. Mutating a
// returned container mutates root.
func (m *Mapper) Query(root *Node, expr string) ([]*Node, error) {
	pointers, err := m.QueryPointers(root, expr)
	if err != nil {
		return nil, err
	}

	nodes := make([]*Node, 0, len(pointers))
	for _, pointer := range pointers {
		if n := lookup(root, pointer); !n.IsMissing() {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// SetAll writes value at every location matched by a JSONPath expression
// and returns how many writes succeeded. Each match receives its own copy
// of the converted value. Matching the root itself empties it.
func (m *Mapper) SetAll(root *Node, expr string, value any) (int, error) {
	pointers, err := m.QueryPointers(root, expr)
	if err != nil {
		m.logError(context.Background(), "set_all", "", err)
		return 0, err
	}

	template := m.ToNode(value)
	written := 0
	for _, pointer := range pointers {
		if m.SetE(root, pointer, template.Clone()) == nil {
			written++
		}
	}
	return written, nil
}

// addressable reports whether pointer has no empty reference token
func addressable(pointer string) bool {
	return pointer == "" || !strings.Contains(pointer+"/", "//")
}
