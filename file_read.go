package jsonptr

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadTreeFile reads a file into a tree. Files ending in .yaml or .yml are
// read as YAML, anything else is streamed as JSON by ParseFile.
func (m *Mapper) ReadTreeFile(filePath string) (*Node, error) {
	if err := m.checkClosed(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(filePath) == "" {
		return nil, newOperationError("read_tree_file", "file path is empty", ErrInvalidPath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, &PointerError{
				Op:      "read_tree_file",
				Message: fmt.Sprintf("failed to read file %s", filePath),
				Err:     fmt.Errorf("read file error: %w", err),
			}
		}
		n, err := ParseYAML(data)
		if err != nil {
			m.logError(context.Background(), "read_tree_file", "", err)
			return nil, err
		}
		return n, nil
	}

	n, err := ParseFile(filePath)
	if err != nil {
		if errors.Is(err, ErrInvalidJSON) {
			m.logError(context.Background(), "read_tree_file", "", err)
		}
		return nil, err
	}
	return n, nil
}

// ParseFile streams a JSON file into a tree without loading the raw text
// into memory first
func ParseFile(filePath string) (*Node, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &PointerError{
			Op:      "parse_file",
			Message: fmt.Sprintf("failed to open file %s", filePath),
			Err:     fmt.Errorf("open file error: %w", err),
		}
	}
	defer f.Close()

	return ParseReader(bufio.NewReader(f))
}
