package jsonptr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// TestHelper provides utilities for testing tree operations
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

func formatMsg(def string, msgAndArgs []any) string {
	if len(msgAndArgs) > 0 {
		return fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}
	return def
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := formatMsg("Values are not equal", msgAndArgs)
		h.t.Errorf("%s\nExpected: %v (%T)\nActual: %v (%T)", msg, expected, expected, actual, actual)
	}
}

// AssertJSON checks that a node renders to the same tree as expected JSON
func (h *TestHelper) AssertJSON(expected string, actual *Node, msgAndArgs ...any) {
	h.t.Helper()
	want, err := ParseString(expected)
	if err != nil {
		h.t.Fatalf("bad expected JSON %q: %v", expected, err)
	}
	if !want.Equal(actual) {
		msg := formatMsg("Trees are not equal", msgAndArgs)
		h.t.Errorf("%s\nExpected: %s\nActual: %s", msg, want, actual)
	}
}

// AssertNoError checks that error is nil
func (h *TestHelper) AssertNoError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err != nil {
		h.t.Errorf("%s, but got: %v", formatMsg("Expected no error", msgAndArgs), err)
	}
}

// AssertError checks that error is not nil
func (h *TestHelper) AssertError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		h.t.Error(formatMsg("Expected an error", msgAndArgs) + ", but got nil")
	}
}

// AssertErrorIs checks that err matches target with errors.Is
func (h *TestHelper) AssertErrorIs(err, target error, msgAndArgs ...any) {
	h.t.Helper()
	if !errors.Is(err, target) {
		h.t.Errorf("%s\nExpected: %v\nActual: %v", formatMsg("Unexpected error", msgAndArgs), target, err)
	}
}

// AssertErrorContains checks that error contains specific text
func (h *TestHelper) AssertErrorContains(err error, contains string, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		h.t.Error(formatMsg("Expected an error", msgAndArgs) + ", but got nil")
		return
	}
	if !strings.Contains(err.Error(), contains) {
		msg := formatMsg(fmt.Sprintf("Expected error to contain '%s'", contains), msgAndArgs)
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertPanic checks that function panics
func (h *TestHelper) AssertPanic(fn func(), msgAndArgs ...any) {
	h.t.Helper()
	defer func() {
		if r := recover(); r == nil {
			h.t.Error(formatMsg("Expected function to panic", msgAndArgs) + ", but it didn't")
		}
	}()
	fn()
}

// AssertTrue checks that condition is true
func (h *TestHelper) AssertTrue(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	if !condition {
		h.t.Error(formatMsg("Expected condition to be true", msgAndArgs))
	}
}

// AssertFalse checks that condition is false
func (h *TestHelper) AssertFalse(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	if condition {
		h.t.Error(formatMsg("Expected condition to be false", msgAndArgs))
	}
}

// mustParse parses JSON or fails the test
func mustParse(t *testing.T, s string) *Node {
	t.Helper()
	n, err := ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

// newQuietMapper returns a mapper that does not log
func newQuietMapper(t *testing.T, cfg ...*Config) *Mapper {
	t.Helper()
	m := New(cfg...)
	m.SetLogger(nil)
	t.Cleanup(func() { m.Close() })
	return m
}

// ConcurrencyTester runs an operation from several goroutines
type ConcurrencyTester struct {
	t           *testing.T
	concurrency int
	iterations  int
}

// NewConcurrencyTester creates a new concurrency tester
func NewConcurrencyTester(t *testing.T, concurrency, iterations int) *ConcurrencyTester {
	return &ConcurrencyTester{
		t:           t,
		concurrency: concurrency,
		iterations:  iterations,
	}
}

// Run runs concurrent test operations
func (ct *ConcurrencyTester) Run(operation func(workerID, iteration int) error) {
	ct.t.Helper()

	done := make(chan error, ct.concurrency)

	for i := 0; i < ct.concurrency; i++ {
		go func(workerID int) {
			for j := 0; j < ct.iterations; j++ {
				if err := operation(workerID, j); err != nil {
					done <- fmt.Errorf("worker %d, iteration %d: %w", workerID, j, err)
					return
				}
			}
			done <- nil
		}(i)
	}

	for i := 0; i < ct.concurrency; i++ {
		if err := <-done; err != nil {
			ct.t.Errorf("Concurrent operation failed: %v", err)
		}
	}
}
