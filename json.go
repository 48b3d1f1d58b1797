package jsonptr

import (
	"sync"
	"sync/atomic"
)

var (
	defaultMapper   atomic.Pointer[Mapper]
	defaultMapperMu sync.Mutex
)

// getDefaultMapper returns the shared mapper, creating it on first use or
// after the previous one was closed
func getDefaultMapper() *Mapper {
	// Fast path: check if mapper exists and is not closed
	if m := defaultMapper.Load(); m != nil && !m.IsClosed() {
		return m
	}

	defaultMapperMu.Lock()
	defer defaultMapperMu.Unlock()

	// Double-check after acquiring lock
	if m := defaultMapper.Load(); m != nil && !m.IsClosed() {
		return m
	}

	m := New()
	defaultMapper.Store(m)
	return m
}

// SetGlobalMapper replaces the mapper used by package-level functions
func SetGlobalMapper(mapper *Mapper) {
	if mapper == nil {
		return
	}

	defaultMapperMu.Lock()
	defer defaultMapperMu.Unlock()

	if old := defaultMapper.Swap(mapper); old != nil && old != mapper {
		old.Close()
	}
}

// ShutdownGlobalMapper closes the global mapper; the next package-level call
// creates a fresh one
func ShutdownGlobalMapper() {
	defaultMapperMu.Lock()
	defer defaultMapperMu.Unlock()

	if old := defaultMapper.Swap(nil); old != nil {
		old.Close()
	}
}
