package internal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector collects operation counters for a mapper
type MetricsCollector struct {
	totalOperations   int64
	successfulOps     int64
	failedOps         int64
	coercionFailures  int64
	containersCreated int64
	nullsPadded       int64
	errorsByType      sync.Map
	startTime         time.Time
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		startTime: time.Now(),
	}
}

// RecordOperation records a completed operation
func (mc *MetricsCollector) RecordOperation(success bool) {
	atomic.AddInt64(&mc.totalOperations, 1)

	if success {
		atomic.AddInt64(&mc.successfulOps, 1)
	} else {
		atomic.AddInt64(&mc.failedOps, 1)
	}
}

// RecordCoercionFailure records a value that degraded to null
func (mc *MetricsCollector) RecordCoercionFailure() {
	atomic.AddInt64(&mc.coercionFailures, 1)
}

// RecordGrowth records containers and null placeholders created by a write
func (mc *MetricsCollector) RecordGrowth(containers, nulls int) {
	if containers > 0 {
		atomic.AddInt64(&mc.containersCreated, int64(containers))
	}
	if nulls > 0 {
		atomic.AddInt64(&mc.nullsPadded, int64(nulls))
	}
}

// RecordError records an error by type
func (mc *MetricsCollector) RecordError(errorType string) {
	actual, _ := mc.errorsByType.LoadOrStore(errorType, new(int64))
	counter := actual.(*int64)
	atomic.AddInt64(counter, 1)
}

// GetMetrics returns a snapshot of the counters
func (mc *MetricsCollector) GetMetrics() Metrics {
	errorsByType := make(map[string]int64)
	mc.errorsByType.Range(func(key, value any) bool {
		if k, ok := key.(string); ok {
			if v, ok := value.(*int64); ok {
				errorsByType[k] = atomic.LoadInt64(v)
			}
		}
		return true
	})

	return Metrics{
		TotalOperations:   atomic.LoadInt64(&mc.totalOperations),
		SuccessfulOps:     atomic.LoadInt64(&mc.successfulOps),
		FailedOps:         atomic.LoadInt64(&mc.failedOps),
		CoercionFailures:  atomic.LoadInt64(&mc.coercionFailures),
		ContainersCreated: atomic.LoadInt64(&mc.containersCreated),
		NullsPadded:       atomic.LoadInt64(&mc.nullsPadded),
		Uptime:            time.Since(mc.startTime),
		ErrorsByType:      errorsByType,
	}
}

// Reset resets all metrics
func (mc *MetricsCollector) Reset() {
	atomic.StoreInt64(&mc.totalOperations, 0)
	atomic.StoreInt64(&mc.successfulOps, 0)
	atomic.StoreInt64(&mc.failedOps, 0)
	atomic.StoreInt64(&mc.coercionFailures, 0)
	atomic.StoreInt64(&mc.containersCreated, 0)
	atomic.StoreInt64(&mc.nullsPadded, 0)
	mc.errorsByType.Range(func(key, _ any) bool {
		mc.errorsByType.Delete(key)
		return true
	})
}

// GetSummary returns a formatted summary of metrics
func (mc *MetricsCollector) GetSummary() string {
	metrics := mc.GetMetrics()

	return fmt.Sprintf(`Metrics Summary:
  Operations: %d total (%d successful, %d failed)
  Coercion failures: %d
  Growth: %d containers created, %d nulls padded
  Uptime: %v`,
		metrics.TotalOperations,
		metrics.SuccessfulOps,
		metrics.FailedOps,
		metrics.CoercionFailures,
		metrics.ContainersCreated,
		metrics.NullsPadded,
		metrics.Uptime,
	)
}

// Metrics represents collected operation metrics
type Metrics struct {
	TotalOperations   int64            `json:"total_operations"`
	SuccessfulOps     int64            `json:"successful_ops"`
	FailedOps         int64            `json:"failed_ops"`
	CoercionFailures  int64            `json:"coercion_failures"`
	ContainersCreated int64            `json:"containers_created"`
	NullsPadded       int64            `json:"nulls_padded"`
	Uptime            time.Duration    `json:"uptime"`
	ErrorsByType      map[string]int64 `json:"errors_by_type"`
}
