package jsonptr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/cybergodev/jsonptr/internal"
)

// Mapper carries the configuration shared by pointer operations: the time
// zone used for time values, growth limits, the diagnostic logger and
// metrics. The engine itself keeps no state between calls.
//
// A Mapper is safe for concurrent use; the trees it operates on are not.
type Mapper struct {
	config      *Config
	id          string
	metrics     *internal.MetricsCollector
	coercionLog *rate.Sometimes
	closed      atomic.Bool

	loggerMu sync.RWMutex
	logger   *slog.Logger
}

// Stats is a snapshot of a mapper's counters
type Stats struct {
	MapperID          string           `json:"mapper_id"`
	Closed            bool             `json:"closed"`
	TotalOperations   int64            `json:"total_operations"`
	SuccessfulOps     int64            `json:"successful_ops"`
	FailedOps         int64            `json:"failed_ops"`
	CoercionFailures  int64            `json:"coercion_failures"`
	ContainersCreated int64            `json:"containers_created"`
	NullsPadded       int64            `json:"nulls_padded"`
	Uptime            time.Duration    `json:"uptime"`
	ErrorsByType      map[string]int64 `json:"errors_by_type"`
}

// New creates a mapper with the given configuration.
// If no configuration is provided, uses default configuration.
// It panics when the configuration does not validate.
func New(config ...*Config) *Mapper {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	} else {
		cfg = DefaultConfig()
	}

	if err := ValidateConfig(cfg); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	m := &Mapper{
		config:      cfg,
		id:          uuid.NewString(),
		metrics:     internal.NewMetricsCollector(),
		coercionLog: &rate.Sometimes{First: CoercionLogFirst, Interval: CoercionLogInterval},
		logger:      slog.Default().With("component", "jsonptr-mapper"),
	}

	m.getLogger().Debug("mapper created",
		slog.String("mapper_id", m.id),
		slog.String("time_zone", cfg.TimeZone),
	)
	return m
}

// Get returns the node at pointer, or the missing sentinel when any step
// fails to resolve. It never mutates the tree.
func (m *Mapper) Get(root *Node, pointer string) *Node {
	if m.closed.Load() {
		return missingNode
	}
	return lookup(root, pointer)
}

// Set writes value at pointer inside root and reports success. See SetE.
func (m *Mapper) Set(root *Node, pointer string, value any) bool {
	return m.SetE(root, pointer, value) == nil
}

// SetE writes value at pointer inside root, creating missing intermediate
// containers. A created container is an array when the following segment is
// a non-negative index and an object otherwise.
//
// The root must be an object or an array. Writing the root pointer ("" or
// "/") empties it. On failure, containers created by earlier steps of the
// same call remain in the tree.
//
// A *Node value is installed as is. A value that contains the container it
// would be written into is refused with ErrPathMalformed, so a tree never
// holds itself. Writes longer than Config.MaxPathDepth segments fail with
// ErrInvalidPath.
func (m *Mapper) SetE(root *Node, pointer string, value any) error {
	if err := m.checkClosed(); err != nil {
		return err
	}

	start := time.Now()
	var err error
	var g growth
	if !root.IsContainer() {
		err = newSetError(pointer, "", fmt.Sprintf("cannot write into a %s root", root.Kind()), ErrInvalidRoot)
	} else {
		g, err = assign(root, pointer, m.ToNode(value), setLimits{
			maxPathDepth:   m.config.MaxPathDepth,
			maxArrayGrowth: m.config.MaxArrayGrowth,
		})
	}

	m.metrics.RecordGrowth(g.containers, g.nulls)
	m.metrics.RecordOperation(err == nil)
	if err != nil {
		m.metrics.RecordError(errorType(err))
		m.logError(context.Background(), "set", pointer, err)
		return err
	}
	m.logOperation(context.Background(), "set", pointer, time.Since(start))
	return nil
}

// CreateObject returns an empty object node
func (m *Mapper) CreateObject() *Node { return NewObject() }

// CreateArray returns an empty array node
func (m *Mapper) CreateArray() *Node { return NewArray() }

// Config returns the mapper configuration
func (m *Mapper) Config() *Config {
	return m.config
}

// ID returns the identifier attached to this mapper's log records
func (m *Mapper) ID() string {
	return m.id
}

// Stats returns a snapshot of the mapper's counters
func (m *Mapper) Stats() Stats {
	metrics := m.metrics.GetMetrics()
	return Stats{
		MapperID:          m.id,
		Closed:            m.closed.Load(),
		TotalOperations:   metrics.TotalOperations,
		SuccessfulOps:     metrics.SuccessfulOps,
		FailedOps:         metrics.FailedOps,
		CoercionFailures:  metrics.CoercionFailures,
		ContainersCreated: metrics.ContainersCreated,
		NullsPadded:       metrics.NullsPadded,
		Uptime:            metrics.Uptime,
		ErrorsByType:      metrics.ErrorsByType,
	}
}

// SetLogger replaces the logger. A nil logger disables logging.
func (m *Mapper) SetLogger(logger *slog.Logger) {
	m.loggerMu.Lock()
	defer m.loggerMu.Unlock()
	if logger != nil {
		logger = logger.With("component", "jsonptr-mapper")
	}
	m.logger = logger
}

// Close marks the mapper closed. Later writes fail with ErrMapperClosed and
// reads return the missing sentinel. Close is idempotent.
func (m *Mapper) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	if logger := m.getLogger(); logger != nil {
		logger.Debug("mapper closed",
			slog.String("mapper_id", m.id),
			slog.String("summary", m.metrics.GetSummary()),
		)
	}
	return nil
}

// IsClosed reports whether Close has been called
func (m *Mapper) IsClosed() bool {
	return m.closed.Load()
}

func (m *Mapper) checkClosed() error {
	if m.closed.Load() {
		return newOperationError("check_closed", "mapper "+m.id+" is closed", ErrMapperClosed)
	}
	return nil
}

func (m *Mapper) getLogger() *slog.Logger {
	m.loggerMu.RLock()
	defer m.loggerMu.RUnlock()
	return m.logger
}

// logError logs a failed operation with structured logging
func (m *Mapper) logError(ctx context.Context, operation, pointer string, err error) {
	logger := m.getLogger()
	if logger == nil {
		return
	}

	safePointer := sanitizePointer(pointer)
	errText := sanitizeError(err)
	if safePointer == redactedPointer {
		// The message repeats the pointer
		errText = errorType(err)
	}

	logger.LogAttrs(ctx, slog.LevelWarn, "JSON pointer operation failed",
		slog.String("operation", operation),
		slog.String("pointer", safePointer),
		slog.String("error", errText),
		slog.String("error_type", errorType(err)),
		slog.String("mapper_id", m.id),
	)
}

// logOperation logs a successful operation, as a warning when it was slow
func (m *Mapper) logOperation(ctx context.Context, operation, pointer string, duration time.Duration) {
	logger := m.getLogger()
	if logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("pointer", sanitizePointer(pointer)),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("mapper_id", m.id),
	}

	if duration > SlowOperationThreshold {
		attrs = append(attrs, slog.Int64("threshold_ms", SlowOperationThreshold.Milliseconds()))
		logger.LogAttrs(ctx, slog.LevelWarn, "Slow JSON pointer operation detected", attrs...)
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "JSON pointer operation completed", attrs...)
}

// reportCoercion counts a value that degraded to null and logs it, at most
// CoercionLogFirst times and then once per CoercionLogInterval
func (m *Mapper) reportCoercion(value any, err error) {
	m.metrics.RecordCoercionFailure()
	m.metrics.RecordError(errorType(err))
	if !m.config.LogCoercionFailures {
		return
	}
	logger := m.getLogger()
	if logger == nil {
		return
	}
	m.coercionLog.Do(func() {
		logger.LogAttrs(context.Background(), slog.LevelWarn, "value replaced by null",
			slog.String("value_type", fmt.Sprintf("%T", value)),
			slog.String("error", sanitizeError(err)),
			slog.String("mapper_id", m.id),
		)
	})
}

const redactedPointer = "[REDACTED_POINTER]"

var sensitivePatterns = []string{
	"password", "passwd", "pwd",
	"token", "bearer",
	"apikey", "api_key", "api-key",
	"secret", "credential",
	"authorization",
	"session", "cookie",
}

// sanitizePointer keeps pointers naming sensitive members out of logs
func sanitizePointer(pointer string) string {
	lower := strings.ToLower(pointer)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lower, pattern) {
			return redactedPointer
		}
	}
	return truncateString(pointer, MaxLoggedPointerLength)
}

// sanitizeError bounds error text in logs
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return truncateString(err.Error(), MaxLoggedErrorLength)
}

// truncateString truncates a string with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
