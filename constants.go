package jsonptr

import "time"

const (
	// Operation Limits
	DefaultMaxPathDepth      = 100
	DefaultMaxArrayGrowth    = 10000
	DefaultMaxConcurrency    = 100
	DefaultParallelThreshold = 10

	// Time formatting
	DefaultTimeZone       = "UTC"
	DefaultDateTimeLayout = "2006-01-02 15:04:05"
	DefaultDateLayout     = "2006-01-02"

	// Logging
	SlowOperationThreshold = 100 * time.Millisecond
	CoercionLogFirst       = 5
	CoercionLogInterval    = time.Minute
	MaxLoggedPointerLength = 100
	MaxLoggedErrorLength   = 200
)
