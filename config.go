package jsonptr

import (
	"time"
)

// Config holds configuration for a Mapper
type Config struct {
	// Time values passed to ToNode are rendered in this zone
	TimeZone       string `json:"time_zone"`
	DateTimeLayout string `json:"date_time_layout"`
	DateLayout     string `json:"date_layout"`

	// Limits
	MaxPathDepth   int `json:"max_path_depth"`   // segments a write may use; negative disables the limit
	MaxArrayGrowth int `json:"max_array_growth"` // null placeholders one write may append

	// Batch concurrency
	MaxConcurrency    int `json:"max_concurrency"`
	ParallelThreshold int `json:"parallel_threshold"`

	// Diagnostics
	LogCoercionFailures bool `json:"log_coercion_failures"`

	location *time.Location
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TimeZone:            DefaultTimeZone,
		DateTimeLayout:      DefaultDateTimeLayout,
		DateLayout:          DefaultDateLayout,
		MaxPathDepth:        DefaultMaxPathDepth,
		MaxArrayGrowth:      DefaultMaxArrayGrowth,
		MaxConcurrency:      DefaultMaxConcurrency,
		ParallelThreshold:   DefaultParallelThreshold,
		LogCoercionFailures: true,
	}
}

// ValidateConfig validates configuration values and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}

	if config.TimeZone == "" {
		return newOperationError("validate_config", "time zone cannot be empty", ErrInvalidConfig)
	}
	loc, err := time.LoadLocation(config.TimeZone)
	if err != nil {
		return newOperationError("validate_config", "unknown time zone '"+config.TimeZone+"'", ErrInvalidConfig)
	}
	config.location = loc

	// Apply defaults for invalid values
	if config.DateTimeLayout == "" {
		config.DateTimeLayout = DefaultDateTimeLayout
	}
	if config.DateLayout == "" {
		config.DateLayout = DefaultDateLayout
	}
	if config.MaxPathDepth == 0 {
		config.MaxPathDepth = DefaultMaxPathDepth
	}
	if config.MaxArrayGrowth <= 0 {
		config.MaxArrayGrowth = DefaultMaxArrayGrowth
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = DefaultMaxConcurrency
	}
	if config.ParallelThreshold <= 0 {
		config.ParallelThreshold = DefaultParallelThreshold
	}

	return nil
}

// WithTimeZone returns a copy of the config using zone. The zone is checked
// by ValidateConfig.
func (c *Config) WithTimeZone(zone string) *Config {
	clone := *c
	clone.TimeZone = zone
	clone.location = nil
	return &clone
}

// Location returns the validated time zone, UTC before validation
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
