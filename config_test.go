package jsonptr

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	helper := NewTestHelper(t)

	cfg := DefaultConfig()
	helper.AssertEqual(DefaultTimeZone, cfg.TimeZone)
	helper.AssertEqual(DefaultDateTimeLayout, cfg.DateTimeLayout)
	helper.AssertEqual(DefaultDateLayout, cfg.DateLayout)
	helper.AssertEqual(DefaultMaxPathDepth, cfg.MaxPathDepth)
	helper.AssertEqual(DefaultMaxArrayGrowth, cfg.MaxArrayGrowth)
	helper.AssertEqual(DefaultMaxConcurrency, cfg.MaxConcurrency)
	helper.AssertEqual(DefaultParallelThreshold, cfg.ParallelThreshold)
	helper.AssertTrue(cfg.LogCoercionFailures)
	helper.AssertNoError(ValidateConfig(cfg))
}

func TestValidateConfig(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("Nil", func(t *testing.T) {
		helper.AssertErrorIs(ValidateConfig(nil), ErrInvalidConfig)
	})

	t.Run("BadZones", func(t *testing.T) {
		for _, zone := range []string{"", "Not/AZone"} {
			cfg := DefaultConfig()
			cfg.TimeZone = zone
			helper.AssertErrorIs(ValidateConfig(cfg), ErrInvalidConfig, "zone %q", zone)
		}
	})

	t.Run("FillsDefaults", func(t *testing.T) {
		cfg := &Config{TimeZone: "UTC"}
		helper.AssertNoError(ValidateConfig(cfg))
		helper.AssertEqual(DefaultDateTimeLayout, cfg.DateTimeLayout)
		helper.AssertEqual(DefaultDateLayout, cfg.DateLayout)
		helper.AssertEqual(DefaultMaxPathDepth, cfg.MaxPathDepth)
		helper.AssertEqual(DefaultMaxArrayGrowth, cfg.MaxArrayGrowth)
		helper.AssertEqual(DefaultMaxConcurrency, cfg.MaxConcurrency)
		helper.AssertEqual(DefaultParallelThreshold, cfg.ParallelThreshold)
	})

	t.Run("NegativeDepthDisablesLimit", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxPathDepth = -1
		helper.AssertNoError(ValidateConfig(cfg))
		helper.AssertEqual(-1, cfg.MaxPathDepth)
	})

	t.Run("KeepsExplicitValues", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxArrayGrowth = 7
		cfg.DateLayout = "02/01/2006"
		helper.AssertNoError(ValidateConfig(cfg))
		helper.AssertEqual(7, cfg.MaxArrayGrowth)
		helper.AssertEqual("02/01/2006", cfg.DateLayout)
	})
}

func TestConfigTimeZone(t *testing.T) {
	helper := NewTestHelper(t)

	base := DefaultConfig()
	tokyo := base.WithTimeZone("Asia/Tokyo")
	helper.AssertEqual("UTC", base.TimeZone)
	helper.AssertEqual("Asia/Tokyo", tokyo.TimeZone)

	// Unvalidated configs fall back to UTC
	helper.AssertEqual(time.UTC, tokyo.Location())

	helper.AssertNoError(ValidateConfig(tokyo))
	helper.AssertEqual("Asia/Tokyo", tokyo.Location().String())

	helper.AssertPanic(func() {
		New(DefaultConfig().WithTimeZone("Mars/Olympus"))
	})
}
