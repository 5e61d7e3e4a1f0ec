// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading accepts context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/glorypath/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir holds the Olympic CSV tables.
	DataDir string `koanf:"data_dir"`

	// ReferenceDate is the day athlete ages are computed at (YYYY-MM-DD).
	ReferenceDate string `koanf:"reference_date"`

	// WatchData invalidates cached tables when their files change.
	WatchData bool `koanf:"watch_data"`

	// Preload reads every table at start instead of on first use.
	Preload bool `koanf:"preload"`

	// CompetitionDays is shown on the Sports & Events page.
	CompetitionDays int `koanf:"competition_days"`

	// Top-N sizes of the ranked tables.
	OverviewTop int `koanf:"overview_top"`
	GlobalTop   int `koanf:"global_top"`
	AthletesTop int `koanf:"athletes_top"`
	DailyTop    int `koanf:"daily_top"`

	// ScheduleLimit caps the unfiltered schedule timeline.
	ScheduleLimit int `koanf:"schedule_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":8080",
		DataDir:         "data",
		ReferenceDate:   "2024-07-26",
		WatchData:       false,
		Preload:         true,
		CompetitionDays: 17,
		OverviewTop:     10,
		GlobalTop:       20,
		AthletesTop:     10,
		DailyTop:        10,
		ScheduleLimit:   50,
	}
}

// Reference returns ReferenceDate parsed. Call Validate first.
func (c *Config) Reference() time.Time {
	t, _ := time.Parse(model.DateLayout, c.ReferenceDate)
	return t
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := time.Parse(model.DateLayout, c.ReferenceDate); err != nil {
		return fmt.Errorf("%w: reference_date: %w", ErrInvalidConfig, err)
	}
	for name, v := range map[string]int{
		"competition_days": c.CompetitionDays,
		"overview_top":     c.OverviewTop,
		"global_top":       c.GlobalTop,
		"athletes_top":     c.AthletesTop,
		"daily_top":        c.DailyTop,
		"schedule_limit":   c.ScheduleLimit,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, name, v)
		}
	}
	return nil
}
