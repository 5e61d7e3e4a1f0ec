// Package service composes the dashboard pages and exports from the cached
// Olympic tables. It implements the dependencies required by the HTTP API
// and the report command.
package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/okian/glorypath/internal/adapters/dataset"
	"github.com/okian/glorypath/internal/domain/derive"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/pkg/logger"
	"github.com/okian/glorypath/pkg/metrics"
)

// Tables is the read-only table source. Returned slices are shared and must
// not be modified.
type Tables interface {
	Athletes(ctx context.Context) []model.Athlete
	Medals(ctx context.Context) []model.Medal
	Medallists(ctx context.Context) []model.Medal
	MedalTotals(ctx context.Context) []model.MedalTotal
	Events(ctx context.Context) []model.Event
	Schedules(ctx context.Context) []model.ScheduleEntry
	Venues(ctx context.Context) []model.Venue
	Coaches(ctx context.Context) []model.Coach
	Teams(ctx context.Context) []model.Team
	NOCs(ctx context.Context) []model.NOC
}

// Limits sizes the ranked tables and lists on the pages.
type Limits struct {
	OverviewTop   int
	GlobalTop     int
	AthletesTop   int
	DailyTop      int
	ScheduleLimit int
}

// DefaultLimits mirrors the dashboard defaults.
func DefaultLimits() Limits {
	return Limits{OverviewTop: 10, GlobalTop: 20, AthletesTop: 10, DailyTop: 10, ScheduleLimit: 50}
}

// Service builds pages for one data directory.
type Service struct {
	mu sync.RWMutex

	tables  Tables
	watcher *dataset.Watcher

	// Configuration
	dataDir         string
	refDate         time.Time
	watch           bool
	preload         bool
	competitionDays int
	limits          Limits

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTables replaces the CSV catalog, mainly for tests.
func WithTables(t Tables) Option {
	return func(s *Service) {
		if t != nil {
			s.tables = t
		}
	}
}

// WithDataDir sets the directory the CSV tables are read from.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithReferenceDate sets the date athlete ages are computed at.
func WithReferenceDate(ref time.Time) Option {
	return func(s *Service) {
		if !ref.IsZero() {
			s.refDate = ref
		}
	}
}

// WithWatch enables cache invalidation on data file changes.
func WithWatch(enabled bool) Option {
	return func(s *Service) {
		s.watch = enabled
	}
}

// WithPreload reads every table during Start.
func WithPreload(enabled bool) Option {
	return func(s *Service) {
		s.preload = enabled
	}
}

// WithCompetitionDays sets the competition length shown on the sports page.
func WithCompetitionDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.competitionDays = days
		}
	}
}

// WithLimits overrides the non-zero fields of the default limits.
func WithLimits(l Limits) Option {
	return func(s *Service) {
		if l.OverviewTop > 0 {
			s.limits.OverviewTop = l.OverviewTop
		}
		if l.GlobalTop > 0 {
			s.limits.GlobalTop = l.GlobalTop
		}
		if l.AthletesTop > 0 {
			s.limits.AthletesTop = l.AthletesTop
		}
		if l.DailyTop > 0 {
			s.limits.DailyTop = l.DailyTop
		}
		if l.ScheduleLimit > 0 {
			s.limits.ScheduleLimit = l.ScheduleLimit
		}
	}
}

// New constructs a Service. Unless WithTables is given, tables come from a
// dataset catalog over the data directory.
func New(opts ...Option) *Service {
	s := &Service{
		dataDir:         "data",
		refDate:         derive.ReferenceDate,
		preload:         true,
		competitionDays: 17,
		limits:          DefaultLimits(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	if s.tables == nil {
		s.tables = dataset.New(s.dataDir,
			dataset.WithLogger(s.logger.Named("dataset")),
			dataset.WithReferenceDate(s.refDate),
		)
	}
	return s
}

// Start preloads the tables and starts the data watcher when enabled.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting dashboard service...",
		logger.String("dataDir", s.dataDir),
		logger.Bool("preload", s.preload),
		logger.Bool("watch", s.watch),
	)

	if p, ok := s.tables.(interface{ Preload(context.Context) error }); ok && s.preload {
		start := time.Now()
		if err := p.Preload(ctx); err != nil {
			return err
		}
		s.logger.Info(ctx, "tables preloaded", logger.Duration("took", time.Since(start)))
	}

	if inv, ok := s.tables.(dataset.Invalidator); ok && s.watch {
		w := dataset.NewWatcher(s.dataDir, inv, s.logger.Named("watcher"))
		if err := w.Start(ctx); err != nil {
			return err
		}
		s.watcher = w
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started")
	return nil
}

// Stop shuts down the data watcher.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping dashboard service...")
	if s.watcher != nil {
		s.watcher.Stop()
		s.watcher = nil
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"dataDir":         s.dataDir,
		"referenceDate":   s.refDate.Format(model.DateLayout),
		"watch":           s.watcher != nil,
		"preload":         s.preload,
		"competitionDays": s.competitionDays,
	}
	if st, ok := s.tables.(interface{ Stats() map[string]interface{} }); ok {
		stats["catalog"] = st.Stats()
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	goroutines := runtime.NumGoroutine()
	stats["memoryBytes"] = mem.Alloc
	stats["goroutines"] = goroutines
	metrics.UpdateSystemMemoryUsage(mem.Alloc)
	metrics.UpdateSystemGoroutineCount(goroutines)

	return stats
}

// observe records a page build.
func observe(page string, start time.Time) {
	metrics.RecordPageBuild(page, float64(time.Since(start).Microseconds())/1000)
}
