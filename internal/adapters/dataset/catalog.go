package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/okian/glorypath/internal/domain/derive"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/pkg/logger"
	"github.com/okian/glorypath/pkg/metrics"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Catalog serves the tables of one data directory.
//
// Each table is read on first use and memoized. A table that cannot be read
// or parsed is cached as empty: callers never see load errors, only a
// warning in the log and the dataset_load_failures_total counter. Returned
// slices are shared between callers and must not be modified.
type Catalog struct {
	dir     string
	refDate time.Time
	logger  logger.Logger

	mu    sync.Mutex
	memo  map[Table]any
	rows  map[Table]int
	gen   map[Table]uint64
	group singleflight.Group
}

// New returns a catalog over dir. Nothing is read until a table is used.
func New(dir string, opts ...Option) *Catalog {
	c := &Catalog{
		dir:     dir,
		refDate: derive.ReferenceDate,
		memo:    make(map[Table]any),
		rows:    make(map[Table]int),
		gen:     make(map[Table]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Named("dataset")
	}
	return c
}

// Dir returns the data directory.
func (c *Catalog) Dir() string { return c.dir }

// ReferenceDate returns the date ages are computed at.
func (c *Catalog) ReferenceDate() time.Time { return c.refDate }

func (c *Catalog) Athletes(ctx context.Context) []model.Athlete {
	return get(ctx, c, Athletes, func(s *sheet) ([]model.Athlete, int, error) { return loadAthletes(s, c.refDate) })
}

func (c *Catalog) Medals(ctx context.Context) []model.Medal {
	return get(ctx, c, Medals, loadMedals)
}

func (c *Catalog) Medallists(ctx context.Context) []model.Medal {
	return get(ctx, c, Medallists, loadMedals)
}

func (c *Catalog) MedalTotals(ctx context.Context) []model.MedalTotal {
	return get(ctx, c, MedalsTotal, loadMedalTotals)
}

func (c *Catalog) Events(ctx context.Context) []model.Event {
	return get(ctx, c, Events, loadEvents)
}

func (c *Catalog) Schedules(ctx context.Context) []model.ScheduleEntry {
	return get(ctx, c, Schedules, loadSchedules)
}

func (c *Catalog) Venues(ctx context.Context) []model.Venue {
	return get(ctx, c, Venues, loadVenues)
}

func (c *Catalog) Coaches(ctx context.Context) []model.Coach {
	return get(ctx, c, Coaches, loadCoaches)
}

func (c *Catalog) Teams(ctx context.Context) []model.Team {
	return get(ctx, c, Teams, loadTeams)
}

func (c *Catalog) NOCs(ctx context.Context) []model.NOC {
	return get(ctx, c, NOCs, loadNOCs)
}

// Load makes sure table t is cached and returns its row count.
func (c *Catalog) Load(ctx context.Context, t Table) (int, error) {
	switch t {
	case Athletes:
		return len(c.Athletes(ctx)), nil
	case Medals:
		return len(c.Medals(ctx)), nil
	case Medallists:
		return len(c.Medallists(ctx)), nil
	case MedalsTotal:
		return len(c.MedalTotals(ctx)), nil
	case Events:
		return len(c.Events(ctx)), nil
	case Schedules:
		return len(c.Schedules(ctx)), nil
	case Venues:
		return len(c.Venues(ctx)), nil
	case Coaches:
		return len(c.Coaches(ctx)), nil
	case Teams:
		return len(c.Teams(ctx)), nil
	case NOCs:
		return len(c.NOCs(ctx)), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTable, t)
}

// Preload reads every table in parallel. Load failures still leave empty
// tables behind; only cancellation is reported.
func (c *Catalog) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range allTables {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := c.Load(ctx, t)
			return err
		})
	}
	return g.Wait()
}

// Invalidate drops table t from the cache. A load in flight for t is not
// cached when it completes.
func (c *Catalog) Invalidate(ctx context.Context, t Table) {
	c.mu.Lock()
	_, cached := c.memo[t]
	delete(c.memo, t)
	delete(c.rows, t)
	c.gen[t]++
	c.mu.Unlock()

	metrics.RecordCacheInvalidation(string(t))
	c.logger.Info(ctx, "table invalidated",
		logger.String("table", string(t)),
		logger.Bool("was_cached", cached),
	)
}

// InvalidateAll drops every table from the cache.
func (c *Catalog) InvalidateAll(ctx context.Context) {
	for _, t := range allTables {
		c.Invalidate(ctx, t)
	}
}

// Cached returns the row count of every cached table.
func (c *Catalog) Cached() map[Table]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Table]int, len(c.rows))
	for t, n := range c.rows {
		out[t] = n
	}
	return out
}

// Stats returns catalog statistics for monitoring.
func (c *Catalog) Stats() map[string]interface{} {
	cached := c.Cached()
	names := make([]string, 0, len(cached))
	rows := make(map[string]int, len(cached))
	for t, n := range cached {
		names = append(names, string(t))
		rows[string(t)] = n
	}
	sort.Strings(names)
	return map[string]interface{}{
		"dataDir":       c.dir,
		"referenceDate": c.refDate.Format(model.DateLayout),
		"cachedTables":  names,
		"rows":          rows,
	}
}

func get[T any](ctx context.Context, c *Catalog, t Table, parse func(*sheet) ([]T, int, error)) []T {
	c.mu.Lock()
	if v, ok := c.memo[t]; ok {
		c.mu.Unlock()
		metrics.RecordCacheHit(string(t))
		return v.([]T)
	}
	gen := c.gen[t]
	c.mu.Unlock()

	metrics.RecordCacheMiss(string(t))
	v, _, _ := c.group.Do(string(t), func() (interface{}, error) {
		rows := read(ctx, c, t, parse)
		c.mu.Lock()
		if c.gen[t] == gen {
			c.memo[t] = rows
			c.rows[t] = len(rows)
		}
		c.mu.Unlock()
		return rows, nil
	})
	return v.([]T)
}

// read loads one table, collapsing every failure into an empty table.
func read[T any](ctx context.Context, c *Catalog, t Table, parse func(*sheet) ([]T, int, error)) []T {
	start := time.Now()
	path := filepath.Join(c.dir, t.File())

	s, err := readSheet(path)
	if err == nil {
		var rows []T
		var skipped int
		rows, skipped, err = parse(s)
		if err == nil {
			if skipped > 0 {
				metrics.RecordDatasetSkippedRows(string(t), skipped)
				c.logger.Debug(ctx, "rows dropped while loading table",
					logger.String("table", string(t)),
					logger.Int("skipped", skipped),
				)
			}
			if rows == nil {
				rows = []T{}
			}
			elapsed := time.Since(start)
			metrics.RecordDatasetLoad(string(t), float64(elapsed.Microseconds())/1000, len(rows))
			c.logger.Debug(ctx, "table loaded",
				logger.String("table", string(t)),
				logger.Int("rows", len(rows)),
				logger.Duration("took", elapsed),
			)
			return rows
		}
	}

	metrics.RecordDatasetLoadFailure(string(t))
	metrics.RecordDatasetLoad(string(t), float64(time.Since(start).Microseconds())/1000, 0)
	c.logger.Warn(ctx, "table unavailable, serving it empty",
		logger.String("table", string(t)),
		logger.String("path", path),
		logger.Error(err),
	)
	return []T{}
}
