package service

import (
	"context"
	"time"

	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/standings"
	"github.com/okian/glorypath/pkg/metrics"
)

// Overview is the landing page.
type Overview struct {
	Filters       FilterOptions `json:"filters"`
	ActiveFilters []string      `json:"active_filters"`
	KPIs          []KPI         `json:"kpis"`
	Distribution  []TierCount   `json:"distribution"`
	Standings     []StandingRow `json:"standings"`
}

// Overview builds the landing page for sel.
func (s *Service) Overview(ctx context.Context, sel filter.Selection) Overview {
	defer observe("overview", time.Now())
	metrics.RecordFilterEvaluation(sel.Restricts())

	medals := filter.Apply(s.tables.Medals(ctx), sel)
	athletes := filter.Apply(s.tables.Athletes(ctx), sel)
	events := s.tables.Events(ctx)

	tallies := standings.Group(medals, standings.ByCountry)
	sum := standings.Sum("all", tallies)

	return Overview{
		Filters:       s.Filters(ctx, sel.Continents),
		ActiveFilters: filter.Summary(sel),
		KPIs: []KPI{
			kpi("athletes", "Total Athletes", len(athletes)),
			kpi("countries", "Total Countries", len(s.tables.NOCs(ctx))),
			kpi("sports", "Total Sports", len(distinct(events, func(e model.Event) string { return e.Sport }))),
			kpi("medals", "Medals Awarded", sum.Total),
			kpi("events", "Number of Events", len(events)),
		},
		Distribution: distribution(sum),
		Standings:    countryRows(standings.Top(tallies, s.limits.OverviewTop), s.countryNames(ctx)),
	}
}
