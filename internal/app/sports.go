package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/standings"
	"github.com/okian/glorypath/pkg/metrics"
)

// dayScheduleLimit bounds the events listed under a day view.
const dayScheduleLimit = 10

// SportsQuery carries the page-local inputs of the Sports & Events page.
type SportsQuery struct {
	Date          string // YYYY-MM-DD, empty for the first medal date
	ScheduleSport string
	EventsSport   string
}

// Day is the "who won the day" view.
type Day struct {
	Dates     []string              `json:"dates"`
	Date      string                `json:"date"`
	Total     int                   `json:"total"`
	Gold      int                   `json:"gold"`
	Countries int                   `json:"countries"`
	Standings []StandingRow         `json:"standings"`
	Schedule  []model.ScheduleEntry `json:"schedule"`
}

// Sports is the Sports & Events page.
type Sports struct {
	KPIs          []KPI                 `json:"kpis"`
	Day           Day                   `json:"day"`
	Timeline      []model.ScheduleEntry `json:"timeline"`
	Disciplines   []standings.Cell      `json:"disciplines"`
	Summary       []standings.Tally     `json:"summary"`
	Venues        []model.Venue         `json:"venues"`
	VenueFallback bool                  `json:"venue_fallback"`
	Events        []model.Event         `json:"events"`
}

// Sports builds the Sports & Events page. It fails only when q.Date is set
// and malformed.
func (s *Service) Sports(ctx context.Context, sel filter.Selection, q SportsQuery) (Sports, error) {
	defer observe("sports", time.Now())
	metrics.RecordFilterEvaluation(sel.Restricts())

	all := s.tables.Medals(ctx)
	medals := filter.Apply(all, sel)
	events := s.tables.Events(ctx)
	venueRows := s.tables.Venues(ctx)
	schedules := s.tables.Schedules(ctx)

	day, err := s.day(ctx, all, medals, schedules, q.Date)
	if err != nil {
		return Sports{}, err
	}

	venues, fallback := locatedVenues(venueRows)

	return Sports{
		KPIs: []KPI{
			kpi("sports", "Total Sports", len(distinct(all, func(m model.Medal) string { return m.Discipline }))),
			kpi("events", "Total Events", len(events)),
			kpi("venues", "Venues", len(venueRows)),
			kpi("days", "Competition Days", s.competitionDays),
		},
		Day:           day,
		Timeline:      timeline(schedules, q.ScheduleSport, s.limits.ScheduleLimit),
		Disciplines:   standings.Cells(medals, standings.ByDiscipline, standings.Tier),
		Summary:       standings.ByTotal(standings.Group(medals, standings.ByDiscipline)),
		Venues:        venues,
		VenueFallback: fallback,
		Events:        eventsFor(events, q.EventsSport),
	}, nil
}

func (s *Service) day(ctx context.Context, all, medals []model.Medal, schedules []model.ScheduleEntry, date string) (Day, error) {
	var d Day
	for _, t := range standings.Group(all, standings.ByDate) {
		d.Dates = append(d.Dates, t.Key)
	}
	sort.Strings(d.Dates)

	if date != "" {
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		d.Date = date
	} else if len(d.Dates) > 0 {
		d.Date = d.Dates[0]
	}
	if d.Date == "" {
		return d, nil
	}

	var won []model.Medal
	for _, m := range medals {
		if k, ok := standings.ByDate(m); ok && k == d.Date {
			won = append(won, m)
		}
	}
	tallies := standings.Group(won, standings.ByCountry)
	sum := standings.Sum(d.Date, tallies)

	d.Total = sum.Total
	d.Gold = sum.Gold
	d.Countries = len(tallies)
	d.Standings = countryRows(standings.Top(tallies, s.limits.DailyTop), s.countryNames(ctx))

	for _, e := range schedules {
		if !e.Start.IsZero() && e.Start.Format(model.DateLayout) == d.Date {
			d.Schedule = append(d.Schedule, e)
		}
	}
	sort.SliceStable(d.Schedule, func(i, j int) bool { return d.Schedule[i].Start.Before(d.Schedule[j].Start) })
	if len(d.Schedule) > dayScheduleLimit {
		d.Schedule = d.Schedule[:dayScheduleLimit]
	}
	return d, nil
}

// timeline keeps fully timed slots, narrowed to discipline when given and
// otherwise capped at limit.
func timeline(schedules []model.ScheduleEntry, discipline string, limit int) []model.ScheduleEntry {
	var out []model.ScheduleEntry
	for _, e := range schedules {
		if !e.Timed() {
			continue
		}
		if discipline != "" && e.Discipline != discipline {
			continue
		}
		out = append(out, e)
	}
	if discipline == "" && limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func eventsFor(events []model.Event, sport string) []model.Event {
	if sport == "" {
		return append([]model.Event(nil), events...)
	}
	return filter.Apply(events, filter.Selection{Sports: filter.Only(sport)})
}
