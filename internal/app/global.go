package service

import (
	"context"
	"time"

	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
	"github.com/okian/glorypath/internal/domain/standings"
	"github.com/okian/glorypath/pkg/metrics"
)

// ContinentTally is a continent's medal count.
type ContinentTally struct {
	Continent reference.Continent `json:"continent"`
	Gold      int                 `json:"gold"`
	Silver    int                 `json:"silver"`
	Bronze    int                 `json:"bronze"`
	Total     int                 `json:"total"`
}

// Global is the Global Analysis page.
type Global struct {
	Countries  []StandingRow    `json:"countries"`
	Map        []StandingRow    `json:"map"`
	Hierarchy  []standings.Cell `json:"hierarchy"`
	Continents []ContinentTally `json:"continents"`
	Top        []StandingRow    `json:"top"`
}

// Global builds the Global Analysis page for sel.
func (s *Service) Global(ctx context.Context, sel filter.Selection) Global {
	defer observe("global", time.Now())
	metrics.RecordFilterEvaluation(sel.Restricts())

	medals := filter.Apply(s.tables.Medals(ctx), sel)
	names := s.countryNames(ctx)

	tallies := standings.Rank(standings.Group(medals, standings.ByCountry))
	rows := countryRows(tallies, names)

	var mapped []StandingRow
	for _, r := range rows {
		if r.ISO3 != "" {
			mapped = append(mapped, r)
		}
	}

	byName := func(m model.Medal) (string, bool) {
		if n, ok := names[m.NOC]; ok {
			return n, true
		}
		return m.NOC, true
	}

	return Global{
		Countries:  rows,
		Map:        mapped,
		Hierarchy:  standings.Cells(medals, standings.ByContinent, byName, standings.ByDiscipline),
		Continents: continentTallies(medals),
		Top:        countryRows(standings.Top(tallies, s.limits.GlobalTop), names),
	}
}

// continentTallies lists continents in display order, skipping those
// without medals.
func continentTallies(medals []model.Medal) []ContinentTally {
	byKey := make(map[string]standings.Tally)
	for _, t := range standings.Group(medals, standings.ByContinent) {
		byKey[t.Key] = t
	}
	var out []ContinentTally
	for _, c := range append(reference.Continents(), reference.Other) {
		t, ok := byKey[string(c)]
		if !ok {
			continue
		}
		out = append(out, ContinentTally{Continent: c, Gold: t.Gold, Silver: t.Silver, Bronze: t.Bronze, Total: t.Total})
	}
	return out
}
