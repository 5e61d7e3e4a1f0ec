package service

import (
	"context"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
	"github.com/okian/glorypath/internal/domain/standings"
)

// KPI is one headline number.
type KPI struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   int    `json:"value"`
	Display string `json:"display"`
}

func kpi(key, label string, v int) KPI {
	return KPI{Key: key, Label: label, Value: v, Display: humanize.Comma(int64(v))}
}

// StandingRow is a ranked country line of a medal table.
type StandingRow struct {
	Rank      int                 `json:"rank"`
	NOC       string              `json:"noc"`
	Country   string              `json:"country"`
	Label     string              `json:"label"`
	Flag      string              `json:"flag,omitempty"`
	Continent reference.Continent `json:"continent"`
	ISO3      string              `json:"iso3,omitempty"`
	Gold      int                 `json:"gold"`
	Silver    int                 `json:"silver"`
	Bronze    int                 `json:"bronze"`
	Total     int                 `json:"total"`
}

// TierCount is a slice of the medal distribution pie.
type TierCount struct {
	Tier  model.Tier `json:"tier"`
	Count int        `json:"count"`
}

// FilterOptions feeds the sidebar of every page.
type FilterOptions struct {
	Countries  []filter.CountryOption `json:"countries"`
	Sports     []string               `json:"sports"`
	Continents []reference.Continent  `json:"continents"`
	Medals     []model.Tier           `json:"medals"`
}

// countryNames maps NOC to a display name, preferring the medal table and
// falling back to nocs.csv.
func (s *Service) countryNames(ctx context.Context) map[string]string {
	names := make(map[string]string)
	for _, n := range s.tables.NOCs(ctx) {
		if n.Country != "" {
			names[n.Code] = n.Country
		}
	}
	for _, t := range s.tables.MedalTotals(ctx) {
		if t.Country != "" {
			names[t.NOC] = t.Country
		}
	}
	return names
}

func countryRows(tallies []standings.Tally, names map[string]string) []StandingRow {
	out := make([]StandingRow, 0, len(tallies))
	for i, t := range tallies {
		row := StandingRow{
			Rank:      i + 1,
			NOC:       t.Key,
			Country:   t.Key,
			Label:     reference.Label(t.Key),
			Continent: reference.ContinentOf(t.Key),
			Gold:      t.Gold,
			Silver:    t.Silver,
			Bronze:    t.Bronze,
			Total:     t.Total,
		}
		if n, ok := names[t.Key]; ok {
			row.Country = n
		}
		row.Flag, _ = reference.Flag(t.Key)
		row.ISO3, _ = reference.ISO3(t.Key)
		out = append(out, row)
	}
	return out
}

func distribution(t standings.Tally) []TierCount {
	out := make([]TierCount, 0, 3)
	for _, tier := range model.Tiers() {
		out = append(out, TierCount{Tier: tier, Count: t.Count(tier)})
	}
	return out
}

// distinct returns the sorted distinct non-empty values of key over rows.
func distinct[T any](rows []T, key func(T) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Filters returns the sidebar options. The country list follows the medal
// table and is narrowed to the selected continents.
func (s *Service) Filters(ctx context.Context, continents filter.Set[reference.Continent]) FilterOptions {
	nocs := distinct(s.tables.MedalTotals(ctx), func(t model.MedalTotal) string { return t.NOC })
	return FilterOptions{
		Countries:  filter.CountryOptions(nocs, continents),
		Sports:     distinct(s.tables.Medals(ctx), func(m model.Medal) string { return m.Discipline }),
		Continents: reference.Continents(),
		Medals:     model.Tiers(),
	}
}
