package service

import (
	"context"
	"sort"
	"time"

	"github.com/okian/glorypath/internal/domain/derive"
	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
	"github.com/okian/glorypath/internal/domain/standings"
	"github.com/okian/glorypath/pkg/metrics"
)

// genderTopCountries bounds the per-country gender chart.
const genderTopCountries = 20

// Profile is the detail card of one athlete.
type Profile struct {
	Athlete   model.Athlete       `json:"athlete"`
	Label     string              `json:"label"`
	Continent reference.Continent `json:"continent"`
	Coaches   []derive.CoachRef   `json:"coaches"`
	CoachText string              `json:"coach_text,omitempty"`
	Medals    standings.Tally     `json:"medals"`
	Details   []model.Medal       `json:"details"`
}

// Distribution is a named age distribution.
type Distribution struct {
	Group   string         `json:"group"`
	Summary derive.Summary `json:"summary"`
	Values  []float64      `json:"values"`
}

// GenderCount is the athlete count of one gender within a group.
type GenderCount struct {
	Group  string `json:"group"`
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

// AthleteRow is one line of the top athletes table.
type AthleteRow struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	NOC    string `json:"noc"`
	Label  string `json:"label"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
	Total  int    `json:"total"`
}

// Athletes is the Athlete Performance page.
type Athletes struct {
	Names       []string        `json:"names"`
	Profile     *Profile        `json:"profile,omitempty"`
	ByGender    []Distribution  `json:"age_by_gender"`
	ByContinent []Distribution  `json:"age_by_continent"`
	Gender      GenderBreakdown `json:"gender"`
	Top         []AthleteRow    `json:"top"`
}

// GenderBreakdown holds the world, continent and country gender charts.
type GenderBreakdown struct {
	World      []GenderCount `json:"world"`
	Continents []GenderCount `json:"continents"`
	Countries  []GenderCount `json:"countries"`
}

// Athletes builds the Athlete Performance page. When name is set the
// profile of the first athlete with that name is included.
func (s *Service) Athletes(ctx context.Context, sel filter.Selection, name string) Athletes {
	defer observe("athletes", time.Now())
	metrics.RecordFilterEvaluation(sel.Restricts())

	athletes := filter.Apply(s.tables.Athletes(ctx), sel)
	medallists := filter.Apply(s.tables.Medallists(ctx), sel)

	page := Athletes{
		Names:       distinct(athletes, func(a model.Athlete) string { return a.Name }),
		ByGender:    ageDistributions(athletes, func(a model.Athlete) string { return a.Gender }),
		ByContinent: ageDistributions(athletes, func(a model.Athlete) string { return string(reference.ContinentOf(a.NOC)) }),
		Gender:      genderBreakdown(athletes),
		Top:         topAthletes(medallists, s.limits.AthletesTop),
	}
	if name != "" {
		page.Profile = s.profile(ctx, athletes, medallists, name)
	}
	return page
}

func (s *Service) profile(ctx context.Context, athletes []model.Athlete, medallists []model.Medal, name string) *Profile {
	var found *model.Athlete
	for i := range athletes {
		if athletes[i].Name == name {
			found = &athletes[i]
			break
		}
	}
	if found == nil {
		return nil
	}

	p := &Profile{
		Athlete:   *found,
		Label:     reference.Label(found.NOC),
		Continent: reference.ContinentOf(found.NOC),
		Coaches:   derive.Coaches(*found, s.tables.Teams(ctx)),
		Medals:    standings.Tally{Key: found.Name},
	}
	if len(p.Coaches) == 0 {
		p.CoachText = found.Coach
	}
	for _, m := range medallists {
		if m.Name != found.Name {
			continue
		}
		p.Medals.Add(m.Tier)
		p.Details = append(p.Details, m)
	}
	return p
}

// ageDistributions groups known ages by group, in group name order.
func ageDistributions(athletes []model.Athlete, group func(model.Athlete) string) []Distribution {
	values := make(map[string][]float64)
	for _, a := range athletes {
		if a.Age == nil {
			continue
		}
		g := group(a)
		values[g] = append(values[g], *a.Age)
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Distribution, 0, len(keys))
	for _, k := range keys {
		out = append(out, Distribution{Group: k, Summary: derive.Summarize(values[k]), Values: values[k]})
	}
	return out
}

func genderBreakdown(athletes []model.Athlete) GenderBreakdown {
	byCountry := make(map[string]int)
	for _, a := range athletes {
		byCountry[a.NOC]++
	}
	nocs := make([]string, 0, len(byCountry))
	for noc := range byCountry {
		nocs = append(nocs, noc)
	}
	sort.Slice(nocs, func(i, j int) bool {
		if byCountry[nocs[i]] != byCountry[nocs[j]] {
			return byCountry[nocs[i]] > byCountry[nocs[j]]
		}
		return nocs[i] < nocs[j]
	})
	if len(nocs) > genderTopCountries {
		nocs = nocs[:genderTopCountries]
	}
	top := make(map[string]struct{}, len(nocs))
	for _, n := range nocs {
		top[n] = struct{}{}
	}

	var inTop []model.Athlete
	for _, a := range athletes {
		if _, ok := top[a.NOC]; ok {
			inTop = append(inTop, a)
		}
	}

	return GenderBreakdown{
		World:      genderCounts(athletes, func(model.Athlete) string { return "World" }),
		Continents: genderCounts(athletes, func(a model.Athlete) string { return string(reference.ContinentOf(a.NOC)) }),
		Countries:  genderCounts(inTop, func(a model.Athlete) string { return a.NOC }),
	}
}

// genderCounts counts athletes per (group, gender), sorted by group then
// gender. Rows without a gender are skipped.
func genderCounts(athletes []model.Athlete, group func(model.Athlete) string) []GenderCount {
	type key struct{ group, gender string }
	counts := make(map[key]int)
	for _, a := range athletes {
		if a.Gender == "" {
			continue
		}
		counts[key{group(a), a.Gender}]++
	}
	out := make([]GenderCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, GenderCount{Group: k.group, Gender: k.gender, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Gender < out[j].Gender
	})
	return out
}

func topAthletes(medallists []model.Medal, n int) []AthleteRow {
	top := standings.Top(standings.Group(medallists, standings.ByAthlete), n)
	out := make([]AthleteRow, 0, len(top))
	for i, t := range top {
		name, noc := standings.SplitAthleteKey(t.Key)
		out = append(out, AthleteRow{
			Rank:   i + 1,
			Name:   name,
			NOC:    noc,
			Label:  reference.Label(noc),
			Gold:   t.Gold,
			Silver: t.Silver,
			Bronze: t.Bronze,
			Total:  t.Total,
		})
	}
	return out
}
