// Package standings tallies medals and orders them the way an Olympic medal
// table does: gold first, then silver, then bronze.
package standings

import (
	"sort"

	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
)

// Tally is the medal count for one group key.
type Tally struct {
	Key    string `json:"key"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
	Total  int    `json:"total"`
}

// Add counts one medal of tier t. Total is kept equal to the tier sum.
func (t *Tally) Add(tier model.Tier) {
	switch tier {
	case model.Gold:
		t.Gold++
	case model.Silver:
		t.Silver++
	case model.Bronze:
		t.Bronze++
	default:
		return
	}
	t.Total = t.Gold + t.Silver + t.Bronze
}

// Count returns the number of medals of tier t.
func (t Tally) Count(tier model.Tier) int {
	switch tier {
	case model.Gold:
		return t.Gold
	case model.Silver:
		return t.Silver
	case model.Bronze:
		return t.Bronze
	}
	return 0
}

// Key extracts a group key from a medal row. ok=false drops the row.
type Key func(m model.Medal) (key string, ok bool)

// ByCountry groups by NOC.
func ByCountry(m model.Medal) (string, bool) { return m.NOC, true }

// ByDiscipline groups by discipline.
func ByDiscipline(m model.Medal) (string, bool) { return m.Discipline, true }

// ByContinent groups by the continent of the NOC.
func ByContinent(m model.Medal) (string, bool) {
	return string(reference.ContinentOf(m.NOC)), true
}

// ByDate groups by calendar day. Rows without a date are skipped.
func ByDate(m model.Medal) (string, bool) {
	if m.Date.IsZero() {
		return "", false
	}
	return m.Date.Format(model.DateLayout), true
}

// ByAthlete groups by athlete name and NOC, so namesakes from different
// countries stay apart.
func ByAthlete(m model.Medal) (string, bool) {
	if m.Name == "" {
		return "", false
	}
	return AthleteKey(m.Name, m.NOC), true
}

// AthleteKey is the key ByAthlete produces.
func AthleteKey(name, noc string) string { return name + "|" + noc }

// SplitAthleteKey reverses AthleteKey.
func SplitAthleteKey(key string) (name, noc string) {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '|' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

// Group tallies medals per key. Result order is the order in which each key
// first appears, which Rank relies on for ties.
func Group(medals []model.Medal, key Key) []Tally {
	idx := make(map[string]int)
	var out []Tally
	for _, m := range medals {
		k, ok := key(m)
		if !ok {
			continue
		}
		i, seen := idx[k]
		if !seen {
			i = len(out)
			idx[k] = i
			out = append(out, Tally{Key: k})
		}
		out[i].Add(m.Tier)
	}
	return out
}

// FromTotals converts the published medal table into tallies. Total is
// recomputed from the tier counts.
func FromTotals(rows []model.MedalTotal) []Tally {
	out := make([]Tally, 0, len(rows))
	for _, r := range rows {
		out = append(out, Tally{
			Key:    r.NOC,
			Gold:   r.Gold,
			Silver: r.Silver,
			Bronze: r.Bronze,
			Total:  r.Gold + r.Silver + r.Bronze,
		})
	}
	return out
}

// Less is the standings order: gold desc, then silver desc, then bronze desc.
func Less(a, b Tally) bool {
	if a.Gold != b.Gold {
		return a.Gold > b.Gold
	}
	if a.Silver != b.Silver {
		return a.Silver > b.Silver
	}
	return a.Bronze > b.Bronze
}

// Rank returns tallies in standings order. Equal tallies keep their input
// order; keys are never compared.
func Rank(tallies []Tally) []Tally {
	out := append([]Tally(nil), tallies...)
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Top returns the first n tallies in standings order. n <= 0 or n beyond the
// length returns all of them.
func Top(tallies []Tally, n int) []Tally {
	out := Rank(tallies)
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// ByTotal orders by total desc, keeping input order for equal totals.
func ByTotal(tallies []Tally) []Tally {
	out := append([]Tally(nil), tallies...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// Sum adds all tallies into one with the given key.
func Sum(key string, tallies []Tally) Tally {
	s := Tally{Key: key}
	for _, t := range tallies {
		s.Gold += t.Gold
		s.Silver += t.Silver
		s.Bronze += t.Bronze
	}
	s.Total = s.Gold + s.Silver + s.Bronze
	return s
}
