// Package filter applies a dashboard filter selection to table rows.
//
// Row types opt into filterable columns by implementing the accessor
// interfaces below. A predicate whose column the row type lacks is skipped,
// so the same Selection can be applied to every table.
package filter

import (
	"slices"

	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
)

// CountryRow exposes the NOC column.
type CountryRow interface{ NOCCode() string }

// DisciplineRow exposes the discipline column.
type DisciplineRow interface{ DisciplineName() string }

// SportRow exposes the sport column. It is consulted only when the row has
// no discipline column.
type SportRow interface{ SportName() string }

// TierRow exposes the medal tier column.
type TierRow interface{ MedalTier() model.Tier }

// Selection is the four-field filter chosen on a page.
type Selection struct {
	Countries  Set[string]
	Sports     Set[string]
	Continents Set[reference.Continent]
	MedalTypes Set[model.Tier]
}

// All returns a selection that restricts nothing.
func All() Selection { return Selection{} }

// Tiers returns the medal tier restriction in effect.
//
// An explicitly empty medal type set does not mean "no medals": it means
// every tier, exactly like {Gold, Silver, Bronze}. This mirrors the sidebar
// where unchecking all three tier boxes shows all medal rows instead of none.
func (s Selection) Tiers() Set[model.Tier] {
	if s.MedalTypes.Empty() {
		return Any[model.Tier]()
	}
	return s.MedalTypes
}

// Match reports whether a single row passes every applicable predicate.
func (s Selection) Match(row any) bool {
	if r, ok := row.(CountryRow); ok {
		noc := r.NOCCode()
		if !s.Countries.Allows(noc) {
			return false
		}
		if s.Continents.Restricted() && !s.Continents.Allows(reference.ContinentOf(noc)) {
			return false
		}
	}

	if s.Sports.Restricted() {
		switch r := row.(type) {
		case DisciplineRow:
			if !s.Sports.Allows(r.DisciplineName()) {
				return false
			}
		case SportRow:
			if !s.Sports.Allows(r.SportName()) {
				return false
			}
		}
	}

	if r, ok := row.(TierRow); ok && !s.Tiers().Allows(r.MedalTier()) {
		return false
	}
	return true
}

// Apply returns the rows that pass sel, in their original order. The input
// is never modified and the result never aliases it.
func Apply[T any](rows []T, sel Selection) []T {
	if !sel.Restricts() {
		return slices.Clone(rows)
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if sel.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Restricts reports whether any field can drop a row.
func (s Selection) Restricts() bool {
	return s.Countries.Restricted() || s.Sports.Restricted() ||
		s.Continents.Restricted() || s.Tiers().Restricted()
}
