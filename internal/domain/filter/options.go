package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
)

// ErrInvalidSelection wraps every error returned by Parse.
var ErrInvalidSelection = errors.New("invalid filter selection")

// Values is the raw form of a selection as submitted by a client.
//
// Empty Countries, Sports and Continents mean "nothing picked", which the
// sidebar treats as no restriction. MedalsSet distinguishes a missing medal
// field (all tiers) from a submitted one; a submitted but empty medal field
// is still all tiers, see Selection.Tiers.
type Values struct {
	Countries  []string
	Sports     []string
	Continents []string
	Medals     []string
	MedalsSet  bool
}

// Parse validates raw values into a Selection. Countries may be given as a
// bare NOC or as a flag label.
func Parse(v Values) (Selection, error) {
	var sel Selection

	if nocs := clean(v.Countries); len(nocs) > 0 {
		for i, c := range nocs {
			nocs[i] = strings.ToUpper(reference.NOCFromLabel(c))
		}
		sel.Countries = Only(nocs...)
	}

	if sports := clean(v.Sports); len(sports) > 0 {
		sel.Sports = Only(sports...)
	}

	if names := clean(v.Continents); len(names) > 0 {
		cs := make([]reference.Continent, 0, len(names))
		for _, n := range names {
			c, err := reference.ParseContinent(n)
			if err != nil {
				return Selection{}, fmt.Errorf("%w: %q: %w", ErrInvalidSelection, n, err)
			}
			cs = append(cs, c)
		}
		sel.Continents = Only(cs...)
	}

	if v.MedalsSet {
		tiers := make([]model.Tier, 0, len(v.Medals))
		for _, m := range clean(v.Medals) {
			t, err := model.ParseTier(m)
			if err != nil {
				return Selection{}, fmt.Errorf("%w: %q: %w", ErrInvalidSelection, m, err)
			}
			tiers = append(tiers, t)
		}
		sel.MedalTypes = Only(tiers...)
	}
	return sel, nil
}

// clean splits comma separated entries, trims them and drops empties.
func clean(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// CountryOption is one entry of the country picker.
type CountryOption struct {
	NOC       string              `json:"noc"`
	Label     string              `json:"label"`
	Continent reference.Continent `json:"continent"`
}

// CountryOptions narrows nocs to the selected continents and labels them
// with their flags. Order follows nocs.
func CountryOptions(nocs []string, continents Set[reference.Continent]) []CountryOption {
	out := make([]CountryOption, 0, len(nocs))
	for _, noc := range nocs {
		c := reference.ContinentOf(noc)
		if !continents.Allows(c) {
			continue
		}
		out = append(out, CountryOption{NOC: noc, Label: reference.Label(noc), Continent: c})
	}
	return out
}

// Summary renders the active filters banner. It is empty when nothing is
// restricted.
func Summary(sel Selection) []string {
	var out []string
	if sel.Countries.Restricted() {
		out = append(out, "Countries: "+strconv.Itoa(sel.Countries.Len()))
	}
	if sel.Sports.Restricted() {
		out = append(out, "Sports: "+strconv.Itoa(sel.Sports.Len()))
	}
	if sel.Continents.Restricted() {
		var names []string
		for _, c := range append(reference.Continents(), reference.Other) {
			if sel.Continents.Allows(c) {
				names = append(names, string(c))
			}
		}
		out = append(out, "Continents: "+strings.Join(names, ", "))
	}
	if sel.MedalTypes.Empty() {
		out = append(out, "Medals: all (no tier selected)")
	} else if sel.MedalTypes.Restricted() && sel.MedalTypes.Len() < len(model.Tiers()) {
		var names []string
		for _, t := range model.Tiers() {
			if sel.MedalTypes.Allows(t) {
				names = append(names, string(t))
			}
		}
		out = append(out, "Medals: "+strings.Join(names, ", "))
	}
	return out
}
