// Package reference holds the static NOC lookup tables: continent, flag glyph
// and ISO-3166 alpha-3 code. The tables are built once and never mutated.
package reference

import (
	"errors"
	"strings"
)

// Continent is a continent name as displayed on the dashboard.
type Continent string

// Known continents. Other is the fallback for unmapped NOCs and is not
// offered as a selectable filter value.
const (
	Europe       Continent = "Europe"
	Asia         Continent = "Asia"
	Africa       Continent = "Africa"
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Oceania      Continent = "Oceania"
	Other        Continent = "Other"
)

// ErrUnknownContinent is returned by ParseContinent for names outside the enumeration.
var ErrUnknownContinent = errors.New("unknown continent")

var selectable = []Continent{Europe, Asia, Africa, NorthAmerica, SouthAmerica, Oceania}

// Continents returns the selectable continents in display order.
func Continents() []Continent {
	out := make([]Continent, len(selectable))
	copy(out, selectable)
	return out
}

// ParseContinent resolves a continent name, case-insensitively.
// "Other" is accepted so callers can round-trip ContinentOf results.
func ParseContinent(name string) (Continent, error) {
	name = strings.TrimSpace(name)
	for _, c := range append(Continents(), Other) {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", ErrUnknownContinent
}

// ContinentOf returns the continent of a NOC. Unknown codes map to Other;
// that is the defined default, not an error.
func ContinentOf(noc string) Continent {
	if c, ok := continents[noc]; ok {
		return c
	}
	return Other
}

// Flag returns the emoji flag for a NOC, if one is known.
func Flag(noc string) (string, bool) {
	f, ok := flags[noc]
	return f, ok
}

// Label renders a NOC with its flag prefix, e.g. "🇫🇷 FRA".
func Label(noc string) string {
	if f, ok := flags[noc]; ok {
		return f + " " + noc
	}
	return noc
}

// NOCFromLabel reverses Label by taking the last whitespace separated token.
func NOCFromLabel(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// ISO3 returns the ISO-3166 alpha-3 code used by world maps.
func ISO3(noc string) (string, bool) {
	code, ok := iso3[noc]
	return code, ok
}
