// Package report renders medal standings and exports for the command line.
package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/okian/glorypath/internal/domain/standings"
)

// ErrUnknownGrouping is returned for a --by value outside Groupings.
var ErrUnknownGrouping = errors.New("unknown grouping")

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Config holds the standings report options.
type Config struct {
	By     string // grouping key, see Groupings
	Top    int    // rows to print, 0 for all
	Format string // table, json or csv
}

var groupings = map[string]standings.Key{
	"country":    standings.ByCountry,
	"discipline": standings.ByDiscipline,
	"continent":  standings.ByContinent,
	"date":       standings.ByDate,
	"athlete":    standings.ByAthlete,
}

// Groupings lists the accepted --by values.
func Groupings() []string {
	out := make([]string, 0, len(groupings))
	for k := range groupings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func grouping(by string) (standings.Key, error) {
	key, ok := groupings[strings.ToLower(strings.TrimSpace(by))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownGrouping, by, strings.Join(Groupings(), ", "))
	}
	return key, nil
}
