package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/pkg/metrics"
)

// Export names.
const (
	ExportAthletes = "athletes"
	ExportMedals   = "medals"
	ExportVenues   = "venues"
)

// Exports lists the available export names.
func Exports() []string { return []string{ExportAthletes, ExportMedals, ExportVenues} }

// Export writes the named table as CSV with a header row and returns the
// number of data rows written. Athletes and medals honour sel.
func (s *Service) Export(ctx context.Context, w io.Writer, name string, sel filter.Selection) (int, error) {
	var (
		header []string
		rows   [][]string
	)
	switch name {
	case ExportAthletes:
		header = []string{"name", "noc", "gender", "age", "disciplines", "events"}
		for _, a := range filter.Apply(s.tables.Athletes(ctx), sel) {
			age := ""
			if a.Age != nil {
				age = strconv.FormatFloat(*a.Age, 'f', 1, 64)
			}
			rows = append(rows, []string{a.Name, a.NOC, a.Gender, age, list(a.Disciplines), list(a.Events)})
		}
	case ExportMedals:
		header = []string{"medal_type", "medal_date", "name", "gender", "discipline", "event", "event_type", "team", "team_gender", "country_code", "country"}
		for _, m := range filter.Apply(s.tables.Medals(ctx), sel) {
			date := ""
			if !m.Date.IsZero() {
				date = m.Date.Format(model.DateLayout)
			}
			rows = append(rows, []string{
				string(m.Tier) + " Medal", date, m.Name, m.Gender, m.Discipline,
				m.Event, m.EventType, m.Team, m.TeamGender, m.NOC, m.Country,
			})
		}
	case ExportVenues:
		header = []string{"venue", "sports", "tag", "lat", "lon"}
		for _, v := range s.tables.Venues(ctx) {
			rows = append(rows, []string{v.Name, list(v.Sports), v.Tag, coord(v.Lat), coord(v.Lon)})
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownExport, name)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("export %s: %w", name, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return 0, fmt.Errorf("export %s: %w", name, err)
	}
	metrics.RecordExportRows(name, len(rows))
	return len(rows), nil
}

func list(vals []string) string { return strings.Join(vals, ", ") }

func coord(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
