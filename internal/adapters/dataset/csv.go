package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column aliases shared by several tables.
var (
	colNOC  = []string{"country_code", "noc"}
	colTier = []string{"medal_type", "medal"}
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// sheet is a parsed CSV file addressed by header name.
type sheet struct {
	cols map[string]int
	rows [][]string
}

func readSheet(path string) (*sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSheet(f)
}

func parseSheet(r io.Reader) (*sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	s := &sheet{cols: make(map[string]int, len(header))}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := s.cols[h]; !dup {
			s.cols[h] = i
		}
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(s.rows)+2, err)
		}
		s.rows = append(s.rows, rec)
	}
	return s, nil
}

// has reports whether any alias is a column.
func (s *sheet) has(aliases ...string) bool {
	_, ok := s.col(aliases...)
	return ok
}

func (s *sheet) col(aliases ...string) (int, bool) {
	for _, a := range aliases {
		if i, ok := s.cols[a]; ok {
			return i, true
		}
	}
	return 0, false
}

func (s *sheet) require(aliases ...string) error {
	if !s.has(aliases...) {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(aliases, "|"))
	}
	return nil
}

// row is one record with column lookup bound to its sheet.
type row struct {
	s   *sheet
	rec []string
}

func (s *sheet) each(fn func(r row)) {
	for _, rec := range s.rows {
		fn(row{s: s, rec: rec})
	}
}

// str returns the trimmed value of the first alias present, or "".
func (r row) str(aliases ...string) string {
	i, ok := r.s.col(aliases...)
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

// float returns 0 for missing or unparsable values.
func (r row) float(aliases ...string) float64 {
	v, err := strconv.ParseFloat(r.str(aliases...), 64)
	if err != nil {
		return 0
	}
	return v
}

// optFloat returns nil for missing or unparsable values.
func (r row) optFloat(aliases ...string) *float64 {
	v, err := strconv.ParseFloat(r.str(aliases...), 64)
	if err != nil {
		return nil
	}
	return &v
}

func (r row) integer(aliases ...string) int {
	raw := r.str(aliases...)
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v)
	}
	return 0
}

// date returns the zero time for missing or unparsable values.
func (r row) date(aliases ...string) time.Time {
	return parseTime(r.str(aliases...))
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
