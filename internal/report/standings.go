package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
	"github.com/okian/glorypath/internal/domain/standings"
)

// Row is one ranked line of a standings report.
type Row struct {
	Rank   int    `json:"rank"`
	Key    string `json:"key"`
	Label  string `json:"label"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
	Total  int    `json:"total"`
}

// Standings ranks the medals passing sel, grouped by cfg.By.
func Standings(medals []model.Medal, sel filter.Selection, cfg Config) ([]Row, error) {
	key, err := grouping(cfg.By)
	if err != nil {
		return nil, err
	}
	top := standings.Top(standings.Group(filter.Apply(medals, sel), key), cfg.Top)

	rows := make([]Row, 0, len(top))
	for i, t := range top {
		rows = append(rows, Row{
			Rank:   i + 1,
			Key:    t.Key,
			Label:  label(cfg.By, t.Key),
			Gold:   t.Gold,
			Silver: t.Silver,
			Bronze: t.Bronze,
			Total:  t.Total,
		})
	}
	return rows, nil
}

func label(by, k string) string {
	switch strings.ToLower(strings.TrimSpace(by)) {
	case "country":
		return reference.Label(k)
	case "athlete":
		name, noc := standings.SplitAthleteKey(k)
		return name + " (" + noc + ")"
	}
	return k
}

// Write renders rows in format.
func Write(w io.Writer, rows []Row, format string) error {
	switch format {
	case "", FormatTable:
		return writeTable(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatCSV:
		return writeCSV(w, rows)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\t\tGold\tSilver\tBronze\tTotal\t")
	var sum standings.Tally
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n", r.Rank, r.Label,
			humanize.Comma(int64(r.Gold)), humanize.Comma(int64(r.Silver)),
			humanize.Comma(int64(r.Bronze)), humanize.Comma(int64(r.Total)))
		sum.Gold += r.Gold
		sum.Silver += r.Silver
		sum.Bronze += r.Bronze
		sum.Total += r.Total
	}
	fmt.Fprintf(tw, "\t%s\t%s\t%s\t%s\t%s\t\n", "all",
		humanize.Comma(int64(sum.Gold)), humanize.Comma(int64(sum.Silver)),
		humanize.Comma(int64(sum.Bronze)), humanize.Comma(int64(sum.Total)))
	return tw.Flush()
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "key", "gold", "silver", "bronze", "total"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Rank), r.Key, strconv.Itoa(r.Gold),
			strconv.Itoa(r.Silver), strconv.Itoa(r.Bronze), strconv.Itoa(r.Total),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
