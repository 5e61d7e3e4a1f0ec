package main

import (
	"fmt"
	"strings"

	"github.com/okian/glorypath/internal/report"
	"github.com/spf13/cobra"
)

func newStandingsCmd(opts *options) *cobra.Command {
	cfg := report.Config{}
	var out string

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print a medal table",
		Example: `  report standings --top 10
  report standings --by discipline --medal Gold --format json
  report standings --by athlete --continent Europe --top 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := opts.selection(cmd)
			if err != nil {
				return err
			}
			cat := opts.catalog()
			rows, err := report.Standings(cat.Medals(cmd.Context()), sel, cfg)
			if err != nil {
				return err
			}

			w, closeFn, err := output(cmd, out)
			if err != nil {
				return err
			}
			if err := report.Write(w, rows, cfg.Format); err != nil {
				_ = closeFn()
				return fmt.Errorf("write standings: %w", err)
			}
			return closeFn()
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.By, "by", "country", "grouping: "+strings.Join(report.Groupings(), ", "))
	f.IntVarP(&cfg.Top, "top", "n", 0, "rows to print, 0 for all")
	f.StringVarP(&cfg.Format, "format", "f", report.FormatTable, "output format: table, json or csv")
	f.StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}
