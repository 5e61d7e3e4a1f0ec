package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/okian/glorypath/internal/report"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check medal rows against the published medal table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := opts.catalog()
			ctx := cmd.Context()
			medals := cat.Medals(ctx)
			mismatches := report.Verify(medals, cat.MedalTotals(ctx))

			w := cmd.OutOrStdout()
			for _, m := range mismatches {
				fmt.Fprintf(w, "%s: medals.csv %d/%d/%d, medals_total.csv %d/%d/%d\n", m.NOC,
					m.Computed.Gold, m.Computed.Silver, m.Computed.Bronze,
					m.Published.Gold, m.Published.Silver, m.Published.Bronze)
			}
			if len(mismatches) > 0 {
				return fmt.Errorf("%d countries disagree", len(mismatches))
			}
			fmt.Fprintf(w, "ok: %s medals match the published table\n", humanize.Comma(int64(len(medals))))
			return nil
		},
	}
}
