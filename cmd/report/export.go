package main

import (
	"fmt"
	"strings"

	service "github.com/okian/glorypath/internal/app"
	"github.com/okian/glorypath/pkg/logger"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:       "export NAME",
		Short:     "Write a dashboard CSV export: " + strings.Join(service.Exports(), ", "),
		Example:   "  report export medals --medal Gold -o gold.csv",
		Args:      cobra.ExactArgs(1),
		ValidArgs: service.Exports(),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := opts.selection(cmd)
			if err != nil {
				return err
			}
			cat := opts.catalog()

			w, closeFn, err := output(cmd, out)
			if err != nil {
				return err
			}
			n, err := opts.service(cat).Export(cmd.Context(), w, args[0], sel)
			if err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			logger.Get().Info(cmd.Context(), "export written",
				logger.String("export", args[0]),
				logger.Int("rows", n),
				logger.String("output", out),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}
