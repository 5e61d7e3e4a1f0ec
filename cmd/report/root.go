package main

import (
	"io"
	"os"

	"github.com/okian/glorypath/internal/adapters/dataset"
	service "github.com/okian/glorypath/internal/app"
	"github.com/okian/glorypath/internal/config"
	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/pkg/logger"
	"github.com/spf13/cobra"
)

// options are the flags shared by every subcommand.
type options struct {
	dataDir    string
	logLevel   string
	countries  []string
	sports     []string
	continents []string
	medals     []string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "report",
		Short: "Paris 2024 medal reports from the dashboard CSV tables",
		Long: `report reads the dashboard CSV tables and prints medal standings,
checks them against the published medal table, or writes the dashboard
CSV exports. Filters match the dashboard query parameters.`,
		PersistentPreRunE: opts.bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.dataDir, "data-dir", "d", "", "directory with the CSV tables (default from config)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	pf.StringSliceVar(&opts.countries, "country", nil, "NOC codes to keep")
	pf.StringSliceVar(&opts.sports, "sport", nil, "disciplines to keep")
	pf.StringSliceVar(&opts.continents, "continent", nil, "continents to keep")
	pf.StringSliceVar(&opts.medals, "medal", nil, "medal tiers to keep; an empty value keeps all")

	root.AddCommand(newStandingsCmd(opts), newExportCmd(opts), newVerifyCmd(opts))
	return root
}

// bootstrap loads configuration and logging before any subcommand runs.
func (o *options) bootstrap(cmd *cobra.Command, _ []string) error {
	if err := logger.Init(logger.WithOutput(cmd.ErrOrStderr())); err != nil {
		return err
	}
	if err := logger.SetLevelString(o.logLevel); err != nil {
		return err
	}

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	o.cfg = cfg
	return nil
}

func (o *options) selection(cmd *cobra.Command) (filter.Selection, error) {
	return filter.Parse(filter.Values{
		Countries:  o.countries,
		Sports:     o.sports,
		Continents: o.continents,
		Medals:     o.medals,
		MedalsSet:  cmd.Flags().Changed("medal"),
	})
}

func (o *options) catalog() *dataset.Catalog {
	return dataset.New(o.cfg.DataDir, dataset.WithReferenceDate(o.cfg.Reference()))
}

func (o *options) service(tables service.Tables) *service.Service {
	return service.New(service.WithTables(tables), service.WithDataDir(o.cfg.DataDir))
}

// output opens path for writing, or returns stdout when path is empty or "-".
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
