package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/fixp/pkg/cmd/cmdutil"
	"github.com/c9s/fixp/pkg/fixedpoint"
)

func init() {
	renderCmd.Flags().Bool("table", false, "print a table instead of one line per value")
	RootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render RAW...",
	Short: "render raw integers in the configured format",
	Example: `  fixp render --width 32 --frac 8 384
  fixp render --frac 4 -- -24 0x18`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := LoadConfig()
		if err != nil {
			return err
		}

		asTable, err := cmd.Flags().GetBool("table")
		if err != nil {
			return err
		}

		var reports []valueReport
		switch conf.Width {
		case 8:
			reports, err = renderRaws[int8](conf.FracBits, args)
		case 16:
			reports, err = renderRaws[int16](conf.FracBits, args)
		case 32:
			reports, err = renderRaws[int32](conf.FracBits, args)
		case 64:
			reports, err = renderRaws[int64](conf.FracBits, args)
		}
		if err != nil {
			return err
		}

		log.Debugf("rendered %d values with %d-bit storage", len(reports), conf.Width)
		writeReports(cmd.OutOrStdout(), "render", reports, asTable)
		return nil
	},
}

func renderRaws[T fixedpoint.Storage](fracBits uint, args []string) ([]valueReport, error) {
	q, err := fixedpoint.NewQFormat[T](fracBits)
	if err != nil {
		return nil, err
	}

	var reports []valueReport
	for _, arg := range args {
		raw, err := cmdutil.ParseRaw[T](arg)
		if err != nil {
			return nil, err
		}
		reports = append(reports, newValueReport(q.New(raw)))
	}
	return reports, nil
}
