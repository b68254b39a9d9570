package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/fixp/pkg/cmd/cmdutil"
	"github.com/c9s/fixp/pkg/fixedpoint"
)

func init() {
	sweepCmd.Flags().Bool("table", true, "print a table instead of one line per format")
	RootCmd.AddCommand(sweepCmd)
}

var sweepCmd = &cobra.Command{
	Use:          "sweep RAW",
	Short:        "render one raw integer under every fractional-bit count of the storage width",
	Args:         cobra.ExactArgs(1),
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
			reports, err = sweep[int8](args[0])
		case 16:
			reports, err = sweep[int16](args[0])
		case 32:
			reports, err = sweep[int32](args[0])
		case 64:
			reports, err = sweep[int64](args[0])
		}
		if err != nil {
			return err
		}

		writeReports(cmd.OutOrStdout(), fmt.Sprintf("%s on %d bits", args[0], conf.Width), reports, asTable)
		return nil
	},
}

func sweep[T fixedpoint.Storage](arg string) ([]valueReport, error) {
	raw, err := cmdutil.ParseRaw[T](arg)
	if err != nil {
		return nil, err
	}

	width := fixedpoint.QFormat[T]{}.Width()
	reports := make([]valueReport, 0, width)
	for f := uint(0); f < width; f++ {
		q, err := fixedpoint.NewQFormat[T](f)
		if err != nil {
			return nil, err
		}
		reports = append(reports, newValueReport(q.New(raw)))
	}
	return reports, nil
}
