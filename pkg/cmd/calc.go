package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/fixp/pkg/cmd/cmdutil"
	"github.com/c9s/fixp/pkg/fixedpoint"
)

func init() {
	calcCmd.Flags().Bool("table", false, "also print the operands and the result as a table")
	RootCmd.AddCommand(calcCmd)
}

var calcCmd = &cobra.Command{
	Use:   "calc A OP B",
	Short: "combine two raw operands",
	Long: `Combine two operands given as RAW or RAW/FRAC.

OP is one of + - * x / == !=. Addition and subtraction keep the larger
fractional-bit count, multiplication adds the counts and division subtracts
the divisor's count from the dividend's.

== and != only accept operands with the same fractional bits and fail with
a format mismatch otherwise; rescale the raw values first.`,
	Example: `  fixp calc 16/4 + 512/8
  fixp calc 16/4 x 32/4
  fixp calc -- -768/8 / 48/4`,
	Args:         cobra.ExactArgs(3),
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

		a, err := cmdutil.ParseOperand(args[0], conf.FracBits)
		if err != nil {
			return err
		}

		b, err := cmdutil.ParseOperand(args[2], conf.FracBits)
		if err != nil {
			return err
		}

		op := args[1]
		log.Debugf("calc %+v %s %+v with %d-bit storage", a, op, b, conf.Width)

		var line string
		var reports []valueReport
		switch conf.Width {
		case 8:
			line, reports, err = calculate[int8](a, op, b)
		case 16:
			line, reports, err = calculate[int16](a, op, b)
		case 32:
			line, reports, err = calculate[int32](a, op, b)
		case 64:
			line, reports, err = calculate[int64](a, op, b)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), line)
		if asTable {
			writeReports(cmd.OutOrStdout(), "calc", reports, true)
		}
		return nil
	},
}

// calculate evaluates a OP b. Comparisons report "true" or "false" and only
// accept operands with the same fractional bits.
func calculate[T fixedpoint.Storage](a cmdutil.Operand, op string, b cmdutil.Operand) (string, []valueReport, error) {
	x, err := cmdutil.Value[T](a)
	if err != nil {
		return "", nil, err
	}

	y, err := cmdutil.Value[T](b)
	if err != nil {
		return "", nil, err
	}

	var r fixedpoint.Value[T]
	switch op {
	case "+":
		r = x.Add(y)
	case "-":
		r = x.Sub(y)
	case "*", "x":
		r, err = x.TryMul(y)
	case "/":
		r, err = x.TryDiv(y)
	case "==", "!=":
		if x.FracBits() != y.FracBits() {
			return "", nil, errors.Wrapf(fixedpoint.ErrFormatMismatch, "cannot compare %s with %s, rescale first", x.QFormat(), y.QFormat())
		}

		eq := x.Eq(y)
		if op == "!=" {
			eq = !eq
		}
		return strconv.FormatBool(eq), []valueReport{newValueReport(x), newValueReport(y)}, nil
	default:
		return "", nil, errors.Errorf("unsupported operator %q", op)
	}
	if err != nil {
		return "", nil, err
	}

	line := fmt.Sprintf("%s %s %s = %s (%s, raw %d)", x, op, y, r, r.QFormat(), r)
	return line, []valueReport{newValueReport(x), newValueReport(y), newValueReport(r)}, nil
}
