package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/c9s/fixp/pkg/fixedpoint"
	"github.com/c9s/fixp/pkg/style"
)

type valueReport struct {
	Raw            string
	Format         string
	Text           string
	IntegerPart    string
	FractionalPart string
	Exact          string
}

func newValueReport[T fixedpoint.Storage](v fixedpoint.Value[T]) valueReport {
	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}

	return valueReport{
		Raw:            strconv.FormatInt(int64(v.Raw()), 10),
		Format:         v.QFormat().String(),
		Text:           v.String(),
		IntegerPart:    sign + strconv.FormatInt(int64(v.IntegerPart()), 10),
		FractionalPart: fmt.Sprintf("%d/%d", v.FractionalPart(), uint64(1)<<v.FracBits()),
		Exact:          v.Decimal().String(),
	}
}

func (r valueReport) row() table.Row {
	return table.Row{r.Raw, r.Format, r.Text, r.IntegerPart, r.FractionalPart, r.Exact}
}

// writeReports prints one line per report, or a single table when asTable
// is set.
func writeReports(w io.Writer, title string, reports []valueReport, asTable bool) {
	if !asTable {
		for _, r := range reports {
			fmt.Fprintf(w, "%s %s = %s (int %s, frac %s, exact %s)\n",
				r.Raw, r.Format, r.Text, r.IntegerPart, r.FractionalPart, r.Exact)
		}
		return
	}

	color.New(color.FgHiYellow).Fprintf(w, "---- %s ----\n", title)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	if color.NoColor {
		t.SetStyle(*style.NewPlainTableStyle())
	} else {
		t.SetStyle(*style.NewDefaultTableStyle())
	}

	t.AppendHeader(table.Row{"raw", "format", "value", "integer", "fraction", "exact"})
	for _, r := range reports {
		t.AppendRow(r.row())
	}
	t.Render()
}
