package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/moguls753/football-kpi/internal/kpi"
)

const (
	labelWidth  = 18
	columnWidth = 14
)

// Histogram prints one row per shared bin and one frequency column per series.
// The last row counts values that fell outside every bin.
func Histogram(w io.Writer, report *kpi.Report) {
	width := labelWidth + columnWidth*len(report.Order)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "HISTOGRAM - %s (bins from %s)\n", title(report.KPI), report.Primary)
	fmt.Fprintln(w, strings.Repeat("=", width))

	// Header
	fmt.Fprintf(w, "%-*s", labelWidth, "Bin")
	for _, name := range report.Order {
		fmt.Fprintf(w, "%-*s", columnWidth, truncate(name, columnWidth-2))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", width))

	for i, label := range report.Bins.Labels {
		fmt.Fprintf(w, "%-*s", labelWidth, label)
		for _, name := range report.Order {
			fmt.Fprintf(w, "%-*d", columnWidth, report.Histograms[name][i])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("-", width))
	fmt.Fprintf(w, "%-*s", labelWidth, "Excluded")
	for _, name := range report.Order {
		fmt.Fprintf(w, "%-*d", columnWidth, Excluded(report, name))
	}
	fmt.Fprintln(w)
}

// Excluded returns how many values of a series matched no bin
func Excluded(report *kpi.Report, name string) int {
	counted := 0
	for _, c := range report.Histograms[name] {
		counted += c
	}
	return report.Summaries[name].Count - counted
}
