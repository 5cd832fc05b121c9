package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/moguls753/football-kpi/internal/kpi"
)

const nameWidth = 20

// Statistics prints mean, median, mode and spread for every series of the report
func Statistics(w io.Writer, report *kpi.Report) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 100))
	fmt.Fprintf(w, "%s - Statistical Summary (%d series)\n", title(report.KPI), len(report.Order))
	fmt.Fprintln(w, strings.Repeat("=", 100))

	fmt.Fprintln(w, "┌──────────────────────┬──────────┬──────────┬──────────────────┬──────────┬──────────┬──────────┬────────┐")
	fmt.Fprintln(w, "│ Series               │ Mean     │ Median   │ Mode             │ StdDev   │ Min      │ Max      │ CV %   │")
	fmt.Fprintln(w, "├──────────────────────┼──────────┼──────────┼──────────────────┼──────────┼──────────┼──────────┼────────┤")

	for _, name := range report.Order {
		stats := report.Stats[name]
		summary := report.Summaries[name]

		spread := []string{"N/A", "N/A", "N/A", "N/A"}
		if summary.Count > 0 {
			spread = []string{
				fmt.Sprintf("%.2f", summary.StdDev),
				fmt.Sprintf("%.2f", summary.Min),
				fmt.Sprintf("%.2f", summary.Max),
				fmt.Sprintf("%.1f", summary.CV),
			}
		}

		fmt.Fprintf(w, "│ %-20s │ %8s │ %8s │ %-16s │ %8s │ %8s │ %8s │ %6s │\n",
			truncate(name, nameWidth),
			stats.Mean,
			stats.Median,
			truncate(stats.Mode.String(), 16),
			spread[0],
			spread[1],
			spread[2],
			spread[3],
		)
	}

	fmt.Fprintln(w, "└──────────────────────┴──────────┴──────────┴──────────────────┴──────────┴──────────┴──────────┴────────┘")
}

// Comparisons prints how every comparison series differs from the primary one
func Comparisons(w io.Writer, report *kpi.Report) {
	names := report.ComparisonNames()
	if len(names) == 0 {
		return
	}

	fmt.Fprintf(w, "\nStatistical Comparisons (vs %s):\n", strings.ToUpper(truncate(report.Primary, nameWidth)))
	fmt.Fprintln(w, "┌──────────────────────┬─────────────┬──────────┬───────────┬───────────────┐")
	fmt.Fprintln(w, "│ Series               │ Median Diff │ p-value  │ Overlap?  │ Significant?  │")
	fmt.Fprintln(w, "├──────────────────────┼─────────────┼──────────┼───────────┼───────────────┤")

	for _, name := range names {
		comp, ok := report.Comparisons[name]
		if !ok {
			fmt.Fprintf(w, "│ %-20s │ %11s │ %8s │ %-9s │ %-13s │\n", truncate(name, nameWidth), "N/A", "N/A", "N/A", "no data")
			continue
		}

		overlap := "No"
		if comp.HasOverlap {
			overlap = "Yes"
		}

		fmt.Fprintf(w, "│ %-20s │ %+10.1f%% │ %8.4f │ %-9s │ %-13s │\n",
			truncate(name, nameWidth),
			comp.MedianDiffPct,
			comp.PValue,
			overlap,
			comp.Stars(),
		)
	}

	fmt.Fprintln(w, "└──────────────────────┴─────────────┴──────────┴───────────┴───────────────┘")
}

func title(name string) string {
	if k, err := kpi.LookupKPI(name); err == nil {
		return k.Title()
	}
	return name
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
