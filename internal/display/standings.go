package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/moguls753/football-kpi/internal/kpi"
)

// Standings prints a season's league table with one average column per KPI
// in columns
func Standings(w io.Writer, league string, season int, table []kpi.Standing, columns []kpi.KPI) {
	width := 46 + columnWidth*len(columns)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "STANDINGS - %s %d\n", league, season)
	fmt.Fprintln(w, strings.Repeat("=", width))

	fmt.Fprintf(w, "%-4s%-24s%-8s%-10s", "#", "Team", "GP", "Points")
	for _, k := range columns {
		fmt.Fprintf(w, "%-*s", columnWidth, truncate("Avg "+k.Title(), columnWidth-2))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", width))

	for i, st := range table {
		fmt.Fprintf(w, "%-4d%-24s%-8d%-10.0f",
			i+1,
			truncate(st.Team, 22),
			st.GamesPlayed,
			st.TotalPoints,
		)
		for _, k := range columns {
			fmt.Fprintf(w, "%-*.2f", columnWidth, st.Average(k))
		}
		fmt.Fprintln(w)
	}
}

// MatchDetails prints a team's match log, one row per game week
func MatchDetails(w io.Writer, team, league string, season int, matches []kpi.Match, columns []kpi.KPI) {
	width := 62 + columnWidth*len(columns)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "MATCHES - %s, %s %d\n", team, league, season)
	fmt.Fprintln(w, strings.Repeat("=", width))

	fmt.Fprintf(w, "%-6s%-24s%-8s%-24s", "GW", "Opponent", "H/A", "Stadium")
	for _, k := range columns {
		fmt.Fprintf(w, "%-*s", columnWidth, truncate(k.Title(), columnWidth-2))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", width))

	for _, m := range matches {
		fmt.Fprintf(w, "%-6d%-24s%-8s%-24s",
			m.GameWeek,
			truncate(m.Opponent, 22),
			m.HomeOrAway,
			truncate(m.Stadium, 22),
		)
		for _, k := range columns {
			v := m.Stat(k)
			if !v.Valid {
				fmt.Fprintf(w, "%-*s", columnWidth, "-")
				continue
			}
			fmt.Fprintf(w, "%-*.2f", columnWidth, v.Float64)
		}
		fmt.Fprintln(w)
	}
}

// List prints a titled list of names, one per line
func List(w io.Writer, heading string, items []string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s (%d)\n", heading, len(items))
	fmt.Fprintln(w, strings.Repeat("=", 50))
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}
