package export

import (
	"fmt"
	"strconv"

	"github.com/moguls753/football-kpi/internal/kpi"
)

// StandingsToCSV exports the league table with one average column per match stat
func StandingsToCSV(table []kpi.Standing, outputPath string) error {
	stats := kpi.MatchStats()

	header := []string{"Rank", "Team", "GamesPlayed", "TotalPoints"}
	for _, k := range stats {
		header = append(header, "avg_"+k.Column())
	}

	rows := make([][]string, 0, len(table))
	for i, st := range table {
		row := []string{
			strconv.Itoa(i + 1),
			st.Team,
			strconv.Itoa(st.GamesPlayed),
			strconv.FormatFloat(st.TotalPoints, 'f', -1, 64),
		}
		for _, k := range stats {
			row = append(row, fmt.Sprintf("%.2f", st.Average(k)))
		}
		rows = append(rows, row)
	}

	return writeCSV(outputPath, header, rows)
}

// MatchesToCSV exports a team's match log. Missing stats are empty cells.
func MatchesToCSV(team string, matches []kpi.Match, outputPath string) error {
	stats := kpi.MatchStats()

	header := []string{"Team", "GameWeek", "Opponent", "HomeOrAway", "Stadium"}
	for _, k := range stats {
		header = append(header, k.Column())
	}

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		row := []string{team, strconv.Itoa(m.GameWeek), m.Opponent, m.HomeOrAway, m.Stadium}
		for _, k := range stats {
			v := m.Stat(k)
			if !v.Valid {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(v.Float64, 'f', -1, 64))
		}
		rows = append(rows, row)
	}

	return writeCSV(outputPath, header, rows)
}
