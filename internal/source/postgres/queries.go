package postgres

import (
	"fmt"
	"strings"

	"github.com/moguls753/football-kpi/internal/kpi"
)

// Table and column names cannot be bound as parameters. They are only ever
// built from an integer season id and catalogue KPIs.

// matchTable returns the per-season match table name
func matchTable(seasonID int) string {
	return fmt.Sprintf("match_data_%d_final", seasonID)
}

func teamSeriesQuery(seasonID int, k kpi.KPI) string {
	return fmt.Sprintf(`
		SELECT game_week, %s
		FROM %s
		WHERE team_name = $1
		ORDER BY game_week
	`, k.Column(), matchTable(seasonID))
}

func leagueSeriesQuery(seasonID int, k kpi.KPI, agg kpi.AggregationKind) string {
	return fmt.Sprintf(`
		SELECT game_week, %s(%s)
		FROM %s
		GROUP BY game_week
		ORDER BY game_week
	`, agg.SQLFunc(), k.Column(), matchTable(seasonID))
}

func standingsQuery(seasonID int, stats []kpi.KPI) string {
	var cols strings.Builder
	for _, k := range stats {
		fmt.Fprintf(&cols, ",\n\t\t\tCOALESCE(ROUND(CAST(AVG(%s) AS NUMERIC), 2), 0) AS avg_%s", k.Column(), k.Column())
	}

	return fmt.Sprintf(`
		SELECT
			team_name,
			COUNT(points) AS games_played,
			COALESCE(SUM(points), 0) AS total_points%s
		FROM %s
		GROUP BY team_name
		ORDER BY total_points DESC
	`, cols.String(), matchTable(seasonID))
}

func matchDetailsQuery(seasonID int, stats []kpi.KPI) string {
	var cols strings.Builder
	for _, k := range stats {
		fmt.Fprintf(&cols, ",\n\t\t\t%s", k.Column())
	}

	return fmt.Sprintf(`
		SELECT
			game_week,
			COALESCE(opponent_name, ''),
			COALESCE(homeoraway, ''),
			COALESCE(stadium_name, '')%s
		FROM %s
		WHERE team_name = $1
		ORDER BY game_week
	`, cols.String(), matchTable(seasonID))
}

func teamsQuery(seasonID int) string {
	return fmt.Sprintf("SELECT DISTINCT team_name FROM %s ORDER BY team_name", matchTable(seasonID))
}
