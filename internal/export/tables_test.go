package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/moguls753/football-kpi/internal/kpi"
)

func TestStandingsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standings.csv")
	table := []kpi.Standing{
		{Team: "Arsenal", GamesPlayed: 38, TotalPoints: 89, Averages: map[kpi.KPI]float64{"goals_scored": 2.39}},
		{Team: "Burnley", GamesPlayed: 38, TotalPoints: 24},
	}

	assert.NoError(t, StandingsToCSV(table, path))
	records := readCSV(t, path)

	assert.Equal(t, 3, len(records))
	assert.Equal(t, 4+len(kpi.MatchStats()), len(records[0]))
	assert.Equal(t, []string{"Rank", "Team", "GamesPlayed", "TotalPoints", "avg_goals_scored"}, records[0][:5])
	assert.Equal(t, "avg_possession_against", records[0][len(records[0])-1])
	assert.Equal(t, []string{"1", "Arsenal", "38", "89", "2.39", "0.00"}, records[1][:6])
	assert.Equal(t, []string{"2", "Burnley", "38", "24", "0.00"}, records[2][:5])
}

func TestMatchesToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")
	matches := []kpi.Match{
		{
			GameWeek:   1,
			Opponent:   "Chelsea",
			HomeOrAway: "away",
			Stadium:    "Stamford Bridge",
			Stats: map[kpi.KPI]sql.NullFloat64{
				"goals_scored":   {Float64: 1, Valid: true},
				"possession_for": {Float64: 54.5, Valid: true},
			},
		},
	}

	assert.NoError(t, MatchesToCSV("Arsenal", matches, path))
	records := readCSV(t, path)

	assert.Equal(t, 2, len(records))
	assert.Equal(t, []string{"Team", "GameWeek", "Opponent", "HomeOrAway", "Stadium", "goals_scored", "goals_conceded"}, records[0][:7])
	assert.Equal(t, []string{"Arsenal", "1", "Chelsea", "away", "Stamford Bridge", "1", ""}, records[1][:7])

	row := records[1]
	for i, col := range records[0] {
		if col == "possession_for" {
			assert.Equal(t, "54.5", row[i])
		}
	}
}
