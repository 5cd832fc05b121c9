package kpi

import "database/sql"

// Standing is one row of a season's league table. Averages holds the
// per-match average of every MatchStats KPI.
type Standing struct {
	Team        string          `json:"team"`
	GamesPlayed int             `json:"games_played"`
	TotalPoints float64         `json:"total_points"`
	Averages    map[KPI]float64 `json:"averages"`
}

// Average returns the per-match average of k, 0 when it was not loaded
func (s Standing) Average(k KPI) float64 {
	return s.Averages[k]
}

// Match is one game of a team's match log
type Match struct {
	GameWeek   int                     `json:"game_week"`
	Opponent   string                  `json:"opponent"`
	HomeOrAway string                  `json:"home_or_away"`
	Stadium    string                  `json:"stadium"`
	Stats      map[KPI]sql.NullFloat64 `json:"stats"`
}

// Stat returns the value of k for the match. Invalid when missing.
func (m Match) Stat(k KPI) sql.NullFloat64 {
	return m.Stats[k]
}
