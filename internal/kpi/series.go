package kpi

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/moguls753/football-kpi/internal/kpi/statistics"
)

// seriesNamespace scopes the name-based series IDs written to exports
var seriesNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("football-kpi/series"))

// Point is one game-week observation. An invalid Value is a gap.
type Point struct {
	GameWeek int             `json:"game_week"`
	Value    sql.NullFloat64 `json:"value"`
}

// Series is the per-game-week KPI history of one team or league
type Series struct {
	Name   string
	Points []Point
}

// NewSeries builds a series from values, numbering game weeks from 1.
// NaN and ±Inf become gaps.
func NewSeries(name string, values ...float64) Series {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			GameWeek: i + 1,
			Value:    sql.NullFloat64{Float64: v, Valid: statistics.Finite(v)},
		}
	}
	return Series{Name: name, Points: points}
}

// Values returns the present, finite values in game-week order
func (s Series) Values() []float64 {
	out := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		if !p.Value.Valid || !statistics.Finite(p.Value.Float64) {
			continue
		}
		out = append(out, p.Value.Float64)
	}
	return out
}

// Gaps returns how many points are missing a value
func (s Series) Gaps() int {
	return len(s.Points) - len(s.Values())
}

// ID returns a stable identifier derived from the series name.
// The same name always maps to the same ID across runs.
func (s Series) ID() uuid.UUID {
	return uuid.NewSHA1(seriesNamespace, []byte(s.Name))
}
