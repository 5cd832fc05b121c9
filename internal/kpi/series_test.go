package kpi

import (
	"database/sql"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestSeriesValues(t *testing.T) {
	s := Series{
		Name: "Spurs",
		Points: []Point{
			{GameWeek: 1, Value: sql.NullFloat64{Float64: 3, Valid: true}},
			{GameWeek: 2},
			{GameWeek: 3, Value: sql.NullFloat64{Float64: math.NaN(), Valid: true}},
			{GameWeek: 4, Value: sql.NullFloat64{Float64: 0, Valid: true}},
			{GameWeek: 5, Value: sql.NullFloat64{Float64: math.Inf(1), Valid: true}},
		},
	}

	assert.Equal(t, []float64{3, 0}, s.Values())
	assert.Equal(t, 3, s.Gaps())
}

func TestNewSeries(t *testing.T) {
	s := NewSeries("Villa", 1, math.NaN(), 2, math.Inf(-1))

	assert.Equal(t, 4, len(s.Points))
	assert.Equal(t, 3, s.Points[2].GameWeek)
	assert.False(t, s.Points[1].Value.Valid)
	assert.False(t, s.Points[3].Value.Valid)
	assert.Equal(t, []float64{1, 2}, s.Values())
}

func TestSeriesID(t *testing.T) {
	a := NewSeries("Liverpool", 1)
	b := NewSeries("Liverpool", 9, 9)
	c := NewSeries("Everton", 1)

	assert.Equal(t, a.ID(), b.ID())
	assert.True(t, a.ID() != c.ID())
}
