package kpi

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestLookupKPI(t *testing.T) {
	k, err := LookupKPI(" Corners_For ")
	assert.NoError(t, err)
	assert.Equal(t, KPI("corners_for"), k)
	assert.Equal(t, "corners_for", k.Column())

	_, err = LookupKPI("corners_for; DROP TABLE teams")
	assert.True(t, errors.Is(err, ErrUnknownKPI))
}

func TestKPITitle(t *testing.T) {
	assert.Equal(t, "Corners For", KPI("corners_for").Title())
	assert.Equal(t, "Shots On Target Against", KPI("shotsontarget_against").Title())
	assert.Equal(t, "Shots Off Target For", KPI("shotsofftarget_for").Title())
	assert.Equal(t, "Yellow Cards Against", KPI("yellow_cards_against").Title())
	assert.Equal(t, "Points", KPI("points").Title())
}

func TestMatchStats(t *testing.T) {
	stats := MatchStats()

	assert.Equal(t, len(Catalogue)-1, len(stats))
	assert.Equal(t, KPI("goals_scored"), stats[0])
	assert.Equal(t, KPI("possession_against"), stats[len(stats)-1])
	for _, k := range stats {
		assert.True(t, k != Points)
	}
}

func TestStandingAverage(t *testing.T) {
	st := Standing{Team: "Arsenal", Averages: map[KPI]float64{"corners_for": 6.42}}

	assert.Equal(t, 6.42, st.Average("corners_for"))
	assert.Equal(t, 0.0, st.Average("fouls_for"))
}
