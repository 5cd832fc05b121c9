package kpi

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestParseAggregationKind(t *testing.T) {
	tests := []struct {
		in      string
		want    AggregationKind
		wantErr bool
	}{
		{in: "avg", want: Average},
		{in: "Average", want: Average},
		{in: " total ", want: Total},
		{in: "SUM", want: Total},
		{in: "median", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAggregationKind(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownAggregation))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregationKindRoundTrip(t *testing.T) {
	for _, kind := range []AggregationKind{Average, Total} {
		got, err := ParseAggregationKind(kind.String())
		assert.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	assert.Equal(t, "AVG", Average.SQLFunc())
	assert.Equal(t, "SUM", Total.SQLFunc())
	assert.Equal(t, "AggregationKind(7)", AggregationKind(7).String())
}
