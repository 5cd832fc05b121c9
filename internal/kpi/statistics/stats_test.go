package statistics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		wantMean   float64
		wantMedian float64
		wantMode   []float64
	}{
		{
			name:       "single mode",
			values:     []float64{5, 5, 5},
			wantMean:   5,
			wantMedian: 5,
			wantMode:   []float64{5},
		},
		{
			name:       "tied modes sorted ascending",
			values:     []float64{2, 2, 1, 1},
			wantMean:   1.5,
			wantMedian: 1.5,
			wantMode:   []float64{1, 2},
		},
		{
			name:       "odd length median",
			values:     []float64{2, 4, 4, 6, 8},
			wantMean:   4.8,
			wantMedian: 4,
			wantMode:   []float64{4},
		},
		{
			name:       "all distinct values tie",
			values:     []float64{3, 1, 2},
			wantMean:   2,
			wantMedian: 2,
			wantMode:   []float64{1, 2, 3},
		},
		{
			name:       "mean rounded to two decimals",
			values:     []float64{1, 1, 2},
			wantMean:   1.33,
			wantMedian: 1,
			wantMode:   []float64{1},
		},
		{
			name:       "NaN entries discarded",
			values:     []float64{math.NaN(), 3, 3, math.NaN(), 6},
			wantMean:   4,
			wantMedian: 3,
			wantMode:   []float64{3},
		},
		{
			name:       "infinities discarded",
			values:     []float64{math.Inf(1), 2, 2, math.Inf(-1), 5},
			wantMean:   3,
			wantMedian: 2,
			wantMode:   []float64{2},
		},
		{
			name:       "tied values rounding to the same number reported once",
			values:     []float64{1.001, 1.001, 1.004, 1.004},
			wantMean:   1,
			wantMedian: 1,
			wantMode:   []float64{1},
		},
		{
			name:       "negative values",
			values:     []float64{-1.5, -1.5, 0.5},
			wantMean:   -0.83,
			wantMedian: -1.5,
			wantMode:   []float64{-1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.values)

			mean, ok := got.Mean.Float()
			assert.True(t, ok)
			assert.Equal(t, tt.wantMean, mean)

			median, ok := got.Median.Float()
			assert.True(t, ok)
			assert.Equal(t, tt.wantMedian, median)

			assert.Equal(t, tt.wantMode, got.Mode.Values())
			assert.Equal(t, len(tt.wantMode) > 1, got.Mode.IsTie())
		})
	}
}

func TestDescribeEmpty(t *testing.T) {
	for _, values := range [][]float64{nil, {}, {math.NaN(), math.NaN()}, {math.Inf(1), math.Inf(-1)}} {
		got := Describe(values)

		assert.False(t, got.Mean.IsAvailable())
		assert.False(t, got.Median.IsAvailable())
		assert.False(t, got.Mode.IsAvailable())
		assert.Equal(t, NotAvailable, got.Mean.String())
		assert.Equal(t, NotAvailable, got.Median.String())
		assert.Equal(t, NotAvailable, got.Mode.String())
	}
}

func TestDescribeSingleModeValue(t *testing.T) {
	got := Describe([]float64{5, 5, 5})

	mode, ok := got.Mode.Single()
	assert.True(t, ok)
	assert.Equal(t, 5.0, mode)

	tied := Describe([]float64{1, 1, 2, 2})
	_, ok = tied.Mode.Single()
	assert.False(t, ok)
	assert.Equal(t, []float64{1.0, 2.0}, tied.Mode.Values())
}

func TestDescriptiveJSON(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{
			name:   "single mode is a number",
			values: []float64{5, 5, 5},
			want:   `{"mean":5,"median":5,"mode":5}`,
		},
		{
			name:   "tied mode is a list",
			values: []float64{1, 1, 2, 2},
			want:   `{"mean":1.5,"median":1.5,"mode":[1,2]}`,
		},
		{
			name:   "empty series is N/A",
			values: nil,
			want:   `{"mean":"N/A","median":"N/A","mode":"N/A"}`,
		},
		{
			name:   "infinite series is N/A",
			values: []float64{math.Inf(1), math.Inf(-1)},
			want:   `{"mean":"N/A","median":"N/A","mode":"N/A"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(Describe(tt.values))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "4.00", Describe([]float64{4, 4, 1}).Mode.String())
	assert.Equal(t, "[1.00, 2.00]", Describe([]float64{1, 2}).Mode.String())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.35, Round(2.345000001))
	assert.Equal(t, 0.13, Round(0.125))
	assert.Equal(t, -0.13, Round(-0.125))
	assert.Equal(t, 4.8, Round(4.8))
}

func TestSummarize(t *testing.T) {
	got := Summarize([]float64{6, 2, math.NaN(), 4})

	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 2.0, got.Min)
	assert.Equal(t, 6.0, got.Max)
	assert.Equal(t, 2.0, got.StdDev)
	assert.Equal(t, 50.0, got.CV)
	assert.Equal(t, []float64{2, 4, 6}, got.Values)

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.Count)
	assert.Nil(t, empty.Values)
}

func TestHasOverlap(t *testing.T) {
	a := Summarize([]float64{1, 5})
	b := Summarize([]float64{4, 9})
	c := Summarize([]float64{10, 12})

	assert.True(t, HasOverlap(a, b))
	assert.False(t, HasOverlap(a, c))
	assert.False(t, HasOverlap(a, Summarize(nil)))
}
