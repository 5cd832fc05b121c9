package statistics

import (
	"errors"
	"fmt"
	"math"
)

// DefaultBinCount is the number of histogram bins derived from a primary series
const DefaultBinCount = 5

var (
	// ErrEmptyPrimary is returned when bins are requested for a series without values.
	ErrEmptyPrimary = errors.New("primary series required and non-empty")

	// ErrInvalidBinCount is returned for a bin count below one.
	ErrInvalidBinCount = errors.New("bin count must be at least 1")
)

// BinSet is the shared set of histogram bins derived from one primary series.
// Edges has one more entry than Labels.
type BinSet struct {
	Edges  []float64 `json:"edges"`
	Labels []string  `json:"labels"`
}

// Len returns the number of bins
func (b BinSet) Len() int {
	return len(b.Labels)
}

// Degenerate reports whether the set collapsed to a single bin around a constant
func (b BinSet) Degenerate() bool {
	return len(b.Labels) == 1 && len(b.Edges) == 2 && b.Edges[0] == b.Edges[1]
}

// DeriveBins splits the range of primary into binCount equal-width bins.
//
// A constant primary series yields one bin whose edges both equal the constant.
// The last edge is pinned to the maximum so the largest value always lands
// in the last bin.
func DeriveBins(primary []float64, binCount int) (BinSet, error) {
	if binCount < 1 {
		return BinSet{}, fmt.Errorf("%w: got %d", ErrInvalidBinCount, binCount)
	}

	clean := Clean(primary)
	if len(clean) == 0 {
		return BinSet{}, ErrEmptyPrimary
	}

	minV, maxV := clean[0], clean[0]
	for _, v := range clean[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	if minV == maxV {
		return BinSet{
			Edges:  []float64{minV, maxV},
			Labels: []string{fmt.Sprintf("%.2f", minV)},
		}, nil
	}

	width := (maxV - minV) / float64(binCount)
	if width == 0 {
		// max-min can underflow when divided
		width = 1
	}

	edges := make([]float64, binCount+1)
	for i := range edges {
		edges[i] = minV + float64(i)*width
	}
	if edges[binCount] < maxV {
		edges[binCount] = maxV
	}

	labels := make([]string, binCount)
	for i := 0; i < binCount; i++ {
		if i == binCount-1 {
			labels[i] = fmt.Sprintf("%.2f - %.2f", edges[i], edges[i+1])
		} else {
			labels[i] = fmt.Sprintf("%.2f - <%.2f", edges[i], edges[i+1])
		}
	}

	return BinSet{Edges: edges, Labels: labels}, nil
}

// BinIndex returns the bin v falls into, or -1 when no bin matches.
// Bins are half-open [lo, hi) except the last, which is closed [lo, hi].
func (b BinSet) BinIndex(v float64) int {
	if math.IsNaN(v) {
		return -1
	}

	n := b.Len()
	for i := 0; i < n; i++ {
		lo, hi := b.Edges[i], b.Edges[i+1]
		if i == n-1 {
			if lo <= v && v <= hi {
				return i
			}
			continue
		}
		if lo <= v && v < hi {
			return i
		}
	}
	return -1
}

// Classify counts values per bin. Values outside every bin are dropped, so
// the counts may sum to less than len(values) for comparison series.
func Classify(values []float64, bins BinSet) []int {
	counts := make([]int, bins.Len())
	for _, v := range values {
		if idx := bins.BinIndex(v); idx >= 0 {
			counts[idx]++
		}
	}
	return counts
}
