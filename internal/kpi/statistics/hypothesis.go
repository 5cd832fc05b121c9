package statistics

import (
	"math"
	"sort"
)

// SignificanceLevel is the p-value threshold below which two series are
// reported as significantly different.
const SignificanceLevel = 0.05

// MannWhitneyU performs a Mann-Whitney U test on two groups
// Returns the p-value (approximate, using normal approximation)
// H0: The two groups come from the same distribution
func MannWhitneyU(groupA, groupB []float64) float64 {
	if len(groupA) == 0 || len(groupB) == 0 {
		return 1.0
	}

	n1 := len(groupA)
	n2 := len(groupB)

	type rankItem struct {
		value    float64
		inGroupA bool
	}

	combined := make([]rankItem, 0, n1+n2)
	for _, v := range groupA {
		combined = append(combined, rankItem{v, true})
	}
	for _, v := range groupB {
		combined = append(combined, rankItem{v, false})
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].value < combined[j].value
	})

	// Assign ranks, averaging over ties
	ranks := make([]float64, len(combined))
	for i := 0; i < len(combined); {
		j := i
		for j < len(combined) && combined[j].value == combined[i].value {
			j++
		}
		avgRank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			ranks[k] = avgRank
		}
		i = j
	}

	rankSumA := 0.0
	for i, item := range combined {
		if item.inGroupA {
			rankSumA += ranks[i]
		}
	}

	U1 := rankSumA - float64(n1*(n1+1))/2.0
	U2 := float64(n1*n2) - U1
	U := math.Min(U1, U2)

	meanU := float64(n1*n2) / 2.0
	stdU := math.Sqrt(float64(n1*n2*(n1+n2+1)) / 12.0)

	if stdU == 0 {
		return 1.0
	}

	z := (U - meanU) / stdU

	// Two-tailed
	return 2.0 * normalCDF(-math.Abs(z))
}

// normalCDF approximates the standard normal cumulative distribution function
func normalCDF(z float64) float64 {
	return 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
}

// Comparison describes how a comparison series differs from the primary one
type Comparison struct {
	MedianDiffPct float64 `json:"median_diff_pct"` // Percentage difference in medians
	PValue        float64 `json:"p_value"`         // Mann-Whitney U p-value
	HasOverlap    bool    `json:"has_overlap"`     // Whether ranges overlap
	Significant   bool    `json:"significant"`
}

// Compare tests the comparison series b against the primary series a
func Compare(a, b Summary) Comparison {
	medianA := Median(a.Values)
	medianB := Median(b.Values)

	medianDiff := 0.0
	if medianA != 0 {
		medianDiff = ((medianB - medianA) / math.Abs(medianA)) * 100
	}

	pValue := MannWhitneyU(a.Values, b.Values)

	return Comparison{
		MedianDiffPct: medianDiff,
		PValue:        pValue,
		HasOverlap:    HasOverlap(a, b),
		Significant:   pValue < SignificanceLevel,
	}
}

// Stars renders the conventional significance markers for a p-value.
func (c Comparison) Stars() string {
	switch {
	case !c.HasOverlap:
		return "No overlap"
	case c.PValue < 0.001:
		return "*** (p<0.001)"
	case c.PValue < 0.01:
		return "** (p<0.01)"
	case c.PValue < SignificanceLevel:
		return "* (p<0.05)"
	default:
		return "n.s."
	}
}
