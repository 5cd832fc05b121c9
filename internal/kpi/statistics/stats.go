package statistics

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// NotAvailable is printed and serialized in place of a statistic that could
// not be computed because the series had no usable values.
const NotAvailable = "N/A"

// Value is a rounded statistic that may be unavailable.
// The zero Value is unavailable, which keeps it distinct from 0.00.
type Value struct {
	v  float64
	ok bool
}

// Available wraps f as a present statistic.
func Available(f float64) Value {
	return Value{v: f, ok: true}
}

// Float returns the statistic and whether it is available
func (v Value) Float() (float64, bool) {
	return v.v, v.ok
}

// IsAvailable reports whether the statistic was computed
func (v Value) IsAvailable() bool {
	return v.ok
}

func (v Value) String() string {
	if !v.ok {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", v.v)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(v.v)
}

// Mode is the most frequent value of a series, or every tied value in
// ascending order when several share the highest count.
type Mode struct {
	values []float64
}

// Values returns the mode values in ascending order. Nil when unavailable.
func (m Mode) Values() []float64 {
	if len(m.values) == 0 {
		return nil
	}
	out := make([]float64, len(m.values))
	copy(out, m.values)
	return out
}

// IsAvailable reports whether a mode was computed
func (m Mode) IsAvailable() bool {
	return len(m.values) > 0
}

// IsTie reports whether more than one value shares the highest count
func (m Mode) IsTie() bool {
	return len(m.values) > 1
}

// Single returns the mode when exactly one value won.
func (m Mode) Single() (float64, bool) {
	if len(m.values) != 1 {
		return 0, false
	}
	return m.values[0], true
}

func (m Mode) String() string {
	switch len(m.values) {
	case 0:
		return NotAvailable
	case 1:
		return fmt.Sprintf("%.2f", m.values[0])
	}
	s := "["
	for i, v := range m.values {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.2f", v)
	}
	return s + "]"
}

func (m Mode) MarshalJSON() ([]byte, error) {
	switch len(m.values) {
	case 0:
		return json.Marshal(NotAvailable)
	case 1:
		return json.Marshal(m.values[0])
	}
	return json.Marshal(m.values)
}

// Descriptive holds mean, median and mode for one series
type Descriptive struct {
	Mean   Value `json:"mean"`
	Median Value `json:"median"`
	Mode   Mode  `json:"mode"`
}

// Round rounds to 2 decimal places, halves away from zero.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

// Finite reports whether v is neither NaN nor an infinity
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Clean returns the values that are usable numbers, dropping NaN and ±Inf.
func Clean(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !Finite(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Describe computes mean, median and mode of values.
// Non-finite entries are ignored; an empty input yields N/A for every field.
func Describe(values []float64) Descriptive {
	clean := Clean(values)
	if len(clean) == 0 {
		return Descriptive{}
	}

	return Descriptive{
		Mean:   Available(Round(Mean(clean))),
		Median: Available(Round(Median(clean))),
		Mode:   Mode{values: modes(clean)},
	}
}

// modes groups by exact equality and returns every value with the highest
// count, rounded and sorted ascending. Tied values that round to the same
// number are reported once.
func modes(values []float64) []float64 {
	counts := make(map[float64]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}

	var tied []float64
	for v, c := range counts {
		if c == best {
			tied = append(tied, v)
		}
	}
	sort.Float64s(tied)

	out := tied[:0]
	for _, v := range tied {
		r := Round(v)
		if len(out) > 0 && out[len(out)-1] == r {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Median calculates the median of a slice of float64 values
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}

// Mean calculates the arithmetic mean
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev calculates the sample standard deviation
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(values)-1))
}

// CV calculates the coefficient of variation (stddev/mean * 100)
func CV(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return (StdDev(values) / math.Abs(mean)) * 100
}

// Summary holds the spread of a series next to its descriptive stats
type Summary struct {
	Count  int       `json:"count"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	StdDev float64   `json:"std_dev"`
	CV     float64   `json:"cv"` // Coefficient of Variation (%)
	Values []float64 `json:"-"`
}

// Summarize computes the spread measures of values, ignoring non-finite ones.
func Summarize(values []float64) Summary {
	clean := Clean(values)
	if len(clean) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(clean))
	copy(sorted, clean)
	sort.Float64s(sorted)

	return Summary{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: StdDev(clean),
		CV:     CV(clean),
		Values: sorted,
	}
}

// HasOverlap checks if two value ranges overlap
func HasOverlap(a, b Summary) bool {
	if a.Count == 0 || b.Count == 0 {
		return false
	}
	// No overlap if: Min A > Max B OR Min B > Max A
	return !(a.Min > b.Max || b.Min > a.Max)
}
