package kpi

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/moguls753/football-kpi/internal/kpi/statistics"
)

// Report is the outcome of analysing one KPI across a primary series and
// its comparison series. Every map is keyed by series name.
type Report struct {
	ID          ulid.ULID                         `json:"id"`
	KPI         string                            `json:"kpi"`
	Primary     string                            `json:"primary"`
	Order       []string                          `json:"order"`
	Stats       map[string]statistics.Descriptive `json:"stats"`
	Summaries   map[string]statistics.Summary     `json:"summaries"`
	Bins        statistics.BinSet                 `json:"bins"`
	Histograms  map[string][]int                  `json:"histograms"`
	Colors      map[string]Color                  `json:"colors"`
	Comparisons map[string]statistics.Comparison  `json:"comparisons"`
	TimeSeries  map[string][]Point                `json:"time_series"`
	SeriesIDs   map[string]string                 `json:"series_ids"`
}

// ComparisonNames returns the comparison series names in input order
func (r *Report) ComparisonNames() []string {
	if len(r.Order) < 2 {
		return nil
	}
	return r.Order[1:]
}

// MaxGameWeek returns the highest game week seen in any series
func (r *Report) MaxGameWeek() int {
	last := 0
	for _, points := range r.TimeSeries {
		for _, p := range points {
			if p.GameWeek > last {
				last = p.GameWeek
			}
		}
	}
	return last
}

type config struct {
	binCount int
	palette  Palette
}

// Option tunes a single Analyze call
type Option func(*config)

// WithBinCount overrides statistics.DefaultBinCount
func WithBinCount(n int) Option {
	return func(c *config) {
		c.binCount = n
	}
}

// WithPalette overrides DefaultPalette
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// Analyze computes statistics for every series, derives histogram bins from
// the primary series and classifies every series against those bins.
//
// Comparison values outside the primary range are left out of the
// histograms. Analyze holds no state and may be called concurrently.
func Analyze(kpiName string, primary Series, comparisons []Series, opts ...Option) (*Report, error) {
	cfg := config{
		binCount: statistics.DefaultBinCount,
		palette:  DefaultPalette,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	all := make([]Series, 0, len(comparisons)+1)
	all = append(all, primary)
	all = append(all, comparisons...)

	seen := make(map[string]bool, len(all))
	for _, s := range all {
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSeries, s.Name)
		}
		seen[s.Name] = true
	}

	primaryValues := primary.Values()
	if len(primaryValues) == 0 {
		return nil, fmt.Errorf("%w: %q has no values", ErrPrimaryRequired, primary.Name)
	}

	bins, err := statistics.DeriveBins(primaryValues, cfg.binCount)
	if err != nil {
		return nil, fmt.Errorf("derive bins: %w", err)
	}

	report := &Report{
		ID:          ulid.Make(),
		KPI:         kpiName,
		Primary:     primary.Name,
		Order:       make([]string, 0, len(all)),
		Stats:       make(map[string]statistics.Descriptive, len(all)),
		Summaries:   make(map[string]statistics.Summary, len(all)),
		Bins:        bins,
		Histograms:  make(map[string][]int, len(all)),
		Colors:      make(map[string]Color, len(all)),
		Comparisons: make(map[string]statistics.Comparison, len(comparisons)),
		TimeSeries:  make(map[string][]Point, len(all)),
		SeriesIDs:   make(map[string]string, len(all)),
	}

	for i, s := range all {
		values := s.Values()

		report.Order = append(report.Order, s.Name)
		report.Stats[s.Name] = statistics.Describe(values)
		report.Summaries[s.Name] = statistics.Summarize(values)
		report.Histograms[s.Name] = statistics.Classify(values, bins)
		report.Colors[s.Name] = cfg.palette.At(i)
		report.TimeSeries[s.Name] = s.Points
		report.SeriesIDs[s.Name] = s.ID().String()
	}

	primarySummary := report.Summaries[primary.Name]
	for _, s := range comparisons {
		summary := report.Summaries[s.Name]
		if summary.Count == 0 {
			continue
		}
		report.Comparisons[s.Name] = statistics.Compare(primarySummary, summary)
	}

	return report, nil
}
