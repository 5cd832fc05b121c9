package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/moguls753/football-kpi/internal/kpi"
)

// Paths returns the file names written by All for a report, inside dir.
// The report ID keeps runs apart and sorts them by creation time.
func Paths(dir string, report *kpi.Report) (stats, histogram, timeSeries string) {
	prefix := fmt.Sprintf("%s_%s", report.KPI, report.ID)
	return filepath.Join(dir, prefix+"_stats.csv"),
		filepath.Join(dir, prefix+"_histogram.csv"),
		filepath.Join(dir, prefix+"_timeseries.csv")
}

// All writes the stats, histogram and time-series CSV files of a report into dir
func All(report *kpi.Report, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	statsPath, histPath, tsPath := Paths(dir, report)
	if err := StatsToCSV(report, statsPath); err != nil {
		return nil, err
	}
	if err := HistogramToCSV(report, histPath); err != nil {
		return nil, err
	}
	if err := TimeSeriesToCSV(report, tsPath); err != nil {
		return nil, err
	}
	return []string{statsPath, histPath, tsPath}, nil
}

// StatsToCSV exports descriptive statistics, one row per series
func StatsToCSV(report *kpi.Report, outputPath string) error {
	header := []string{"SeriesID", "Series", "Role", "Count", "Mean", "Median", "Mode", "StdDev", "Min", "Max", "CV_Percent", "Color"}

	rows := make([][]string, 0, len(report.Order))
	for _, name := range report.Order {
		stats := report.Stats[name]
		summary := report.Summaries[name]

		role := "comparison"
		if name == report.Primary {
			role = "primary"
		}

		row := []string{
			report.SeriesIDs[name],
			name,
			role,
			strconv.Itoa(summary.Count),
			stats.Mean.String(),
			stats.Median.String(),
			stats.Mode.String(),
		}
		if summary.Count > 0 {
			row = append(row,
				fmt.Sprintf("%.2f", summary.StdDev),
				fmt.Sprintf("%.2f", summary.Min),
				fmt.Sprintf("%.2f", summary.Max),
				fmt.Sprintf("%.2f", summary.CV),
			)
		} else {
			row = append(row, "", "", "", "")
		}
		row = append(row, report.Colors[name].Border)

		rows = append(rows, row)
	}

	return writeCSV(outputPath, header, rows)
}

// HistogramToCSV exports the shared bins with one frequency column per series
func HistogramToCSV(report *kpi.Report, outputPath string) error {
	header := []string{"Bin", "Lower", "Upper"}
	header = append(header, report.Order...)

	rows := make([][]string, 0, report.Bins.Len())
	for i, label := range report.Bins.Labels {
		row := []string{
			label,
			strconv.FormatFloat(report.Bins.Edges[i], 'f', -1, 64),
			strconv.FormatFloat(report.Bins.Edges[i+1], 'f', -1, 64),
		}
		for _, name := range report.Order {
			row = append(row, strconv.Itoa(report.Histograms[name][i]))
		}
		rows = append(rows, row)
	}

	return writeCSV(outputPath, header, rows)
}

// TimeSeriesToCSV exports raw values per game week. Gaps are empty cells.
func TimeSeriesToCSV(report *kpi.Report, outputPath string) error {
	maxWeek := report.MaxGameWeek()

	// Header row: SeriesID, Series, GW1, GW2, ..., GWN
	header := []string{"SeriesID", "Series"}
	for i := 1; i <= maxWeek; i++ {
		header = append(header, fmt.Sprintf("GW%d", i))
	}

	rows := make([][]string, 0, len(report.Order))
	for _, name := range report.Order {
		row := make([]string, len(header))
		row[0] = report.SeriesIDs[name]
		row[1] = name

		for _, p := range report.TimeSeries[name] {
			if p.GameWeek < 1 || p.GameWeek > maxWeek || !p.Value.Valid {
				continue
			}
			row[1+p.GameWeek] = strconv.FormatFloat(p.Value.Float64, 'f', -1, 64)
		}
		rows = append(rows, row)
	}

	return writeCSV(outputPath, header, rows)
}

func writeCSV(outputPath string, header []string, rows [][]string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
