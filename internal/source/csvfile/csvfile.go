package csvfile

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/moguls753/football-kpi/internal/kpi"
	"github.com/moguls753/football-kpi/internal/kpi/statistics"
)

// Header is the expected first row of a series file
var Header = []string{"series", "game_week", "value"}

// ErrBadHeader is returned when the first row does not match Header.
var ErrBadHeader = errors.New("csv header must be series,game_week,value")

// LoadFile reads series from a CSV file, see Load
func LoadFile(path string) ([]kpi.Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Load reads long-format rows of series,game_week,value.
// An empty value is a gap. Series are returned in order of first appearance.
func Load(r io.Reader) ([]kpi.Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrBadHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, col := range Header {
		if strings.ToLower(strings.TrimSpace(header[i])) != col {
			return nil, ErrBadHeader
		}
	}

	var series []kpi.Series
	index := make(map[string]int)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty series name", line)
		}

		week, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: game_week: %w", line, err)
		}

		var value sql.NullFloat64
		if raw := strings.TrimSpace(record[2]); raw != "" {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: value: %w", line, err)
			}
			if !statistics.Finite(f) {
				return nil, fmt.Errorf("line %d: value %q is not a finite number", line, raw)
			}
			value = sql.NullFloat64{Float64: f, Valid: true}
		}

		i, ok := index[name]
		if !ok {
			i = len(series)
			index[name] = i
			series = append(series, kpi.Series{Name: name})
		}
		series[i].Points = append(series[i].Points, kpi.Point{GameWeek: week, Value: value})
	}

	return series, nil
}
