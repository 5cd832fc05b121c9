package csvfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestLoad(t *testing.T) {
	input := `series,game_week,value
Arsenal,1,5
Chelsea,1,3
Arsenal,2,
Arsenal,3,7.5
Chelsea,2,4
`
	series, err := Load(strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, 2, len(series))
	assert.Equal(t, "Arsenal", series[0].Name)
	assert.Equal(t, "Chelsea", series[1].Name)

	assert.Equal(t, 3, len(series[0].Points))
	assert.False(t, series[0].Points[1].Value.Valid)
	assert.Equal(t, 2, series[0].Points[1].GameWeek)
	assert.Equal(t, []float64{5, 7.5}, series[0].Values())
	assert.Equal(t, []float64{3, 4}, series[1].Values())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty file", input: "", wantErr: ErrBadHeader.Error()},
		{name: "wrong header", input: "team,week,value\n", wantErr: ErrBadHeader.Error()},
		{name: "bad game week", input: "series,game_week,value\nA,x,1\n", wantErr: "line 2: game_week"},
		{name: "bad value", input: "series,game_week,value\nA,1,1\nA,2,abc\n", wantErr: "line 3: value"},
		{name: "infinite value", input: "series,game_week,value\nA,1,inf\n", wantErr: `line 2: value "inf" is not a finite number`},
		{name: "negative infinite value", input: "series,game_week,value\nA,1,-Inf\n", wantErr: "line 2: value"},
		{name: "NaN value", input: "series,game_week,value\nA,1,NaN\n", wantErr: "is not a finite number"},
		{name: "missing name", input: "series,game_week,value\n,1,1\n", wantErr: "line 2: empty series name"},
		{name: "wrong field count", input: "series,game_week,value\nA,1\n", wantErr: "read row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			assert.True(t, strings.Contains(err.Error(), tt.wantErr))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corners.csv")
	err := os.WriteFile(path, []byte("series,game_week,value\nLeeds,1,6\n"), 0o644)
	assert.NoError(t, err)

	series, err := LoadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []float64{6}, series[0].Values())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
