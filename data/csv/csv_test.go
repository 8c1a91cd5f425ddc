package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "bars.csv")
	err := os.WriteFile(p, []byte(contents), 0o644)
	require.NoError(t, err)
	return p
}

func TestLoadBars(t *testing.T) {
	t.Parallel()
	p := writeTempCSV(t, `timestamp,open,high,low,close,volume
2020-01-01,100,101,99,100.5,1000
2020-01-02,100.5,102,100,101.5,1100
`)
	h, err := LoadBars("AAPL", p)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", h.Symbol())
	assert.Empty(t, h.StreamClose(2), "no bars consumed yet")
}

func TestLoadBarsNoHeader(t *testing.T) {
	t.Parallel()
	p := writeTempCSV(t, "2020-01-01 10:41:00,100,101,99,100.5,1000\n")
	h, err := LoadBars("AAPL", p)
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestLoadBarsBadRow(t *testing.T) {
	t.Parallel()
	p := writeTempCSV(t, `timestamp,open,high,low,close,volume
2020-01-01,100,101,99,not-a-price,1000
`)
	_, err := LoadBars("AAPL", p)
	assert.ErrorIs(t, err, errBadRow)
}

func TestLoadBarsMissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadBars("AAPL", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestParseRowValues(t *testing.T) {
	t.Parallel()
	bar, err := parseRow([]string{"2020-01-01", "1", "2", "0.5", "1.5", "100"})
	require.NoError(t, err)
	assert.True(t, bar.Close.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, bar.High.Equal(decimal.NewFromInt(2)))

	_, err = parseRow([]string{"2020-01-01", "1"})
	assert.ErrorIs(t, err, errNotEnoughCols)
}
