// Package csv loads historic bar data from CSV files so it can be streamed
// through the backtester
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/data"
)

var (
	errBadRow        = errors.New("could not parse csv row")
	errNotEnoughCols = errors.New("csv row does not hold timestamp,open,high,low,close,volume")
)

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadBars reads timestamped OHLCV bars for one symbol from path. A header row
// is skipped when the first field does not parse as a timestamp
func LoadBars(symbol, path string) (*data.Handler, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read data for %v: %w", symbol, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read data for %v: %w", symbol, err)
	}

	bars := make([]data.Bar, 0, len(rows))
	for i := range rows {
		bar, err := parseRow(rows[i])
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("%v row %v: %w", path, i+1, err)
		}
		bars = append(bars, bar)
	}
	return data.NewHandler(symbol, bars)
}

func parseRow(row []string) (data.Bar, error) {
	if len(row) < 6 {
		return data.Bar{}, errNotEnoughCols
	}
	t, err := parseTime(strings.TrimSpace(row[0]))
	if err != nil {
		return data.Bar{}, fmt.Errorf("%w: %v", errBadRow, err)
	}
	fields := make([]decimal.Decimal, 5)
	for i := range fields {
		fields[i], err = decimal.NewFromString(strings.TrimSpace(row[i+1]))
		if err != nil {
			return data.Bar{}, fmt.Errorf("%w: %v", errBadRow, err)
		}
	}
	return data.Bar{
		Time:   t,
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}

func parseTime(s string) (time.Time, error) {
	var err error
	var t time.Time
	for i := range timeFormats {
		t, err = time.Parse(timeFormats[i], s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
