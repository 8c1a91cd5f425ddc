// Package report persists the results of a completed run so they can be
// compared across runs
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/statistics"
)

var (
	errNilStatistic = errors.New("received nil statistic")
	errPathUnset    = errors.New("report path unset")
)

// GenerateReport serialises the run statistics to a JSON file at path,
// creating parent directories as required
func GenerateReport(stat statistics.Handler, path string) error {
	if stat == nil {
		return errNilStatistic
	}
	if path == "" {
		return errPathUnset
	}
	out, err := stat.Serialise()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create report directory: %w", err)
		}
	}
	return os.WriteFile(path, []byte(out), 0o644)
}
