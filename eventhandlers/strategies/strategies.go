// Package strategies is the holding bay of loadable strategies for the
// backtester to use
package strategies

import (
	"fmt"
	"strings"

	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/strategies/statarb"
)

// LoadStrategyByName returns the strategy by its name
func LoadStrategyByName(name string) (Handler, error) {
	strats := GetStrategies()
	for i := range strats {
		if !strings.EqualFold(name, strats[i].Name()) {
			continue
		}
		return strats[i], nil
	}
	return nil, fmt.Errorf("%w: %v", ErrStrategyNotFound, name)
}

// GetStrategies returns a static list of the strategies available
func GetStrategies() []Handler {
	return []Handler{
		new(statarb.Strategy),
	}
}
