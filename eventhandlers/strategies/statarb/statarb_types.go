package statarb

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/strategies/base"
)

const (
	// Name is the strategy name
	Name          = "statarb"
	olsWindowKey  = "ols-window"
	zscoreLowKey  = "zscore-low"
	zscoreHighKey = "zscore-high"
	description   = `Performs a rolling ordinary-least-squares regression to determine the hedge ratio between a pair of symbols, then trades the z-score of the residual spread. Crossing the high threshold opens a market-neutral long/short pair, returning inside the low threshold closes it`
)

// errDegenerateWindow occurs when the spread has zero variance over the
// window, the z-score is undefined and the tick is skipped
var errDegenerateWindow = errors.New("zero spread variance over window")

// Strategy is an implementation of the strategies.Handler interface.
// longMarket and shortMarket are never both true at the same time
type Strategy struct {
	base.Strategy
	olsWindow  int64
	zscoreLow  decimal.Decimal
	zscoreHigh decimal.Decimal

	hedgeRatio  float64
	longMarket  bool
	shortMarket bool
}
