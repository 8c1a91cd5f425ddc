package statistics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/portfolio/holdings"
	"go.uber.org/zap"
)

var errNoEquitySamples = errors.New("no equity samples collected")

// Statistic tracks dispatched events and the equity curve for a backtester run
type Statistic struct {
	StrategyName string              `json:"strategy-name"`
	InitialFunds decimal.Decimal     `json:"initial-funds"`
	EquityCurve  []holdings.Snapshot `json:"equity-curve"`
	Ticks        int64               `json:"ticks"`
	Signals      int64               `json:"signals"`
	Orders       int64               `json:"orders"`
	Fills        int64               `json:"fills"`

	log *zap.Logger
}

// Results holds the summary figures for a completed run
type Results struct {
	StartDate      time.Time       `json:"start-date"`
	EndDate        time.Time       `json:"end-date"`
	StartingEquity decimal.Decimal `json:"starting-equity"`
	FinalEquity    decimal.Decimal `json:"final-equity"`
	ReturnPercent  decimal.Decimal `json:"return-percent"`
	MaxDrawdown    decimal.Decimal `json:"max-drawdown-percent"`
	Samples        int64           `json:"samples"`
	Signals        int64           `json:"signals"`
	Orders         int64           `json:"orders"`
	Fills          int64           `json:"fills"`
}

// Handler interface details what a statistic is expected to do
type Handler interface {
	TrackEvent(common.Event)
	AddEquitySample(holdings.Snapshot)
	CalculateResults() (Results, error)
	PrintResults(Results)
	Serialise() (string, error)
	Reset()
}
