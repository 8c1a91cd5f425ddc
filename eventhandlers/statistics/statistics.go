package statistics

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/portfolio/holdings"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/fill"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/order"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/signal"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/tick"
	"go.uber.org/zap"
)

var errNilLogger = errors.New("received nil logger")

// Setup creates a statistics handler for a run
func Setup(strategyName string, initialFunds decimal.Decimal, log *zap.Logger) (*Statistic, error) {
	if log == nil {
		return nil, errNilLogger
	}
	return &Statistic{
		StrategyName: strategyName,
		InitialFunds: initialFunds,
		log:          log,
	}, nil
}

// TrackEvent bumps the counter matching the dispatched event's type
func (s *Statistic) TrackEvent(ev common.Event) {
	switch ev.(type) {
	case tick.Event:
		s.Ticks++
	case signal.Event:
		s.Signals++
	case order.Event:
		s.Orders++
	case fill.Event:
		s.Fills++
	}
}

// AddEquitySample appends a holdings snapshot to the equity curve
func (s *Statistic) AddEquitySample(h holdings.Snapshot) {
	s.EquityCurve = append(s.EquityCurve, h)
}

// CalculateResults summarises the run once the data feed is exhausted
func (s *Statistic) CalculateResults() (Results, error) {
	if len(s.EquityCurve) == 0 {
		return Results{}, errNoEquitySamples
	}
	first := s.EquityCurve[0]
	last := s.EquityCurve[len(s.EquityCurve)-1]

	returnPct := decimal.Zero
	if !s.InitialFunds.IsZero() {
		returnPct = last.TotalEquity.Sub(s.InitialFunds).
			Div(s.InitialFunds).
			Mul(decimal.NewFromInt(100))
	}

	return Results{
		StartDate:      first.Timestamp,
		EndDate:        last.Timestamp,
		StartingEquity: s.InitialFunds,
		FinalEquity:    last.TotalEquity,
		ReturnPercent:  returnPct,
		MaxDrawdown:    s.maxDrawdown(),
		Samples:        int64(len(s.EquityCurve)),
		Signals:        s.Signals,
		Orders:         s.Orders,
		Fills:          s.Fills,
	}, nil
}

// maxDrawdown returns the largest peak to trough equity decline as a
// percentage of the peak
func (s *Statistic) maxDrawdown() decimal.Decimal {
	peak := decimal.Zero
	worst := decimal.Zero
	for i := range s.EquityCurve {
		equity := s.EquityCurve[i].TotalEquity
		if equity.GreaterThan(peak) {
			peak = equity
		}
		if peak.IsZero() {
			continue
		}
		drawdown := peak.Sub(equity).Div(peak).Mul(decimal.NewFromInt(100))
		if drawdown.GreaterThan(worst) {
			worst = drawdown
		}
	}
	return worst
}

// PrintResults logs the run summary
func (s *Statistic) PrintResults(r Results) {
	s.log.Info("backtest complete",
		zap.String("strategy", s.StrategyName),
		zap.Time("start", r.StartDate),
		zap.Time("end", r.EndDate),
		zap.String("starting-equity", r.StartingEquity.String()),
		zap.String("final-equity", r.FinalEquity.String()),
		zap.String("return-percent", r.ReturnPercent.StringFixed(4)),
		zap.String("max-drawdown-percent", r.MaxDrawdown.StringFixed(4)),
		zap.Int64("ticks", s.Ticks),
		zap.Int64("signals", s.Signals),
		zap.Int64("orders", s.Orders),
		zap.Int64("fills", s.Fills))
}

// Serialise returns the statistic as JSON for the report writer
func (s *Statistic) Serialise() (string, error) {
	out, err := json.MarshalIndent(s, "", " ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Reset returns the statistic to a pre-run state
func (s *Statistic) Reset() {
	if s == nil {
		return
	}
	s.EquityCurve = nil
	s.Ticks = 0
	s.Signals = 0
	s.Orders = 0
	s.Fills = 0
}
