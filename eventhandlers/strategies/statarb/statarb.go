package statarb

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/strategies/base"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/signal"
)

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnTick handles a market event and returns the signal pair the strategy
// believes should occur. During warm-up, or when the spread variance
// degenerates to zero, the tick is a deliberate no-op and nothing is returned
func (s *Strategy) OnTick(d data.Feeder) ([]signal.Event, error) {
	if d == nil {
		return nil, common.ErrNilArguments
	}
	symbolY, symbolX := d.Symbols()
	y, err := d.StreamClose(symbolY, s.olsWindow)
	if err != nil {
		return nil, err
	}
	x, err := d.StreamClose(symbolX, s.olsWindow)
	if err != nil {
		return nil, err
	}
	if int64(len(y)) < s.olsWindow || int64(len(x)) < s.olsWindow {
		// warm-up period
		return nil, nil
	}

	yFloats := toFloats(y)
	xFloats := toFloats(x)
	hedgeRatio, err := olsSlope(yFloats, xFloats)
	if err != nil {
		if errors.Is(err, errDegenerateWindow) {
			return nil, nil
		}
		return nil, err
	}
	s.hedgeRatio = hedgeRatio

	zscoreLast, err := spreadZScore(yFloats, xFloats, hedgeRatio)
	if err != nil {
		if errors.Is(err, errDegenerateWindow) {
			return nil, nil
		}
		return nil, err
	}

	return s.calculateSignals(d, decimal.NewFromFloat(zscoreLast))
}

// calculateSignals runs the four entry/exit checks against the latest z-score.
// Each check is evaluated independently and writes into the same pending
// signal slots, so the last matching check wins. This matters at tie-adjacent
// thresholds and must not be collapsed into mutually exclusive branches
func (s *Strategy) calculateSignals(d data.Feeder, zscoreLast decimal.Decimal) ([]signal.Event, error) {
	var ySignal, xSignal *signal.Signal
	symbolY, symbolX := d.Symbols()
	strengthY := decimal.NewFromInt(1)
	strengthX := decimal.NewFromFloat(math.Abs(s.hedgeRatio))

	if zscoreLast.LessThanOrEqual(s.zscoreHigh.Neg()) && !s.longMarket {
		s.longMarket = true
		ySignal, xSignal = s.pendingPair(d, symbolY, common.Long, strengthY, symbolX, common.Short, strengthX)
	}
	if zscoreLast.Abs().LessThanOrEqual(s.zscoreLow) && s.longMarket {
		s.longMarket = false
		ySignal, xSignal = s.pendingPair(d, symbolY, common.Exit, strengthY, symbolX, common.Exit, strengthY)
	}
	if zscoreLast.GreaterThanOrEqual(s.zscoreHigh) && !s.shortMarket {
		s.shortMarket = true
		ySignal, xSignal = s.pendingPair(d, symbolY, common.Short, strengthY, symbolX, common.Long, strengthX)
	}
	if zscoreLast.Abs().LessThanOrEqual(s.zscoreLow) && s.shortMarket {
		s.shortMarket = false
		ySignal, xSignal = s.pendingPair(d, symbolY, common.Exit, strengthY, symbolX, common.Exit, strengthY)
	}

	if ySignal == nil || xSignal == nil {
		return nil, nil
	}
	ySignal.AppendReasonf("z-score at %v with hedge ratio %v", zscoreLast, s.hedgeRatio)
	xSignal.AppendReasonf("z-score at %v with hedge ratio %v", zscoreLast, s.hedgeRatio)
	// both legs or neither, a lone leg would break pair-neutral exposure
	return []signal.Event{ySignal, xSignal}, nil
}

func (s *Strategy) pendingPair(d data.Feeder, symbolY string, directionY common.Direction, strengthY decimal.Decimal, symbolX string, directionX common.Direction, strengthX decimal.Decimal) (*signal.Signal, *signal.Signal) {
	y, _ := s.GetBaseData(d, symbolY)
	y.Direction = directionY
	y.Strength = strengthY
	x, _ := s.GetBaseData(d, symbolX)
	x.Direction = directionX
	x.Strength = strengthX
	return &y, &x
}

// SetCustomSettings allows a user to modify the OLS window and z-score bands
// in their config
func (s *Strategy) SetCustomSettings(customSettings map[string]any) error {
	for k, v := range customSettings {
		switch k {
		case olsWindowKey:
			window, ok := toInt64(v)
			if !ok || window <= 0 {
				return fmt.Errorf("%w provided ols-window value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.olsWindow = window
		case zscoreLowKey:
			low, ok := toFloat64(v)
			if !ok || low < 0 {
				return fmt.Errorf("%w provided zscore-low value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.zscoreLow = decimal.NewFromFloat(low)
		case zscoreHighKey:
			high, ok := toFloat64(v)
			if !ok || high <= 0 {
				return fmt.Errorf("%w provided zscore-high value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.zscoreHigh = decimal.NewFromFloat(high)
		default:
			return fmt.Errorf("%w unrecognised custom setting key %v with value %v. Cannot apply", base.ErrInvalidCustomSettings, k, v)
		}
	}

	return nil
}

// SetDefaults sets the custom settings to their default values and clears
// any open market state
func (s *Strategy) SetDefaults() {
	s.olsWindow = 100
	s.zscoreLow = decimal.NewFromFloat(0.5)
	s.zscoreHigh = decimal.NewFromFloat(3)
	s.hedgeRatio = 0
	s.longMarket = false
	s.shortMarket = false
}

// olsSlope fits y = slope * x by ordinary least squares with no intercept
func olsSlope(y, x []float64) (float64, error) {
	var sumXY, sumXX float64
	for i := range x {
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}
	if sumXX == 0 {
		return 0, errDegenerateWindow
	}
	return sumXY / sumXX, nil
}

// spreadZScore returns how many standard deviations the latest residual
// y - hedgeRatio*x lies from the window mean, using the sample standard
// deviation
func spreadZScore(y, x []float64, hedgeRatio float64) (float64, error) {
	if len(y) < 2 {
		return 0, errDegenerateWindow
	}
	spread := make([]float64, len(y))
	var mean float64
	for i := range y {
		spread[i] = y[i] - hedgeRatio*x[i]
		mean += spread[i]
	}
	mean /= float64(len(spread))

	var variance float64
	for i := range spread {
		diff := spread[i] - mean
		variance += diff * diff
	}
	variance /= float64(len(spread) - 1)
	if variance == 0 {
		return 0, errDegenerateWindow
	}
	return (spread[len(spread)-1] - mean) / math.Sqrt(variance), nil
}

func toFloats(d []decimal.Decimal) []float64 {
	resp := make([]float64, len(d))
	for i := range d {
		resp[i] = d[i].InexactFloat64()
	}
	return resp
}

func toInt64(v any) (int64, bool) {
	switch value := v.(type) {
	case int:
		return int64(value), true
	case int64:
		return value, true
	case float64:
		return int64(value), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	default:
		return 0, false
	}
}
