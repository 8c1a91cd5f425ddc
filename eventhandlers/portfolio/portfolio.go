package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/portfolio/holdings"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/fill"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/order"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/signal"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/tick"
	"go.uber.org/zap"
)

// Setup creates a portfolio manager instance and sets private fields
func Setup(initialFunds, orderSize decimal.Decimal, log *zap.Logger) (*Portfolio, error) {
	if initialFunds.LessThanOrEqual(decimal.Zero) {
		return nil, errInitialFundsZero
	}
	if orderSize.LessThanOrEqual(decimal.Zero) {
		return nil, errOrderSizeZero
	}
	if log == nil {
		return nil, errNilLogger
	}
	return &Portfolio{
		initialFunds: initialFunds,
		funds:        initialFunds,
		orderSize:    orderSize,
		positions:    make(map[string]decimal.Decimal),
		log:          log,
	}, nil
}

// Reset returns the portfolio manager to its default state
func (p *Portfolio) Reset() {
	p.funds = p.initialFunds
	p.positions = make(map[string]decimal.Decimal)
}

// OnSignal translates a signal into a market order sized by the configured
// allocation and the signal's strength. Exit signals flatten the existing
// position exactly and are idempotent, an exit while flat returns no order
// and no error
func (p *Portfolio) OnSignal(ev signal.Event) (*order.Order, error) {
	if ev == nil {
		return nil, common.ErrNilEvent
	}
	o := &order.Order{
		Symbol:    ev.GetSymbol(),
		Direction: ev.GetDirection(),
		OrderType: order.Market,
	}
	o.SetOffset(ev.GetOffset())
	o.Time = ev.GetTime()

	switch ev.GetDirection() {
	case common.Long:
		o.Amount = p.orderSize.Mul(ev.GetStrength())
	case common.Short:
		o.Amount = p.orderSize.Mul(ev.GetStrength()).Neg()
	case common.Exit:
		position := p.positions[ev.GetSymbol()]
		if position.IsZero() {
			p.log.Debug("exit signal with no open position",
				zap.String("symbol", ev.GetSymbol()),
				zap.Int64("offset", ev.GetOffset()))
			return nil, nil
		}
		o.Amount = position.Neg()
	default:
		return nil, fmt.Errorf("%w: %v", errInvalidDirection, ev.GetDirection())
	}
	o.AppendReasonf("sized from %v signal with strength %v", ev.GetDirection(), ev.GetStrength())
	return o, nil
}

// OnFill applies the signed fill quantity, cost and commission to cash and
// holdings. Fills are trusted as ground truth and applied unconditionally
func (p *Portfolio) OnFill(ev fill.Event) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	p.funds = p.funds.Sub(ev.GetTotal())
	position := p.positions[ev.GetSymbol()].Add(ev.GetAmount())
	if position.IsZero() {
		delete(p.positions, ev.GetSymbol())
	} else {
		p.positions[ev.GetSymbol()] = position
	}
	p.log.Debug("fill applied",
		zap.String("symbol", ev.GetSymbol()),
		zap.String("amount", ev.GetAmount().String()),
		zap.String("price", ev.GetFillPrice().String()),
		zap.String("funds", p.funds.String()))
	return nil
}

// UpdateTick marks every open position to the latest close and returns the
// equity snapshot for the bar. Called exactly once per market event, after
// the strategy has had the opportunity to react. Equity is marked from the
// very first bar, warm-up included
func (p *Portfolio) UpdateTick(ev tick.Event, d data.Feeder) (holdings.Snapshot, error) {
	if ev == nil || d == nil {
		return holdings.Snapshot{}, common.ErrNilArguments
	}
	positionsValue := decimal.Zero
	for symbol, amount := range p.positions {
		price, err := d.LatestClose(symbol)
		if err != nil {
			return holdings.Snapshot{}, err
		}
		positionsValue = positionsValue.Add(amount.Mul(price))
	}
	return holdings.Create(ev.GetOffset(), ev.GetTime(), p.funds, positionsValue), nil
}

// Position returns the signed holding for a symbol, zero when flat
func (p *Portfolio) Position(symbol string) decimal.Decimal {
	return p.positions[symbol]
}

// Funds returns the current cash balance
func (p *Portfolio) Funds() decimal.Decimal {
	return p.funds
}
