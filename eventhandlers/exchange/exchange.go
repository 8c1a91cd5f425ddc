package exchange

import (
	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/fill"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/order"
	"go.uber.org/zap"
)

// Setup creates a simulated exchange charging a flat commission per order
func Setup(name string, commission decimal.Decimal, log *zap.Logger) (*Exchange, error) {
	if name == "" {
		return nil, errExchangeNameUnset
	}
	if commission.IsNegative() {
		return nil, errNegativeCommission
	}
	if log == nil {
		return nil, errNilLogger
	}
	return &Exchange{name: name, commission: commission, log: log}, nil
}

// ExecuteOrder simulates execution of the portfolio manager's order and raises
// the resulting fill event at the latest close for the symbol
func (e *Exchange) ExecuteOrder(o order.Event, d data.Feeder) (*fill.Fill, error) {
	if o == nil || d == nil {
		return nil, common.ErrNilArguments
	}
	price, err := d.LatestClose(o.GetSymbol())
	if err != nil {
		return nil, err
	}
	f := &fill.Fill{
		Symbol:     o.GetSymbol(),
		Exchange:   e.name,
		Direction:  o.GetDirection(),
		Amount:     o.GetAmount(),
		FillPrice:  price,
		Commission: e.commission,
	}
	f.SetOffset(o.GetOffset())
	f.Time = o.GetTime()
	f.AppendReasonf("filled %v at %v on %v", o.GetAmount(), price, e.name)
	e.log.Debug("order executed",
		zap.String("symbol", o.GetSymbol()),
		zap.String("amount", o.GetAmount().String()),
		zap.String("price", price.String()))
	return f, nil
}
