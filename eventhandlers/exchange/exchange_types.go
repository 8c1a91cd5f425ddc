package exchange

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/fill"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/order"
	"go.uber.org/zap"
)

var (
	errExchangeNameUnset  = errors.New("exchange name unset")
	errNegativeCommission = errors.New("commission cannot be negative")
	errNilLogger          = errors.New("received nil logger")
)

// Exchange is the simulated execution handler. Orders fill immediately and in
// full at the latest close, there is no slippage or rejection modelling
type Exchange struct {
	name       string
	commission decimal.Decimal
	log        *zap.Logger
}

// ExecutionHandler interface dictates what functions are required to execute
// an order
type ExecutionHandler interface {
	ExecuteOrder(order.Event, data.Feeder) (*fill.Fill, error)
}
