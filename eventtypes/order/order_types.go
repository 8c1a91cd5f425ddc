package order

import (
	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/event"
)

// Type describes the way the order is to be executed. The simulator only
// supports market orders
type Type string

// Market order type
const Market Type = "MARKET"

// Order contains all details for an order event. Amount is a signed quantity,
// negative amounts reduce or short the position. An exit order carries the
// exact negation of the current holding
type Order struct {
	event.Base
	Symbol    string
	Direction common.Direction
	OrderType Type
	Amount    decimal.Decimal
}

// Event inherits common event interfaces along with extra functions related to
// handling orders
type Event interface {
	common.Event
	common.Directioner
	GetSymbol() string
	GetAmount() decimal.Decimal
	SetAmount(decimal.Decimal)
	GetOrderType() Type
	IsOrder() bool
}
