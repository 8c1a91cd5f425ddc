package fill

import (
	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/event"
)

// Fill is an event that details the result of placing an order. Fills are
// trusted as ground truth by the portfolio
type Fill struct {
	event.Base
	Symbol     string           `json:"symbol"`
	Exchange   string           `json:"exchange"`
	Direction  common.Direction `json:"side"`
	Amount     decimal.Decimal  `json:"amount"`
	FillPrice  decimal.Decimal  `json:"fill-price"`
	Commission decimal.Decimal  `json:"commission"`
}

// Event holds all functions required to handle a fill event
type Event interface {
	common.Event
	common.Directioner
	GetSymbol() string
	GetExchange() string
	GetAmount() decimal.Decimal
	GetFillPrice() decimal.Decimal
	GetCommission() decimal.Decimal
	GetTotal() decimal.Decimal
	IsFill() bool
}
