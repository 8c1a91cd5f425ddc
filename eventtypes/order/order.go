package order

import (
	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
)

// IsOrder returns whether the event is an order event
func (o *Order) IsOrder() bool {
	return true
}

// SetDirection sets the side of the order
func (o *Order) SetDirection(d common.Direction) {
	o.Direction = d
}

// GetDirection returns the side of the order
func (o *Order) GetDirection() common.Direction {
	return o.Direction
}

// GetSymbol returns the symbol the order is for
func (o *Order) GetSymbol() string {
	return o.Symbol
}

// SetAmount sets the signed quantity
func (o *Order) SetAmount(d decimal.Decimal) {
	o.Amount = d
}

// GetAmount returns the signed quantity
func (o *Order) GetAmount() decimal.Decimal {
	return o.Amount
}

// GetOrderType returns the order type
func (o *Order) GetOrderType() Type {
	return o.OrderType
}
