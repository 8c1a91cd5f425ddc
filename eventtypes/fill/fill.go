package fill

import (
	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
)

// IsFill returns whether the event is a fill event
func (f *Fill) IsFill() bool {
	return true
}

// SetDirection sets the side of the fill
func (f *Fill) SetDirection(d common.Direction) {
	f.Direction = d
}

// GetDirection returns the side of the fill
func (f *Fill) GetDirection() common.Direction {
	return f.Direction
}

// GetSymbol returns the symbol the fill is for
func (f *Fill) GetSymbol() string {
	return f.Symbol
}

// GetExchange returns the exchange the fill was simulated on
func (f *Fill) GetExchange() string {
	return f.Exchange
}

// GetAmount returns the signed quantity filled
func (f *Fill) GetAmount() decimal.Decimal {
	return f.Amount
}

// GetFillPrice returns the price the order was filled at
func (f *Fill) GetFillPrice() decimal.Decimal {
	return f.FillPrice
}

// GetCommission returns the commission charged
func (f *Fill) GetCommission() decimal.Decimal {
	return f.Commission
}

// GetTotal returns the total cash impact of the fill, the signed notional
// plus commission
func (f *Fill) GetTotal() decimal.Decimal {
	return f.Amount.Mul(f.FillPrice).Add(f.Commission)
}
