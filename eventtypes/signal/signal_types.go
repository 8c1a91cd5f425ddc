package signal

import (
	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/event"
)

// Signal is a trading suggestion for one leg of the pair, raised by the
// strategy. Legs are always queued as a pair, never singly
type Signal struct {
	event.Base
	Symbol    string
	Direction common.Direction
	// Strength is a relative weight used when sizing the order, the
	// hedge-ratio-scaled leg carries |hedgeRatio| while the other carries 1
	Strength decimal.Decimal
}

// Event handler is used for getting trade signal details
type Event interface {
	common.Event
	common.Directioner
	GetSymbol() string
	GetStrength() decimal.Decimal
	IsSignal() bool
}
