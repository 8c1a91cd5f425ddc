package signal

import (
	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
)

// IsSignal returns whether the event is a signal type
func (s *Signal) IsSignal() bool {
	return true
}

// SetDirection sets the direction
func (s *Signal) SetDirection(d common.Direction) {
	s.Direction = d
}

// GetDirection returns the direction
func (s *Signal) GetDirection() common.Direction {
	return s.Direction
}

// GetSymbol returns the leg the signal is for
func (s *Signal) GetSymbol() string {
	return s.Symbol
}

// GetStrength returns the relative sizing weight
func (s *Signal) GetStrength() decimal.Decimal {
	return s.Strength
}
