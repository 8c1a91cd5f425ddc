package signal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/common"
)

func TestIsSignal(t *testing.T) {
	t.Parallel()
	s := Signal{}
	if !s.IsSignal() {
		t.Error("expected true")
	}
}

func TestSetDirection(t *testing.T) {
	t.Parallel()
	s := Signal{Direction: common.Short}
	s.SetDirection(common.Long)
	if s.GetDirection() != common.Long {
		t.Error("expected long")
	}
}

func TestGetStrength(t *testing.T) {
	t.Parallel()
	s := Signal{Strength: decimal.NewFromFloat(1.337)}
	if !s.GetStrength().Equal(decimal.NewFromFloat(1.337)) {
		t.Errorf("received '%v' expected '%v'", s.GetStrength(), 1.337)
	}
}

func TestGetSymbol(t *testing.T) {
	t.Parallel()
	s := Signal{Symbol: "AAPL"}
	if s.GetSymbol() != "AAPL" {
		t.Errorf("received '%v' expected 'AAPL'", s.GetSymbol())
	}
}
