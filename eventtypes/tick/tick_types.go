package tick

import (
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/event"
)

// Tick is the market event raised once per synchronised bar across the pair.
// It carries no price data of its own, consumers read prices from the data feed
type Tick struct {
	event.Base
}

// Event is a tick event
type Event interface {
	common.Event
	IsTick() bool
}
