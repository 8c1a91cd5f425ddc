package eventholder

import "github.com/webclinic017/algorithmic-trading-7/common"

// Holder contains the event queue for backtester processing. Strict FIFO,
// no priority. The queue is the only communication path between components
type Holder struct {
	queue []common.Event
}

// EventHolder interface details what is expected of an event holder to perform
type EventHolder interface {
	Reset()
	AppendEvent(common.Event)
	NextEvent() common.Event
	Count() int64
}
