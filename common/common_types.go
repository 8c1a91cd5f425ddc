package common

import (
	"errors"
	"time"
)

// Direction is the side a signal, order or fill points towards
type Direction string

const (
	// Long buys the symbol
	Long Direction = "LONG"
	// Short sells the symbol
	Short Direction = "SHORT"
	// Exit flattens any open position in the symbol
	Exit Direction = "EXIT"
)

var (
	// ErrNilArguments is a common error response to highlight that nils were
	// passed in when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilEvent is a common error for whenever a nil event occurs when it shouldn't have
	ErrNilEvent = errors.New("nil event received")
	// ErrUnknownEventType occurs when the event queue holds a type the
	// dispatcher does not recognise. The run cannot continue as silently
	// dropping events would desynchronise counters from state
	ErrUnknownEventType = errors.New("unknown event type received")
)

// Event interface implemented by everything that passes through the event queue
type Event interface {
	GetOffset() int64
	SetOffset(int64)
	GetTime() time.Time
	GetReason() string
	AppendReason(string)
	AppendReasonf(string, ...any)
}

// Directioner dictates the side of an order
type Directioner interface {
	SetDirection(Direction)
	GetDirection() Direction
}
