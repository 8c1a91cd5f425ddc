package data

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/tick"
)

var (
	// ErrUnknownSymbol is returned when a symbol is requested that the feed
	// does not stream
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrMismatchedStreams is returned when the two legs do not share the same
	// bar count, the feed cannot advance them in lockstep
	ErrMismatchedStreams = errors.New("pair legs hold mismatched bar streams")
	errNoBars            = errors.New("no bars loaded")
	errSameSymbol        = errors.New("pair legs cannot share a symbol")
)

// Bar is one discrete time-stepped observation of price data for a symbol
type Bar struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// Handler streams bars for a single symbol
type Handler struct {
	symbol string
	stream []Bar
	offset int64
}

// PairFeed advances two symbol streams in lockstep and raises one market tick
// per synchronised bar
type PairFeed struct {
	y *Handler
	x *Handler
}

// Feeder is the data feed interface consumed by the engine, strategy and
// portfolio
type Feeder interface {
	HasNext() bool
	Next() (*tick.Tick, bool)
	StreamClose(symbol string, count int64) ([]decimal.Decimal, error)
	LatestClose(symbol string) (decimal.Decimal, error)
	LatestTime() time.Time
	Symbols() (y, x string)
	Offset() int64
	Reset()
}
