package data

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/event"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/tick"
)

// NewHandler creates a bar stream for a symbol, sorted by timestamp
func NewHandler(symbol string, bars []Bar) (*Handler, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrUnknownSymbol)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w for %v", errNoBars, symbol)
	}
	stream := make([]Bar, len(bars))
	copy(stream, bars)
	sort.Slice(stream, func(i, j int) bool {
		return stream[i].Time.Before(stream[j].Time)
	})
	return &Handler{symbol: symbol, stream: stream}, nil
}

// Symbol returns the symbol the handler streams
func (h *Handler) Symbol() string {
	return h.symbol
}

// Offset returns how many bars have been consumed
func (h *Handler) Offset() int64 {
	return h.offset
}

// Latest returns the most recently consumed bar
func (h *Handler) Latest() Bar {
	if h.offset == 0 {
		return Bar{}
	}
	return h.stream[h.offset-1]
}

// StreamClose returns up to count closes ending at the current offset. Fewer
// than count are returned during warm-up, callers must treat a short return
// as not ready
func (h *Handler) StreamClose(count int64) []decimal.Decimal {
	start := h.offset - count
	if start < 0 {
		start = 0
	}
	closes := make([]decimal.Decimal, 0, h.offset-start)
	for i := start; i < h.offset; i++ {
		closes = append(closes, h.stream[i].Close)
	}
	return closes
}

func (h *Handler) hasNext() bool {
	return h.offset < int64(len(h.stream))
}

func (h *Handler) next() (Bar, bool) {
	if !h.hasNext() {
		return Bar{}, false
	}
	b := h.stream[h.offset]
	h.offset++
	return b, true
}

func (h *Handler) reset() {
	h.offset = 0
}

// NewPairFeed couples two symbol handlers so they advance together
func NewPairFeed(y, x *Handler) (*PairFeed, error) {
	if y == nil || x == nil {
		return nil, fmt.Errorf("pair feed: %w", errNoBars)
	}
	if y.symbol == x.symbol {
		return nil, fmt.Errorf("%w: %v", errSameSymbol, y.symbol)
	}
	if len(y.stream) != len(x.stream) {
		return nil, fmt.Errorf("%w: %v has %v bars, %v has %v bars",
			ErrMismatchedStreams,
			y.symbol,
			len(y.stream),
			x.symbol,
			len(x.stream))
	}
	return &PairFeed{y: y, x: x}, nil
}

// HasNext reports whether another synchronised bar is available
func (f *PairFeed) HasNext() bool {
	return f.y.hasNext() && f.x.hasNext()
}

// Next advances both legs one bar and returns the market tick representing the
// synchronised bar. The second return is false on feed exhaustion, the normal
// termination condition
func (f *PairFeed) Next() (*tick.Tick, bool) {
	if !f.HasNext() {
		return nil, false
	}
	yBar, _ := f.y.next()
	f.x.next()
	return &tick.Tick{
		Base: event.Base{
			Offset: f.y.offset,
			Time:   yBar.Time,
		},
	}, true
}

// StreamClose returns the last count closes for the requested leg
func (f *PairFeed) StreamClose(symbol string, count int64) ([]decimal.Decimal, error) {
	h, err := f.lookup(symbol)
	if err != nil {
		return nil, err
	}
	return h.StreamClose(count), nil
}

// LatestClose returns the close of the most recently consumed bar for the leg
func (f *PairFeed) LatestClose(symbol string) (decimal.Decimal, error) {
	h, err := f.lookup(symbol)
	if err != nil {
		return decimal.Zero, err
	}
	return h.Latest().Close, nil
}

// LatestTime returns the timestamp of the most recently consumed bar
func (f *PairFeed) LatestTime() time.Time {
	return f.y.Latest().Time
}

// Symbols returns the y and x legs of the pair
func (f *PairFeed) Symbols() (string, string) {
	return f.y.symbol, f.x.symbol
}

// Offset returns how many synchronised bars have been consumed
func (f *PairFeed) Offset() int64 {
	return f.y.offset
}

// Reset rewinds both legs to the start of their streams
func (f *PairFeed) Reset() {
	f.y.reset()
	f.x.reset()
}

func (f *PairFeed) lookup(symbol string) (*Handler, error) {
	switch symbol {
	case f.y.symbol:
		return f.y, nil
	case f.x.symbol:
		return f.x, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)
	}
}
