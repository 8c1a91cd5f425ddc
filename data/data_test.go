package data

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func makeBars(n int, base float64) []Bar {
	bars := make([]Bar, n)
	for i := range bars {
		price := decimal.NewFromFloat(base + float64(i))
		bars[i] = Bar{
			Time:   start.Add(time.Duration(i) * time.Hour * 24),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: decimal.NewFromInt(1),
		}
	}
	return bars
}

func TestNewHandler(t *testing.T) {
	t.Parallel()
	_, err := NewHandler("", makeBars(1, 1))
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	_, err = NewHandler("AAPL", nil)
	assert.ErrorIs(t, err, errNoBars)

	h, err := NewHandler("AAPL", makeBars(3, 100))
	require.NoError(t, err)
	assert.Equal(t, "AAPL", h.Symbol())
}

func TestHandlerSortsBars(t *testing.T) {
	t.Parallel()
	bars := makeBars(3, 100)
	bars[0], bars[2] = bars[2], bars[0]
	h, err := NewHandler("AAPL", bars)
	require.NoError(t, err)
	b, ok := h.next()
	require.True(t, ok)
	assert.True(t, b.Time.Equal(start))
}

func TestStreamCloseWarmup(t *testing.T) {
	t.Parallel()
	h, err := NewHandler("AAPL", makeBars(5, 100))
	require.NoError(t, err)

	// nothing consumed yet
	assert.Empty(t, h.StreamClose(3))

	h.next()
	h.next()
	closes := h.StreamClose(3)
	require.Len(t, closes, 2, "short return expected during warm-up")
	assert.True(t, closes[1].Equal(decimal.NewFromInt(101)))

	h.next()
	h.next()
	closes = h.StreamClose(3)
	require.Len(t, closes, 3)
	assert.True(t, closes[0].Equal(decimal.NewFromInt(101)))
	assert.True(t, closes[2].Equal(decimal.NewFromInt(103)))
}

func TestNewPairFeed(t *testing.T) {
	t.Parallel()
	y, err := NewHandler("AAPL", makeBars(3, 100))
	require.NoError(t, err)
	x, err := NewHandler("MSFT", makeBars(2, 50))
	require.NoError(t, err)

	_, err = NewPairFeed(y, x)
	assert.ErrorIs(t, err, ErrMismatchedStreams)

	_, err = NewPairFeed(y, y)
	assert.ErrorIs(t, err, errSameSymbol)

	x2, err := NewHandler("MSFT", makeBars(3, 50))
	require.NoError(t, err)
	_, err = NewPairFeed(y, x2)
	assert.NoError(t, err)
}

func TestPairFeedLockstep(t *testing.T) {
	t.Parallel()
	y, _ := NewHandler("AAPL", makeBars(2, 100))
	x, _ := NewHandler("MSFT", makeBars(2, 50))
	f, err := NewPairFeed(y, x)
	require.NoError(t, err)

	require.True(t, f.HasNext())
	tk, ok := f.Next()
	require.True(t, ok)
	assert.Equal(t, int64(1), tk.GetOffset())
	assert.True(t, tk.GetTime().Equal(start))

	yClose, err := f.LatestClose("AAPL")
	require.NoError(t, err)
	assert.True(t, yClose.Equal(decimal.NewFromInt(100)))
	xClose, err := f.LatestClose("MSFT")
	require.NoError(t, err)
	assert.True(t, xClose.Equal(decimal.NewFromInt(50)))

	_, err = f.LatestClose("TSLA")
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	_, ok = f.Next()
	require.True(t, ok)
	_, ok = f.Next()
	assert.False(t, ok, "expected exhaustion")

	f.Reset()
	assert.True(t, f.HasNext())
	assert.Equal(t, int64(0), f.Offset())
}
