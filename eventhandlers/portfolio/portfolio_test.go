package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/event"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/fill"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/signal"
	"go.uber.org/zap"
)

func testPortfolio(t *testing.T) *Portfolio {
	t.Helper()
	p, err := Setup(decimal.NewFromInt(100000), decimal.NewFromInt(10), zap.NewNop())
	require.NoError(t, err)
	return p
}

func testSignal(symbol string, direction common.Direction, strength float64) *signal.Signal {
	return &signal.Signal{
		Base:      event.Base{Offset: 1, Time: time.Now()},
		Symbol:    symbol,
		Direction: direction,
		Strength:  decimal.NewFromFloat(strength),
	}
}

func testFill(symbol string, amount, price, commission float64) *fill.Fill {
	return &fill.Fill{
		Symbol:     symbol,
		Exchange:   "simulated",
		Amount:     decimal.NewFromFloat(amount),
		FillPrice:  decimal.NewFromFloat(price),
		Commission: decimal.NewFromFloat(commission),
	}
}

func TestSetup(t *testing.T) {
	t.Parallel()
	_, err := Setup(decimal.Zero, decimal.NewFromInt(10), zap.NewNop())
	assert.ErrorIs(t, err, errInitialFundsZero)

	_, err = Setup(decimal.NewFromInt(1), decimal.Zero, zap.NewNop())
	assert.ErrorIs(t, err, errOrderSizeZero)

	_, err = Setup(decimal.NewFromInt(1), decimal.NewFromInt(1), nil)
	assert.ErrorIs(t, err, errNilLogger)
}

func TestOnSignalSizing(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t)
	o, err := p.OnSignal(testSignal("AAPL", common.Long, 1))
	require.NoError(t, err)
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(10)))
	assert.Equal(t, common.Long, o.GetDirection())

	// hedge leg scaled by strength
	o, err = p.OnSignal(testSignal("MSFT", common.Short, 2))
	require.NoError(t, err)
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(-20)))
}

func TestOnSignalNil(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t)
	_, err := p.OnSignal(nil)
	assert.ErrorIs(t, err, common.ErrNilEvent)

	_, err = p.OnSignal(testSignal("AAPL", "SIDEWAYS", 1))
	assert.ErrorIs(t, err, errInvalidDirection)
}

func TestExitFlattensExactly(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t)
	require.NoError(t, p.OnFill(testFill("AAPL", -15, 100, 0)))

	o, err := p.OnSignal(testSignal("AAPL", common.Exit, 1))
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.True(t, o.GetAmount().Equal(decimal.NewFromInt(15)), "exit must negate the holding exactly")
}

func TestExitIdempotentWhenFlat(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t)
	o, err := p.OnSignal(testSignal("AAPL", common.Exit, 1))
	require.NoError(t, err)
	assert.Nil(t, o, "exit while flat is a no-op")
	assert.True(t, p.Funds().Equal(decimal.NewFromInt(100000)))

	// a second exit changes nothing either
	o, err = p.OnSignal(testSignal("AAPL", common.Exit, 1))
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestOnFillAccounting(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t)
	require.NoError(t, p.OnFill(testFill("AAPL", 10, 100, 2)))
	assert.True(t, p.Funds().Equal(decimal.NewFromInt(98998)), "cash reduced by notional plus commission")
	assert.True(t, p.Position("AAPL").Equal(decimal.NewFromInt(10)))

	require.NoError(t, p.OnFill(testFill("AAPL", -10, 110, 2)))
	assert.True(t, p.Position("AAPL").IsZero())
	assert.True(t, p.Funds().Equal(decimal.NewFromInt(100096)), "profit realised less commissions")

	err := p.OnFill(nil)
	assert.ErrorIs(t, err, common.ErrNilEvent)
}

func TestUpdateTickMarksToMarket(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t)
	require.NoError(t, p.OnFill(testFill("AAPL", 10, 100, 0)))

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(105)
	yBars := []data.Bar{{Time: start, Open: price, High: price, Low: price, Close: price, Volume: decimal.NewFromInt(1)}}
	xPrice := decimal.NewFromInt(50)
	xBars := []data.Bar{{Time: start, Open: xPrice, High: xPrice, Low: xPrice, Close: xPrice, Volume: decimal.NewFromInt(1)}}
	yHandler, err := data.NewHandler("AAPL", yBars)
	require.NoError(t, err)
	xHandler, err := data.NewHandler("MSFT", xBars)
	require.NoError(t, err)
	feed, err := data.NewPairFeed(yHandler, xHandler)
	require.NoError(t, err)
	tk, ok := feed.Next()
	require.True(t, ok)

	snapshot, err := p.UpdateTick(tk, feed)
	require.NoError(t, err)
	assert.True(t, snapshot.PositionsValue.Equal(decimal.NewFromInt(1050)))
	assert.True(t, snapshot.TotalEquity.Equal(decimal.NewFromInt(100050)))

	_, err = p.UpdateTick(nil, feed)
	assert.ErrorIs(t, err, common.ErrNilArguments)
}

func TestReset(t *testing.T) {
	t.Parallel()
	p := testPortfolio(t)
	require.NoError(t, p.OnFill(testFill("AAPL", 10, 100, 0)))
	p.Reset()
	assert.True(t, p.Funds().Equal(decimal.NewFromInt(100000)))
	assert.True(t, p.Position("AAPL").IsZero())
}
