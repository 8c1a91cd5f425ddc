package portfolio

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/portfolio/holdings"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/fill"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/order"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/signal"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/tick"
	"go.uber.org/zap"
)

var (
	errInitialFundsZero = errors.New("initial funds must be greater than zero")
	errOrderSizeZero    = errors.New("order size must be greater than zero")
	errNilLogger        = errors.New("received nil logger")
	errInvalidDirection = errors.New("invalid signal direction")
)

// Portfolio converts signals into sized orders and tracks cash and holdings.
// Holdings are signed quantities per symbol, mutated by fill events only
type Portfolio struct {
	initialFunds decimal.Decimal
	funds        decimal.Decimal
	orderSize    decimal.Decimal
	positions    map[string]decimal.Decimal
	log          *zap.Logger
}

// Handler contains all functionality expected of a portfolio manager
type Handler interface {
	OnSignal(signal.Event) (*order.Order, error)
	OnFill(fill.Event) error
	UpdateTick(tick.Event, data.Feeder) (holdings.Snapshot, error)
	Position(symbol string) decimal.Decimal
	Funds() decimal.Decimal
	Reset()
}
