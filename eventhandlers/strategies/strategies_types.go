package strategies

import (
	"errors"

	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/signal"
)

// ErrStrategyNotFound used when a strategy specified in the config does not exist
var ErrStrategyNotFound = errors.New("strategy not found. Please ensure the strategy-settings field 'name' is spelled properly in your config")

// Handler defines all functions required to run strategies against bar data
type Handler interface {
	Name() string
	Description() string
	// OnTick processes one market event against the feed. A nil slice with a
	// nil error is a deliberate no-op, such as the warm-up period. A non-empty
	// return always holds both legs of the pair
	OnTick(data.Feeder) ([]signal.Event, error)
	SetCustomSettings(map[string]any) error
	SetDefaults()
}
