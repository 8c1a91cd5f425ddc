package base

import (
	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/event"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/signal"
)

// GetBaseData returns a signal stamped with the feed's current offset and
// time, ready for a strategy to fill in direction and strength
func (s *Strategy) GetBaseData(d data.Feeder, symbol string) (signal.Signal, error) {
	if d == nil {
		return signal.Signal{}, common.ErrNilArguments
	}
	return signal.Signal{
		Base: event.Base{
			Offset: d.Offset(),
			Time:   d.LatestTime(),
		},
		Symbol: symbol,
	}, nil
}
