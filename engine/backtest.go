package engine

import (
	"fmt"
	"time"

	"github.com/webclinic017/algorithmic-trading-7/common"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/fill"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/order"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/signal"
	"github.com/webclinic017/algorithmic-trading-7/eventtypes/tick"
	"go.uber.org/zap"
)

// Run orchestrates the backtest. The event queue is drained fully before the
// feed raises the next market tick, so every consequence of a bar settles
// before the clock advances. The run ends when the queue is empty and the
// feed has no bars left
func (bt *BackTest) Run() error {
	bt.MetaData.DateStarted = time.Now()
	bt.log.Info("running backtest",
		zap.String("id", bt.MetaData.ID.String()),
		zap.String("strategy", bt.MetaData.Strategy))
	for ev := bt.EventQueue.NextEvent(); ; ev = bt.EventQueue.NextEvent() {
		if ev == nil {
			tk, ok := bt.Feed.Next()
			if !ok {
				break
			}
			bt.EventQueue.AppendEvent(tk)
			continue
		}
		if err := bt.handleEvent(ev); err != nil {
			return err
		}
		bt.Statistic.TrackEvent(ev)
	}
	bt.MetaData.DateEnded = time.Now()
	return nil
}

// handleEvent dispatches by type. An unknown event type aborts the run, a
// queue carrying foreign events means the results cannot be trusted
func (bt *BackTest) handleEvent(ev common.Event) error {
	switch e := ev.(type) {
	case tick.Event:
		return bt.processTickEvent(e)
	case signal.Event:
		return bt.processSignalEvent(e)
	case order.Event:
		return bt.processOrderEvent(e)
	case fill.Event:
		return bt.processFillEvent(e)
	default:
		return fmt.Errorf("%w: %T", common.ErrUnknownEventType, ev)
	}
}

// processTickEvent gives the strategy first look at the new bar, then marks
// the portfolio to market and samples the equity curve
func (bt *BackTest) processTickEvent(ev tick.Event) error {
	sigs, err := bt.Strategy.OnTick(bt.Feed)
	if err != nil {
		return err
	}
	for i := range sigs {
		bt.EventQueue.AppendEvent(sigs[i])
	}
	snapshot, err := bt.Portfolio.UpdateTick(ev, bt.Feed)
	if err != nil {
		return err
	}
	bt.Statistic.AddEquitySample(snapshot)
	return nil
}

func (bt *BackTest) processSignalEvent(ev signal.Event) error {
	o, err := bt.Portfolio.OnSignal(ev)
	if err != nil {
		return err
	}
	if o == nil {
		// exit signal against a flat book, nothing to do
		return nil
	}
	bt.EventQueue.AppendEvent(o)
	return nil
}

func (bt *BackTest) processOrderEvent(ev order.Event) error {
	f, err := bt.Exchange.ExecuteOrder(ev, bt.Feed)
	if err != nil {
		return err
	}
	bt.EventQueue.AppendEvent(f)
	return nil
}

func (bt *BackTest) processFillEvent(ev fill.Event) error {
	return bt.Portfolio.OnFill(ev)
}

// Report summarises and logs the completed run
func (bt *BackTest) Report() error {
	results, err := bt.Statistic.CalculateResults()
	if err != nil {
		return err
	}
	bt.Statistic.PrintResults(results)
	return nil
}

// Reset returns the backtest to a pre-run state so it can be run again
func (bt *BackTest) Reset() {
	bt.EventQueue.Reset()
	bt.Feed.Reset()
	bt.Portfolio.Reset()
	bt.Statistic.Reset()
}
