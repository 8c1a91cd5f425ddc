// Package engine ties together the data feed, strategy, portfolio, exchange
// and statistics handlers and runs the event loop over them
package engine

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/exchange"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/portfolio"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/statistics"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/strategies"
	"github.com/webclinic017/algorithmic-trading-7/eventholder"
	"go.uber.org/zap"
)

// BackTest is the main holder of all backtesting functionality
type BackTest struct {
	MetaData   RunMetaData
	EventQueue eventholder.EventHolder
	Feed       data.Feeder
	Strategy   strategies.Handler
	Portfolio  portfolio.Handler
	Exchange   exchange.ExecutionHandler
	Statistic  statistics.Handler

	log *zap.Logger
}

// RunMetaData contains details about a run such as when it was loaded
type RunMetaData struct {
	ID          uuid.UUID
	Nickname    string
	Strategy    string
	DateLoaded  time.Time
	DateStarted time.Time
	DateEnded   time.Time
}
