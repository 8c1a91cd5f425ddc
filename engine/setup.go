package engine

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/webclinic017/algorithmic-trading-7/config"
	"github.com/webclinic017/algorithmic-trading-7/data"
	"github.com/webclinic017/algorithmic-trading-7/data/csv"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/exchange"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/portfolio"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/statistics"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/strategies"
	"github.com/webclinic017/algorithmic-trading-7/eventholder"
	"go.uber.org/zap"
)

var (
	errNilConfig = errors.New("received nil config")
	errNilLogger = errors.New("received nil logger")
)

// NewFromConfig assembles a ready to run backtest from a validated config
func NewFromConfig(cfg *config.Config, log *zap.Logger) (*BackTest, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if log == nil {
		return nil, errNilLogger
	}

	strat, err := strategies.LoadStrategyByName(cfg.Strategy.Name)
	if err != nil {
		return nil, err
	}
	strat.SetDefaults()
	if len(cfg.Strategy.CustomSettings) > 0 {
		if err = strat.SetCustomSettings(cfg.Strategy.CustomSettings); err != nil {
			return nil, err
		}
	}

	y, err := csv.LoadBars(cfg.Pair.YSymbol, cfg.Pair.YData)
	if err != nil {
		return nil, err
	}
	x, err := csv.LoadBars(cfg.Pair.XSymbol, cfg.Pair.XData)
	if err != nil {
		return nil, err
	}
	feed, err := data.NewPairFeed(y, x)
	if err != nil {
		return nil, err
	}

	port, err := portfolio.Setup(
		decimal.NewFromFloat(cfg.InitialFunds),
		decimal.NewFromFloat(cfg.OrderSize),
		log)
	if err != nil {
		return nil, err
	}
	exch, err := exchange.Setup(cfg.Exchange.Name, decimal.NewFromFloat(cfg.Exchange.Commission), log)
	if err != nil {
		return nil, err
	}
	stats, err := statistics.Setup(strat.Name(), decimal.NewFromFloat(cfg.InitialFunds), log)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &BackTest{
		MetaData: RunMetaData{
			ID:         id,
			Nickname:   cfg.Nickname,
			Strategy:   strat.Name(),
			DateLoaded: time.Now(),
		},
		EventQueue: &eventholder.Holder{},
		Feed:       feed,
		Strategy:   strat,
		Portfolio:  port,
		Exchange:   exch,
		Statistic:  stats,
		log:        log,
	}, nil
}
