package config

import "errors"

var (
	errNicknameUnset       = errors.New("run nickname unset")
	errInitialFundsInvalid = errors.New("initial funds must be greater than zero")
	errOrderSizeInvalid    = errors.New("order size must be greater than zero")
	errCommissionInvalid   = errors.New("commission cannot be negative")
	errExchangeNameUnset   = errors.New("exchange name unset")
	errSymbolUnset         = errors.New("pair symbol unset")
	errSymbolsIdentical    = errors.New("pair symbols must differ")
	errDataFileUnset       = errors.New("pair data file unset")
	errStrategyUnset       = errors.New("strategy name unset")
)

// Config defines what is in an individual run config
type Config struct {
	Nickname     string           `mapstructure:"nickname"`
	InitialFunds float64          `mapstructure:"initial-funds"`
	OrderSize    float64          `mapstructure:"order-size"`
	Exchange     ExchangeSettings `mapstructure:"exchange"`
	Pair         PairSettings     `mapstructure:"pair"`
	Strategy     StrategySettings `mapstructure:"strategy"`
}

// ExchangeSettings stores simulated execution variables
type ExchangeSettings struct {
	Name       string  `mapstructure:"name"`
	Commission float64 `mapstructure:"commission"`
}

// PairSettings names the two legs and where their candle data lives
type PairSettings struct {
	YSymbol string `mapstructure:"y-symbol"`
	XSymbol string `mapstructure:"x-symbol"`
	YData   string `mapstructure:"y-data"`
	XData   string `mapstructure:"x-data"`
}

// StrategySettings holds the strategy to load along with any overrides for
// its default values
type StrategySettings struct {
	Name           string                 `mapstructure:"name"`
	CustomSettings map[string]interface{} `mapstructure:"custom-settings"`
}
