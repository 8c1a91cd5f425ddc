package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/webclinic017/algorithmic-trading-7/eventhandlers/strategies"
)

// ReadConfigFromFile loads and validates a run config from a path
func ReadConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks all config settings before a run is started
func (c *Config) Validate() error {
	if c.Nickname == "" {
		return errNicknameUnset
	}
	if c.InitialFunds <= 0 {
		return errInitialFundsInvalid
	}
	if c.OrderSize <= 0 {
		return errOrderSizeInvalid
	}
	if c.Exchange.Name == "" {
		return errExchangeNameUnset
	}
	if c.Exchange.Commission < 0 {
		return errCommissionInvalid
	}
	if err := c.Pair.validate(); err != nil {
		return err
	}
	if c.Strategy.Name == "" {
		return errStrategyUnset
	}
	if _, err := strategies.LoadStrategyByName(c.Strategy.Name); err != nil {
		return err
	}
	return nil
}

func (p *PairSettings) validate() error {
	if p.YSymbol == "" || p.XSymbol == "" {
		return errSymbolUnset
	}
	if p.YSymbol == p.XSymbol {
		return errSymbolsIdentical
	}
	if p.YData == "" || p.XData == "" {
		return errDataFileUnset
	}
	return nil
}
