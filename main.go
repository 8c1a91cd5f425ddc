package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/webclinic017/algorithmic-trading-7/config"
	"github.com/webclinic017/algorithmic-trading-7/engine"
	"github.com/webclinic017/algorithmic-trading-7/report"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "backtester",
		Usage: "runs an event driven pairs trading backtest from a config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the run config",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "optional path to write the results report to",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is unactionable

	cfg, err := config.ReadConfigFromFile(c.String("config"))
	if err != nil {
		return err
	}
	bt, err := engine.NewFromConfig(cfg, log)
	if err != nil {
		return err
	}
	if err = bt.Run(); err != nil {
		return err
	}
	if err = bt.Report(); err != nil {
		return err
	}
	if out := c.String("output"); out != "" {
		return report.GenerateReport(bt.Statistic, out)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
