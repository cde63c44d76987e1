package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiftwise/shiftwise/config"
	"github.com/shiftwise/shiftwise/core/metrics"
	"github.com/shiftwise/shiftwise/core/optimizer"
	"github.com/shiftwise/shiftwise/infra/logger"
	// Registers the built-in metrics sink factories.
	_ "github.com/shiftwise/shiftwise/infra/metrics"
	"github.com/shiftwise/shiftwise/infra/runlog"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "shiftwise",
	Short: "Workforce scheduling optimizer",
	Long: "shiftwise assigns work hours to employees across a scheduling horizon " +
		"so forecasted demand is covered at minimum labor cost.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file, falling back to defaults when
// the default path simply does not exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// buildEngine assembles the engine with the configured sinks and run
// store. The returned closer flushes and releases them.
func buildEngine(cfg *config.Config, log logger.Logger) (*optimizer.Engine, func(), error) {
	sink, err := metrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics sink: %w", err)
	}
	closer := func() {}
	if cfg.RunLog.Enabled {
		store, err := runlog.NewStore(cfg.RunLog)
		if err != nil {
			return nil, nil, fmt.Errorf("run store: %w", err)
		}
		sink = metrics.NewMultiSink(sink, runlog.Recorder{Store: store})
		closer = func() {
			if err := store.Close(); err != nil {
				log.Errorf("run store close: %v", err)
			}
		}
	}
	return optimizer.NewEngine(cfg.Solver, cfg.Policy, log, sink), closer, nil
}
