package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shiftwise/shiftwise/infra/logger"
	"github.com/shiftwise/shiftwise/infra/runlog"
)

var (
	historyStatus   string
	historyScenario string
	historySince    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded optimization runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "filter by solve status")
	historyCmd.Flags().StringVar(&historyScenario, "scenario", "", "filter by scenario label")
	historyCmd.Flags().StringVar(&historySince, "since", "", "only runs after this RFC3339 time")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.RunLog.Enabled {
		return fmt.Errorf("run log is disabled in configuration")
	}
	log := logger.New("history")

	store, err := runlog.NewStore(cfg.RunLog)
	if err != nil {
		return fmt.Errorf("run store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("run store close: %v", err)
		}
	}()

	q := runlog.RunQuery{Status: historyStatus, Scenario: historyScenario}
	if historySince != "" {
		start, err := time.Parse(time.RFC3339, historySince)
		if err != nil {
			return fmt.Errorf("parse --since: %w", err)
		}
		q.Start = start
	}
	records, err := store.Query(cmd.Context(), q)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
