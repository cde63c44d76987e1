package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiftwise/shiftwise/core/optimizer"
	"github.com/shiftwise/shiftwise/infra/logger"
	inframetrics "github.com/shiftwise/shiftwise/infra/metrics"
	"github.com/shiftwise/shiftwise/internal/dataset"
	"github.com/shiftwise/shiftwise/pkg/export"
)

var (
	employeesPath    string
	demandPath       string
	availabilityPath string
	outputFormat     string
	timeLimitFlag    int
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Solve one scheduling instance and print the schedule",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&employeesPath, "employees", "employees.csv", "employee records file")
	optimizeCmd.Flags().StringVar(&demandPath, "demand", "demand.csv", "demand forecast file")
	optimizeCmd.Flags().StringVar(&availabilityPath, "availability", "availability.csv", "availability records file")
	optimizeCmd.Flags().StringVar(&outputFormat, "format", "csv", "output format: csv or json")
	optimizeCmd.Flags().IntVar(&timeLimitFlag, "time-limit", 0, "override solver time limit in seconds")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if timeLimitFlag > 0 {
		cfg.Solver.TimeLimitSeconds = timeLimitFlag
	}
	log := logger.New("optimize")

	employees, demand, availability, err := dataset.LoadFiles(employeesPath, demandPath, availabilityPath)
	if err != nil {
		return err
	}
	inst, err := optimizer.Formulate(employees, demand, availability)
	if err != nil {
		return err
	}

	eng, done, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}
	defer done()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.Metrics.PrometheusPort != "" {
		go func() {
			if err := inframetrics.StartPromServer(ctx, cfg.Metrics.PrometheusPort); err != nil {
				log.Errorf("prom server: %v", err)
			}
		}()
	}

	res := eng.Optimize(inst)
	if !res.Status.Solved() {
		return fmt.Errorf("no solution: solver finished with status %s", res.Status)
	}

	log.Infof("kpis: cost=%.2f hours=%d overtime=%d coverage=%.1f%% staff/day=%.2f",
		res.KPIs.TotalCost, res.KPIs.TotalHours, res.KPIs.OvertimeHours,
		res.KPIs.CoveragePercentage, res.KPIs.AvgStaffPerDay)

	switch outputFormat {
	case "json":
		return export.WriteJSON(os.Stdout, res.Schedule)
	case "csv":
		return export.WriteCSV(os.Stdout, res.Schedule)
	default:
		return fmt.Errorf("unsupported format: %s", outputFormat)
	}
}
