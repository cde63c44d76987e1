package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiftwise/shiftwise/core/optimizer"
	"github.com/shiftwise/shiftwise/core/scenario"
	"github.com/shiftwise/shiftwise/infra/logger"
	"github.com/shiftwise/shiftwise/internal/dataset"
)

var (
	scenarioKind    string
	scenarioName    string
	scenarioFactor  float64
	affectedIDs     []string
	scenarioEmpPath string
	scenarioDemPath string
	scenarioAvlPath string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Evaluate a what-if scenario against the baseline",
	RunE:  runScenario,
}

func init() {
	scenarioCmd.Flags().StringVar(&scenarioKind, "kind", "", "scenario kind: demand_scale, absence, removal, holiday")
	scenarioCmd.Flags().StringVar(&scenarioName, "name", "", "display name of the scenario")
	scenarioCmd.Flags().Float64Var(&scenarioFactor, "factor", 1.0, "demand multiplier for scaling kinds")
	scenarioCmd.Flags().StringSliceVar(&affectedIDs, "affected", nil, "employee ids for absence/removal kinds")
	scenarioCmd.Flags().StringVar(&scenarioEmpPath, "employees", "employees.csv", "employee records file")
	scenarioCmd.Flags().StringVar(&scenarioDemPath, "demand", "demand.csv", "demand forecast file")
	scenarioCmd.Flags().StringVar(&scenarioAvlPath, "availability", "availability.csv", "availability records file")
	_ = scenarioCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(scenarioCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New("scenario")

	employees, demand, availability, err := dataset.LoadFiles(scenarioEmpPath, scenarioDemPath, scenarioAvlPath)
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

	spec := scenario.Spec{
		Kind:        scenario.Kind(scenarioKind),
		Name:        scenarioName,
		Factor:      scenarioFactor,
		EmployeeIDs: affectedIDs,
	}
	ev, err := scenario.Evaluate(eng, inst, spec)
	if err != nil {
		return err
	}

	log.Infof("baseline: %s cost=%.2f coverage=%.1f%%",
		ev.Baseline.Status, ev.Baseline.KPIs.TotalCost, ev.Baseline.KPIs.CoveragePercentage)
	log.Infof("scenario %s: %s cost=%.2f coverage=%.1f%%",
		spec.Label(), ev.Scenario.Status, ev.Scenario.KPIs.TotalCost, ev.Scenario.KPIs.CoveragePercentage)

	out := struct {
		Scenario   string              `json:"scenario"`
		Baseline   string              `json:"baseline_status"`
		Status     string              `json:"scenario_status"`
		BaseKPIs   any                 `json:"baseline_kpis"`
		ScenKPIs   any                 `json:"scenario_kpis"`
		Comparison scenario.Comparison `json:"comparison"`
	}{
		Scenario:   spec.Label(),
		Baseline:   ev.Baseline.Status.String(),
		Status:     ev.Scenario.Status.String(),
		BaseKPIs:   ev.Baseline.KPIs,
		ScenKPIs:   ev.Scenario.KPIs,
		Comparison: ev.Comparison,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
