// Package cmd - analyze command
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hcladapter "market-equilibrium/adapters/scenario"
	"market-equilibrium/core/engine"
	"market-equilibrium/core/fit"
	"market-equilibrium/core/output"
	"market-equilibrium/core/scenario"
	"market-equilibrium/core/solve"
	"market-equilibrium/internal/config"
	"market-equilibrium/internal/logging"
)

var (
	outputFormat string
	chartPath    string
	subsidyFlag  float64
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [scenario.hcl]",
	Short: "Analyze a market scenario",
	Long: `Fit demand and supply curves to a market scenario, solve for the
equilibrium, and report slopes, stability, elasticities and the
subsidy outcome.

Without an argument the built-in 12-point sample market is analyzed.

Examples:
  market-equilibrium analyze
  market-equilibrium analyze market.hcl
  market-equilibrium analyze --format json --chart market.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	analyzeCmd.Flags().StringVar(&chartPath, "chart", "", "chart image path (empty uses the configured path, \"none\" disables)")
	analyzeCmd.Flags().Float64VarP(&subsidyFlag, "subsidy", "s", -1, "override the scenario's per-unit subsidy")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	scn, err := loadScenario(args)
	if err != nil {
		return err
	}
	if subsidyFlag >= 0 {
		scn.Subsidy = subsidyFlag
	}

	logging.Info("starting analysis",
		zap.String("scenario", scn.Name),
		zap.Int("observations", len(scn.Prices)),
	)

	opt := engine.Options{
		Fit: fit.Options{
			Tolerance:     cfg.Solver.Tolerance,
			MaxIterations: cfg.Solver.MaxIterations,
		},
		Solve: solve.Options{
			Tolerance:     cfg.Solver.Tolerance,
			MaxIterations: cfg.Solver.MaxIterations,
		},
	}

	result, err := engine.Analyze(scn, opt)
	if err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	if err := formatter.Render(os.Stdout, result); err != nil {
		return err
	}

	path := chartPath
	if path == "" {
		path = cfg.Output.ChartPath
	}
	if path != "" && path != "none" {
		chartOpt := output.ChartOptions{
			WidthInches:  cfg.Output.ChartWidthInches,
			HeightInches: cfg.Output.ChartHeightInches,
		}
		if err := output.SaveChart(result, path, chartOpt); err != nil {
			return err
		}
		logging.Info("chart written", zap.String("path", path))
	}

	return nil
}

func loadScenario(args []string) (*scenario.Scenario, error) {
	if len(args) == 0 {
		return scenario.Default(), nil
	}
	return hcladapter.NewScanner().Load(args[0])
}
