package output

import (
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"

	"market-equilibrium/core/engine"
)

// cliFormatter writes the human-readable text report.
type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, result *engine.Result) error {
	lines := []struct {
		label string
		value string
	}{
		{"Scenario", result.Scenario.Name},
		{"Demand curve", result.Demand.String()},
		{"Supply curve", result.Supply.String()},
		{"Equilibrium price", round(result.Equilibrium.Price)},
		{"Equilibrium quantity", round(result.Equilibrium.Quantity)},
		{"Demand slope at equilibrium", round(result.DemandSlope)},
		{"Supply slope at equilibrium", round(result.SupplySlope)},
		{"Stable equilibrium", fmt.Sprintf("%t", result.Stable)},
		{"Arc elasticity of demand", round(result.DemandElasticity)},
		{"Arc elasticity of supply", round(result.SupplyElasticity)},
		{"Subsidy per unit", round(result.Subsidy.Amount)},
		{"Consumer price", round(result.Subsidy.ConsumerPrice)},
		{"Producer price", round(result.Subsidy.ProducerPrice)},
		{"Quantity under subsidy", round(result.Subsidy.Equilibrium.Quantity)},
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-28s %s\n", line.label+":", line.value); err != nil {
			return err
		}
	}
	return nil
}

// round formats a figure to four decimal places. Non-finite values
// (a degenerate elasticity denominator) are printed as-is; decimal
// cannot represent them.
func round(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%v", v)
	}
	return decimal.NewFromFloat(v).Round(4).String()
}
