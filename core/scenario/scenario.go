// Package scenario defines the market scenario input: the observed
// price/quantity sample, the subsidy amount, and the root-finder seed.
package scenario

import (
	"market-equilibrium/internal/errors"
)

// Scenario is one market to analyze. Values are read once at the start
// of the pipeline and never mutated.
type Scenario struct {
	// Name labels the scenario in reports
	Name string `json:"name"`

	// Prices, Demand and Supply are index-aligned observations.
	// Prices are assumed strictly increasing so that the first and
	// last observations bound the observed range.
	Prices []float64 `json:"prices"`
	Demand []float64 `json:"demand"`
	Supply []float64 `json:"supply"`

	// Subsidy is the per-unit production subsidy to simulate
	Subsidy float64 `json:"subsidy"`

	// Seed is the initial guess for the equilibrium price search
	Seed float64 `json:"seed"`
}

// Default returns the built-in 12-point sample market with a 0.5
// subsidy and the equilibrium seed at price 2.
func Default() *Scenario {
	return &Scenario{
		Name:    "sample-market",
		Prices:  []float64{1, 1.25, 1.57, 1.81, 2.09, 2.45, 2.8, 3.19, 3.58, 3.85, 4.5, 5},
		Demand:  []float64{280, 245, 190, 141, 135, 110, 95, 65, 58, 44, 21, 10},
		Supply:  []float64{5, 20, 51, 89, 120, 153, 180, 201, 215, 228, 240, 248},
		Subsidy: 0.5,
		Seed:    2,
	}
}

// Validate checks a scenario loaded from external input. The built-in
// sample is trusted and does not pass through here.
func (s *Scenario) Validate() error {
	n := len(s.Prices)
	if n < 2 {
		return errors.Scenario("at least two observations are required")
	}
	if len(s.Demand) != n || len(s.Supply) != n {
		return errors.Newf(errors.TypeScenario,
			"observation lengths differ: %d prices, %d demand, %d supply",
			n, len(s.Demand), len(s.Supply))
	}
	for i, p := range s.Prices {
		if p <= 0 {
			return errors.Newf(errors.TypeScenario, "price at index %d is not positive: %g", i, p)
		}
	}
	if s.Subsidy < 0 {
		return errors.Newf(errors.TypeScenario, "subsidy is negative: %g", s.Subsidy)
	}
	if s.Seed <= 0 {
		return errors.Newf(errors.TypeScenario, "seed price is not positive: %g", s.Seed)
	}
	return nil
}
