// Package engine runs the analysis pipeline: curve fitting,
// equilibrium search, stability/elasticity analysis, and the subsidy
// scenario. Each stage runs once and its output feeds the next.
package engine

import (
	"go.uber.org/zap"

	"market-equilibrium/core/analysis"
	"market-equilibrium/core/fit"
	"market-equilibrium/core/model"
	"market-equilibrium/core/scenario"
	"market-equilibrium/core/solve"
	"market-equilibrium/internal/errors"
	"market-equilibrium/internal/logging"
)

// Options carries the numerical settings for both solvers.
type Options struct {
	Fit   fit.Options
	Solve solve.Options
}

// Result is the complete, immutable outcome of one analysis run.
type Result struct {
	// Scenario is the input the result was computed from
	Scenario *scenario.Scenario `json:"scenario"`

	// Demand and Supply are the fitted curves
	Demand model.DemandCurve `json:"demand"`
	Supply model.SupplyCurve `json:"supply"`

	// Equilibrium is the base crossing point of the fitted curves
	Equilibrium model.Point `json:"equilibrium"`

	// DemandSlope and SupplySlope are the analytic derivatives at
	// the equilibrium price
	DemandSlope float64 `json:"demand_slope"`
	SupplySlope float64 `json:"supply_slope"`

	// Stable is the local stability classification at equilibrium
	Stable bool `json:"stable"`

	// DemandElasticity and SupplyElasticity are arc elasticities
	// between the first and last raw observations
	DemandElasticity float64 `json:"demand_elasticity"`
	SupplyElasticity float64 `json:"supply_elasticity"`

	// Subsidy is the subsidy scenario outcome
	Subsidy SubsidyResult `json:"subsidy"`
}

// SubsidyResult is the market outcome under a per-unit subsidy.
type SubsidyResult struct {
	// Amount is the per-unit subsidy
	Amount float64 `json:"amount"`

	// Equilibrium is the crossing of demand with the shifted supply
	Equilibrium model.Point `json:"equilibrium"`

	// ConsumerPrice is the new equilibrium price; ProducerPrice is
	// the consumer price less the subsidy
	ConsumerPrice float64 `json:"consumer_price"`
	ProducerPrice float64 `json:"producer_price"`
}

// Analyze runs the full pipeline for one scenario.
func Analyze(scn *scenario.Scenario, opt Options) (*Result, error) {
	demand, err := fit.Demand(scn.Prices, scn.Demand, opt.Fit)
	if err != nil {
		return nil, errors.Fit("fitting demand curve", err)
	}
	supply, err := fit.Supply(scn.Prices, scn.Supply, opt.Fit)
	if err != nil {
		return nil, errors.Fit("fitting supply curve", err)
	}
	logging.Info("curves fitted",
		zap.String("demand", demand.String()),
		zap.String("supply", supply.String()),
	)

	eq, err := solve.Equilibrium(demand, supply, scn.Seed, opt.Solve)
	if err != nil {
		return nil, err
	}
	logging.Info("equilibrium found",
		zap.Float64("price", eq.Price),
		zap.Float64("quantity", eq.Quantity),
	)

	demandSlope, supplySlope := analysis.Slopes(demand, supply, eq.Price)

	last := len(scn.Prices) - 1
	result := &Result{
		Scenario:    scn,
		Demand:      demand,
		Supply:      supply,
		Equilibrium: eq,
		DemandSlope: demandSlope,
		SupplySlope: supplySlope,
		Stable:      analysis.Stable(demandSlope, supplySlope),
		DemandElasticity: analysis.ArcElasticity(
			scn.Demand[0], scn.Demand[last], scn.Prices[0], scn.Prices[last]),
		SupplyElasticity: analysis.ArcElasticity(
			scn.Supply[0], scn.Supply[last], scn.Prices[0], scn.Prices[last]),
	}

	sub, err := subsidize(demand, supply, eq, scn.Subsidy, opt.Solve)
	if err != nil {
		return nil, err
	}
	result.Subsidy = sub

	return result, nil
}

// subsidize re-solves the equilibrium condition with the supply
// schedule shifted by the per-unit subsidy, seeded at the base
// equilibrium price plus the subsidy.
func subsidize(demand model.DemandCurve, supply model.SupplyCurve, base model.Point, amount float64, opt solve.Options) (SubsidyResult, error) {
	shifted := supply.Shifted(amount)

	eq, err := solve.Equilibrium(demand, shifted, base.Price+amount, opt)
	if err != nil {
		return SubsidyResult{}, err
	}

	return SubsidyResult{
		Amount:        amount,
		Equilibrium:   eq,
		ConsumerPrice: eq.Price,
		ProducerPrice: eq.Price - amount,
	}, nil
}
