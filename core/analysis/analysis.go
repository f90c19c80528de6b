// Package analysis computes local stability and arc elasticity.
package analysis

import (
	"market-equilibrium/core/model"
)

// Slopes evaluates the analytic derivatives of both fitted curves at
// the given price, usually the equilibrium price.
func Slopes(demand model.DemandCurve, supply model.SupplyCurve, price float64) (demandSlope, supplySlope float64) {
	return demand.Slope(price), supply.Slope(price)
}

// Stable reports the market stability condition at equilibrium.
// The signed comparison equals the textbook |dQs/dP| > |dQd/dP|
// condition here because the demand slope is structurally negative and
// the supply slope structurally positive for these power-law forms.
func Stable(demandSlope, supplySlope float64) bool {
	return supplySlope > demandSlope
}

// ArcElasticity computes the midpoint-formula elasticity between two
// observations: percentage change in quantity over percentage change
// in price, each relative to the midpoint. Zero midpoints or zero
// price change propagate as Inf or NaN.
func ArcElasticity(q1, q2, p1, p2 float64) float64 {
	quantityChange := (q2 - q1) / ((q2 + q1) / 2)
	priceChange := (p2 - p1) / ((p2 + p1) / 2)
	return quantityChange / priceChange
}
