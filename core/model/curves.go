// Package model defines the market curve forms and their analytic properties.
package model

import (
	"fmt"
	"math"
)

// Curve is a quantity schedule over price.
type Curve interface {
	// Quantity evaluates the curve at the given price
	Quantity(price float64) float64

	// Slope is the analytic derivative dQ/dP at the given price
	Slope(price float64) float64
}

// DemandCurve is the power-law demand form Q = A * P^(-B).
// Both parameters are expected positive for a downward-sloping
// curve; the fit does not enforce that.
type DemandCurve struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Quantity evaluates demand at the given price
func (c DemandCurve) Quantity(price float64) float64 {
	return c.A * math.Pow(price, -c.B)
}

// Slope is dQd/dP = -A*B*P^-(B+1)
func (c DemandCurve) Slope(price float64) float64 {
	return -c.A * c.B * math.Pow(price, -(c.B + 1))
}

// String renders the fitted form, e.g. "Qd = 281.46*P^(-2.03)"
func (c DemandCurve) String() string {
	return fmt.Sprintf("Qd = %.2f*P^(-%.2f)", c.A, c.B)
}

// SupplyCurve is the power-law supply form Q = C * P^D.
// Both parameters are expected positive for an upward-sloping curve.
type SupplyCurve struct {
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// Quantity evaluates supply at the given price
func (c SupplyCurve) Quantity(price float64) float64 {
	return c.C * math.Pow(price, c.D)
}

// Slope is dQs/dP = C*D*P^(D-1)
func (c SupplyCurve) Slope(price float64) float64 {
	return c.C * c.D * math.Pow(price, c.D-1)
}

// String renders the fitted form, e.g. "Qs = 6.12*P^(2.31)"
func (c SupplyCurve) String() string {
	return fmt.Sprintf("Qs = %.2f*P^(%.2f)", c.C, c.D)
}

// Shifted returns the supply schedule under a per-unit subsidy:
// the original curve evaluated at the producer price P - subsidy.
func (c SupplyCurve) Shifted(subsidy float64) ShiftedSupply {
	return ShiftedSupply{Base: c, Subsidy: subsidy}
}

// ShiftedSupply is a supply curve under a per-unit subsidy.
type ShiftedSupply struct {
	Base    SupplyCurve `json:"base"`
	Subsidy float64     `json:"subsidy"`
}

// Quantity evaluates the shifted schedule at the given consumer price
func (s ShiftedSupply) Quantity(price float64) float64 {
	return s.Base.Quantity(price - s.Subsidy)
}

// Slope is the derivative of the shifted schedule with respect to price
func (s ShiftedSupply) Slope(price float64) float64 {
	return s.Base.Slope(price - s.Subsidy)
}

// Point is a price/quantity pair, typically an equilibrium.
type Point struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}
