package fit

import (
	"math"

	"market-equilibrium/core/model"
)

// demandTarget is Q = a*P^(-b) with params = [a, b].
var demandTarget = Target{
	Eval: func(p []float64, x float64) float64 {
		return p[0] * math.Pow(x, -p[1])
	},
	Grad: func(dst, p []float64, x float64) {
		pw := math.Pow(x, -p[1])
		dst[0] = pw
		dst[1] = -p[0] * math.Log(x) * pw
	},
}

// supplyTarget is Q = c*P^d with params = [c, d].
var supplyTarget = Target{
	Eval: func(p []float64, x float64) float64 {
		return p[0] * math.Pow(x, p[1])
	},
	Grad: func(dst, p []float64, x float64) {
		pw := math.Pow(x, p[1])
		dst[0] = pw
		dst[1] = p[0] * math.Log(x) * pw
	},
}

// Demand fits the power-law demand form to the observations.
// The initial guess is all ones.
func Demand(prices, quantities []float64, opt Options) (model.DemandCurve, error) {
	params, err := Curve(demandTarget, prices, quantities, []float64{1, 1}, opt)
	if err != nil {
		return model.DemandCurve{}, err
	}
	return model.DemandCurve{A: params[0], B: params[1]}, nil
}

// Supply fits the power-law supply form to the observations.
// The initial guess is all ones.
func Supply(prices, quantities []float64, opt Options) (model.SupplyCurve, error) {
	params, err := Curve(supplyTarget, prices, quantities, []float64{1, 1}, opt)
	if err != nil {
		return model.SupplyCurve{}, err
	}
	return model.SupplyCurve{C: params[0], D: params[1]}, nil
}
