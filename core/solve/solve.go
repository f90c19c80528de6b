// Package solve provides scalar root finding and the market
// equilibrium condition built on it.
package solve

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"market-equilibrium/core/model"
	"market-equilibrium/internal/errors"
)

// Options controls the root search.
type Options struct {
	// Tolerance is the absolute tolerance on |f(x)| at the root
	Tolerance float64

	// MaxIterations bounds the Newton iteration count
	MaxIterations int
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-10
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 200
	}
	return o
}

var central = &fd.Settings{Formula: fd.Central}

// Root finds a root of f near the given guess by Newton iteration with
// a central-difference derivative. Only the root in the guess's
// convergence basin is returned; there is no global search.
func Root(f func(float64) float64, guess float64, opt Options) (float64, error) {
	opt = opt.withDefaults()

	x := guess
	for iter := 0; iter < opt.MaxIterations; iter++ {
		fx := f(x)
		if math.Abs(fx) <= opt.Tolerance {
			return x, nil
		}
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return 0, errors.Newf(errors.TypeSolve, "function not finite at x=%g", x)
		}

		d := fd.Derivative(f, x, central)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, errors.Newf(errors.TypeSolve, "derivative unusable at x=%g", x)
		}

		next := x - fx/d
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, errors.Newf(errors.TypeSolve, "iteration diverged from seed %g", guess)
		}
		x = next
	}

	return 0, errors.Newf(errors.TypeSolve, "no root within %d iterations from seed %g", opt.MaxIterations, guess)
}

// Equilibrium finds the price where the supply and demand schedules
// cross, seeded at the given price. The quantity is the supply quantity
// at the solved price (equal to demand up to the solver tolerance).
func Equilibrium(demand, supply model.Curve, seed float64, opt Options) (model.Point, error) {
	excess := func(p float64) float64 {
		return supply.Quantity(p) - demand.Quantity(p)
	}

	price, err := Root(excess, seed, opt)
	if err != nil {
		return model.Point{}, err
	}

	return model.Point{Price: price, Quantity: supply.Quantity(price)}, nil
}
