// Package fit provides nonlinear least-squares curve fitting.
//
// The fitter is a damped least-squares (Levenberg-Marquardt) iteration
// over a parametric curve: at each step the normal equations
// (J'J + lambda*diag(J'J)) dp = J'r are solved for the parameter update,
// with the damping factor raised on rejected steps and lowered on
// accepted ones.
package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"market-equilibrium/internal/errors"
)

// Target is a parametric curve y = f(params, x).
type Target struct {
	// Eval returns the curve value at x for the given parameters
	Eval func(params []float64, x float64) float64

	// Grad fills dst with the partial derivatives of Eval with
	// respect to each parameter, evaluated at x
	Grad func(dst []float64, params []float64, x float64)
}

// Options controls the fit iteration.
type Options struct {
	// Tolerance is the relative step-size convergence tolerance
	Tolerance float64

	// MaxIterations bounds the outer iteration count
	MaxIterations int
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-10
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 500
	}
	return o
}

const (
	initialDamping = 1e-3
	dampingRaise   = 10
	dampingLower   = 0.1
	minDamping     = 1e-12
	maxStepRetries = 40
)

// Curve fits the target to the observations, minimizing the sum of
// squared residuals from the initial parameter guess p0. The returned
// slice has the same length as p0. Non-convergence within the iteration
// budget is an error.
func Curve(t Target, xs, ys, p0 []float64, opt Options) ([]float64, error) {
	opt = opt.withDefaults()

	n, m := len(xs), len(p0)
	if len(ys) != n {
		return nil, errors.Newf(errors.TypeFit, "observation length mismatch: %d x values, %d y values", n, len(ys))
	}
	if n < m {
		return nil, errors.Newf(errors.TypeFit, "underdetermined fit: %d observations for %d parameters", n, m)
	}

	params := make([]float64, m)
	copy(params, p0)

	jac := mat.NewDense(n, m, nil)
	res := mat.NewVecDense(n, nil)
	row := make([]float64, m)

	ssr := sumSquares(t, params, xs, ys)
	damping := initialDamping

	for iter := 0; iter < opt.MaxIterations; iter++ {
		for i := 0; i < n; i++ {
			res.SetVec(i, ys[i]-t.Eval(params, xs[i]))
			t.Grad(row, params, xs[i])
			jac.SetRow(i, row)
		}

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		var grad mat.VecDense
		grad.MulVec(jac.T(), res)

		accepted := false
		var trial []float64
		var trialSSR float64

		for retry := 0; retry < maxStepRetries; retry++ {
			lhs := mat.DenseCopyOf(&jtj)
			for j := 0; j < m; j++ {
				lhs.Set(j, j, jtj.At(j, j)*(1+damping))
			}

			var step mat.VecDense
			if err := step.SolveVec(lhs, &grad); err != nil {
				damping *= dampingRaise
				continue
			}

			trial = make([]float64, m)
			for j := 0; j < m; j++ {
				trial[j] = params[j] + step.AtVec(j)
			}
			trialSSR = sumSquares(t, trial, xs, ys)

			if trialSSR < ssr {
				accepted = true
				if converged(&step, params, opt.Tolerance) {
					return trial, nil
				}
				damping = math.Max(damping*dampingLower, minDamping)
				break
			}
			damping *= dampingRaise
		}

		if !accepted {
			// No damping value produced a downhill step, so the
			// iterate is pinned to a minimum at working precision.
			if !math.IsInf(ssr, 1) {
				return params, nil
			}
			return nil, errors.Newf(errors.TypeFit, "objective not finite after %d damping retries at iteration %d", maxStepRetries, iter)
		}

		params = trial
		ssr = trialSSR
	}

	return nil, errors.Newf(errors.TypeFit, "fit did not converge in %d iterations", opt.MaxIterations)
}

func sumSquares(t Target, params, xs, ys []float64) float64 {
	var ssr float64
	for i, x := range xs {
		r := ys[i] - t.Eval(params, x)
		ssr += r * r
	}
	if math.IsNaN(ssr) {
		return math.Inf(1)
	}
	return ssr
}

func converged(step *mat.VecDense, params []float64, tol float64) bool {
	var pn float64
	for _, p := range params {
		pn += p * p
	}
	return mat.Norm(step, 2) <= tol*(1+math.Sqrt(pn))
}
