package analysis

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"

	"market-equilibrium/core/model"
)

// TestSlopesMatchFiniteDifference checks the closed-form derivatives
// against finite differences of the curve evaluations.
func TestSlopesMatchFiniteDifference(t *testing.T) {
	demand := model.DemandCurve{A: 281.5, B: 2.03}
	supply := model.SupplyCurve{C: 6.1, D: 2.31}
	settings := &fd.Settings{Formula: fd.Central}

	for _, price := range []float64{1.2, 2.44, 4.8} {
		demandSlope, supplySlope := Slopes(demand, supply, price)

		fdDemand := fd.Derivative(demand.Quantity, price, settings)
		fdSupply := fd.Derivative(supply.Quantity, price, settings)

		if math.Signbit(demandSlope) != math.Signbit(fdDemand) {
			t.Errorf("price %v: demand slope sign mismatch: analytic %v, numeric %v", price, demandSlope, fdDemand)
		}
		if rel := math.Abs(demandSlope-fdDemand) / math.Abs(fdDemand); rel > 1e-5 {
			t.Errorf("price %v: demand slope %v vs numeric %v (rel %v)", price, demandSlope, fdDemand, rel)
		}
		if rel := math.Abs(supplySlope-fdSupply) / math.Abs(fdSupply); rel > 1e-5 {
			t.Errorf("price %v: supply slope %v vs numeric %v (rel %v)", price, supplySlope, fdSupply, rel)
		}
	}
}

// TestStableSignedComparison checks the signed comparison matches the
// magnitude condition when demand slopes down and supply slopes up.
func TestStableSignedComparison(t *testing.T) {
	tests := []struct {
		name        string
		demandSlope float64
		supplySlope float64
		want        bool
	}{
		{"upward supply, downward demand", -40, 60, true},
		{"flat supply, downward demand", -40, 0, true},
		{"both zero", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stable(tt.demandSlope, tt.supplySlope); got != tt.want {
				t.Errorf("Stable(%v, %v) = %v, want %v", tt.demandSlope, tt.supplySlope, got, tt.want)
			}
			// Magnitude form agrees whenever demand <= 0 <= supply
			// and not both are zero.
			if tt.demandSlope <= 0 && tt.supplySlope >= 0 && (tt.demandSlope != 0 || tt.supplySlope != 0) {
				magnitude := math.Abs(tt.supplySlope) > math.Abs(tt.demandSlope)
				if magnitude != Stable(tt.demandSlope, tt.supplySlope) {
					t.Errorf("signed comparison disagrees with magnitude form for %v, %v", tt.demandSlope, tt.supplySlope)
				}
			}
		})
	}
}

func TestArcElasticityMidpointFormula(t *testing.T) {
	// Q: 280 -> 10 over P: 1 -> 5 gives -186.2/144.9... per midpoints.
	got := ArcElasticity(280, 10, 1, 5)
	want := ((10.0 - 280.0) / ((10.0 + 280.0) / 2)) / ((5.0 - 1.0) / ((5.0 + 1.0) / 2))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ArcElasticity = %v, want %v", got, want)
	}
	if got >= 0 {
		t.Errorf("demand arc elasticity %v, want negative", got)
	}
}

// TestArcElasticityScaleInvariance checks that scaling all quantities
// or all prices by a positive constant leaves elasticity unchanged.
func TestArcElasticityScaleInvariance(t *testing.T) {
	base := ArcElasticity(280, 10, 1, 5)

	for _, k := range []float64{0.25, 3, 1000} {
		if got := ArcElasticity(280*k, 10*k, 1, 5); math.Abs(got-base) > 1e-9*math.Abs(base) {
			t.Errorf("quantity scale %v changed elasticity: %v vs %v", k, got, base)
		}
		if got := ArcElasticity(280, 10, 1*k, 5*k); math.Abs(got-base) > 1e-9*math.Abs(base) {
			t.Errorf("price scale %v changed elasticity: %v vs %v", k, got, base)
		}
	}
}

// TestArcElasticityDegenerate checks that zero denominators propagate
// as non-finite values rather than a handled error.
func TestArcElasticityDegenerate(t *testing.T) {
	if got := ArcElasticity(10, 20, 3, 3); !math.IsNaN(got) && !math.IsInf(got, 0) {
		t.Errorf("equal prices: got %v, want non-finite", got)
	}
	if got := ArcElasticity(-5, 5, 1, 5); got != 0 && !math.IsNaN(got) && !math.IsInf(got, 0) {
		t.Errorf("zero quantity midpoint: got %v, want non-finite or zero", got)
	}
}
