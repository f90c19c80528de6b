package scenario

import (
	"testing"

	"market-equilibrium/internal/errors"
)

func TestDefaultScenario(t *testing.T) {
	scn := Default()

	if len(scn.Prices) != 12 || len(scn.Demand) != 12 || len(scn.Supply) != 12 {
		t.Fatalf("sample lengths: %d prices, %d demand, %d supply, want 12 each",
			len(scn.Prices), len(scn.Demand), len(scn.Supply))
	}
	if scn.Seed != 2 {
		t.Errorf("seed = %v, want 2", scn.Seed)
	}
	if scn.Subsidy != 0.5 {
		t.Errorf("subsidy = %v, want 0.5", scn.Subsidy)
	}
	for i := 1; i < len(scn.Prices); i++ {
		if scn.Prices[i] <= scn.Prices[i-1] {
			t.Errorf("prices not strictly increasing at index %d: %v <= %v", i, scn.Prices[i], scn.Prices[i-1])
		}
	}
	if err := scn.Validate(); err != nil {
		t.Errorf("sample scenario should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Scenario {
		return &Scenario{
			Name:   "m",
			Prices: []float64{1, 2, 3},
			Demand: []float64{30, 20, 10},
			Supply: []float64{5, 15, 25},
			Seed:   2,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr bool
	}{
		{"valid", func(s *Scenario) {}, false},
		{"too few observations", func(s *Scenario) { s.Prices = s.Prices[:1]; s.Demand = s.Demand[:1]; s.Supply = s.Supply[:1] }, true},
		{"length mismatch", func(s *Scenario) { s.Demand = s.Demand[:2] }, true},
		{"non-positive price", func(s *Scenario) { s.Prices[0] = 0 }, true},
		{"negative subsidy", func(s *Scenario) { s.Subsidy = -0.5 }, true},
		{"non-positive seed", func(s *Scenario) { s.Seed = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scn := valid()
			tt.mutate(scn)
			err := scn.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil && !errors.IsType(err, errors.TypeScenario) {
				t.Errorf("expected SCENARIO_ERROR, got %v", err)
			}
		})
	}
}
