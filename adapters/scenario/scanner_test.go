package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"market-equilibrium/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "market.hcl", `
scenario "coffee" {
  seed    = 1.8
  subsidy = 0.25

  observations {
    prices = [1, 2, 3]
    demand = [30, 20, 10]
    supply = [5, 15, 25]
  }
}
`)

	scn, err := NewScanner().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if scn.Name != "coffee" {
		t.Errorf("name = %q, want coffee", scn.Name)
	}
	if scn.Seed != 1.8 {
		t.Errorf("seed = %v, want 1.8", scn.Seed)
	}
	if scn.Subsidy != 0.25 {
		t.Errorf("subsidy = %v, want 0.25", scn.Subsidy)
	}
	if len(scn.Prices) != 3 || scn.Prices[2] != 3 {
		t.Errorf("prices = %v, want [1 2 3]", scn.Prices)
	}
	if len(scn.Demand) != 3 || scn.Demand[0] != 30 {
		t.Errorf("demand = %v, want [30 20 10]", scn.Demand)
	}
}

// TestLoadDefaults checks seed and subsidy fall back when omitted.
func TestLoadDefaults(t *testing.T) {
	path := writeFile(t, "market.hcl", `
scenario "bare" {
  observations {
    prices = [1, 2]
    demand = [20, 10]
    supply = [5, 15]
  }
}
`)

	scn, err := NewScanner().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if scn.Seed != 2 {
		t.Errorf("default seed = %v, want 2", scn.Seed)
	}
	if scn.Subsidy != 0 {
		t.Errorf("default subsidy = %v, want 0", scn.Subsidy)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `scenario "x" {`},
		{"no scenario block", `# empty file`},
		{"length mismatch", `
scenario "bad" {
  observations {
    prices = [1, 2, 3]
    demand = [20, 10]
    supply = [5, 15, 25]
  }
}
`},
		{"negative price", `
scenario "bad" {
  observations {
    prices = [-1, 2]
    demand = [20, 10]
    supply = [5, 15]
  }
}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.hcl", tt.content)
			_, err := NewScanner().Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, errors.TypeScenario) {
				t.Errorf("expected SCENARIO_ERROR, got %v", err)
			}
		})
	}
}
