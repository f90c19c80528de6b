// Package scenario loads market scenarios from HCL files.
package scenario

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	core "market-equilibrium/core/scenario"
	"market-equilibrium/internal/errors"
)

// defaultSeed matches the built-in scenario's equilibrium seed.
const defaultSeed = 2

type fileContent struct {
	Scenarios []scenarioBlock `hcl:"scenario,block"`
}

type scenarioBlock struct {
	Name         string            `hcl:"name,label"`
	Seed         *float64          `hcl:"seed"`
	Subsidy      *float64          `hcl:"subsidy"`
	Observations observationsBlock `hcl:"observations,block"`
}

type observationsBlock struct {
	Prices []float64 `hcl:"prices"`
	Demand []float64 `hcl:"demand"`
	Supply []float64 `hcl:"supply"`
}

// Scanner parses scenario HCL files.
type Scanner struct {
	parser *hclparse.Parser
}

// NewScanner creates a new scenario scanner
func NewScanner() *Scanner {
	return &Scanner{
		parser: hclparse.NewParser(),
	}
}

// Load parses and validates the scenario in the given file. The file
// must contain exactly one scenario block.
func (s *Scanner) Load(path string) (*core.Scenario, error) {
	file, diags := s.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Newf(errors.TypeScenario, "parsing %s: %s", path, diagText(diags))
	}

	var content fileContent
	if diags := gohcl.DecodeBody(file.Body, nil, &content); diags.HasErrors() {
		return nil, errors.Newf(errors.TypeScenario, "decoding %s: %s", path, diagText(diags))
	}

	if len(content.Scenarios) != 1 {
		return nil, errors.Newf(errors.TypeScenario, "%s must contain exactly one scenario block, found %d", path, len(content.Scenarios))
	}
	block := content.Scenarios[0]

	scn := &core.Scenario{
		Name:   block.Name,
		Prices: block.Observations.Prices,
		Demand: block.Observations.Demand,
		Supply: block.Observations.Supply,
		Seed:   defaultSeed,
	}
	if block.Seed != nil {
		scn.Seed = *block.Seed
	}
	if block.Subsidy != nil {
		scn.Subsidy = *block.Subsidy
	}

	if err := scn.Validate(); err != nil {
		return nil, err
	}
	return scn, nil
}

func diagText(diags hcl.Diagnostics) string {
	msgs := make([]string, 0, len(diags))
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		if d.Subject != nil {
			msgs = append(msgs, fmt.Sprintf("%s:%d: %s", d.Subject.Filename, d.Subject.Start.Line, d.Summary))
			continue
		}
		msgs = append(msgs, d.Summary)
	}
	return strings.Join(msgs, "; ")
}
