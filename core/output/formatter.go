// Package output renders analysis results for humans and machines.
package output

import (
	"io"

	"market-equilibrium/core/engine"
	"market-equilibrium/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable text report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *engine.Result) error
}

// New returns the formatter for the named format.
func New(format string) (Formatter, error) {
	switch Format(format) {
	case FormatCLI, "":
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeRender, "unknown output format: %s", format)
	}
}
