package output

import (
	"encoding/json"
	"io"

	"market-equilibrium/core/engine"
	"market-equilibrium/internal/errors"
)

// jsonFormatter writes the machine-readable report.
type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, result *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Render("encoding result", err)
	}
	return nil
}
