package output

import (
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"market-equilibrium/core/engine"
	"market-equilibrium/core/model"
	"market-equilibrium/internal/errors"
)

// curveSamples is how many prices the fitted curves are sampled at
// across the observed range.
const curveSamples = 100

var (
	demandColor      = color.RGBA{B: 255, A: 255}
	supplyColor      = color.RGBA{R: 255, A: 255}
	equilibriumColor = color.RGBA{G: 160, A: 255}
)

// ChartOptions sizes the rendered chart.
type ChartOptions struct {
	WidthInches  float64
	HeightInches float64
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.WidthInches <= 0 {
		o.WidthInches = 10
	}
	if o.HeightInches <= 0 {
		o.HeightInches = 6
	}
	return o
}

// SaveChart renders the market chart to the given image path: raw
// demand and supply observations as scatter points, the fitted curves
// sampled across the observed price range, and the equilibrium point,
// with the fitted parameter values in the legend.
func SaveChart(result *engine.Result, path string, opt ChartOptions) error {
	opt = opt.withDefaults()

	p := plot.New()
	p.Title.Text = "Market Demand and Supply Curves"
	p.X.Label.Text = "Price"
	p.Y.Label.Text = "Quantity"
	p.Add(plotter.NewGrid())

	scn := result.Scenario

	demandData, err := scatter(scn.Prices, scn.Demand, demandColor)
	if err != nil {
		return errors.Render("building demand scatter", err)
	}
	supplyData, err := scatter(scn.Prices, scn.Supply, supplyColor)
	if err != nil {
		return errors.Render("building supply scatter", err)
	}

	prices := make([]float64, curveSamples)
	floats.Span(prices, scn.Prices[0], scn.Prices[len(scn.Prices)-1])

	demandLine, err := curveLine(result.Demand, prices, demandColor)
	if err != nil {
		return errors.Render("building demand curve line", err)
	}
	supplyLine, err := curveLine(result.Supply, prices, supplyColor)
	if err != nil {
		return errors.Render("building supply curve line", err)
	}

	eqPoint, err := scatter(
		[]float64{result.Equilibrium.Price},
		[]float64{result.Equilibrium.Quantity},
		equilibriumColor,
	)
	if err != nil {
		return errors.Render("building equilibrium marker", err)
	}

	p.Add(demandData, supplyData, demandLine, supplyLine, eqPoint)
	p.Legend.Add("Demand data", demandData)
	p.Legend.Add("Supply data", supplyData)
	p.Legend.Add(result.Demand.String(), demandLine)
	p.Legend.Add(result.Supply.String(), supplyLine)
	p.Legend.Add("Equilibrium point", eqPoint)
	p.Legend.Top = true

	w := vg.Length(opt.WidthInches) * vg.Inch
	h := vg.Length(opt.HeightInches) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return errors.Render("saving chart", err)
	}
	return nil
}

func scatter(xs, ys []float64, c color.Color) (*plotter.Scatter, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	return s, nil
}

func curveLine(curve model.Curve, prices []float64, c color.Color) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(prices))
	for i, price := range prices {
		pts[i].X = price
		pts[i].Y = curve.Quantity(price)
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = c
	return l, nil
}
