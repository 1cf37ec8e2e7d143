package topics

import (
	"fmt"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/lesson"
	"github.com/ananya-v/explorables/internal/numeric"
	"github.com/ananya-v/explorables/internal/tour"
)

// Market plots linear supply and demand curves and their equilibrium.
type Market struct {
	*lesson.ParamSet
}

func NewMarket() *Market {
	return &Market{
		ParamSet: lesson.NewParamSet(
			lesson.Param{Name: "demand-max", Value: 10, Min: 2, Max: 16, Step: 0.5},
			lesson.Param{Name: "demand-slope", Value: 1, Min: 0.2, Max: 3, Step: 0.1},
			lesson.Param{Name: "supply-min", Value: 2, Min: 0, Max: 10, Step: 0.5},
			lesson.Param{Name: "supply-slope", Value: 1, Min: 0.2, Max: 3, Step: 0.1},
		),
	}
}

func (m *Market) ID() string      { return "market" }
func (m *Market) Title() string   { return "Supply and Demand" }
func (m *Market) Topic() string   { return "economics" }
func (m *Market) Summary() string { return "where two lines agree on a price" }

func (m *Market) Modes() []string           { return nil }
func (m *Market) Mode() string              { return "" }
func (m *Market) SetMode(name string) error { return fmt.Errorf("market has no modes") }

func (m *Market) Advance(dt float64) {}

func (m *Market) curves() (dMax, dSlope, sMin, sSlope float64) {
	return m.Get("demand-max"), m.Get("demand-slope"), m.Get("supply-min"), m.Get("supply-slope")
}

func (m *Market) Draw(c *canvas.Canvas) {
	dMax, dSlope, sMin, sSlope := m.curves()
	p := canvas.NewPlane(c, 0, 12, 0, 16)
	p.Axes()
	p.Curve(func(q float64) float64 { return dMax - dSlope*q })
	p.Curve(func(q float64) float64 { return sMin + sSlope*q })

	q, price := numeric.MarketEquilibrium(dMax, dSlope, sMin, sSlope)
	if q > 0 && price > 0 {
		p.Marker(q, price, 2)
		// guide lines from the equilibrium to both axes
		ex, ey := p.Dot(q, price)
		ox, oy := p.Dot(0, 0)
		c.DottedLine(ex, ey, ox, ey)
		c.DottedLine(ex, ey, ex, oy)
	}
}

func (m *Market) Series(n int) []float64 {
	dMax, dSlope, _, _ := m.curves()
	return numeric.Sample(func(q float64) float64 { return dMax - dSlope*q }, 0, 12, n)
}

func (m *Market) Readout() []string {
	dMax, dSlope, sMin, sSlope := m.curves()
	q, price := numeric.MarketEquilibrium(dMax, dSlope, sMin, sSlope)
	// consumer surplus: triangle between demand curve and price line
	cs := 0.5 * q * (dMax - price)
	ps := 0.5 * q * (price - sMin)
	return []string{
		fmt.Sprintf("equilibrium q  %.2f", q),
		fmt.Sprintf("equilibrium p  %.2f", price),
		fmt.Sprintf("consumer surplus  %.2f", cs),
		fmt.Sprintf("producer surplus  %.2f", ps),
	}
}

func (m *Market) Tour() []tour.Step {
	set := func(dMax, dSlope, sMin, sSlope float64) func() {
		return func() {
			m.SetParam("demand-max", dMax)
			m.SetParam("demand-slope", dSlope)
			m.SetParam("supply-min", sMin)
			m.SetParam("supply-slope", sSlope)
		}
	}
	return []tour.Step{
		{
			Title:     "Two curves, one market",
			Body:      "The falling line is demand: the cheaper the good, the more buyers want. The rising line is supply: higher prices coax out more production. They cross exactly once.",
			Setup:     set(10, 1, 2, 1),
			Highlight: "Dotted guides drop from the crossing to the equilibrium price and quantity.",
		},
		{
			Title: "Demand shifts out",
			Body:  "Give buyers more income and the whole demand line slides up: at every price they want more. Both the equilibrium price and quantity rise.",
			Setup: set(14, 1, 2, 1),
		},
		{
			Title:     "Supply gets cheaper",
			Body:      "A cost-cutting technology lowers the supply intercept. Output expands, price falls; consumers pocket most of the gain.",
			Setup:     set(14, 1, 0.5, 1),
			Highlight: "Watch consumer surplus in the readout grow.",
		},
		{
			Title: "Inelastic demand",
			Body:  "Steepen the demand line and buyers barely respond to price. Now the same supply shock moves the price a lot and the quantity hardly at all.",
			Setup: set(14, 2.5, 0.5, 1),
		},
	}
}
