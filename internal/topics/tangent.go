package topics

import (
	"fmt"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/lesson"
	"github.com/ananya-v/explorables/internal/numeric"
	"github.com/ananya-v/explorables/internal/tour"
)

// Tangent visualizes the secant line collapsing onto the tangent as the
// difference width h shrinks.
type Tangent struct {
	*lesson.ParamSet
}

func NewTangent() *Tangent {
	return &Tangent{
		ParamSet: lesson.NewParamSet(
			lesson.Param{Name: "x0", Value: 0.8, Min: -3, Max: 3, Step: 0.1},
			lesson.Param{Name: "h", Value: 1.2, Min: 0.01, Max: 2, Step: 0.05},
			lesson.Param{Name: "curve", Value: 2, Min: 0, Max: float64(len(numeric.FuncNames()) - 1), Step: 1},
		),
	}
}

func (t *Tangent) ID() string      { return "tangent" }
func (t *Tangent) Title() string   { return "Secant to Tangent" }
func (t *Tangent) Topic() string   { return "calculus" }
func (t *Tangent) Summary() string { return "the derivative as a limit of slopes" }

func (t *Tangent) Modes() []string          { return nil }
func (t *Tangent) Mode() string             { return "" }
func (t *Tangent) SetMode(name string) error { return fmt.Errorf("tangent has no modes") }

func (t *Tangent) Advance(dt float64) {}

func (t *Tangent) fn() numeric.Func {
	names := numeric.FuncNames()
	idx := int(t.Get("curve"))
	if idx < 0 || idx >= len(names) {
		idx = 0
	}
	return numeric.FuncByName(names[idx])
}

func (t *Tangent) Draw(c *canvas.Canvas) {
	fn := t.fn().Eval
	x0, h := t.Get("x0"), t.Get("h")

	const span = 3.2
	yMin, yMax := seriesRange(numeric.Sample(fn, -span, span, 64))
	p := canvas.NewPlane(c, -span, span, yMin, yMax)
	p.Axes()
	p.Curve(fn)

	// secant through (x0, f(x0)) and (x0+h, f(x0+h)), extended across the view
	slope := numeric.SecantSlope(fn, x0, h)
	y0 := fn(x0)
	p.Segment(-span, y0+slope*(-span-x0), span, y0+slope*(span-x0))

	p.Marker(x0, fn(x0), 2)
	p.Marker(x0+h, fn(x0+h), 2)
	p.Segment(x0, fn(x0), x0+h, fn(x0))
	p.Segment(x0+h, fn(x0), x0+h, fn(x0+h))
}

func (t *Tangent) Series(n int) []float64 {
	return numeric.Sample(t.fn().Eval, -3.2, 3.2, n)
}

func (t *Tangent) Readout() []string {
	fn := t.fn().Eval
	x0, h := t.Get("x0"), t.Get("h")
	secant := numeric.SecantSlope(fn, x0, h)
	deriv := numeric.Derivative(fn, x0, 1e-6)
	return []string{
		fmt.Sprintf("f(x) = %s", t.fn().Name),
		fmt.Sprintf("secant slope  %.5f", secant),
		fmt.Sprintf("f'(x0)  %.5f", deriv),
		fmt.Sprintf("gap  %.5f", secant-deriv),
	}
}

func (t *Tangent) Tour() []tour.Step {
	return []tour.Step{
		{
			Title: "Two points, one slope",
			Body:  "Pick a point x0 on the curve and a second point h to its right. The line through both is a secant; its slope is the average rate of change over [x0, x0+h].",
			Setup: func() {
				t.SetParam("curve", 2) // cubic
				t.SetParam("x0", 0.8)
				t.SetParam("h", 1.2)
			},
		},
		{
			Title:     "Slide the points together",
			Body:      "Halve the gap and the secant already leans close to the curve's direction at x0. The rise-over-run triangle under the line shrinks with it.",
			Setup:     func() { t.SetParam("h", 0.6) },
			Highlight: "The readout gap is the secant slope minus the true derivative.",
		},
		{
			Title: "Almost touching",
			Body:  "At h = 0.05 the two points are visually one. The secant slope has stabilized: shrinking h further barely moves it.",
			Setup: func() { t.SetParam("h", 0.05) },
		},
		{
			Title:     "That limit is the derivative",
			Body:      "The number the slopes settle on is f'(x0). Move to a steeper part of the curve and the whole construction rides along.",
			Setup:     func() { t.SetParam("x0", 1.6); t.SetParam("h", 0.05) },
			Highlight: "Try other curves: the limit process never changes, only the numbers.",
		},
	}
}
