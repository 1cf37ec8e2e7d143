// Package topics holds the lesson implementations: each file is one
// interactive visualization mapping its parameters to drawables once per
// frame, plus the scripted walkthrough that drives it.
package topics

import (
	"fmt"
	"math"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/lesson"
	"github.com/ananya-v/explorables/internal/numeric"
	"github.com/ananya-v/explorables/internal/tour"
)

var riemannModes = []string{"left", "right", "midpoint", "trapezoid"}

// Riemann visualizes Riemann-sum approximations of a definite integral.
type Riemann struct {
	*lesson.ParamSet
	mode string
}

func NewRiemann() *Riemann {
	return &Riemann{
		ParamSet: lesson.NewParamSet(
			lesson.Param{Name: "a", Value: 0, Min: -4, Max: 4, Step: 0.25},
			lesson.Param{Name: "b", Value: 2, Min: -4, Max: 6, Step: 0.25},
			lesson.Param{Name: "n", Value: 6, Min: 1, Max: 96, Step: 1},
			lesson.Param{Name: "curve", Value: 2, Min: 0, Max: float64(len(numeric.FuncNames()) - 1), Step: 1},
		),
		mode: "left",
	}
}

func (r *Riemann) ID() string      { return "riemann" }
func (r *Riemann) Title() string   { return "Riemann Sums" }
func (r *Riemann) Topic() string   { return "calculus" }
func (r *Riemann) Summary() string { return "area under a curve, one rectangle at a time" }

func (r *Riemann) Modes() []string { return riemannModes }
func (r *Riemann) Mode() string    { return r.mode }

func (r *Riemann) SetMode(name string) error {
	for _, m := range riemannModes {
		if m == name {
			r.mode = name
			return nil
		}
	}
	return fmt.Errorf("unknown mode: %s", name)
}

func (r *Riemann) Reset() {
	r.ParamSet.Reset()
	r.mode = "left"
}

func (r *Riemann) Advance(dt float64) {}

func (r *Riemann) fn() numeric.Func {
	names := numeric.FuncNames()
	idx := int(r.Get("curve"))
	if idx < 0 || idx >= len(names) {
		idx = 0
	}
	return numeric.FuncByName(names[idx])
}

// bounds returns the interval with a < b enforced.
func (r *Riemann) bounds() (float64, float64) {
	a, b := r.Get("a"), r.Get("b")
	if b <= a {
		b = a + 0.5
	}
	return a, b
}

func (r *Riemann) Draw(c *canvas.Canvas) {
	a, b := r.bounds()
	fn := r.fn().Eval
	n := int(r.Get("n"))

	yMin, yMax := seriesRange(numeric.Sample(fn, a, b, 64))
	pad := (b - a) * 0.1
	p := canvas.NewPlane(c, a-pad, b+pad, yMin, yMax)
	p.Axes()

	dx := (b - a) / float64(n)
	for i := 0; i < n; i++ {
		x := a + float64(i)*dx
		switch r.mode {
		case "trapezoid":
			p.Segment(x, 0, x, fn(x))
			p.Segment(x, fn(x), x+dx, fn(x+dx))
			p.Segment(x+dx, fn(x+dx), x+dx, 0)
		case "right":
			p.Bar(x, 0, x+dx, fn(x+dx))
		case "midpoint":
			p.Bar(x, 0, x+dx, fn(x+dx/2))
		default:
			p.Bar(x, 0, x+dx, fn(x))
		}
	}
	p.Curve(fn)
}

func (r *Riemann) Series(n int) []float64 {
	a, b := r.bounds()
	return numeric.Sample(r.fn().Eval, a, b, n)
}

func (r *Riemann) Readout() []string {
	a, b := r.bounds()
	fn := r.fn().Eval
	n := int(r.Get("n"))
	approx := numeric.RiemannSum(fn, a, b, n, r.mode)
	// dense midpoint sum as the reference value
	exact := numeric.RiemannSum(fn, a, b, 4096, "midpoint")
	return []string{
		fmt.Sprintf("f(x) = %s", r.fn().Name),
		fmt.Sprintf("%s sum  %.5f", r.mode, approx),
		fmt.Sprintf("integral  %.5f", exact),
		fmt.Sprintf("error  %.5f", math.Abs(approx-exact)),
	}
}

func (r *Riemann) Tour() []tour.Step {
	curveIdx := func(name string) float64 {
		for i, n := range numeric.FuncNames() {
			if n == name {
				return float64(i)
			}
		}
		return 0
	}
	return []tour.Step{
		{
			Title:     "The area problem",
			Body:      "We want the area under f(x) = x² between 0 and 2. Rectangles are a blunt tool, but they are a start: six of them, each as tall as the curve at its left edge.",
			Highlight: "Watch the error readout: the rectangles undershoot wherever the curve rises.",
			Setup: func() {
				r.SetParam("curve", curveIdx("parabola"))
				r.SetParam("a", 0)
				r.SetParam("b", 2)
				r.SetParam("n", 6)
				r.SetMode("left")
			},
		},
		{
			Title:     "More rectangles",
			Body:      "Quadruple the count and the staircase hugs the curve. The error shrinks roughly in proportion to the width of each bar.",
			Setup:     func() { r.SetParam("n", 24) },
			Highlight: "n = 24: same rule, a quarter of the error.",
		},
		{
			Title: "Right edges overshoot",
			Body:  "Sampling the right edge instead flips the bias: on a rising curve every bar now pokes above the graph. Left and right sums bracket the true area.",
			Setup: func() { r.SetMode("right") },
		},
		{
			Title:     "Sample the middle",
			Body:      "The midpoint rule balances the overshoot and undershoot within each bar. With half the rectangles it beats both one-sided sums.",
			Setup:     func() { r.SetParam("n", 12); r.SetMode("midpoint") },
			Highlight: "Midpoint error falls with the square of the bar width.",
		},
		{
			Title: "Trapezoids",
			Body:  "Replace each bar's flat top with a slanted one through both corners and the staircase becomes a fence of trapezoids, the other second-order rule.",
			Setup: func() { r.SetMode("trapezoid") },
		},
	}
}

// seriesRange returns a padded [min, max] window around the samples, always
// including zero so the x-axis stays visible.
func seriesRange(samples []float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad
}
