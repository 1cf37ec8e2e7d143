package topics

import (
	"fmt"
	"math"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/lesson"
	"github.com/ananya-v/explorables/internal/numeric"
	"github.com/ananya-v/explorables/internal/tour"
)

var taylorModes = []string{"sin", "cos", "exp"}

// Taylor overlays a function with its Taylor polynomial about a movable
// center.
type Taylor struct {
	*lesson.ParamSet
	mode string
}

func NewTaylor() *Taylor {
	return &Taylor{
		ParamSet: lesson.NewParamSet(
			lesson.Param{Name: "degree", Value: 1, Min: 0, Max: 15, Step: 1},
			lesson.Param{Name: "center", Value: 0, Min: -3, Max: 3, Step: 0.25},
		),
		mode: "sin",
	}
}

func (t *Taylor) ID() string      { return "taylor" }
func (t *Taylor) Title() string   { return "Taylor Polynomials" }
func (t *Taylor) Topic() string   { return "calculus" }
func (t *Taylor) Summary() string { return "building a function out of powers of x" }

func (t *Taylor) Modes() []string { return taylorModes }
func (t *Taylor) Mode() string    { return t.mode }

func (t *Taylor) SetMode(name string) error {
	for _, m := range taylorModes {
		if m == name {
			t.mode = name
			return nil
		}
	}
	return fmt.Errorf("unknown mode: %s", name)
}

func (t *Taylor) Reset() {
	t.ParamSet.Reset()
	t.mode = "sin"
}

func (t *Taylor) Advance(dt float64) {}

func (t *Taylor) target() func(float64) float64 {
	switch t.mode {
	case "cos":
		return math.Cos
	case "exp":
		return math.Exp
	default:
		return math.Sin
	}
}

func (t *Taylor) poly() func(float64) float64 {
	a, k := t.Get("center"), int(t.Get("degree"))
	switch t.mode {
	case "cos":
		return func(x float64) float64 { return numeric.TaylorCos(a, x, k) }
	case "exp":
		return func(x float64) float64 { return numeric.TaylorExp(a, x, k) }
	default:
		return func(x float64) float64 { return numeric.TaylorSin(a, x, k) }
	}
}

func (t *Taylor) Draw(c *canvas.Canvas) {
	const span = 2 * math.Pi
	yMin, yMax := -2.5, 2.5
	if t.mode == "exp" {
		yMin, yMax = -1, 8
	}
	p := canvas.NewPlane(c, -span, span, yMin, yMax)
	p.Axes()
	p.Curve(t.target())
	p.Curve(t.poly())
	p.Marker(t.Get("center"), t.target()(t.Get("center")), 2)
}

func (t *Taylor) Series(n int) []float64 {
	return numeric.Sample(t.poly(), -2*math.Pi, 2*math.Pi, n)
}

func (t *Taylor) Readout() []string {
	a := t.Get("center")
	probe := a + 1.5
	err := math.Abs(t.poly()(probe) - t.target()(probe))
	return []string{
		fmt.Sprintf("f(x) = %s", t.mode),
		fmt.Sprintf("degree  %d", int(t.Get("degree"))),
		fmt.Sprintf("center  %.2f", a),
		fmt.Sprintf("err at a+1.5  %.5f", err),
	}
}

func (t *Taylor) Tour() []tour.Step {
	return []tour.Step{
		{
			Title: "Start with a line",
			Body:  "The degree-1 Taylor polynomial of sin about 0 is just x: the tangent line. Near the center it is indistinguishable from the curve; away from it, hopeless.",
			Setup: func() {
				t.SetMode("sin")
				t.SetParam("center", 0)
				t.SetParam("degree", 1)
			},
		},
		{
			Title:     "Add the cubic term",
			Body:      "Degree 3 bends the line: x - x³/6. The match now extends about a full unit on either side before the polynomial dives away.",
			Setup:     func() { t.SetParam("degree", 3) },
			Highlight: "Each new term corrects the previous polynomial's worst failure.",
		},
		{
			Title: "Seven terms, one wave",
			Body:  "By degree 7 the polynomial traces a full arch of the sine wave. Powers of x, nothing else, yet the curve is there.",
			Setup: func() { t.SetParam("degree", 7) },
		},
		{
			Title:     "Move the center",
			Body:      "Expanding about a = 1.5 instead re-anchors the approximation there. The polynomial is local: it is built entirely from derivatives at one point.",
			Setup:     func() { t.SetParam("center", 1.5); t.SetParam("degree", 5) },
			Highlight: "The marker shows the expansion point; accuracy radiates outward from it.",
		},
		{
			Title: "Exponential growth",
			Body:  "For eˣ every derivative is eˣ, so the series is the cleanest of all: sum of xⁿ/n!. Watch the polynomial chase the explosion to the right as the degree climbs.",
			Setup: func() {
				t.SetMode("exp")
				t.SetParam("center", 0)
				t.SetParam("degree", 4)
			},
		},
	}
}
