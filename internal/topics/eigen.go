package topics

import (
	"fmt"
	"math"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/lesson"
	"github.com/ananya-v/explorables/internal/numeric"
	"github.com/ananya-v/explorables/internal/tour"
)

// Eigen shows a 2x2 matrix acting on a ring of unit vectors, with the
// eigen-directions drawn through the origin.
type Eigen struct {
	*lesson.ParamSet
}

func NewEigen() *Eigen {
	return &Eigen{
		ParamSet: lesson.NewParamSet(
			lesson.Param{Name: "a", Value: 2, Min: -3, Max: 3, Step: 0.1},
			lesson.Param{Name: "b", Value: 1, Min: -3, Max: 3, Step: 0.1},
			lesson.Param{Name: "c", Value: 1, Min: -3, Max: 3, Step: 0.1},
			lesson.Param{Name: "d", Value: 2, Min: -3, Max: 3, Step: 0.1},
		),
	}
}

func (e *Eigen) ID() string      { return "eigen" }
func (e *Eigen) Title() string   { return "Eigenvectors of a 2x2 Matrix" }
func (e *Eigen) Topic() string   { return "math" }
func (e *Eigen) Summary() string { return "the directions a matrix refuses to turn" }

func (e *Eigen) Modes() []string           { return nil }
func (e *Eigen) Mode() string              { return "" }
func (e *Eigen) SetMode(name string) error { return fmt.Errorf("eigen has no modes") }

func (e *Eigen) Advance(dt float64) {}

func (e *Eigen) matrix() (float64, float64, float64, float64) {
	return e.Get("a"), e.Get("b"), e.Get("c"), e.Get("d")
}

func (e *Eigen) Draw(c *canvas.Canvas) {
	a, b, cc, d := e.matrix()
	p := canvas.NewPlane(c, -4, 4, -4, 4)
	p.Axes()

	// ring of inputs and their images
	const ringN = 24
	for i := 0; i < ringN; i++ {
		ang := 2 * math.Pi * float64(i) / ringN
		x, y := math.Cos(ang), math.Sin(ang)
		p.Plot(x, y)
		ix, iy := numeric.Apply2(a, b, cc, d, x, y)
		p.Marker(clampAbs(ix, 3.9), clampAbs(iy, 3.9), 1)
	}

	dec := numeric.EigenDecompose2(a, b, cc, d)
	if !dec.IsComplex {
		for _, v := range [][2]float64{dec.V1, dec.V2} {
			p.Segment(-3.5*v[0], -3.5*v[1], 3.5*v[0], 3.5*v[1])
			p.Arrow(0, 0, 2*v[0], 2*v[1])
		}
	}
}

func (e *Eigen) Series(n int) []float64 {
	// stretch factor |Av| around the unit circle
	a, b, c, d := e.matrix()
	out := make([]float64, n)
	for i := range out {
		ang := 2 * math.Pi * float64(i) / float64(n)
		x, y := numeric.Apply2(a, b, c, d, math.Cos(ang), math.Sin(ang))
		out[i] = math.Hypot(x, y)
	}
	return out
}

func (e *Eigen) Readout() []string {
	a, b, c, d := e.matrix()
	dec := numeric.EigenDecompose2(a, b, c, d)
	out := []string{fmt.Sprintf("A = [%.1f %.1f; %.1f %.1f]", a, b, c, d)}
	if dec.IsComplex {
		out = append(out,
			fmt.Sprintf("λ = %.3f ± %.3fi", dec.L1, dec.Imag),
			"complex pair: every direction rotates")
	} else {
		out = append(out,
			fmt.Sprintf("λ1 = %.3f  v1 = (%.2f, %.2f)", dec.L1, dec.V1[0], dec.V1[1]),
			fmt.Sprintf("λ2 = %.3f  v2 = (%.2f, %.2f)", dec.L2, dec.V2[0], dec.V2[1]))
	}
	return out
}

func (e *Eigen) Tour() []tour.Step {
	set := func(a, b, c, d float64) func() {
		return func() {
			e.SetParam("a", a)
			e.SetParam("b", b)
			e.SetParam("c", c)
			e.SetParam("d", d)
		}
	}
	return []tour.Step{
		{
			Title:     "A matrix moves every vector",
			Body:      "The ring is 24 unit vectors; the dots are where A sends them. For this symmetric matrix the circle becomes a tilted ellipse.",
			Setup:     set(2, 1, 1, 2),
			Highlight: "The two drawn lines are the directions the ellipse's axes lie along.",
		},
		{
			Title: "Vectors that keep their direction",
			Body:  "Along the marked lines, A only stretches: output parallel to input. Those are the eigenvectors, and the stretch factors λ1 = 3, λ2 = 1 are the eigenvalues.",
			Setup: set(2, 1, 1, 2),
		},
		{
			Title:     "A pure stretch",
			Body:      "A diagonal matrix wears its eigenvalues openly: the axes themselves are the eigenvectors, stretched by 3 and squashed by ½.",
			Setup:     set(3, 0, 0, 0.5),
			Highlight: "λ < 1 means that direction contracts.",
		},
		{
			Title: "A shear hides one",
			Body:  "A shear has a repeated eigenvalue of 1 and only one independent eigen-direction: the horizontal line everything slides along.",
			Setup: set(1, 1, 0, 1),
		},
		{
			Title:     "Rotation: nothing survives",
			Body:      "Rotate by 90° and no real direction is preserved; the eigenvalues retreat into the complex plane. The lines disappear because there is nothing left to draw.",
			Setup:     set(0, -1, 1, 0),
			Highlight: "Complex eigenvalues are how 2D matrices encode rotation.",
		},
	}
}

func clampAbs(v, lim float64) float64 {
	if v > lim {
		return lim
	}
	if v < -lim {
		return -lim
	}
	return v
}
