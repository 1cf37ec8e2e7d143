package topics

import (
	"fmt"
	"math"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/lesson"
	"github.com/ananya-v/explorables/internal/numeric"
	"github.com/ananya-v/explorables/internal/tour"
)

var fourierModes = []string{"square", "sawtooth", "triangle"}

// Fourier shows partial Fourier sums converging on a discontinuous wave.
// The wave scrolls slowly so the ringing at the jumps is easy to spot.
type Fourier struct {
	*lesson.ParamSet
	mode  string
	phase float64
}

func NewFourier() *Fourier {
	return &Fourier{
		ParamSet: lesson.NewParamSet(
			lesson.Param{Name: "harmonics", Value: 1, Min: 1, Max: 60, Step: 1},
			lesson.Param{Name: "speed", Value: 0.6, Min: 0, Max: 3, Step: 0.1},
		),
		mode: "square",
	}
}

func (f *Fourier) ID() string      { return "fourier" }
func (f *Fourier) Title() string   { return "Fourier Series" }
func (f *Fourier) Topic() string   { return "math" }
func (f *Fourier) Summary() string { return "sharp corners from smooth sines" }

func (f *Fourier) Modes() []string { return fourierModes }
func (f *Fourier) Mode() string    { return f.mode }

func (f *Fourier) SetMode(name string) error {
	for _, m := range fourierModes {
		if m == name {
			f.mode = name
			return nil
		}
	}
	return fmt.Errorf("unknown mode: %s", name)
}

func (f *Fourier) Reset() {
	f.ParamSet.Reset()
	f.mode = "square"
	f.phase = 0
}

func (f *Fourier) Advance(dt float64) {
	f.phase += dt * f.Get("speed")
	if f.phase > 2*math.Pi {
		f.phase -= 2 * math.Pi
	}
}

func (f *Fourier) Draw(c *canvas.Canvas) {
	k := int(f.Get("harmonics"))
	p := canvas.NewPlane(c, 0, 4*math.Pi, -1.8, 1.8)
	p.Axes()
	p.Curve(func(x float64) float64 { return numeric.WaveTarget(f.mode, x+f.phase) })
	p.Curve(func(x float64) float64 { return numeric.FourierPartial(f.mode, x+f.phase, k) })
}

func (f *Fourier) Series(n int) []float64 {
	k := int(f.Get("harmonics"))
	out := make([]float64, n)
	for i := range out {
		x := 4 * math.Pi * float64(i) / float64(n)
		out[i] = numeric.FourierPartial(f.mode, x+f.phase, k)
	}
	return out
}

func (f *Fourier) Readout() []string {
	k := int(f.Get("harmonics"))
	// worst-case gap near the jump for the square wave is the Gibbs overshoot
	peak := 0.0
	for _, v := range f.Series(512) {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return []string{
		fmt.Sprintf("wave  %s", f.mode),
		fmt.Sprintf("harmonics  %d", k),
		fmt.Sprintf("peak  %.4f", peak),
	}
}

func (f *Fourier) Tour() []tour.Step {
	return []tour.Step{
		{
			Title: "One sine, one guess",
			Body:  "A single sine is the best smooth first guess at a square wave: right period, right sign, wrong everywhere else.",
			Setup: func() {
				f.SetMode("square")
				f.SetParam("harmonics", 1)
			},
		},
		{
			Title:     "Odd harmonics stack up",
			Body:      "Add the 3rd and 5th harmonics at amplitudes 1/3 and 1/5. Each one flattens the top a little more and steepens the jump.",
			Setup:     func() { f.SetParam("harmonics", 3) },
			Highlight: "Only odd multiples appear; even ones would break the wave's symmetry.",
		},
		{
			Title: "Twenty harmonics",
			Body:  "The sum is now flat where the square is flat and nearly vertical at the jumps. Smooth pieces assembling a discontinuity.",
			Setup: func() { f.SetParam("harmonics", 20) },
		},
		{
			Title:     "The overshoot that won't die",
			Body:      "Look at the horns beside each jump: about 9% too tall, no matter how many terms you add. That is the Gibbs phenomenon, the price of building a cliff out of waves.",
			Setup:     func() { f.SetParam("harmonics", 60) },
			Highlight: "The peak readout stays near 1.09 as harmonics climb.",
		},
		{
			Title: "A gentler target",
			Body:  "The triangle wave is continuous, so its coefficients fall off as 1/n² and the horns vanish. Convergence speed is a picture of smoothness.",
			Setup: func() { f.SetMode("triangle"); f.SetParam("harmonics", 5) },
		},
	}
}
