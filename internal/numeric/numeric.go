// Package numeric holds the sampling helpers behind the lessons: Riemann
// sums, finite differences, Taylor and Fourier partial sums, closed-form
// 2x2 eigen decomposition, and spectrum analysis of sampled series. All of
// it is fixed-size, single-pass arithmetic.
package numeric

import (
	"math"
	"sort"
)

// Func is a named curve selectable in the calculus lessons.
type Func struct {
	Name string
	Eval func(float64) float64
}

var funcs = map[string]Func{
	"sin":      {"sin", math.Sin},
	"parabola": {"parabola", func(x float64) float64 { return x * x }},
	"cubic":    {"cubic", func(x float64) float64 { return x*x*x - x }},
	"exp":      {"exp", math.Exp},
	"sqrt":     {"sqrt", func(x float64) float64 { return math.Sqrt(math.Abs(x)) }},
}

// FuncByName returns the named curve, defaulting to sin.
func FuncByName(name string) Func {
	if f, ok := funcs[name]; ok {
		return f
	}
	return funcs["sin"]
}

// FuncNames lists the selectable curves in stable order.
func FuncNames() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample evaluates fn at n evenly spaced points across [a, b].
func Sample(fn func(float64) float64, a, b float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = fn(a + (b-a)*float64(i)/float64(n-1))
	}
	return out
}

// RiemannSum approximates the integral of fn over [a, b] with n
// subdivisions. Mode is one of left, right, midpoint, trapezoid. Unknown
// modes fall back to left. n < 1 is clamped to 1.
func RiemannSum(fn func(float64) float64, a, b float64, n int, mode string) float64 {
	if n < 1 {
		n = 1
	}
	dx := (b - a) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		x := a + float64(i)*dx
		switch mode {
		case "right":
			sum += fn(x + dx)
		case "midpoint":
			sum += fn(x + dx/2)
		case "trapezoid":
			sum += (fn(x) + fn(x+dx)) / 2
		default:
			sum += fn(x)
		}
	}
	return sum * dx
}

// Derivative is the central finite difference of fn at x with width h.
func Derivative(fn func(float64) float64, x, h float64) float64 {
	if h <= 0 {
		h = 1e-6
	}
	return (fn(x+h) - fn(x-h)) / (2 * h)
}

// SecantSlope is the forward difference used by the tangent lesson while
// h is still visibly wide.
func SecantSlope(fn func(float64) float64, x, h float64) float64 {
	if h == 0 {
		h = 1e-6
	}
	return (fn(x+h) - fn(x)) / h
}

// TaylorSin evaluates the degree-k Taylor polynomial of sin about a at x.
func TaylorSin(a, x float64, k int) float64 {
	return taylor(x-a, k, func(n int) float64 {
		switch n % 4 {
		case 0:
			return math.Sin(a)
		case 1:
			return math.Cos(a)
		case 2:
			return -math.Sin(a)
		default:
			return -math.Cos(a)
		}
	})
}

// TaylorCos evaluates the degree-k Taylor polynomial of cos about a at x.
func TaylorCos(a, x float64, k int) float64 {
	return taylor(x-a, k, func(n int) float64 {
		switch n % 4 {
		case 0:
			return math.Cos(a)
		case 1:
			return -math.Sin(a)
		case 2:
			return -math.Cos(a)
		default:
			return math.Sin(a)
		}
	})
}

// TaylorExp evaluates the degree-k Taylor polynomial of exp about a at x.
func TaylorExp(a, x float64, k int) float64 {
	return taylor(x-a, k, func(int) float64 { return math.Exp(a) })
}

func taylor(dx float64, k int, deriv func(int) float64) float64 {
	sum, term := 0.0, 1.0
	for n := 0; n <= k; n++ {
		if n > 0 {
			term *= dx / float64(n)
		}
		sum += deriv(n) * term
	}
	return sum
}
