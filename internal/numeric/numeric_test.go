package numeric

import (
	"math"
	"testing"
)

func TestRiemannSumConvergesToIntegral(t *testing.T) {
	// integral of x^2 over [0, 2] = 8/3
	fn := func(x float64) float64 { return x * x }
	exact := 8.0 / 3.0

	tests := []struct {
		mode string
		n    int
		tol  float64
	}{
		{"left", 1000, 0.01},
		{"right", 1000, 0.01},
		{"midpoint", 100, 0.001},
		{"trapezoid", 100, 0.001},
	}

	for _, tt := range tests {
		got := RiemannSum(fn, 0, 2, tt.n, tt.mode)
		if math.Abs(got-exact) > tt.tol {
			t.Errorf("%s n=%d: got %.6f, want %.6f ± %g", tt.mode, tt.n, got, exact, tt.tol)
		}
	}
}

func TestRiemannSumBracketsMonotone(t *testing.T) {
	// for increasing f, left underestimates and right overestimates
	fn := func(x float64) float64 { return x }
	left := RiemannSum(fn, 0, 1, 10, "left")
	right := RiemannSum(fn, 0, 1, 10, "right")
	if !(left < 0.5 && 0.5 < right) {
		t.Errorf("expected left < 0.5 < right, got %.4f and %.4f", left, right)
	}
}

func TestRiemannSumClampsN(t *testing.T) {
	got := RiemannSum(math.Sin, 0, 1, 0, "left")
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("n=0 must clamp, got %v", got)
	}
}

func TestDerivative(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		x    float64
		want float64
	}{
		{"sin at 0", math.Sin, 0, 1},
		{"square at 3", func(x float64) float64 { return x * x }, 3, 6},
		{"exp at 1", math.Exp, 1, math.E},
	}
	for _, tt := range tests {
		got := Derivative(tt.fn, tt.x, 1e-5)
		if math.Abs(got-tt.want) > 1e-4 {
			t.Errorf("%s: got %.6f, want %.6f", tt.name, got, tt.want)
		}
	}
}

func TestSecantSlopeApproachesDerivative(t *testing.T) {
	wide := SecantSlope(math.Sin, 1.0, 0.5)
	narrow := SecantSlope(math.Sin, 1.0, 1e-6)
	exact := math.Cos(1.0)
	if math.Abs(narrow-exact) > 1e-4 {
		t.Errorf("narrow secant: got %.6f, want %.6f", narrow, exact)
	}
	if math.Abs(wide-exact) < math.Abs(narrow-exact) {
		t.Error("shrinking h should improve the slope estimate")
	}
}

func TestTaylorPolynomials(t *testing.T) {
	for _, x := range []float64{-1, -0.3, 0, 0.7, 1.5} {
		if got := TaylorSin(0, x, 11); math.Abs(got-math.Sin(x)) > 1e-4 {
			t.Errorf("TaylorSin(0, %.1f, 11) = %.6f, want %.6f", x, got, math.Sin(x))
		}
		if got := TaylorCos(0, x, 12); math.Abs(got-math.Cos(x)) > 1e-4 {
			t.Errorf("TaylorCos(0, %.1f, 12) = %.6f, want %.6f", x, got, math.Cos(x))
		}
		if got := TaylorExp(0, x, 12); math.Abs(got-math.Exp(x)) > 1e-4 {
			t.Errorf("TaylorExp(0, %.1f, 12) = %.6f, want %.6f", x, got, math.Exp(x))
		}
	}
}

func TestTaylorAboutNonzeroCenter(t *testing.T) {
	got := TaylorSin(1.0, 1.2, 8)
	if math.Abs(got-math.Sin(1.2)) > 1e-6 {
		t.Errorf("got %.8f, want %.8f", got, math.Sin(1.2))
	}
}

func TestFuncByName(t *testing.T) {
	if f := FuncByName("parabola"); f.Eval(3) != 9 {
		t.Errorf("parabola(3) = %v", f.Eval(3))
	}
	if f := FuncByName("no-such"); f.Name != "sin" {
		t.Errorf("unknown name should default to sin, got %s", f.Name)
	}
	if len(FuncNames()) < 4 {
		t.Error("expected at least four selectable curves")
	}
}

func TestFourierPartialConverges(t *testing.T) {
	// away from discontinuities the square partial sum approaches ±1
	got := FourierPartial("square", math.Pi/2, 200)
	if math.Abs(got-1.0) > 0.01 {
		t.Errorf("square partial sum at pi/2: got %.4f, want 1", got)
	}
	got = FourierPartial("sawtooth", 1.0, 400)
	if math.Abs(got-WaveTarget("sawtooth", 1.0)) > 0.01 {
		t.Errorf("sawtooth partial sum: got %.4f, want %.4f", got, WaveTarget("sawtooth", 1.0))
	}
	// the triangle series converges everywhere, including the peak at 0
	for _, x := range []float64{0, math.Pi / 2, 2.5} {
		got = FourierPartial("triangle", x, 200)
		want := WaveTarget("triangle", x)
		if math.Abs(got-want) > 0.01 {
			t.Errorf("triangle partial sum at %.2f: got %.4f, want %.4f", x, got, want)
		}
	}
}

func TestWaveTargetPeriodic(t *testing.T) {
	for _, wave := range []string{"square", "sawtooth", "triangle"} {
		a := WaveTarget(wave, 0.5)
		b := WaveTarget(wave, 0.5+2*math.Pi)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("%s not periodic: %.4f vs %.4f", wave, a, b)
		}
	}
}

func TestPowerSpectrumFindsTone(t *testing.T) {
	n := 64
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}
	ps := PowerSpectrum(series)
	if got := DominantBin(ps); got != 4 {
		t.Errorf("dominant bin = %d, want 4", got)
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("expected nil for empty input, got %v", ps)
	}
}

func TestEigenDiagonal(t *testing.T) {
	e := EigenDecompose2(3, 0, 0, 1)
	if e.IsComplex {
		t.Fatal("diagonal matrix has real eigenvalues")
	}
	if e.L1 != 3 || e.L2 != 1 {
		t.Errorf("eigenvalues = %.2f, %.2f, want 3, 1", e.L1, e.L2)
	}
	if math.Abs(math.Abs(e.V1[0])-1) > 1e-9 || math.Abs(e.V1[1]) > 1e-9 {
		t.Errorf("V1 = %v, want ±(1,0)", e.V1)
	}
}

func TestEigenSymmetric(t *testing.T) {
	e := EigenDecompose2(2, 1, 1, 2)
	if math.Abs(e.L1-3) > 1e-9 || math.Abs(e.L2-1) > 1e-9 {
		t.Errorf("eigenvalues = %.4f, %.4f, want 3, 1", e.L1, e.L2)
	}
	// A v = lambda v
	x, y := Apply2(2, 1, 1, 2, e.V1[0], e.V1[1])
	if math.Abs(x-3*e.V1[0]) > 1e-9 || math.Abs(y-3*e.V1[1]) > 1e-9 {
		t.Errorf("V1 is not an eigenvector: A*v = (%.4f, %.4f)", x, y)
	}
}

func TestEigenRotationIsComplex(t *testing.T) {
	e := EigenDecompose2(0, -1, 1, 0)
	if !e.IsComplex {
		t.Fatal("rotation matrix must have complex eigenvalues")
	}
	if math.Abs(e.Imag-1) > 1e-9 {
		t.Errorf("imaginary part = %.4f, want 1", e.Imag)
	}
}

func TestMarketEquilibrium(t *testing.T) {
	// demand p = 10 - q, supply p = 2 + q: q* = 4, p* = 6
	q, p := MarketEquilibrium(10, 1, 2, 1)
	if math.Abs(q-4) > 1e-9 || math.Abs(p-6) > 1e-9 {
		t.Errorf("equilibrium = (%.2f, %.2f), want (4, 6)", q, p)
	}

	q, p = MarketEquilibrium(10, 0, 2, 0)
	if q != 0 || p != 0 {
		t.Errorf("parallel curves should return zeros, got (%.2f, %.2f)", q, p)
	}
}

func TestBiotSavartCenterField(t *testing.T) {
	bx, by := BiotSavart2D(1.0, 0, 0, 64)
	if math.Abs(bx) > 1e-9 {
		t.Errorf("field at loop centre should have no x component, got %.2e", bx)
	}
	if by <= 0 {
		t.Errorf("field at loop centre should point along +y, got %.2e", by)
	}
}

func TestBiotSavartFallsOffWithDistance(t *testing.T) {
	_, near := BiotSavart2D(1.0, 0, 0.5, 64)
	_, far := BiotSavart2D(1.0, 0, 3.0, 64)
	if math.Abs(far) >= math.Abs(near) {
		t.Errorf("field should weaken on the axis: near %.2e, far %.2e", near, far)
	}
}
