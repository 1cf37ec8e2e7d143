package numeric

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// FourierPartial evaluates the k-harmonic partial Fourier sum of the named
// wave (square, sawtooth, triangle) at phase x. Unknown waves fall back to
// square. k < 1 is clamped to 1.
func FourierPartial(wave string, x float64, k int) float64 {
	if k < 1 {
		k = 1
	}
	sum := 0.0
	switch wave {
	case "sawtooth":
		// 2/pi * sum (-1)^{n+1} sin(nx)/n
		for n := 1; n <= k; n++ {
			sign := 1.0
			if n%2 == 0 {
				sign = -1.0
			}
			sum += sign * math.Sin(float64(n)*x) / float64(n)
		}
		return 2 / math.Pi * sum
	case "triangle":
		// even triangle, peak at x=0: 8/pi^2 * sum cos((2m+1)x)/(2m+1)^2
		for m := 0; 2*m+1 <= 2*k-1; m++ {
			n := float64(2*m + 1)
			sum += math.Cos(n*x) / (n * n)
		}
		return 8 / (math.Pi * math.Pi) * sum
	default:
		// 4/pi * sum sin((2m+1)x)/(2m+1)
		for m := 0; 2*m+1 <= 2*k-1; m++ {
			n := float64(2*m + 1)
			sum += math.Sin(n*x) / n
		}
		return 4 / math.Pi * sum
	}
}

// WaveTarget evaluates the ideal wave the partial sum converges to.
func WaveTarget(wave string, x float64) float64 {
	// wrap to [-pi, pi)
	x = math.Mod(x+math.Pi, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	x -= math.Pi
	switch wave {
	case "sawtooth":
		return x / math.Pi
	case "triangle":
		return 1 - 2*math.Abs(x)/math.Pi
	default:
		if x >= 0 {
			return 1
		}
		return -1
	}
}

// PowerSpectrum returns the magnitude spectrum of a sampled series. The
// input is zero-padded to the next power of two before the FFT; the result
// holds the first half of the bins.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	n := 1
	for n < len(series) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, series)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		re, im := real(spectrum[i]), imag(spectrum[i])
		ps[i] = math.Sqrt(re*re + im*im)
	}
	return ps
}

// DominantBin returns the index of the largest non-DC spectrum bin.
func DominantBin(ps []float64) int {
	best, bestVal := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > bestVal {
			best, bestVal = i, ps[i]
		}
	}
	return best
}
