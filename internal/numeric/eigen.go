package numeric

import "math"

// Eigen2 holds the closed-form eigen decomposition of a real 2x2 matrix.
// For complex eigenvalues only Real/Imag are meaningful and the vectors
// are zero.
type Eigen2 struct {
	L1, L2     float64    // eigenvalues when real
	Imag       float64    // imaginary part when the pair is complex
	V1, V2     [2]float64 // unit eigenvectors when real
	IsComplex  bool
	IsRepeated bool
}

// EigenDecompose2 solves the characteristic polynomial of
// [[a, b], [c, d]] directly. No iteration, no tolerance.
func EigenDecompose2(a, b, c, d float64) Eigen2 {
	tr := a + d
	det := a*d - b*c
	disc := tr*tr/4 - det

	if disc < 0 {
		return Eigen2{L1: tr / 2, L2: tr / 2, Imag: math.Sqrt(-disc), IsComplex: true}
	}

	root := math.Sqrt(disc)
	e := Eigen2{L1: tr/2 + root, L2: tr/2 - root, IsRepeated: root == 0}
	e.V1 = eigenvector2(a, b, c, d, e.L1)
	e.V2 = eigenvector2(a, b, c, d, e.L2)
	return e
}

func eigenvector2(a, b, c, d, lambda float64) [2]float64 {
	// (A - lambda I) v = 0; pick the better-conditioned row.
	var vx, vy float64
	if math.Abs(b) > 1e-12 {
		vx, vy = b, lambda-a
	} else if math.Abs(c) > 1e-12 {
		vx, vy = lambda-d, c
	} else {
		// diagonal matrix: axis-aligned eigenvectors
		if math.Abs(a-lambda) < math.Abs(d-lambda) {
			return [2]float64{1, 0}
		}
		return [2]float64{0, 1}
	}
	norm := math.Hypot(vx, vy)
	if norm == 0 {
		return [2]float64{1, 0}
	}
	return [2]float64{vx / norm, vy / norm}
}

// Apply2 multiplies [[a, b], [c, d]] by (x, y).
func Apply2(a, b, c, d, x, y float64) (float64, float64) {
	return a*x + b*y, c*x + d*y
}

// MarketEquilibrium intersects linear demand p = dIntercept - dSlope*q with
// linear supply p = sIntercept + sSlope*q, returning quantity and price.
// Parallel curves (zero combined slope) return zeros.
func MarketEquilibrium(dIntercept, dSlope, sIntercept, sSlope float64) (q, p float64) {
	den := dSlope + sSlope
	if den == 0 {
		return 0, 0
	}
	q = (dIntercept - sIntercept) / den
	p = dIntercept - dSlope*q
	return q, p
}

// BiotSavart2D sums the field contribution of a circular loop of radius r
// carrying unit current, discretized into segs segments, at the in-plane
// point (x, y). The loop lies in the x-z plane centred on the origin; the
// returned components are the field projected onto the x-y cross-section
// plane. Single fixed-size pass, no convergence criterion.
func BiotSavart2D(r, x, y float64, segs int) (bx, by float64) {
	if segs < 8 {
		segs = 8
	}
	for i := 0; i < segs; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segs)
		a1 := 2 * math.Pi * float64(i+1) / float64(segs)

		// segment midpoint and direction in 3D; the loop is traversed so
		// the field on the axis points along +y
		mx, mz := r*math.Cos((a0+a1)/2), r*math.Sin((a0+a1)/2)
		dlx := r * (math.Cos(a0) - math.Cos(a1))
		dlz := r * (math.Sin(a0) - math.Sin(a1))

		// field point lies in the x-y plane (z = 0)
		rx, ry, rz := x-mx, y, -mz
		dist := math.Sqrt(rx*rx + ry*ry + rz*rz)
		if dist < 1e-9 {
			continue
		}
		inv := 1 / (dist * dist * dist)

		// dl x r with dl = (dlx, 0, dlz)
		cx := -dlz * ry
		cy := dlz*rx - dlx*rz
		bx += cx * inv
		by += cy * inv
	}
	return bx, by
}
