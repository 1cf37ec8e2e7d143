package canvas

// Plane maps a world-coordinate window onto a canvas's dot grid. Lessons
// draw in math coordinates and let the plane handle projection; y grows
// upward in world space, downward on the grid.
type Plane struct {
	c                      *Canvas
	xMin, xMax, yMin, yMax float64
}

// NewPlane fits the window [xMin,xMax] x [yMin,yMax] onto c. Degenerate
// windows are widened by a unit so projection never divides by zero.
func NewPlane(c *Canvas, xMin, xMax, yMin, yMax float64) *Plane {
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMax = yMin + 1
	}
	return &Plane{c: c, xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax}
}

// Dot converts world coordinates to dot coordinates.
func (p *Plane) Dot(x, y float64) (int, int) {
	px := (x - p.xMin) / (p.xMax - p.xMin) * float64(p.c.DotWidth()-1)
	py := (1 - (y-p.yMin)/(p.yMax-p.yMin)) * float64(p.c.DotHeight()-1)
	return int(px + 0.5), int(py + 0.5)
}

// Plot sets the dot nearest to the world point (x, y).
func (p *Plane) Plot(x, y float64) {
	dx, dy := p.Dot(x, y)
	p.c.Set(dx, dy)
}

// Segment draws a line between two world points.
func (p *Plane) Segment(x0, y0, x1, y1 float64) {
	ax, ay := p.Dot(x0, y0)
	bx, by := p.Dot(x1, y1)
	p.c.Line(ax, ay, bx, by)
}

// Bar fills the axis-aligned rectangle between two world corners.
func (p *Plane) Bar(x0, y0, x1, y1 float64) {
	ax, ay := p.Dot(x0, y0)
	bx, by := p.Dot(x1, y1)
	p.c.FillRect(ax, ay, bx, by)
}

// Arrow draws a world-coordinate arrow.
func (p *Plane) Arrow(x0, y0, x1, y1 float64) {
	ax, ay := p.Dot(x0, y0)
	bx, by := p.Dot(x1, y1)
	p.c.Arrow(ax, ay, bx, by)
}

// Marker draws a filled marker at a world point.
func (p *Plane) Marker(x, y float64, r int) {
	dx, dy := p.Dot(x, y)
	p.c.Blob(dx, dy, r)
}

// Axes draws dotted axes through the world origin, clamped to the window.
func (p *Plane) Axes() {
	ox, oy := p.Dot(clamp(0, p.xMin, p.xMax), clamp(0, p.yMin, p.yMax))
	p.c.Axes(ox, oy)
}

// Curve samples fn across the window's x range and draws the polyline,
// skipping segments that leave the window vertically.
func (p *Plane) Curve(fn func(float64) float64) {
	w := p.c.DotWidth()
	prevOK := false
	var prevX, prevY int
	for i := 0; i < w; i++ {
		x := p.xMin + (p.xMax-p.xMin)*float64(i)/float64(w-1)
		y := fn(x)
		if y < p.yMin || y > p.yMax {
			prevOK = false
			continue
		}
		dx, dy := p.Dot(x, y)
		if prevOK {
			p.c.Line(prevX, prevY, dx, dy)
		}
		prevX, prevY, prevOK = dx, dy, true
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
