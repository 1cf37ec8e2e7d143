package canvas

import "testing"

func TestSetAndIsSet(t *testing.T) {
	c := New(10, 5)

	c.Set(3, 7)
	if !c.IsSet(3, 7) {
		t.Error("dot should be set")
	}
	if c.IsSet(4, 7) {
		t.Error("neighbour dot should be clear")
	}

	c.Unset(3, 7)
	if c.IsSet(3, 7) {
		t.Error("dot should be clear after Unset")
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	c := New(4, 4)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(c.DotWidth(), 0)
	c.Set(0, c.DotHeight())
	c.Unset(-1, -1)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("out-of-range writes must not touch the grid")
			}
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	c := New(20, 10)
	c.Line(0, 0, 30, 20)
	if !c.IsSet(0, 0) || !c.IsSet(30, 20) {
		t.Error("line must include both endpoints")
	}
}

func TestFillRect(t *testing.T) {
	c := New(10, 10)
	// corners given in reverse order still fill
	c.FillRect(6, 9, 2, 3)
	for y := 3; y <= 9; y++ {
		for x := 2; x <= 6; x++ {
			if !c.IsSet(x, y) {
				t.Fatalf("dot (%d,%d) should be filled", x, y)
			}
		}
	}
	if c.IsSet(7, 3) || c.IsSet(2, 10) {
		t.Error("fill leaked outside the rectangle")
	}
}

func TestClear(t *testing.T) {
	c := New(5, 5)
	c.FillRect(0, 0, 9, 19)
	c.Clear()
	if c.IsSet(0, 0) || c.IsSet(9, 19) {
		t.Error("clear should empty the grid")
	}
}

func TestStringShape(t *testing.T) {
	c := New(8, 3)
	s := c.String()
	lines := 0
	for _, r := range s {
		if r == '\n' {
			lines++
		}
	}
	if lines != 3 {
		t.Errorf("expected 3 rows, got %d", lines)
	}
}

func TestPlaneProjectsCorners(t *testing.T) {
	c := New(10, 5)
	p := NewPlane(c, -1, 1, -2, 2)

	x, y := p.Dot(-1, 2)
	if x != 0 || y != 0 {
		t.Errorf("top-left corner projected to (%d,%d)", x, y)
	}
	x, y = p.Dot(1, -2)
	if x != c.DotWidth()-1 || y != c.DotHeight()-1 {
		t.Errorf("bottom-right corner projected to (%d,%d)", x, y)
	}
}

func TestPlaneDegenerateWindow(t *testing.T) {
	c := New(4, 4)
	p := NewPlane(c, 2, 2, 3, 3)
	// must not divide by zero
	p.Plot(2, 3)
}

func TestCurveStaysInWindow(t *testing.T) {
	c := New(20, 10)
	p := NewPlane(c, 0, 1, 0, 1)
	p.Curve(func(x float64) float64 { return 5 * x }) // leaves window at x=0.2
	for y := 0; y < c.DotHeight(); y++ {
		if c.IsSet(c.DotWidth()-1, y) {
			t.Error("curve drew outside its vertical window")
		}
	}
}
