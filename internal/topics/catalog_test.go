package topics

import (
	"math"
	"testing"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/tour"
)

func TestCatalogListsAllLessons(t *testing.T) {
	reg := NewCatalog()
	ids := reg.List()
	want := []string{"riemann", "tangent", "taylor", "fourier", "eigen", "market", "fieldline"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d lessons, got %d", len(want), len(ids))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("lesson %d: expected %s, got %s", i, id, ids[i])
		}
	}
}

func TestEveryLessonDrawsAndSamples(t *testing.T) {
	reg := NewCatalog()
	for _, id := range reg.List() {
		l, err := reg.Get(id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		c := canvas.New(60, 20)
		l.Advance(0.033)
		l.Draw(c)

		series := l.Series(64)
		if len(series) != 64 {
			t.Errorf("%s: expected 64 samples, got %d", id, len(series))
		}
		for i, v := range series {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s: sample %d is %v", id, i, v)
			}
		}
		if len(l.Readout()) == 0 {
			t.Errorf("%s: empty readout", id)
		}
		if len(l.Params()) == 0 {
			t.Errorf("%s: no adjustable params", id)
		}
	}
}

func TestTinySeriesRequestsStayFinite(t *testing.T) {
	reg := NewCatalog()
	for _, id := range reg.List() {
		l, err := reg.Get(id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		for _, n := range []int{0, 1} {
			for i, v := range l.Series(n) {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%s: Series(%d) sample %d is %v", id, n, i, v)
				}
			}
		}
	}
}

func TestEveryTourStepAppliesCleanly(t *testing.T) {
	reg := NewCatalog()
	for _, id := range reg.List() {
		l, _ := reg.Get(id)
		steps := l.Tour()
		if len(steps) < 3 {
			t.Errorf("%s: expected a multi-step tour, got %d steps", id, len(steps))
			continue
		}

		s := tour.New(steps)
		s.Open()
		c := canvas.New(60, 20)
		for s.Index() < s.Len()-1 {
			if s.Current().Title == "" || s.Current().Body == "" {
				t.Errorf("%s step %d: missing text", id, s.Index())
			}
			l.Draw(c)
			c.Clear()
			s.Next()
		}
		l.Draw(c)

		// setups must leave every param inside its declared range
		for _, p := range l.Params() {
			if p.Value < p.Min || p.Value > p.Max {
				t.Errorf("%s: tour left %s = %v outside [%v, %v]", id, p.Name, p.Value, p.Min, p.Max)
			}
		}
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	reg := NewCatalog()
	for _, id := range reg.List() {
		l, _ := reg.Get(id)
		fresh, _ := reg.Get(id)

		// walk the full tour, then reset
		s := tour.New(l.Tour())
		s.Open()
		for i := 0; i < s.Len(); i++ {
			s.Next()
		}
		l.Reset()

		want := fresh.Params()
		got := l.Params()
		for i := range want {
			if got[i].Value != want[i].Value {
				t.Errorf("%s: after reset %s = %v, want %v", id, got[i].Name, got[i].Value, want[i].Value)
			}
		}
		if l.Mode() != fresh.Mode() {
			t.Errorf("%s: after reset mode = %q, want %q", id, l.Mode(), fresh.Mode())
		}
	}
}

func TestParamClamping(t *testing.T) {
	r := NewRiemann()
	r.SetParam("n", 10000)
	if got := r.Get("n"); got != 96 {
		t.Errorf("n should clamp to 96, got %v", got)
	}
	r.SetParam("n", -5)
	if got := r.Get("n"); got != 1 {
		t.Errorf("n should clamp to 1, got %v", got)
	}
	if err := r.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestRiemannModesBracketIntegral(t *testing.T) {
	r := NewRiemann()
	r.SetParam("a", 0)
	r.SetParam("b", 2)
	r.SetParam("n", 8)

	if err := r.SetMode("nope"); err == nil {
		t.Error("expected error for unknown mode")
	}
	for _, m := range r.Modes() {
		if err := r.SetMode(m); err != nil {
			t.Errorf("mode %s: %v", m, err)
		}
	}
}

func TestTaylorTourImprovesFit(t *testing.T) {
	tl := NewTaylor()
	steps := tl.Tour()
	steps[0].Setup() // degree 1
	coarse := tl.Series(32)
	steps[2].Setup() // degree 7
	fine := tl.Series(32)

	target := func(i int) float64 {
		x := -2*math.Pi + 4*math.Pi*float64(i)/31
		return math.Sin(x)
	}
	// compare only within a period of the center: Taylor polynomials are
	// local, and far from it more terms can mean bigger excursions
	var errCoarse, errFine float64
	for i := 8; i <= 23; i++ {
		errCoarse += math.Abs(coarse[i] - target(i))
		errFine += math.Abs(fine[i] - target(i))
	}
	if errFine >= errCoarse {
		t.Errorf("higher degree should fit better: %.2f vs %.2f", errFine, errCoarse)
	}
}
