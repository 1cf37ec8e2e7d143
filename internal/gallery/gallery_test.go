package gallery

import (
	"math"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	series := []float64{0.5, -1.25, 3.0}
	id, err := st.Save(Snapshot{
		Lesson: "riemann",
		Title:  "Riemann Sums",
		Mode:   "midpoint",
		Params: map[string]float64{"n": 12, "a": 0, "b": 2},
	}, series, "<svg/>")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	snap, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if snap.Lesson != "riemann" || snap.Mode != "midpoint" {
		t.Errorf("unexpected metadata: %+v", snap)
	}
	if snap.Params["n"] != 12 {
		t.Errorf("expected n 12, got %v", snap.Params["n"])
	}

	got, err := st.LoadSeries(id)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(got) != len(series) {
		t.Fatalf("expected %d samples, got %d", len(series), len(got))
	}
	for i := range series {
		if math.Abs(got[i]-series[i]) > 1e-6 {
			t.Errorf("sample %d: got %v, want %v", i, got[i], series[i])
		}
	}

	svg, err := st.LoadSVG(id)
	if err != nil || svg != "<svg/>" {
		t.Errorf("svg round trip failed: %q, %v", svg, err)
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	snaps, err := st.List()
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected empty gallery, got %d", len(snaps))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	st.Init()

	for _, lesson := range []string{"eigen", "market"} {
		if _, err := st.Save(Snapshot{Lesson: lesson}, []float64{1}, ""); err != nil {
			t.Fatalf("save %s: %v", lesson, err)
		}
	}

	snaps, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 2 {
		t.Errorf("expected 2 snapshots, got %d", len(snaps))
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	st.Init()
	if _, err := st.Load("nope_123"); err == nil {
		t.Error("expected error for missing snapshot")
	}
	if _, err := st.LoadSVG("nope_123"); err == nil {
		t.Error("expected error for missing svg")
	}
}
