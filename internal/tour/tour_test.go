package tour

import "testing"

// counter builds a step list where each Setup bumps its own call count.
func counter(n int) (*Stepper, []int) {
	calls := make([]int, n)
	steps := make([]Step, n)
	for i := range steps {
		i := i
		steps[i] = Step{Title: "step", Setup: func() { calls[i]++ }}
	}
	return New(steps), calls
}

func TestOpenResetsToFirstStep(t *testing.T) {
	s, calls := counter(3)

	s.Open()
	if !s.IsOpen() {
		t.Error("expected open after Open")
	}
	if s.Index() != 0 {
		t.Errorf("expected index 0, got %d", s.Index())
	}
	if calls[0] != 1 {
		t.Errorf("expected setup[0] called once, got %d", calls[0])
	}

	s.Next()
	s.Next()
	s.Open()
	if s.Index() != 0 {
		t.Errorf("reopen should restart at 0, got %d", s.Index())
	}
	if calls[0] != 2 {
		t.Errorf("expected setup[0] called twice, got %d", calls[0])
	}
}

func TestCloseKeepsIndex(t *testing.T) {
	s, _ := counter(3)
	s.Open()
	s.Next()
	s.Close()

	if s.IsOpen() {
		t.Error("expected closed after Close")
	}
	if s.Index() != 1 {
		t.Errorf("close should not reset index, got %d", s.Index())
	}

	s.Open()
	if s.Index() != 0 {
		t.Errorf("open after close should restart at 0, got %d", s.Index())
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	s, _ := counter(3)
	s.Open()

	moves := []func(){s.Next, s.Next, s.Next, s.Next, s.Prev, s.Prev, s.Prev, s.Prev, s.Next}
	for i, move := range moves {
		move()
		if s.Index() < 0 || s.Index() >= s.Len() {
			t.Fatalf("move %d left index out of bounds: %d", i, s.Index())
		}
	}
}

func TestNextClampsAtLastStep(t *testing.T) {
	s, calls := counter(2)
	s.Open()
	s.Next()

	for i := 0; i < 3; i++ {
		s.Next()
	}
	if s.Index() != 1 {
		t.Errorf("expected index 1, got %d", s.Index())
	}
	if calls[1] != 1 {
		t.Errorf("clamped Next should not rerun setup, got %d calls", calls[1])
	}
}

func TestPrevClampsAtFirstStep(t *testing.T) {
	s, calls := counter(2)
	s.Open()

	for i := 0; i < 3; i++ {
		s.Prev()
	}
	if s.Index() != 0 {
		t.Errorf("expected index 0, got %d", s.Index())
	}
	if calls[0] != 1 {
		t.Errorf("clamped Prev should not rerun setup, got %d calls", calls[0])
	}
}

func TestGoToOutOfRangeIsNoop(t *testing.T) {
	s, calls := counter(3)
	s.Open()
	s.GoTo(1)

	for _, i := range []int{-1, 3, 42, -100} {
		s.GoTo(i)
		if s.Index() != 1 {
			t.Errorf("GoTo(%d) should be a no-op, index moved to %d", i, s.Index())
		}
	}
	if calls[0]+calls[1]+calls[2] != 2 {
		t.Errorf("out-of-range GoTo ran a setup: calls=%v", calls)
	}
}

func TestExactlyOneSetupPerTransition(t *testing.T) {
	s, calls := counter(3)

	total := func() int { return calls[0] + calls[1] + calls[2] }

	s.Open() // A
	s.Next() // B
	s.Next() // C
	s.Next() // clamped
	s.GoTo(0)
	s.Close()

	if got := total(); got != 4 {
		t.Errorf("expected 4 setup calls, got %d (%v)", got, calls)
	}
	if calls[0] != 2 || calls[1] != 1 || calls[2] != 1 {
		t.Errorf("unexpected per-step call counts: %v", calls)
	}
	if s.IsOpen() {
		t.Error("expected closed")
	}
	if s.Index() != 0 {
		t.Errorf("expected index 0 after GoTo(0)+Close, got %d", s.Index())
	}
}

func TestStepsWithoutSetup(t *testing.T) {
	s := New([]Step{{Title: "a"}, {Title: "b"}})
	s.Open()
	s.Next()
	s.Prev()
	s.GoTo(1)

	if s.Index() != 1 {
		t.Errorf("expected index 1, got %d", s.Index())
	}
	if s.Current().Title != "b" {
		t.Errorf("expected current step b, got %q", s.Current().Title)
	}
}

func TestEmptyStepperCannotOpen(t *testing.T) {
	s := New(nil)
	s.Open()
	s.Next()
	s.Prev()
	s.GoTo(0)
	s.Close()

	if s.IsOpen() {
		t.Error("empty stepper must never open")
	}
	if s.Len() != 0 {
		t.Errorf("expected Len 0, got %d", s.Len())
	}
	if got := s.Current(); got.Title != "" || got.Setup != nil {
		t.Errorf("expected zero step, got %+v", got)
	}
}
