// Package tour implements the guided walkthrough stepper shared by all
// lessons: an ordered list of slides, a current index, and clamped
// navigation. Each slide may carry a setup action that pushes new parameter
// values into the hosting lesson when the slide becomes active.
//
// A Stepper is owned by exactly one lesson view and knows nothing about
// rendering; the UI reads Index and IsOpen after each call.
package tour

// Step is one slide of a guided walkthrough.
type Step struct {
	Title     string
	Body      string
	Highlight string // optional callout shown under the body
	Setup     func() // optional, runs when the step becomes active
}

// Stepper sequences a fixed list of steps. Navigation is clamped: no call
// panics or returns an error, out-of-range requests are ignored.
//
// A Stepper over zero steps can never open; Open on it is a no-op.
type Stepper struct {
	steps []Step
	index int
	open  bool
}

// New builds a Stepper over steps. The slice is not copied; callers author
// step lists once at lesson construction and do not mutate them.
func New(steps []Step) *Stepper {
	return &Stepper{steps: steps}
}

// Len returns the number of steps.
func (s *Stepper) Len() int { return len(s.steps) }

// Index returns the current step index.
func (s *Stepper) Index() int { return s.index }

// IsOpen reports whether a slide is being shown.
func (s *Stepper) IsOpen() bool { return s.open }

// Current returns the active step. Zero Step when the list is empty.
func (s *Stepper) Current() Step {
	if len(s.steps) == 0 {
		return Step{}
	}
	return s.steps[s.index]
}

// Open shows the walkthrough from the beginning. Opening an already-open
// stepper restarts at step 0 and reruns its setup.
func (s *Stepper) Open() {
	if len(s.steps) == 0 {
		return
	}
	s.open = true
	s.index = 0
	s.runSetup()
}

// Close hides the walkthrough. The index is preserved but Open restarts
// from step 0 regardless.
func (s *Stepper) Close() {
	s.open = false
}

// Next advances one step. No-op at the last step.
func (s *Stepper) Next() {
	if s.index >= len(s.steps)-1 {
		return
	}
	s.index++
	s.runSetup()
}

// Prev goes back one step. No-op at the first step.
func (s *Stepper) Prev() {
	if s.index <= 0 {
		return
	}
	s.index--
	s.runSetup()
}

// GoTo jumps to step i. Out-of-range i is ignored.
func (s *Stepper) GoTo(i int) {
	if i < 0 || i >= len(s.steps) {
		return
	}
	s.index = i
	s.runSetup()
}

func (s *Stepper) runSetup() {
	if fn := s.steps[s.index].Setup; fn != nil {
		fn()
	}
}
