// Package lesson defines the contract between the catalog and the
// individual visualizations. A lesson owns a small bag of numeric
// parameters and an optional mode switch, maps them to drawables once per
// frame, and supplies the scripted walkthrough whose setups mutate those
// same parameters.
package lesson

import (
	"fmt"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/tour"
)

// Param is one adjustable value with its slider range.
type Param struct {
	Name           string
	Value          float64
	Min, Max, Step float64
}

// Lesson is an interactive visualization page.
type Lesson interface {
	ID() string
	Title() string
	Topic() string
	Summary() string

	// Params returns the adjustable values in display order.
	Params() []Param
	// SetParam assigns a value, clamped to the parameter's range.
	// Unknown names return an error.
	SetParam(name string, value float64) error
	// Reset restores all parameters (and the mode) to their defaults.
	Reset()

	// Modes lists the lesson's discrete variants; nil when it has none.
	Modes() []string
	Mode() string
	SetMode(name string) error

	// Advance moves the lesson's animation clock. Lessons without motion
	// ignore it.
	Advance(dt float64)

	// Draw renders the current state. Called once per frame on a cleared
	// canvas.
	Draw(c *canvas.Canvas)

	// Series samples the lesson's primary curve at n points, for charts,
	// exports, and spectrum analysis.
	Series(n int) []float64

	// Readout returns the key numbers shown in the side panel.
	Readout() []string

	// Tour returns the scripted walkthrough. Step setups mutate this
	// lesson instance.
	Tour() []tour.Step
}

// ParamSet is the shared parameter bookkeeping lessons embed: ordered
// definitions, range-clamped assignment, and reset to initial values.
type ParamSet struct {
	params   []Param
	initial  []float64
	position map[string]int
}

func NewParamSet(params ...Param) *ParamSet {
	ps := &ParamSet{
		params:   params,
		initial:  make([]float64, len(params)),
		position: make(map[string]int, len(params)),
	}
	for i, p := range params {
		ps.initial[i] = p.Value
		ps.position[p.Name] = i
	}
	return ps
}

// Params returns a copy of the definitions in display order.
func (ps *ParamSet) Params() []Param {
	out := make([]Param, len(ps.params))
	copy(out, ps.params)
	return out
}

// Get returns the current value of name, zero when unknown.
func (ps *ParamSet) Get(name string) float64 {
	if i, ok := ps.position[name]; ok {
		return ps.params[i].Value
	}
	return 0
}

// SetParam assigns name, clamping to its [Min, Max] range.
func (ps *ParamSet) SetParam(name string, value float64) error {
	i, ok := ps.position[name]
	if !ok {
		return fmt.Errorf("unknown param: %s", name)
	}
	p := &ps.params[i]
	if value < p.Min {
		value = p.Min
	}
	if value > p.Max {
		value = p.Max
	}
	p.Value = value
	return nil
}

// Reset restores every parameter to its construction value.
func (ps *ParamSet) Reset() {
	for i := range ps.params {
		ps.params[i].Value = ps.initial[i]
	}
}
