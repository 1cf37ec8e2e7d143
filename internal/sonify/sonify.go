// Package sonify turns the lesson's probe value into sound: a soft
// triangle tone whose pitch tracks the value. Purely an audio cue; the TUI
// works fine without it and degrades to silence when no output device is
// available.
package sonify

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	sampleRate = 44100
	bufferSize = 512

	minFreq = 180.0
	maxFreq = 880.0
)

type Engine struct {
	stream *portaudio.Stream

	mu     sync.Mutex
	target float64 // normalized 0..1 pitch position
	level  float64 // 0 silent, 1 full

	time        float64
	freqSmooth  float64
	levelSmooth float64
	filterState float64

	Active bool
}

func NewEngine() *Engine {
	return &Engine{freqSmooth: minFreq}
}

// Start opens the default output stream. On failure the engine stays
// inactive and every later call is a no-op.
func (e *Engine) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, bufferSize, e.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	e.stream = stream
	e.Active = true
	return nil
}

func (e *Engine) Stop() {
	if e.stream != nil {
		e.stream.Stop()
		e.stream.Close()
		e.stream = nil
	}
	if e.Active {
		portaudio.Terminate()
	}
	e.Active = false
}

// SetValue maps v within [lo, hi] onto the pitch range. Called from the
// UI thread once per frame.
func (e *Engine) SetValue(v, lo, hi float64) {
	if !e.Active {
		return
	}
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	e.mu.Lock()
	e.target = t
	e.level = 1
	e.mu.Unlock()
}

// Mute fades the tone out without stopping the stream.
func (e *Engine) Mute() {
	e.mu.Lock()
	e.level = 0
	e.mu.Unlock()
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// one-pole low pass, takes the buzz off the triangle
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (e *Engine) process(out []float32) {
	e.mu.Lock()
	target, level := e.target, e.level
	e.mu.Unlock()

	targetFreq := minFreq + target*(maxFreq-minFreq)
	dt := 1.0 / float64(sampleRate)

	for i := range out {
		// glide toward the target pitch and level to avoid clicks
		e.freqSmooth = e.freqSmooth*0.999 + targetFreq*0.001
		e.levelSmooth = e.levelSmooth*0.999 + level*0.001

		sample := triangle(e.time * e.freqSmooth)
		var filtered float64
		filtered, e.filterState = lpf(sample, 1200, dt, e.filterState)

		out[i] = float32(filtered * 0.22 * e.levelSmooth)
		e.time += dt
	}
}
