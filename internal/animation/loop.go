// Package animation drives the orbits. A Loop is ticked once per engine frame.
package animation

import (
	"math"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-orrery/internal/state"
	"github.com/Carmen-Shannon/oxy-orrery/internal/world"
)

// SelfRotationStep is the spin, in radians, each planet gains per running tick.
const SelfRotationStep = 0.005

// State is the run state of a Loop.
type State int

const (
	StateRunning State = iota
	StatePaused
)

func (s State) String() string {
	if s == StatePaused {
		return "PAUSED"
	}
	return "RUNNING"
}

// Loop advances every planet along its orbit and renders the frame.
type Loop struct {
	planets []*world.PlanetInstance
	speeds  *state.OrbitalSpeedTable
	view    *state.GlobalViewState
	render  func()

	ticks   uint64
	stopped atomic.Bool
}

// NewLoop creates a Loop.
//
// Parameters:
//   - planets: the planets to move
//   - speeds: per-planet angular speed per tick
//   - view: supplies the paused flag
//   - render: called at the end of every tick; may be nil
//
// Returns:
//   - *Loop: the loop
func NewLoop(planets []*world.PlanetInstance, speeds *state.OrbitalSpeedTable, view *state.GlobalViewState, render func()) *Loop {
	if render == nil {
		render = func() {}
	}
	return &Loop{planets: planets, speeds: speeds, view: view, render: render}
}

// Tick runs one animation step. While paused only the render runs. After Stop it does nothing.
func (l *Loop) Tick() {
	if l.stopped.Load() {
		return
	}
	if !l.view.Paused() {
		for _, p := range l.planets {
			p.Angle += l.speeds.Speed(p.Name)
			x, z := world.OrbitPosition(p.Angle, p.Distance)
			p.Node.SetPosition(x, 0, z)

			rx, ry, rz := p.Node.Rotation()
			p.Node.SetRotation(rx, spin(ry), rz)
		}
		l.ticks++
	}
	l.render()
}

// spin advances a self-rotation angle by SelfRotationStep, kept in [-pi, pi] so float32 precision holds.
func spin(ry float32) float32 {
	return float32(math.Remainder(float64(ry)+SelfRotationStep, 2*math.Pi))
}

// FrameCallback adapts Tick to the engine's frame callback signature.
func (l *Loop) FrameCallback(float32) {
	l.Tick()
}

// State reports whether the orbits are advancing.
func (l *Loop) State() State {
	if l.view.Paused() {
		return StatePaused
	}
	return StateRunning
}

// Ticks returns how many running ticks have advanced the orbits.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Stop turns every later Tick into a no-op. It is safe to call from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}
