// Package controls implements the orrery's control panel: one speed slider per planet,
// a size slider and the Pause and Theme buttons. Every surface (window keys, web panel)
// drives the same controls, and the controls write through to the shared state.
package controls

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// Control kinds reported in snapshots.
const (
	KindSlider = "slider"
	KindButton = "button"
)

// ControlState is the serializable view of one control.
type ControlState struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Label string  `json:"label"`
	Value float64 `json:"value,omitempty"`
	Min   float64 `json:"min,omitempty"`
	Max   float64 `json:"max,omitempty"`
	Step  float64 `json:"step,omitempty"`
	On    bool    `json:"on,omitempty"`
}

// Control is the observer surface shared by sliders and buttons.
type Control interface {
	// ID returns the stable identifier used by the web panel.
	ID() string

	// Label returns the current display label.
	Label() string

	// State returns the serializable view of the control.
	State() ControlState

	// OnUpdate registers a handler run after any change, after the typed handlers.
	//
	// Parameters:
	//   - handler: the function to run
	OnUpdate(handler func())
}

var (
	_ Control = &Slider{}
	_ Control = &Button{}
)

// Slider is a bounded numeric control snapped to a fixed step.
type Slider struct {
	id    string
	label string
	min   float64
	max   float64
	step  float64
	value float64

	handlers []func(float64)
	updates  []func()
}

// NewSlider creates a slider. The initial value is snapped into range without notifying.
//
// Parameters:
//   - id: the control identifier
//   - label: the display label
//   - lo: the lower bound
//   - hi: the upper bound
//   - step: the value granularity; zero disables snapping
//   - value: the initial value
//
// Returns:
//   - *Slider: the slider
func NewSlider(id, label string, lo, hi, step, value float64) *Slider {
	s := &Slider{id: id, label: label, min: lo, max: hi, step: step}
	s.value = s.snap(value)
	return s
}

func (s *Slider) ID() string    { return s.id }
func (s *Slider) Label() string { return s.label }

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Min returns the lower bound.
func (s *Slider) Min() float64 { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() float64 { return s.max }

// Step returns the value granularity.
func (s *Slider) Step() float64 { return s.step }

// OnChange registers handler to receive every new value. Handlers run in registration order.
//
// Parameters:
//   - handler: the function to run
func (s *Slider) OnChange(handler func(v float64)) {
	s.handlers = append(s.handlers, handler)
}

func (s *Slider) OnUpdate(handler func()) {
	s.updates = append(s.updates, handler)
}

// Set clamps v into range, snaps it to the step and notifies the handlers if the value changed.
//
// Parameters:
//   - v: the requested value
//
// Returns:
//   - float64: the applied value
func (s *Slider) Set(v float64) float64 {
	if math.IsNaN(v) {
		return s.value
	}
	v = s.snap(v)
	if v == s.value {
		return v
	}
	s.value = v
	for _, h := range s.handlers {
		h(v)
	}
	for _, u := range s.updates {
		u()
	}
	return v
}

// Nudge moves the value by delta.
//
// Returns:
//   - float64: the applied value
func (s *Slider) Nudge(delta float64) float64 {
	return s.Set(s.value + delta)
}

func (s *Slider) State() ControlState {
	return ControlState{
		ID:    s.id,
		Kind:  KindSlider,
		Label: s.label,
		Value: s.value,
		Min:   s.min,
		Max:   s.max,
		Step:  s.step,
	}
}

func (s *Slider) snap(v float64) float64 {
	v = common.Clamp(v, s.min, s.max)
	if s.step <= 0 {
		return v
	}
	n := math.Round((v - s.min) / s.step)
	// keep the decimal precision of step so 0.01 does not become 0.010000000000000002
	v = roundTo(s.min+n*s.step, decimals(s.step))
	return common.Clamp(v, s.min, s.max)
}

func decimals(step float64) int {
	d := 0
	for d < 10 && math.Abs(step-math.Round(step)) > 1e-9 {
		step *= 10
		d++
	}
	return d
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Button is a two-state toggle. Its label may follow the state.
type Button struct {
	id      string
	on      bool
	labeler func(on bool) string

	handlers []func(bool)
	updates  []func()
}

// NewButton creates a button with a fixed label.
//
// Parameters:
//   - id: the control identifier
//   - label: the display label
//
// Returns:
//   - *Button: the button
func NewButton(id, label string) *Button {
	return NewToggleButton(id, func(bool) string { return label })
}

// NewToggleButton creates a button whose label is derived from its state.
//
// Parameters:
//   - id: the control identifier
//   - labeler: returns the label for a given state
//
// Returns:
//   - *Button: the button
func NewToggleButton(id string, labeler func(on bool) string) *Button {
	return &Button{id: id, labeler: labeler}
}

func (b *Button) ID() string    { return b.id }
func (b *Button) Label() string { return b.labeler(b.on) }

// On reports the toggle state.
func (b *Button) On() bool { return b.on }

// OnChange registers handler to receive the new state after each press.
//
// Parameters:
//   - handler: the function to run
func (b *Button) OnChange(handler func(on bool)) {
	b.handlers = append(b.handlers, handler)
}

func (b *Button) OnUpdate(handler func()) {
	b.updates = append(b.updates, handler)
}

// Press flips the state and notifies the handlers.
//
// Returns:
//   - bool: the new state
func (b *Button) Press() bool {
	b.on = !b.on
	for _, h := range b.handlers {
		h(b.on)
	}
	for _, u := range b.updates {
		u()
	}
	return b.on
}

func (b *Button) State() ControlState {
	return ControlState{
		ID:    b.id,
		Kind:  KindButton,
		Label: b.Label(),
		On:    b.on,
	}
}
