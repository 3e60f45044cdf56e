// Package state holds the mutable simulation settings shared by the animation loop,
// the controls and the input bindings. Nothing here locks: every mutation runs on the
// engine's frame goroutine.
package state

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/lucasb-eyer/go-colorful"
)

// Speed bounds, in radians per tick.
const (
	DefaultSpeed = 0.01
	MinSpeed     = 0.0
	MaxSpeed     = 0.1
)

// ErrUnknownBody is returned for a planet name missing from the speed table.
var ErrUnknownBody = errors.New("unknown body")

// OrbitalSpeedTable maps planet names to their angular speed per tick.
type OrbitalSpeedTable struct {
	speeds map[string]float64
	order  []string
}

// NewOrbitalSpeedTable creates a table with DefaultSpeed for every name.
//
// Parameters:
//   - names: the planet names, in display order
//
// Returns:
//   - *OrbitalSpeedTable: the table
func NewOrbitalSpeedTable(names []string) *OrbitalSpeedTable {
	t := &OrbitalSpeedTable{
		speeds: make(map[string]float64, len(names)),
		order:  append([]string(nil), names...),
	}
	for _, n := range names {
		t.speeds[n] = DefaultSpeed
	}
	return t
}

// Speed returns the speed of name, or 0 when name is unknown.
func (t *OrbitalSpeedTable) Speed(name string) float64 {
	return t.speeds[name]
}

// Set changes the speed of name only, clamped to [MinSpeed, MaxSpeed].
//
// Parameters:
//   - name: the planet name
//   - v: the new speed
//
// Returns:
//   - error: ErrUnknownBody if name is not in the table
func (t *OrbitalSpeedTable) Set(name string, v float64) error {
	if _, ok := t.speeds[name]; !ok {
		return fmt.Errorf("set speed of %q: %w", name, ErrUnknownBody)
	}
	t.speeds[name] = common.Clamp(v, MinSpeed, MaxSpeed)
	return nil
}

// Names returns the planet names in display order.
func (t *OrbitalSpeedTable) Names() []string {
	return append([]string(nil), t.order...)
}

// Snapshot returns a copy of all speeds.
func (t *OrbitalSpeedTable) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(t.speeds))
	for k, v := range t.speeds {
		out[k] = v
	}
	return out
}

// Scale bounds of the solar-system group.
const (
	DefaultScale = 1.0
	MinScale     = 0.1
	MaxScale     = 3.0
)

// Theme background colors, shared with the web panel stylesheet.
const (
	DarkBackground  = "#000000"
	LightBackground = "#dde1ed"
)

// Theme clear colors.
var (
	DarkClearColor  = mustClearColor(DarkBackground)
	LightClearColor = mustClearColor(LightBackground)
)

// mustClearColor converts a hex color to an opaque RGBA clear color.
func mustClearColor(hex string) [4]float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("bad theme color %q: %v", hex, err))
	}
	return [4]float64{c.R, c.G, c.B, 1}
}

// GlobalViewState holds the view settings the user toggles.
type GlobalViewState struct {
	scale      float64
	paused     bool
	lightTheme bool
}

// NewGlobalViewState returns a running, dark-themed view at DefaultScale.
func NewGlobalViewState() *GlobalViewState {
	return &GlobalViewState{scale: DefaultScale}
}

// Scale returns the uniform scale of the solar-system group.
func (v *GlobalViewState) Scale() float64 {
	return v.scale
}

// SetScale sets the scale, clamped to [MinScale, MaxScale].
//
// Returns:
//   - float64: the applied scale
func (v *GlobalViewState) SetScale(k float64) float64 {
	v.scale = common.Clamp(k, MinScale, MaxScale)
	return v.scale
}

// Paused reports whether the orbits are frozen.
func (v *GlobalViewState) Paused() bool {
	return v.paused
}

// TogglePause flips the paused flag.
//
// Returns:
//   - bool: the new paused value
func (v *GlobalViewState) TogglePause() bool {
	v.paused = !v.paused
	return v.paused
}

// LightTheme reports whether the light theme is on.
func (v *GlobalViewState) LightTheme() bool {
	return v.lightTheme
}

// ToggleTheme flips between the dark and light themes.
//
// Returns:
//   - bool: true if the light theme is now on
func (v *GlobalViewState) ToggleTheme() bool {
	v.lightTheme = !v.lightTheme
	return v.lightTheme
}

// ClearColor returns the background color of the current theme.
func (v *GlobalViewState) ClearColor() [4]float64 {
	if v.lightTheme {
		return LightClearColor
	}
	return DarkClearColor
}
