package controls

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/internal/state"
	"github.com/Carmen-Shannon/oxy-orrery/internal/world"
)

// Control identifiers.
const (
	SizeID        = "size"
	PauseID       = "pause"
	ThemeID       = "theme"
	SpeedIDPrefix = "speed:"
)

// Slider and button settings.
const (
	SpeedStep = 0.001
	SizeStep  = 0.01

	PauseLabel  = "Pause"
	ResumeLabel = "Resume"
	ThemeLabel  = "Theme"
	SizeLabel   = "Size"
)

// SpeedID returns the control identifier of the speed slider for planet.
func SpeedID(planet string) string {
	return SpeedIDPrefix + planet
}

// Panel groups the bound controls.
type Panel struct {
	speeds []*Slider
	size   *Slider
	pause  *Button
	theme  *Button

	byID map[string]Control
}

// PanelOption is a functional option for BindControls.
type PanelOption func(*panelConfig)

type panelConfig struct {
	scene    scene.Scene
	onUpdate []func()
}

// WithScene sets the scene whose clear color follows the theme.
//
// Parameters:
//   - sc: the scene
//
// Returns:
//   - PanelOption: the option
func WithScene(sc scene.Scene) PanelOption {
	return func(c *panelConfig) {
		c.scene = sc
	}
}

// WithUpdateHandler registers a handler run after any control changes.
//
// Parameters:
//   - handler: the function to run
//
// Returns:
//   - PanelOption: the option
func WithUpdateHandler(handler func()) PanelOption {
	return func(c *panelConfig) {
		c.onUpdate = append(c.onUpdate, handler)
	}
}

// BindControls creates the control panel for w and wires every control to the shared state.
// Call it once, after the world is built, from the goroutine that owns the state.
//
// Parameters:
//   - w: the built world
//   - speeds: the orbital speed table
//   - view: the global view state
//   - options: functional options
//
// Returns:
//   - *Panel: the bound controls
func BindControls(w *world.World, speeds *state.OrbitalSpeedTable, view *state.GlobalViewState, options ...PanelOption) *Panel {
	cfg := &panelConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	p := &Panel{byID: make(map[string]Control)}

	for _, planet := range w.Planets() {
		name := planet.Name
		s := NewSlider(SpeedID(name), name, state.MinSpeed, state.MaxSpeed, SpeedStep, speeds.Speed(name))
		s.OnChange(func(v float64) {
			if err := speeds.Set(name, v); err != nil {
				log.Printf("[Controls] %v", err)
			}
		})
		p.speeds = append(p.speeds, s)
		p.add(s)
	}

	p.size = NewSlider(SizeID, SizeLabel, state.MinScale, state.MaxScale, SizeStep, view.Scale())
	p.size.OnChange(func(k float64) {
		w.SetScale(view.SetScale(k))
	})
	p.add(p.size)

	p.pause = NewToggleButton(PauseID, func(paused bool) string {
		if paused {
			return ResumeLabel
		}
		return PauseLabel
	})
	if view.Paused() {
		p.pause.on = true
	}
	p.pause.OnChange(func(on bool) {
		if view.Paused() != on {
			view.TogglePause()
		}
	})
	p.add(p.pause)

	p.theme = NewButton(ThemeID, ThemeLabel)
	p.theme.on = view.LightTheme()
	p.theme.OnChange(func(on bool) {
		if view.LightTheme() != on {
			view.ToggleTheme()
		}
		if cfg.scene != nil {
			cfg.scene.SetClearColor(view.ClearColor())
		}
	})
	p.add(p.theme)

	for _, c := range p.byID {
		for _, h := range cfg.onUpdate {
			c.OnUpdate(h)
		}
	}
	return p
}

func (p *Panel) add(c Control) {
	p.byID[c.ID()] = c
}

// Speeds returns the speed sliders in planet order.
func (p *Panel) Speeds() []*Slider { return p.speeds }

// Size returns the global size slider.
func (p *Panel) Size() *Slider { return p.size }

// Pause returns the pause button.
func (p *Panel) Pause() *Button { return p.pause }

// Theme returns the theme button.
func (p *Panel) Theme() *Button { return p.theme }

// Control looks up a control by identifier.
func (p *Panel) Control(id string) (Control, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// SetSlider sets the slider with the given id.
//
// Parameters:
//   - id: the slider identifier
//   - v: the requested value
//
// Returns:
//   - error: if id does not name a slider
func (p *Panel) SetSlider(id string, v float64) error {
	s, ok := p.byID[id].(*Slider)
	if !ok {
		return fmt.Errorf("no slider %q", id)
	}
	s.Set(v)
	return nil
}

// PressButton presses the button with the given id.
//
// Parameters:
//   - id: the button identifier
//
// Returns:
//   - error: if id does not name a button
func (p *Panel) PressButton(id string) error {
	b, ok := p.byID[id].(*Button)
	if !ok {
		return fmt.Errorf("no button %q", id)
	}
	b.Press()
	return nil
}

// Snapshot returns the state of every control in display order: speeds, size, pause, theme.
func (p *Panel) Snapshot() []ControlState {
	out := make([]ControlState, 0, len(p.speeds)+3)
	for _, s := range p.speeds {
		out = append(out, s.State())
	}
	return append(out, p.size.State(), p.pause.State(), p.theme.State())
}
