package input

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/engine/window"
	"github.com/Carmen-Shannon/oxy-orrery/internal/controls"
	"github.com/Carmen-Shannon/oxy-orrery/internal/registry"
	"github.com/Carmen-Shannon/oxy-orrery/internal/state"
	"github.com/Carmen-Shannon/oxy-orrery/internal/world"
)

// queue collects posted tasks so tests can check nothing runs inline.
type queue struct {
	tasks []func()
}

func (q *queue) Post(task func()) bool {
	q.tasks = append(q.tasks, task)
	return true
}

func (q *queue) drain() {
	tasks := q.tasks
	q.tasks = nil
	for _, task := range tasks {
		task()
	}
}

type fixture struct {
	q      *queue
	speeds *state.OrbitalSpeedTable
	view   *state.GlobalViewState
	sc     scene.Scene
	ctrl   camera.CameraController
	quits  int
	b      *Bindings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		q:      &queue{},
		speeds: state.NewOrbitalSpeedTable(registry.PlanetNames()),
		view:   state.NewGlobalViewState(),
		sc:     scene.NewScene("main"),
		ctrl:   camera.NewCameraController(camera.WithRadius(400)),
	}
	w := world.BuildWorld(f.sc, rand.New(rand.NewSource(1)), nil)
	panel := controls.BindControls(w, f.speeds, f.view, controls.WithScene(f.sc))
	f.b = NewBindings(f.q, panel, WithCamera(f.ctrl), WithQuit(func() { f.quits++ }))
	return f
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		name  string
		keys  []uint32
		check func(f *fixture) bool
	}{
		{"P pauses", []uint32{common.KeyP}, func(f *fixture) bool { return f.view.Paused() }},
		{"space toggles twice", []uint32{common.KeySpace, common.KeySpace}, func(f *fixture) bool { return !f.view.Paused() }},
		{"T switches theme", []uint32{common.KeyT}, func(f *fixture) bool {
			return f.view.LightTheme() && f.sc.ClearColor() == state.LightClearColor
		}},
		{"plus grows", []uint32{common.KeyEqual, common.KeyKPAdd}, func(f *fixture) bool { return near(f.view.Scale(), 1.2) }},
		{"minus shrinks", []uint32{common.KeyMinus}, func(f *fixture) bool { return near(f.view.Scale(), 0.9) }},
		{"up speeds Earth", []uint32{common.KeyUp}, func(f *fixture) bool { return near(f.speeds.Speed("Earth"), 0.011) }},
		{"select Jupiter then down", []uint32{common.Key5, common.KeyDown, common.KeyDown}, func(f *fixture) bool {
			return near(f.speeds.Speed("Jupiter"), 0.008) && near(f.speeds.Speed("Earth"), state.DefaultSpeed)
		}},
		{"esc quits", []uint32{common.KeyEsc}, func(f *fixture) bool { return f.quits == 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			for _, k := range tt.keys {
				f.b.KeyDown(k)
			}
			f.q.drain()
			if !tt.check(f) {
				t.Fatalf("keys %v had no effect", tt.keys)
			}
		})
	}
}

func TestActionsArePosted(t *testing.T) {
	f := newFixture(t)
	f.b.KeyDown(common.KeyP)
	if f.view.Paused() {
		t.Fatal("pause applied before the frame goroutine ran it")
	}
	if len(f.q.tasks) != 1 {
		t.Fatalf("posted tasks = %d, want 1", len(f.q.tasks))
	}
}

func TestSelectOutOfRangeIgnored(t *testing.T) {
	f := newFixture(t)
	f.b.KeyDown(common.Key8)
	if f.b.Selected() != 7 {
		t.Fatalf("selected = %d, want 7", f.b.Selected())
	}
	f.b.KeyDown(0)
	if f.b.Selected() != 7 || len(f.q.tasks) != 0 {
		t.Fatal("unbound key should do nothing")
	}
}

func TestCameraBindings(t *testing.T) {
	f := newFixture(t)

	az := f.ctrl.Azimuth()
	f.b.KeyDown(common.KeyLeft)
	f.q.drain()
	if f.ctrl.Azimuth() == az {
		t.Fatal("left arrow should orbit the camera")
	}

	r := f.ctrl.Radius()
	f.b.Scroll(5)
	f.q.drain()
	if f.ctrl.Radius() >= r {
		t.Fatalf("scroll should zoom in: %f -> %f", r, f.ctrl.Radius())
	}

	az = f.ctrl.Azimuth()
	f.b.MouseMove(10, 10)
	f.b.MouseDown(window.MouseButtonLeft, 0, 0)
	f.b.MouseMove(40, 0)
	if len(f.q.tasks) != 0 {
		t.Fatal("moving without a middle drag should not orbit")
	}

	f.b.MouseDown(window.MouseButtonMiddle, 0, 0)
	f.b.MouseMove(40, 0)
	f.b.MouseUp(window.MouseButtonMiddle, 40, 0)
	f.b.MouseMove(80, 0)
	if len(f.q.tasks) != 1 {
		t.Fatalf("posted = %d, want one drag step", len(f.q.tasks))
	}
	f.q.drain()
	if f.ctrl.Azimuth() == az {
		t.Fatal("middle drag should orbit the camera")
	}
}
