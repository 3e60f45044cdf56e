package engine

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
)

// failingRenderer is a SceneRenderer whose Render returns err.
type failingRenderer struct {
	err     atomic.Pointer[error]
	renders atomic.Int32
}

func newFailingRenderer(err error) *failingRenderer {
	f := &failingRenderer{}
	f.setErr(err)
	return f
}

func (f *failingRenderer) setErr(err error) { f.err.Store(&err) }

func (f *failingRenderer) Renderer() renderer.Renderer { return nil }

func (f *failingRenderer) Render(...scene.Scene) error {
	f.renders.Add(1)
	return *f.err.Load()
}

func (f *failingRenderer) Resize(int, int, ...scene.Scene) {}

func (f *failingRenderer) Culled() int { return 0 }

func (f *failingRenderer) Release() {}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestPostRunsBeforeFrameCallback(t *testing.T) {
	var order []string
	e := NewEngine(WithFrameCallback(func(float32) {
		order = append(order, "frame")
	})).(*engine)

	e.Post(func() { order = append(order, "a") })
	e.Post(func() { order = append(order, "b") })
	e.frame(0.016)

	want := []string{"a", "b", "frame"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTasksPostedWhileDrainingWaitForNextFrame(t *testing.T) {
	e := NewEngine(WithFrameCallback(func(float32) {})).(*engine)

	ran := 0
	e.Post(func() {
		ran++
		e.Post(func() { ran++ })
	})

	e.frame(0)
	if ran != 1 {
		t.Fatalf("ran = %d after first frame, want 1", ran)
	}
	e.frame(0)
	if ran != 2 {
		t.Fatalf("ran = %d after second frame, want 2", ran)
	}
}

func TestPostAfterQuit(t *testing.T) {
	e := NewEngine()
	if e.Post(nil) {
		t.Fatal("nil task should be rejected")
	}
	e.Quit()
	e.Quit()
	if e.Post(func() {}) {
		t.Fatal("Post after Quit should report false")
	}
	select {
	case <-e.Done():
	default:
		t.Fatal("Done should be closed after Quit")
	}
}

func TestRunHeadlessUntilQuit(t *testing.T) {
	var frames atomic.Int32
	e := NewEngine(WithRenderFrameLimit(500))
	e.SetFrameCallback(func(float32) {
		if frames.Add(1) == 3 {
			e.Quit()
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
	if frames.Load() < 3 {
		t.Fatalf("frames = %d, want at least 3", frames.Load())
	}
}

func TestFramePanicQuits(t *testing.T) {
	e := NewEngine(WithFrameCallback(func(float32) { panic("boom") }))

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("a panicking frame should stop the engine")
	}
}

func TestScenesSortedByKey(t *testing.T) {
	hud := scene.NewScene("hud")
	main := scene.NewScene("main")
	hidden := scene.NewScene("hidden", scene.WithActive(false))

	e := NewEngine(WithScene(2, hud), WithScene(1, main)).(*engine)
	e.AddScene(3, hidden)

	active := e.sortedScenes(true)
	if len(active) != 2 || active[0] != main || active[1] != hud {
		t.Fatalf("active scenes out of order: %v", active)
	}
	if all := e.sortedScenes(false); len(all) != 3 {
		t.Fatalf("all scenes = %d, want 3", len(all))
	}

	cp := e.Scenes()
	delete(cp, 1)
	if e.Scene(1) != main {
		t.Fatal("Scenes should return a copy")
	}
	e.RemoveScene(3)
	if e.Scene(3) != nil {
		t.Fatal("scene 3 should be removed")
	}
}

func TestFrameDuration(t *testing.T) {
	if frameDuration(0) != 0 || frameDuration(-5) != 0 {
		t.Fatal("non-positive fps should be uncapped")
	}
	if got := frameDuration(60); got < 16*time.Millisecond || got > 17*time.Millisecond {
		t.Fatalf("frameDuration(60) = %v", got)
	}
}

func TestRenderErrorsAreThrottled(t *testing.T) {
	buf := captureLog(t)
	acquire := errors.New("surface texture unavailable")
	fr := newFailingRenderer(acquire)
	e := NewEngine(WithRenderer(fr)).(*engine)

	for range 500 {
		e.Render()
	}
	if got := strings.Count(buf.String(), "frame skipped"); got != 1 {
		t.Fatalf("logged %d skip lines for one repeated error, want 1", got)
	}
	if e.skippedFrames != 500 || !e.renderFailed {
		t.Fatalf("skippedFrames = %d, renderFailed = %v", e.skippedFrames, e.renderFailed)
	}

	fr.setErr(errors.New("device lost"))
	e.Render()
	if got := strings.Count(buf.String(), "frame skipped"); got != 2 {
		t.Fatalf("a new error should be logged, got %d skip lines", got)
	}

	fr.setErr(nil)
	e.Render()
	if e.renderFailed || e.skippedFrames != 0 {
		t.Fatalf("after success: skippedFrames = %d, renderFailed = %v", e.skippedFrames, e.renderFailed)
	}
	if !strings.Contains(buf.String(), "rendering resumed after 501 skipped frames") {
		t.Fatalf("missing resume line in %q", buf.String())
	}
}

func TestFailingFramesBackOff(t *testing.T) {
	captureLog(t)
	fr := newFailingRenderer(errors.New("surface texture unavailable"))
	e := NewEngine(WithRenderer(fr))

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	time.Sleep(200 * time.Millisecond)
	e.Quit()
	<-done

	// 200ms at one frame per failedFrameBackoff is about 13 frames.
	if n := fr.renders.Load(); n == 0 || n > 40 {
		t.Fatalf("renders = %d in 200ms, want a backed-off rate", n)
	}
}
