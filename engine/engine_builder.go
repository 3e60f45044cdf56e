package engine

import (
	"github.com/Carmen-Shannon/oxy-orrery/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables per-frame profiling.
//
// Parameters:
//   - enabled: true to profile every frame
//
// Returns:
//   - EngineBuilderOption: the option
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		if enabled && e.profiler == nil {
			e.profiler = profiler.NewProfiler()
		}
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfiler supplies the profiler used when profiling is enabled.
// Apply before WithProfiling to avoid creating a default one.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: the option
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window whose message loop Run drives.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - EngineBuilderOption: the option
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the scene renderer used by Render.
//
// Parameters:
//   - r: the scene renderer
//
// Returns:
//   - EngineBuilderOption: the option
func WithRenderer(r renderer.SceneRenderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithScene registers a scene under key.
//
// Parameters:
//   - key: the scene key
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: the option
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithFrameCallback sets the per-frame callback.
//
// Parameters:
//   - callback: function receiving the seconds since the previous frame
//
// Returns:
//   - EngineBuilderOption: the option
func WithFrameCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.frameCallback = callback
	}
}

// WithRenderFrameLimit caps the frame rate. Zero or negative leaves it uncapped.
//
// Parameters:
//   - fps: the maximum frames per second
//
// Returns:
//   - EngineBuilderOption: the option
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}
