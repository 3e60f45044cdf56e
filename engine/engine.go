package engine

import (
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-orrery/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/engine/window"
)

const (
	// defaultTaskQueueSize bounds how many posted tasks may wait for the next frame.
	defaultTaskQueueSize = 256

	// failedFrameBackoff is the minimum frame duration while frames fail to render.
	// Without a present the swapchain no longer paces the loop.
	failedFrameBackoff = 16 * time.Millisecond

	// renderErrorLogInterval throttles repeats of the same render error.
	renderErrorLogInterval = time.Second
)

type engine struct {
	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // ensures quitChannel is only closed once

	// tasks carries work posted from other goroutines onto the frame goroutine
	tasks chan func()

	window   window.Window
	renderer renderer.SceneRenderer

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	frameCallback func(deltaTime float32)

	mu     *sync.Mutex
	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// render failure tracking, touched only by the frame goroutine
	renderFailed  bool
	skippedFrames int
	lastRenderErr string
	lastRenderLog time.Time
}

// Engine owns the frame goroutine. Each frame it runs every posted task, then the frame
// callback, then ticks the profiler. All scene and application state is meant to be
// mutated only from that goroutine: other goroutines hand work over with Post.
type Engine interface {
	// Window returns the engine's window, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window
	Window() window.Window

	// Renderer returns the scene renderer, or nil for a headless engine.
	//
	// Returns:
	//   - renderer.SceneRenderer: the scene renderer
	Renderer() renderer.SceneRenderer

	// EnableProfiler turns on per-frame profiling, creating a default profiler if none was given.
	EnableProfiler()

	// DisableProfiler turns off per-frame profiling.
	DisableProfiler()

	// SetFrameCallback sets the function run once per frame after posted tasks.
	// The callback is responsible for calling Render; without a callback the engine
	// renders every frame itself.
	//
	// Parameters:
	//   - callback: function receiving the seconds since the previous frame
	SetFrameCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit caps the frame rate. Zero or negative removes the cap.
	//
	// Parameters:
	//   - fps: the maximum frames per second
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene under key. Scenes render in ascending key order.
	//
	// Parameters:
	//   - key: the scene key
	//   - s: the scene
	AddScene(key int, s scene.Scene)

	// RemoveScene unregisters the scene under key.
	//
	// Parameters:
	//   - key: the scene key
	RemoveScene(key int)

	// Scene returns the scene under key, or nil.
	//
	// Parameters:
	//   - key: the scene key
	//
	// Returns:
	//   - scene.Scene: the scene or nil
	Scene(key int) scene.Scene

	// Scenes returns a copy of the registered scenes.
	//
	// Returns:
	//   - map[int]scene.Scene: key to scene
	Scenes() map[int]scene.Scene

	// Post queues task to run on the frame goroutine before the next frame callback.
	// Tasks run in the order they were posted. Post blocks while the queue is full.
	//
	// Parameters:
	//   - task: the work to run
	//
	// Returns:
	//   - bool: false if the engine has quit and the task was dropped
	Post(task func()) bool

	// Render draws the active scenes through the scene renderer. Call only from the frame goroutine.
	Render()

	// Run starts the frame goroutine and runs the window message loop on the calling thread.
	// Returns once the window closes or Quit is called.
	Run()

	// Quit stops the frame goroutine and asks the window to close.
	Quit()

	// Done is closed once the engine has quit.
	//
	// Returns:
	//   - <-chan struct{}: the quit channel
	Done() <-chan struct{}
}

var _ Engine = &engine{}

// NewEngine creates an Engine. With a window and a scene renderer, window resizes are
// posted to the frame goroutine and applied to the swapchain and every scene camera.
//
// Parameters:
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel: make(chan struct{}),
		tasks:       make(chan func(), defaultTaskQueueSize),
		mu:          &sync.Mutex{},
		scenes:      make(map[int]scene.Scene),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			e.Post(func() {
				if e.renderer != nil {
					e.renderer.Resize(width, height, e.sortedScenes(false)...)
				}
			})
		})
		e.window.SetCloseCallback(e.signalQuit)
		e.window.SetUpdateCallback(func() {
			select {
			case <-e.quitChannel:
				e.window.RequestClose()
			default:
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.SceneRenderer {
	return e.renderer
}

func (e *engine) Run() {
	e.running.Store(true)
	e.wg.Add(1)
	go e.handleFrames()

	if e.window != nil {
		e.window.ProcessMessages()
	} else {
		<-e.quitChannel
	}

	e.signalQuit()
	e.wg.Wait()
	e.running.Store(false)
}

func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Post(task func()) bool {
	if task == nil {
		return false
	}
	select {
	case <-e.quitChannel:
		return false
	default:
	}

	select {
	case e.tasks <- task:
		return true
	case <-e.quitChannel:
		return false
	}
}

// handleFrames is the frame goroutine.
func (e *engine) handleFrames() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastFrame := time.Now()
	for {
		select {
		case <-e.quitChannel:
			return
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		e.frame(dt)

		minFrame := e.renderFrameLimit
		if e.renderFailed && minFrame < failedFrameBackoff {
			minFrame = failedFrameBackoff
		}
		if minFrame > 0 {
			if remaining := minFrame - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

// frame runs one iteration of the frame goroutine.
func (e *engine) frame(dt float32) {
	e.drainTasks()

	if e.frameCallback != nil {
		e.frameCallback(dt)
	} else {
		e.Render()
	}

	if e.profilingEnabled.Load() && e.profiler != nil {
		e.profiler.Tick()
	}
}

// drainTasks runs the tasks queued before the call. Tasks posted while draining wait for the next frame.
func (e *engine) drainTasks() {
	for n := len(e.tasks); n > 0; n-- {
		task := <-e.tasks
		task()
	}
}

func (e *engine) Render() {
	if e.renderer == nil {
		return
	}
	err := e.renderer.Render(e.sortedScenes(true)...)
	e.renderFailed = err != nil
	if err == nil {
		if e.skippedFrames > 0 {
			log.Printf("[Engine] rendering resumed after %d skipped frames", e.skippedFrames)
			e.skippedFrames = 0
			e.lastRenderErr = ""
		}
		return
	}

	e.skippedFrames++
	now := time.Now()
	if msg := err.Error(); msg != e.lastRenderErr || now.Sub(e.lastRenderLog) >= renderErrorLogInterval {
		log.Printf("[Engine] frame skipped (%d so far): %v", e.skippedFrames, err)
		e.lastRenderErr = msg
		e.lastRenderLog = now
	}
}

func (e *engine) sortedScenes(activeOnly bool) []scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; !activeOnly || s.Active() {
			out = append(out, s)
		}
	}
	return out
}

func (e *engine) EnableProfiler() {
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()

	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
