package scene

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/game_object"
	"github.com/Carmen-Shannon/oxy-orrery/engine/light"
)

// Scene holds a scene graph root, the camera viewing it, the lights that shade it
// and the clear color behind it. The renderer walks Root every frame.
// Scenes can be hot-swapped via the Active flag to switch between different views.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Root returns the top-level node. Everything added to the scene hangs off it.
	//
	// Returns:
	//   - game_object.GameObject: the root node
	Root() game_object.GameObject

	// Add attaches objects directly under the root node.
	//
	// Parameters:
	//   - objs: the objects to attach
	Add(objs ...game_object.GameObject)

	// Count returns the number of nodes reachable from the root, including disabled ones.
	//
	// Returns:
	//   - int: node count, excluding the root itself
	Count() int

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// AddLight adds a light source to the scene.
	//
	// Parameters:
	//   - l: the Light to add
	AddLight(l light.Light)

	// RemoveLight removes a light source from the scene by reference.
	//
	// Parameters:
	//   - l: the Light to remove
	RemoveLight(l light.Light)

	// Lights returns all lights currently registered in the scene.
	//
	// Returns:
	//   - []light.Light: a copy of the scene's light list
	Lights() []light.Light

	// ClearColor returns the background color as linear RGBA.
	//
	// Returns:
	//   - [4]float64: the clear color
	ClearColor() [4]float64

	// SetClearColor sets the background color.
	//
	// Parameters:
	//   - color: linear RGBA
	SetClearColor(color [4]float64)

	// Walk visits every enabled node under the root depth-first, parents first.
	//
	// Parameters:
	//   - fn: visitor
	Walk(fn func(game_object.GameObject))
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active atomic.Bool

	root   game_object.GameObject
	cam    camera.Camera
	lights []light.Light

	clearColor [4]float64
}

var _ Scene = &scene{}

// NewScene creates an empty, active scene with a black background and a default camera.
//
// Parameters:
//   - name: the scene identifier
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:         &sync.RWMutex{},
		name:       name,
		root:       game_object.NewGameObject(game_object.WithName(name + "-root")),
		clearColor: [4]float64{0, 0, 0, 1},
	}
	s.active.Store(true)

	for _, option := range options {
		option(s)
	}

	if s.cam == nil {
		s.cam = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Active() bool {
	return s.active.Load()
}

func (s *scene) SetActive(active bool) {
	s.active.Store(active)
}

func (s *scene) Root() game_object.GameObject {
	return s.root
}

func (s *scene) Add(objs ...game_object.GameObject) {
	for _, obj := range objs {
		if obj != nil {
			s.root.AddChild(obj)
		}
	}
}

func (s *scene) Count() int {
	var count func(game_object.GameObject) int
	count = func(n game_object.GameObject) int {
		total := 0
		for _, c := range n.Children() {
			total += 1 + count(c)
		}
		return total
	}
	return count(s.root)
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) AddLight(l light.Light) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.lights {
		if existing == l {
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return
		}
	}
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *scene) ClearColor() [4]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clearColor
}

func (s *scene) SetClearColor(color [4]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearColor = color
}

func (s *scene) Walk(fn func(game_object.GameObject)) {
	s.root.Walk(fn)
}
