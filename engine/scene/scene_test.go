package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/engine/game_object"
	"github.com/Carmen-Shannon/oxy-orrery/engine/light"
)

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene("main")

	if !s.Active() {
		t.Fatal("new scene should be active")
	}
	if s.Camera() == nil || s.Camera().Controller() == nil {
		t.Fatal("new scene should carry a camera with a controller")
	}
	if got := s.ClearColor(); got != [4]float64{0, 0, 0, 1} {
		t.Fatalf("clear color = %v, want opaque black", got)
	}
	if s.Count() != 0 {
		t.Fatalf("count = %d, want 0", s.Count())
	}
}

func TestAddAndWalk(t *testing.T) {
	group := game_object.NewGameObject(game_object.WithName("group"))
	child := game_object.NewGameObject(game_object.WithName("child"))
	hidden := game_object.NewGameObject(game_object.WithName("hidden"), game_object.WithEnabled(false))
	group.AddChild(child)

	s := NewScene("main", WithObjects(group))
	s.Add(hidden, nil)

	if s.Count() != 3 {
		t.Fatalf("count = %d, want 3", s.Count())
	}

	var visited []string
	s.Walk(func(n game_object.GameObject) {
		visited = append(visited, n.Name())
	})
	want := []string{"main-root", "group", "child"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited = %v, want %v", visited, want)
		}
	}
}

func TestLights(t *testing.T) {
	ambient := light.NewLight(light.LightTypeAmbient, light.WithIntensity(0.3))
	point := light.NewLight(light.LightTypePoint)

	s := NewScene("main", WithLights(ambient))
	s.AddLight(point)
	s.AddLight(nil)

	if got := len(s.Lights()); got != 2 {
		t.Fatalf("lights = %d, want 2", got)
	}

	s.RemoveLight(ambient)
	lights := s.Lights()
	if len(lights) != 1 || lights[0] != point {
		t.Fatalf("lights after remove = %v", lights)
	}

	lights[0] = nil
	if s.Lights()[0] == nil {
		t.Fatal("Lights should return a copy")
	}
}

func TestSetClearColor(t *testing.T) {
	s := NewScene("main", WithClearColor([4]float64{1, 1, 1, 1}))
	s.SetClearColor([4]float64{0.1, 0.2, 0.3, 1})
	if got := s.ClearColor(); got != [4]float64{0.1, 0.2, 0.3, 1} {
		t.Fatalf("clear color = %v", got)
	}
}
