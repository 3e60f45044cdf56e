package registry

import (
	"math"
	"testing"
)

func TestPlanetsOrderAndScaling(t *testing.T) {
	tests := []struct {
		name     string
		size     float32
		distance float32
		texture  string
	}{
		{"Mercury", 1.52, 40, "2k_mercury.jpg"},
		{"Venus", 3.8, 60, "2k_venus.jpg"},
		{"Earth", 4, 80, "2k_earth.jpg"},
		{"Mars", 2.12, 100, "2k_mars.jpg"},
		{"Jupiter", 44.8, 128, "2k_jupiter.jpg"},
		{"Saturn", 37.6, 160, "2k_saturn.jpg"},
		{"Uranus", 16, 192, "2k_uranus.jpg"},
		{"Neptune", 15.2, 220, "2k_neptune.jpg"},
	}

	got := Planets()
	if len(got) != len(tests) {
		t.Fatalf("planet count = %d, want %d", len(got), len(tests))
	}
	for i, tt := range tests {
		p := got[i]
		if p.Name != tt.name {
			t.Fatalf("planet %d = %s, want %s", i, p.Name, tt.name)
		}
		if math.Abs(float64(p.Size()-tt.size)) > 1e-4 {
			t.Errorf("%s size = %f, want %f", p.Name, p.Size(), tt.size)
		}
		if math.Abs(float64(p.Distance()-tt.distance)) > 1e-4 {
			t.Errorf("%s distance = %f, want %f", p.Name, p.Distance(), tt.distance)
		}
		if p.TextureRef != tt.texture {
			t.Errorf("%s texture = %s, want %s", p.Name, p.TextureRef, tt.texture)
		}
	}
}

func TestPlanetsReturnsCopy(t *testing.T) {
	a := Planets()
	a[0].Name = "Vulcan"
	if Planets()[0].Name != "Mercury" {
		t.Fatal("Planets should return a copy")
	}
}

func TestSun(t *testing.T) {
	s := Sun()
	if s.Size() != 20 || s.Distance() != 0 || s.TextureRef != "2k_sun.jpg" {
		t.Fatalf("sun = %+v", s)
	}
}

func TestPlanetLookup(t *testing.T) {
	if p, ok := Planet(RingedPlanet); !ok || p.BaseSize != 9.4 {
		t.Fatalf("Planet(%q) = %+v, %v", RingedPlanet, p, ok)
	}
	if _, ok := Planet("Pluto"); ok {
		t.Fatal("Pluto should not be registered")
	}
	if names := PlanetNames(); len(names) != 8 || names[2] != "Earth" {
		t.Fatalf("names = %v", names)
	}
}
