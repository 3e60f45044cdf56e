// Package registry holds the static descriptors of the bodies drawn by the orrery.
package registry

import "strings"

// InitialScaleFactor multiplies every base size and distance so the scene fills the default view.
const InitialScaleFactor = 4

// RingedPlanet is the only planet that carries a ring.
const RingedPlanet = "Saturn"

// RingTexture is the texture of RingedPlanet's ring.
const RingTexture = "2k_saturn_ring.png"

// CelestialBodyDescriptor describes one body. BaseSize and BaseDistance are in scene units
// before InitialScaleFactor is applied. The sun has no distance.
type CelestialBodyDescriptor struct {
	Name         string
	BaseSize     float32
	TextureRef   string
	BaseDistance float32
}

// Size returns the scaled body radius.
func (d CelestialBodyDescriptor) Size() float32 {
	return d.BaseSize * InitialScaleFactor
}

// Distance returns the scaled orbital radius.
func (d CelestialBodyDescriptor) Distance() float32 {
	return d.BaseDistance * InitialScaleFactor
}

var sun = CelestialBodyDescriptor{Name: "Sun", BaseSize: 5, TextureRef: textureFor("Sun")}

var planets = []CelestialBodyDescriptor{
	{Name: "Mercury", BaseSize: 0.38, BaseDistance: 10},
	{Name: "Venus", BaseSize: 0.95, BaseDistance: 15},
	{Name: "Earth", BaseSize: 1, BaseDistance: 20},
	{Name: "Mars", BaseSize: 0.53, BaseDistance: 25},
	{Name: "Jupiter", BaseSize: 11.2, BaseDistance: 32},
	{Name: "Saturn", BaseSize: 9.4, BaseDistance: 40},
	{Name: "Uranus", BaseSize: 4, BaseDistance: 48},
	{Name: "Neptune", BaseSize: 3.8, BaseDistance: 55},
}

func init() {
	for i := range planets {
		planets[i].TextureRef = textureFor(planets[i].Name)
	}
}

func textureFor(name string) string {
	return "2k_" + strings.ToLower(name) + ".jpg"
}

// Sun returns the sun descriptor.
func Sun() CelestialBodyDescriptor {
	return sun
}

// Planets returns the planet descriptors ordered by distance from the sun.
// The slice is a copy.
func Planets() []CelestialBodyDescriptor {
	out := make([]CelestialBodyDescriptor, len(planets))
	copy(out, planets)
	return out
}

// PlanetNames returns the planet names in registry order.
func PlanetNames() []string {
	names := make([]string, len(planets))
	for i, p := range planets {
		names[i] = p.Name
	}
	return names
}

// Planet looks up a planet by name.
func Planet(name string) (CelestialBodyDescriptor, bool) {
	for _, p := range planets {
		if p.Name == name {
			return p, true
		}
	}
	return CelestialBodyDescriptor{}, false
}
