// Package world builds the orrery scene: the sun, the planets and Saturn's ring inside a
// scalable group, plus a starfield and the lights.
package world

import (
	"math"
	"math/rand"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/game_object"
	"github.com/Carmen-Shannon/oxy-orrery/engine/light"
	"github.com/Carmen-Shannon/oxy-orrery/engine/model"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/internal/registry"
)

// Geometry and lighting constants of the scene.
const (
	SphereSegments   = 32
	RingSegments     = 32
	RingInnerFactor  = 1.2
	RingOuterFactor  = 2.0
	StarCount        = 1000
	StarFieldSize    = 2000
	AmbientIntensity = 0.3
	PointIntensity   = 1.0
)

// TextureSource resolves a texture by file name. It may return a pending texture that
// fills in later, or nil when nothing can be loaded.
type TextureSource interface {
	Load(name string) *common.Texture
}

// PlanetInstance is the live state of one orbiting planet. Only the animation loop writes Angle.
type PlanetInstance struct {
	Name     string
	Angle    float64
	Distance float64
	Node     game_object.GameObject

	// Ring is the ring child of the ringed planet, nil for the others.
	Ring game_object.GameObject
}

// World is the built scene content.
type World struct {
	root    game_object.GameObject
	sun     game_object.GameObject
	stars   game_object.GameObject
	planets []*PlanetInstance
	byName  map[string]*PlanetInstance
}

// Root returns the group holding the sun and planets. Scaling it scales the whole system.
func (w *World) Root() game_object.GameObject { return w.root }

// Sun returns the sun node.
func (w *World) Sun() game_object.GameObject { return w.sun }

// Stars returns the starfield node.
func (w *World) Stars() game_object.GameObject { return w.stars }

// Planets returns the planets in registry order.
func (w *World) Planets() []*PlanetInstance { return w.planets }

// PlanetByName looks up a planet instance.
func (w *World) PlanetByName(name string) (*PlanetInstance, bool) {
	p, ok := w.byName[name]
	return p, ok
}

// SetScale scales the solar-system group uniformly. The starfield is not affected.
func (w *World) SetScale(k float64) {
	w.root.SetScale(float32(k), float32(k), float32(k))
}

// BuildWorld populates sc with the sun, planets, ring, starfield and lights.
// Initial planet angles and star positions are drawn from rng.
//
// Parameters:
//   - sc: the scene to populate
//   - rng: the random source
//   - textures: where textures come from; may be nil for an untextured world
//
// Returns:
//   - *World: the built world
func BuildWorld(sc scene.Scene, rng *rand.Rand, textures TextureSource) *World {
	load := func(name string) *common.Texture {
		if textures == nil {
			return nil
		}
		return textures.Load(name)
	}

	w := &World{
		root:   game_object.NewGameObject(game_object.WithName("solar-system")),
		byName: make(map[string]*PlanetInstance),
	}
	sc.Add(w.root)

	sunDesc := registry.Sun()
	w.sun = game_object.NewGameObject(
		game_object.WithName(sunDesc.Name),
		game_object.WithModel(model.NewSphere("sun", sunDesc.Size(), SphereSegments, SphereSegments)),
		game_object.WithMaterial(material.NewBasic(
			material.WithName(sunDesc.Name),
			material.WithTexture(load(sunDesc.TextureRef)),
		)),
	)
	w.root.AddChild(w.sun)

	for _, desc := range registry.Planets() {
		p := &PlanetInstance{
			Name:     desc.Name,
			Angle:    rng.Float64() * 2 * math.Pi,
			Distance: float64(desc.Distance()),
		}
		x, z := OrbitPosition(p.Angle, p.Distance)
		p.Node = game_object.NewGameObject(
			game_object.WithName(desc.Name),
			game_object.WithModel(model.NewSphere("planet:"+desc.Name, desc.Size(), SphereSegments, SphereSegments)),
			game_object.WithMaterial(material.NewStandard(
				material.WithName(desc.Name),
				material.WithTexture(load(desc.TextureRef)),
			)),
			game_object.WithPosition(x, 0, z),
		)
		w.root.AddChild(p.Node)

		if desc.Name == registry.RingedPlanet {
			p.Ring = newRing(desc.Size(), load(registry.RingTexture))
			p.Node.AddChild(p.Ring)
		}

		w.planets = append(w.planets, p)
		w.byName[p.Name] = p
	}

	w.stars = newStarField(rng)
	sc.Add(w.stars)

	sc.AddLight(light.NewLight(light.LightTypeAmbient,
		light.WithHexColor(0xffffff),
		light.WithIntensity(AmbientIntensity),
	))
	sc.AddLight(light.NewLight(light.LightTypePoint,
		light.WithHexColor(0xffffff),
		light.WithIntensity(PointIntensity),
		light.WithPosition(0, 0, 0),
	))

	return w
}

// OrbitPosition returns the x and z coordinates of a circular orbit at angle and distance.
func OrbitPosition(angle, distance float64) (x, z float32) {
	sin, cos := math.Sincos(angle)
	return float32(cos * distance), float32(sin * distance)
}

func newRing(planetSize float32, tex *common.Texture) game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithName(registry.RingedPlanet+" ring"),
		game_object.WithModel(model.NewRing("ring:"+registry.RingedPlanet,
			planetSize*RingInnerFactor, planetSize*RingOuterFactor, RingSegments)),
		game_object.WithMaterial(material.NewBasic(
			material.WithName(registry.RingedPlanet+" ring"),
			material.WithTexture(tex),
			material.WithTransparent(true),
			material.WithDoubleSided(true),
		)),
		// the ring is built in XY; tip it into the planet's equatorial plane
		game_object.WithRotation(math.Pi/2, 0, 0),
	)
}

func newStarField(rng *rand.Rand) game_object.GameObject {
	positions := make([][3]float32, StarCount)
	for i := range positions {
		for j := range 3 {
			positions[i][j] = float32((rng.Float64() - 0.5) * StarFieldSize)
		}
	}
	return game_object.NewGameObject(
		game_object.WithName("stars"),
		game_object.WithModel(model.NewPoints("stars", positions)),
		game_object.WithMaterial(material.NewPoints(
			material.WithName("stars"),
			material.WithColor([4]float32{1, 1, 1, 1}),
		)),
	)
}
