package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/light"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/internal/registry"
)

const epsilon = 1e-3

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

type recordingSource struct {
	requested []string
}

func (r *recordingSource) Load(name string) *common.Texture {
	r.requested = append(r.requested, name)
	return common.NewTexture(name, "textures/"+name)
}

func build(t *testing.T) (scene.Scene, *World, *recordingSource) {
	t.Helper()
	sc := scene.NewScene("main")
	src := &recordingSource{}
	return sc, BuildWorld(sc, rand.New(rand.NewSource(1)), src), src
}

func TestBuildWorldCounts(t *testing.T) {
	sc, w, _ := build(t)

	if got := len(w.Planets()); got != 8 {
		t.Fatalf("planets = %d, want 8", got)
	}
	if got := len(w.Stars().Model().Vertices()); got != StarCount {
		t.Fatalf("stars = %d, want %d", got, StarCount)
	}

	rings := 0
	for _, p := range w.Planets() {
		if p.Ring == nil {
			continue
		}
		rings++
		if p.Name != registry.RingedPlanet {
			t.Fatalf("ring attached to %s", p.Name)
		}
		if p.Ring.Parent() != p.Node {
			t.Fatal("ring should be a child of its planet node")
		}
	}
	if rings != 1 {
		t.Fatalf("rings = %d, want 1", rings)
	}

	if w.Stars().Parent() == w.Root() {
		t.Fatal("stars must live outside the scalable group")
	}
	if w.Root().Parent() != sc.Root() {
		t.Fatal("root group should hang off the scene root")
	}
	if w.Sun().Parent() != w.Root() {
		t.Fatal("sun should be a child of the root group")
	}
}

func TestBuildWorldMaterials(t *testing.T) {
	_, w, src := build(t)

	if w.Sun().Material().Kind() != material.KindBasic {
		t.Fatal("sun should be unlit")
	}
	for _, p := range w.Planets() {
		if p.Node.Material().Kind() != material.KindStandard {
			t.Fatalf("%s should be lit", p.Name)
		}
	}
	saturn, _ := w.PlanetByName(registry.RingedPlanet)
	ring := saturn.Ring.Material()
	if !ring.Transparent() || !ring.DoubleSided() || ring.PipelineKey() != material.PipelineTransparent {
		t.Fatal("ring should be transparent and double-sided")
	}
	if w.Stars().Material().PipelineKey() != material.PipelinePoints {
		t.Fatal("stars should draw as points")
	}

	// sun + 8 planets + ring
	if len(src.requested) != 10 {
		t.Fatalf("textures requested = %v", src.requested)
	}
}

func TestRingRadii(t *testing.T) {
	_, w, _ := build(t)
	saturn, ok := w.PlanetByName("Saturn")
	if !ok {
		t.Fatal("Saturn missing")
	}
	desc, _ := registry.Planet("Saturn")
	size := float64(desc.Size())

	minR, maxR := math.Inf(1), 0.0
	for _, v := range saturn.Ring.Model().Vertices() {
		r := math.Hypot(float64(v.Position[0]), float64(v.Position[1]))
		minR = math.Min(minR, r)
		maxR = math.Max(maxR, r)
	}
	if !near(minR, size*RingInnerFactor) || !near(maxR, size*RingOuterFactor) {
		t.Fatalf("ring radii = [%f, %f], want [%f, %f]", minR, maxR, size*1.2, size*2)
	}

	rx, _, _ := saturn.Ring.Rotation()
	if !near(float64(rx), math.Pi/2) {
		t.Fatalf("ring tilt = %f, want pi/2", rx)
	}
}

func TestInitialPositionsFollowAngle(t *testing.T) {
	_, w, _ := build(t)
	for _, p := range w.Planets() {
		if p.Angle < 0 || p.Angle >= 2*math.Pi {
			t.Fatalf("%s angle %f out of [0, 2pi)", p.Name, p.Angle)
		}
		desc, _ := registry.Planet(p.Name)
		if !near(p.Distance, float64(desc.Distance())) {
			t.Fatalf("%s distance = %f", p.Name, p.Distance)
		}
		x, y, z := p.Node.Position()
		if !near(float64(x), p.Distance*math.Cos(p.Angle)) || y != 0 || !near(float64(z), p.Distance*math.Sin(p.Angle)) {
			t.Fatalf("%s at (%f, %f, %f), angle %f", p.Name, x, y, z, p.Angle)
		}
	}
}

func TestStarsWithinField(t *testing.T) {
	_, w, _ := build(t)
	half := float32(StarFieldSize / 2)
	for _, v := range w.Stars().Model().Vertices() {
		for _, c := range v.Position {
			if c < -half || c > half {
				t.Fatalf("star at %v outside the field", v.Position)
			}
		}
	}
}

func TestSetScaleLeavesStars(t *testing.T) {
	_, w, _ := build(t)
	before := w.Stars().WorldPosition()

	w.SetScale(2.5)

	sx, sy, sz := w.Root().Scale()
	if sx != 2.5 || sy != 2.5 || sz != 2.5 {
		t.Fatalf("root scale = (%f, %f, %f)", sx, sy, sz)
	}
	if ssx, _, _ := w.Stars().Scale(); ssx != 1 {
		t.Fatal("stars should not scale")
	}
	if w.Stars().WorldPosition() != before {
		t.Fatal("stars moved")
	}
}

func TestLights(t *testing.T) {
	sc, _, _ := build(t)
	lights := sc.Lights()
	if len(lights) != 2 {
		t.Fatalf("lights = %d, want 2", len(lights))
	}
	if lights[0].Type() != light.LightTypeAmbient || !near(float64(lights[0].Intensity()), AmbientIntensity) {
		t.Fatal("first light should be the ambient light")
	}
	if lights[1].Type() != light.LightTypePoint || lights[1].Position() != [3]float32{} {
		t.Fatal("second light should be the point light at the origin")
	}
}

func TestBuildWorldWithoutTextures(t *testing.T) {
	sc := scene.NewScene("main")
	w := BuildWorld(sc, rand.New(rand.NewSource(2)), nil)
	if w.Sun().Material().Texture() != nil {
		t.Fatal("sun should be untextured")
	}
}
