package light

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestPackSumsAmbientAndTakesFirstPoint(t *testing.T) {
	lights := []Light{
		NewLight(LightTypeAmbient, WithHexColor(0xffffff), WithIntensity(0.3)),
		NewLight(LightTypeAmbient, WithColor(0, 0, 1), WithIntensity(0.1)),
		NewLight(LightTypePoint, WithPosition(1, 2, 3), WithIntensity(1)),
		NewLight(LightTypePoint, WithPosition(9, 9, 9), WithIntensity(5)),
	}

	g := Pack(lights)

	want := [3]float32{0.3, 0.3, 0.4}
	for i := range 3 {
		if math.Abs(float64(g.Ambient[i]-want[i])) > 1e-6 {
			t.Fatalf("ambient = %v, want %v", g.Ambient, want)
		}
	}
	if g.PointPosition != [3]float32{1, 2, 3} {
		t.Fatalf("point position = %v, want first point light", g.PointPosition)
	}
	if g.PointColor != [3]float32{1, 1, 1} {
		t.Fatalf("point color = %v, want white", g.PointColor)
	}
}

func TestPackSkipsDisabled(t *testing.T) {
	g := Pack([]Light{
		NewLight(LightTypePoint, WithEnabled(false), WithPosition(5, 5, 5)),
		NewLight(LightTypePoint, WithPosition(0, 1, 0), WithColor(1, 0, 0), WithIntensity(2)),
	})
	if g.PointPosition != [3]float32{0, 1, 0} || g.PointColor != [3]float32{2, 0, 0} {
		t.Fatalf("unexpected point light: %+v", g)
	}
}

func TestHexColor(t *testing.T) {
	l := NewLight(LightTypeAmbient, WithHexColor(0xff8000))
	c := l.Color()
	if c[0] != 1 || math.Abs(float64(c[1]-128.0/255)) > 1e-6 || c[2] != 0 {
		t.Fatalf("color = %v", c)
	}
}

func TestMarshalLayout(t *testing.T) {
	g := GPULighting{PointPosition: [3]float32{0, 0, 7}, PointColor: [3]float32{0, 0.5, 0}}
	buf := g.Marshal()
	if len(buf) != 48 {
		t.Fatalf("len = %d, want 48", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[24:])); got != 7 {
		t.Fatalf("point z = %f, want 7", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[36:])); got != 0.5 {
		t.Fatalf("point g = %f, want 0.5", got)
	}
}
