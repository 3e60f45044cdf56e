package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
)

func TestPipelineKey(t *testing.T) {
	tests := []struct {
		name string
		mat  Material
		want string
	}{
		{"basic", NewBasic(), PipelineBasic},
		{"standard", NewStandard(), PipelineStandard},
		{"points", NewPoints(WithTransparent(true)), PipelinePoints},
		{"transparent basic", NewBasic(WithTransparent(true), WithDoubleSided(true)), PipelineTransparent},
		{"double sided standard", NewStandard(WithDoubleSided(true)), PipelineTransparent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.mat.PipelineKey(); got != tc.want {
				t.Fatalf("PipelineKey() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	m := NewStandard(WithName("earth"))
	if m.Color() != [4]float32{1, 1, 1, 1} {
		t.Fatalf("default color = %v, want white", m.Color())
	}
	if m.Texture() != nil || m.Transparent() || m.DoubleSided() {
		t.Fatalf("unexpected defaults: texture=%v transparent=%v doubleSided=%v", m.Texture(), m.Transparent(), m.DoubleSided())
	}
	tex := common.NewTexture("2k_earth.jpg", "missing")
	m.SetTexture(tex)
	if m.Texture() != tex {
		t.Fatalf("SetTexture did not replace the texture")
	}
}

func TestParamsMarshal(t *testing.T) {
	m := NewStandard(WithColor([4]float32{0.5, 0.25, 1, 1}))
	p := Params(m, true)
	buf := p.Marshal()

	if len(buf) != 32 {
		t.Fatalf("len = %d, want 32", len(buf))
	}
	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if read(4) != 0.25 || read(16) != 1 || read(20) != 1 {
		t.Fatalf("unexpected params: g=%f useTexture=%f lit=%f", read(4), read(16), read(20))
	}

	unlit := Params(NewBasic(), false)
	if unlit.UseTexture != 0 || unlit.Lit != 0 {
		t.Fatalf("basic material without texture = %+v", unlit)
	}
}
