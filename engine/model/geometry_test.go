package model

import (
	"encoding/binary"
	"math"
	"testing"
)

const epsilon = 1e-5

func TestNewSphereCounts(t *testing.T) {
	s := NewSphere("sphere", 20, 32, 32)

	if got, want := len(s.Vertices()), 33*33; got != want {
		t.Fatalf("vertex count = %d, want %d", got, want)
	}
	if got, want := len(s.Indices()), 32*31*2*3; got != want {
		t.Fatalf("index count = %d, want %d", got, want)
	}
	if s.Topology() != TopologyTriangles {
		t.Fatalf("topology = %v, want triangles", s.Topology())
	}
	for _, idx := range s.Indices() {
		if int(idx) >= len(s.Vertices()) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestNewSphereVerticesOnSurface(t *testing.T) {
	const radius = 7.5
	s := NewSphere("sphere", radius, 16, 12)

	for i, v := range s.Vertices() {
		p := v.Position
		r := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		if math.Abs(r-radius) > 1e-4 {
			t.Fatalf("vertex %d at distance %f, want %f", i, r, radius)
		}
		n := v.Normal
		if math.Abs(float64(n[0]*radius-p[0])) > 1e-4 || math.Abs(float64(n[1]*radius-p[1])) > 1e-4 {
			t.Fatalf("vertex %d normal %v does not point along position %v", i, n, p)
		}
	}

	top := s.Vertices()[0]
	if math.Abs(float64(top.Position[1]-radius)) > epsilon || top.TexCoord[1] != 0 {
		t.Fatalf("first row should be the north pole with v = 0, got %v", top)
	}
}

func TestNewSphereClampsSegments(t *testing.T) {
	s := NewSphere("tiny", 1, 1, 1)
	if got, want := len(s.Vertices()), 4*3; got != want {
		t.Fatalf("vertex count = %d, want %d", got, want)
	}
}

func TestNewRingRadii(t *testing.T) {
	const size = 37.6
	inner, outer := float32(size*1.2), float32(size*2)
	r := NewRing("ring", inner, outer, 32)

	if got, want := len(r.Vertices()), 66; got != want {
		t.Fatalf("vertex count = %d, want %d", got, want)
	}
	if got, want := len(r.Indices()), 192; got != want {
		t.Fatalf("index count = %d, want %d", got, want)
	}

	for i, v := range r.Vertices() {
		p := v.Position
		if p[2] != 0 {
			t.Fatalf("vertex %d leaves the XY plane: %v", i, p)
		}
		d := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1])))
		want := inner
		if i > 32 {
			want = outer
		}
		if math.Abs(float64(d-want)) > 1e-3 {
			t.Fatalf("vertex %d radius = %f, want %f", i, d, want)
		}
		if v.TexCoord[0] < 0 || v.TexCoord[0] > 1 || v.TexCoord[1] < 0 || v.TexCoord[1] > 1 {
			t.Fatalf("vertex %d uv out of range: %v", i, v.TexCoord)
		}
	}
}

func TestNewPointsSequentialIndices(t *testing.T) {
	pts := [][3]float32{{1, 2, 3}, {4, 5, 6}, {-1, 0, 1}}
	m := NewPoints("stars", pts)

	if m.Topology() != TopologyPoints {
		t.Fatalf("topology = %v, want points", m.Topology())
	}
	for i, idx := range m.Indices() {
		if idx != uint32(i) {
			t.Fatalf("index %d = %d", i, idx)
		}
		if m.Vertices()[i].Position != pts[i] {
			t.Fatalf("vertex %d = %v, want %v", i, m.Vertices()[i].Position, pts[i])
		}
	}
}

func TestModelSerialization(t *testing.T) {
	m := NewModel("quad",
		WithVertices([]GPUVertex{
			{Position: [3]float32{1, 2, 3}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0.25, 0.75}},
		}),
		WithIndices([]uint32{0, 0, 0}),
	)

	vd := m.VertexData()
	if len(vd) != 32 {
		t.Fatalf("vertex data length = %d, want 32", len(vd))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(vd[4:])); got != 2 {
		t.Fatalf("position.y = %f, want 2", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(vd[28:])); got != 0.75 {
		t.Fatalf("texcoord.v = %f, want 0.75", got)
	}
	if got := len(m.IndexData()); got != 12 {
		t.Fatalf("index data length = %d, want 12", got)
	}
}

func TestBoundingRadius(t *testing.T) {
	tests := []struct {
		name string
		m    Model
		want float32
	}{
		{"sphere", NewSphere("s", 7, 16, 16), 7},
		{"ring", NewRing("r", 2, 5, 12), 5},
		{"points", NewPoints("p", [][3]float32{{3, 4, 0}, {1, 0, 0}}), 5},
		{"empty", NewModel("e"), 0},
	}
	for _, tt := range tests {
		if got := tt.m.BoundingRadius(); math.Abs(float64(got-tt.want)) > 1e-4 {
			t.Fatalf("%s: radius = %f, want %f", tt.name, got, tt.want)
		}
	}
}
