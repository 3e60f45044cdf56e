package common

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestMul4Identity(t *testing.T) {
	m := ModelMatrix([3]float32{1, 2, 3}, [3]float32{0.3, 0.2, 0.1}, [3]float32{2, 2, 2})
	got := Mul4(Identity(), m)
	if got != m {
		t.Fatalf("I*m = %v, want %v", got, m)
	}
}

func TestModelMatrixTranslateScale(t *testing.T) {
	m := ModelMatrix([3]float32{10, 0, -5}, [3]float32{}, [3]float32{3, 3, 3})
	p := TransformPoint(m, [3]float32{1, 1, 1})
	if !approx(p[0], 13) || !approx(p[1], 3) || !approx(p[2], -2) {
		t.Fatalf("transformed point = %v", p)
	}
}

func TestModelMatrixRotationY(t *testing.T) {
	m := ModelMatrix([3]float32{}, [3]float32{0, math.Pi / 2, 0}, [3]float32{1, 1, 1})
	p := TransformPoint(m, [3]float32{1, 0, 0})
	// right-handed rotation about +Y takes +X to -Z
	if !approx(p[0], 0) || !approx(p[2], -1) {
		t.Fatalf("rotated point = %v, want (0, 0, -1)", p)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := [3]float32{0, 75, 400}
	v := LookAt(eye, [3]float32{}, [3]float32{0, 1, 0})

	p := TransformPoint(v, eye)
	if !approx(p[0], 0) || !approx(p[1], 0) || !approx(p[2], 0) {
		t.Fatalf("eye in view space = %v, want origin", p)
	}
	target := TransformPoint(v, [3]float32{})
	dist := float32(math.Sqrt(75*75 + 400*400))
	if !approx(target[0], 0) || !approx(target[1], 0) || !approx(target[2], -dist) {
		t.Fatalf("target in view space = %v, want (0, 0, %f)", target, -dist)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 2000
	p := Perspective(math.Pi/3, 16.0/9.0, near, far)

	depth := func(z float32) float32 {
		clipZ := p[10]*z + p[14]
		clipW := p[11] * z
		return clipZ / clipW
	}
	if d := depth(-near); !approx(d, 0) {
		t.Fatalf("near plane depth = %f, want 0", d)
	}
	if d := depth(-far); !approx(d, 1) {
		t.Fatalf("far plane depth = %f, want 1", d)
	}
}

func TestClampAndCoalesce(t *testing.T) {
	if got := Clamp(0.5, 0.0, 0.1); got != 0.1 {
		t.Fatalf("Clamp high = %f", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp low = %d", got)
	}
	if got := Coalesce("", "assets", "other"); got != "assets" {
		t.Fatalf("Coalesce = %q", got)
	}
}

func TestSliceToBytes(t *testing.T) {
	if SliceToBytes([]float32{}) != nil {
		t.Fatalf("empty slice should give nil")
	}
	if got := len(SliceToBytes([]uint32{1, 2, 3})); got != 12 {
		t.Fatalf("len = %d, want 12", got)
	}
}
