package common

import (
	"math"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromMatrix extracts the frustum planes of a column-major view-projection matrix
// with WebGPU's [0, 1] depth range (Gribb/Hartmann).
//
// Parameters:
//   - viewProj: the combined projection * view matrix
//
// Returns:
//   - Frustum: the frustum with normalized planes
func FrustumFromMatrix(viewProj Mat4) Frustum {
	// row i of the matrix is (m[i], m[4+i], m[8+i], m[12+i])
	row := func(i int) [4]float32 {
		return [4]float32{viewProj[i], viewProj[4+i], viewProj[8+i], viewProj[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	combos := [6][4]float32{
		add4(r3, r0), // left
		sub4(r3, r0), // right
		add4(r3, r1), // bottom
		sub4(r3, r1), // top
		r2,           // near, z >= 0 in clip space
		sub4(r3, r2), // far
	}

	var f Frustum
	for i, c := range combos {
		f.Planes[i] = normalizePlane(Plane{Normal: [3]float32{c[0], c[1], c[2]}, Distance: c[3]})
	}
	return f
}

// IntersectsSphere reports whether any part of the sphere lies inside the frustum.
//
// Parameters:
//   - center: world-space sphere center
//   - radius: sphere radius
//
// Returns:
//   - bool: false only when the sphere is entirely outside one plane
func (f Frustum) IntersectsSphere(center [3]float32, radius float32) bool {
	for _, p := range f.Planes {
		if dot(p.Normal, center)+p.Distance < -radius {
			return false
		}
	}
	return true
}

func normalizePlane(p Plane) Plane {
	length := float32(math.Sqrt(float64(dot(p.Normal, p.Normal))))
	if length > 0 {
		inv := 1 / length
		p.Normal = [3]float32{p.Normal[0] * inv, p.Normal[1] * inv, p.Normal[2] * inv}
		p.Distance *= inv
	}
	return p
}

func add4(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func sub4(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// MaxScale returns the largest axis scale encoded in the upper 3x3 of m.
func MaxScale(m Mat4) float32 {
	var s float32
	for c := 0; c < 3; c++ {
		x, y, z := m[c*4], m[c*4+1], m[c*4+2]
		s = max(s, float32(math.Sqrt(float64(x*x+y*y+z*z))))
	}
	return s
}
