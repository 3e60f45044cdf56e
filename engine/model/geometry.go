package model

import (
	"math"
)

// NewSphere builds a UV sphere centered at the origin with counter-clockwise front faces.
// It has (widthSegments+1)*(heightSegments+1) vertices. The poles use a single triangle
// per segment, so there are widthSegments*(heightSegments-1)*2 triangles.
//
// Parameters:
//   - key: unique model key
//   - radius: sphere radius
//   - widthSegments: horizontal segments (minimum 3)
//   - heightSegments: vertical segments (minimum 2)
//
// Returns:
//   - Model: the sphere model
func NewSphere(key string, radius float32, widthSegments, heightSegments int) Model {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	vertices := make([]GPUVertex, 0, (widthSegments+1)*(heightSegments+1))
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		sinTheta, cosTheta := math.Sincos(v * math.Pi)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			sinPhi, cosPhi := math.Sincos(u * 2 * math.Pi)

			n := [3]float32{
				float32(-cosPhi * sinTheta),
				float32(cosTheta),
				float32(sinPhi * sinTheta),
			}
			vertices = append(vertices, GPUVertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{float32(u), float32(v)},
			})
		}
	}

	stride := uint32(widthSegments + 1)
	indices := make([]uint32, 0, widthSegments*(heightSegments-1)*6)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*stride + uint32(ix) + 1
			b := uint32(iy)*stride + uint32(ix)
			c := uint32(iy+1)*stride + uint32(ix)
			d := uint32(iy+1)*stride + uint32(ix) + 1

			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return NewModel(key, WithVertices(vertices), WithIndices(indices))
}

// NewRing builds a flat annulus in the XY plane facing +Z, with one radial segment.
// UVs are planar, mapping the outer radius onto the [0, 1] square.
//
// Parameters:
//   - key: unique model key
//   - innerRadius: hole radius
//   - outerRadius: outer edge radius
//   - thetaSegments: segments around the ring (minimum 3)
//
// Returns:
//   - Model: the ring model
func NewRing(key string, innerRadius, outerRadius float32, thetaSegments int) Model {
	thetaSegments = max(thetaSegments, 3)

	vertices := make([]GPUVertex, 0, 2*(thetaSegments+1))
	for _, r := range [2]float32{innerRadius, outerRadius} {
		for i := 0; i <= thetaSegments; i++ {
			sin, cos := math.Sincos(float64(i) / float64(thetaSegments) * 2 * math.Pi)
			x, y := r*float32(cos), r*float32(sin)
			vertices = append(vertices, GPUVertex{
				Position: [3]float32{x, y, 0},
				Normal:   [3]float32{0, 0, 1},
				TexCoord: [2]float32{(x/outerRadius + 1) / 2, (y/outerRadius + 1) / 2},
			})
		}
	}

	stride := uint32(thetaSegments + 1)
	indices := make([]uint32, 0, thetaSegments*6)
	for i := uint32(0); i < uint32(thetaSegments); i++ {
		a, b, c, d := i, i+stride, i+stride+1, i+1
		indices = append(indices, a, b, d, b, c, d)
	}

	return NewModel(key, WithVertices(vertices), WithIndices(indices))
}

// NewPoints builds a point cloud with one vertex per position.
//
// Parameters:
//   - key: unique model key
//   - positions: point positions
//
// Returns:
//   - Model: the point-list model
func NewPoints(key string, positions [][3]float32) Model {
	vertices := make([]GPUVertex, len(positions))
	for i, p := range positions {
		vertices[i] = GPUVertex{Position: p}
	}
	return NewModel(key, WithVertices(vertices), WithTopology(TopologyPoints))
}
