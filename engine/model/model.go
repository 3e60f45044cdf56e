package model

import (
	"encoding/binary"
	"math"
)

// Topology selects how a model's indices are assembled into primitives.
type Topology int

const (
	// TopologyTriangles draws every three indices as a triangle.
	TopologyTriangles Topology = iota

	// TopologyPoints draws every index as a single point.
	TopologyPoints
)

// model is the implementation of the Model interface.
type model struct {
	key      string
	topology Topology
	vertices []GPUVertex
	indices  []uint32
	radius   float32
}

// Model is CPU-side mesh data: a vertex list, an index list and a primitive topology.
// Models are immutable once built and may be shared by many game objects; the renderer
// uploads each distinct Model once, keyed by Key.
type Model interface {
	// Key retrieves the model identifier used for GPU buffer caching.
	//
	// Returns:
	//   - string: the model key
	Key() string

	// Topology retrieves the primitive topology.
	//
	// Returns:
	//   - Topology: triangles or points
	Topology() Topology

	// Vertices retrieves the vertex list.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices retrieves the index list.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexData serializes the vertices for upload.
	//
	// Returns:
	//   - []byte: packed vertex bytes
	VertexData() []byte

	// IndexData serializes the indices for upload.
	//
	// Returns:
	//   - []byte: packed little-endian uint32 indices
	IndexData() []byte

	// BoundingRadius returns the radius of the smallest origin-centered sphere holding every vertex.
	//
	// Returns:
	//   - float32: the model-space bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a Model from the provided options. Points models without explicit indices
// get a sequential index list so every model can be drawn indexed.
//
// Parameters:
//   - key: unique identifier of the mesh
//   - options: functional options setting the geometry
//
// Returns:
//   - Model: the new model
func NewModel(key string, options ...ModelBuilderOption) Model {
	m := &model{
		key:      key,
		topology: TopologyTriangles,
	}
	for _, opt := range options {
		opt(m)
	}
	if m.indices == nil && m.topology == TopologyPoints {
		m.indices = make([]uint32, len(m.vertices))
		for i := range m.indices {
			m.indices[i] = uint32(i)
		}
	}
	for _, v := range m.vertices {
		p := v.Position
		m.radius = max(m.radius, float32(math.Sqrt(float64(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]))))
	}
	return m
}

func (m *model) Key() string {
	return m.key
}

func (m *model) Topology() Topology {
	return m.topology
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	var v GPUVertex
	buf := make([]byte, 0, len(m.vertices)*v.Size())
	for i := range m.vertices {
		buf = append(buf, m.vertices[i].Marshal()...)
	}
	return buf
}

func (m *model) IndexData() []byte {
	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func (m *model) BoundingRadius() float32 {
	return m.radius
}
