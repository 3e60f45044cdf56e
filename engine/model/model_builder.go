package model

// ModelBuilderOption is a functional option for configuring a Model.
type ModelBuilderOption func(*model)

// WithVertices sets the vertex list.
//
// Parameters:
//   - vertices: the mesh vertices
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices sets the index list.
//
// Parameters:
//   - indices: indices into the vertex list
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: triangles or points
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithTopology(topology Topology) ModelBuilderOption {
	return func(m *model) {
		m.topology = topology
	}
}
