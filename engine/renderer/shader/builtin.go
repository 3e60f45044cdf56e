package shader

import (
	_ "embed"
)

// MeshSource is the WGSL program used by every built-in pipeline. It reads a frame
// uniform from group 0 and an object uniform, texture and sampler from group 1.
//
//go:embed assets/mesh.wgsl
var MeshSource string
