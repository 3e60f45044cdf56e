package renderer

import (
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// Uniform block sizes of the built-in mesh shader.
const (
	FrameUniformSize  = 128 // camera (80) + lighting (48)
	ObjectUniformSize = 96  // model matrix (64) + material params (32)
	VertexStride      = 32  // position, normal, uv
)

// Bindings of the object bind group (group 1).
const (
	BindingObjectUniform = 0
	BindingObjectTexture = 1
	BindingObjectSampler = 2
)

// FrameLayout describes bind group 0: the per-scene frame uniform.
var FrameLayout = wgpu.BindGroupLayoutDescriptor{
	Label: "Frame Layout",
	Entries: []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: FrameUniformSize,
			},
		},
	},
}

// ObjectLayout describes bind group 1: the per-object uniform, base texture and sampler.
var ObjectLayout = wgpu.BindGroupLayoutDescriptor{
	Label: "Object Layout",
	Entries: []wgpu.BindGroupLayoutEntry{
		{
			Binding:    BindingObjectUniform,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: ObjectUniformSize,
			},
		},
		{
			Binding:    BindingObjectTexture,
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeFloat,
				ViewDimension: wgpu.TextureViewDimension2D,
			},
		},
		{
			Binding:    BindingObjectSampler,
			Visibility: wgpu.ShaderStageFragment,
			Sampler: wgpu.SamplerBindingLayout{
				Type: wgpu.SamplerBindingTypeFiltering,
			},
		},
	},
}

// MeshVertexLayout matches model.GPUVertex.
var MeshVertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: VertexStride,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
	},
}

// MeshPipelines builds the four pipelines drawn by the SceneRenderer, one per material
// pipeline key. All share the built-in mesh shader.
//
// Returns:
//   - []pipeline.Pipeline: basic, standard, transparent and points
func MeshPipelines() []pipeline.Pipeline {
	vs := shader.NewShader("mesh-vs", shader.ShaderTypeVertex, shader.MeshSource,
		shader.WithBindGroupLayout(0, FrameLayout),
		shader.WithBindGroupLayout(1, ObjectLayout),
		shader.WithVertexLayouts(MeshVertexLayout),
	)
	fs := shader.NewShader("mesh-fs", shader.ShaderTypeFragment, shader.MeshSource,
		shader.WithBindGroupLayout(0, FrameLayout),
		shader.WithBindGroupLayout(1, ObjectLayout),
	)

	shaders := []pipeline.PipelineBuilderOption{
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	}
	with := func(opts ...pipeline.PipelineBuilderOption) []pipeline.PipelineBuilderOption {
		return append(append([]pipeline.PipelineBuilderOption{}, shaders...), opts...)
	}

	return []pipeline.Pipeline{
		pipeline.NewPipeline(material.PipelineBasic, with()...),
		pipeline.NewPipeline(material.PipelineStandard, with(
			pipeline.WithCullMode(wgpu.CullModeBack),
		)...),
		pipeline.NewPipeline(material.PipelineTransparent, with(
			pipeline.WithBlendEnabled(true),
			pipeline.WithCullMode(wgpu.CullModeNone),
			pipeline.WithDepthWriteEnabled(false),
		)...),
		pipeline.NewPipeline(material.PipelinePoints, with(
			pipeline.WithTopology(wgpu.PrimitiveTopologyPointList),
			pipeline.WithCullMode(wgpu.CullModeNone),
		)...),
	}
}
