package material

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// Kind identifies the shading model of a material.
type Kind int

const (
	// KindBasic is unlit: the surface shows its texture and color at full brightness.
	KindBasic Kind = iota

	// KindStandard is lit by the scene's ambient and point lights.
	KindStandard

	// KindPoints renders a point cloud in a flat color.
	KindPoints
)

// Pipeline keys the renderer registers, one per shading variant.
const (
	PipelineBasic       = "basic"
	PipelineTransparent = "transparent"
	PipelineStandard    = "standard"
	PipelinePoints      = "points"
)

// material is the implementation of the Material interface.
type material struct {
	name        string
	kind        Kind
	color       [4]float32
	texture     *common.Texture
	transparent bool
	doubleSided bool
}

// Material describes how a game object's surface is shaded: its kind, base color,
// optional texture, and blending and culling flags. It is pure data; the renderer
// derives the pipeline and GPU resources from it.
type Material interface {
	// Name retrieves the material label.
	//
	// Returns:
	//   - string: the material name
	Name() string

	// Kind retrieves the shading model.
	//
	// Returns:
	//   - Kind: basic, standard or points
	Kind() Kind

	// Color retrieves the RGBA base color, multiplied with the texture when one is ready.
	//
	// Returns:
	//   - [4]float32: the base color
	Color() [4]float32

	// Texture retrieves the diffuse texture, or nil when the material is untextured.
	//
	// Returns:
	//   - *common.Texture: the texture or nil
	Texture() *common.Texture

	// Transparent reports whether the surface is alpha blended.
	//
	// Returns:
	//   - bool: true if blended
	Transparent() bool

	// DoubleSided reports whether back faces are drawn.
	//
	// Returns:
	//   - bool: true if both faces are visible
	DoubleSided() bool

	// PipelineKey returns the key of the render pipeline that draws this material.
	//
	// Returns:
	//   - string: one of the Pipeline* constants
	PipelineKey() string

	// SetColor replaces the base color.
	//
	// Parameters:
	//   - color: RGBA color
	SetColor(color [4]float32)

	// SetTexture replaces the diffuse texture.
	//
	// Parameters:
	//   - texture: the texture or nil
	SetTexture(texture *common.Texture)
}

var _ Material = &material{}

// NewMaterial creates a Material of the given kind, white and opaque unless configured otherwise.
//
// Parameters:
//   - kind: the shading model
//   - options: functional options to configure the material
//
// Returns:
//   - Material: the new material
func NewMaterial(kind Kind, options ...MaterialBuilderOption) Material {
	m := &material{
		kind:  kind,
		color: [4]float32{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// NewBasic creates an unlit material.
func NewBasic(options ...MaterialBuilderOption) Material {
	return NewMaterial(KindBasic, options...)
}

// NewStandard creates a lit material.
func NewStandard(options ...MaterialBuilderOption) Material {
	return NewMaterial(KindStandard, options...)
}

// NewPoints creates a point-cloud material.
func NewPoints(options ...MaterialBuilderOption) Material {
	return NewMaterial(KindPoints, options...)
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Kind() Kind {
	return m.kind
}

func (m *material) Color() [4]float32 {
	return m.color
}

func (m *material) Texture() *common.Texture {
	return m.texture
}

func (m *material) Transparent() bool {
	return m.transparent
}

func (m *material) DoubleSided() bool {
	return m.doubleSided
}

func (m *material) PipelineKey() string {
	switch {
	case m.kind == KindPoints:
		return PipelinePoints
	case m.transparent || m.doubleSided:
		return PipelineTransparent
	case m.kind == KindStandard:
		return PipelineStandard
	default:
		return PipelineBasic
	}
}

func (m *material) SetColor(color [4]float32) {
	m.color = color
}

func (m *material) SetTexture(texture *common.Texture) {
	m.texture = texture
}
