package material

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// MaterialBuilderOption is a functional option for configuring a Material.
type MaterialBuilderOption func(*material)

// WithName sets the material label.
//
// Parameters:
//   - name: the label
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithColor sets the RGBA base color.
//
// Parameters:
//   - color: RGBA components in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.color = color
	}
}

// WithTexture sets the diffuse texture. The texture may still be loading.
//
// Parameters:
//   - texture: the texture
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithTexture(texture *common.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.texture = texture
	}
}

// WithTransparent enables alpha blending.
//
// Parameters:
//   - transparent: true to blend
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithTransparent(transparent bool) MaterialBuilderOption {
	return func(m *material) {
		m.transparent = transparent
	}
}

// WithDoubleSided disables back-face culling.
//
// Parameters:
//   - doubleSided: true to draw both faces
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithDoubleSided(doubleSided bool) MaterialBuilderOption {
	return func(m *material) {
		m.doubleSided = doubleSided
	}
}
