package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData carries decoded RGBA8 pixels waiting for upload.
type TextureStagingData struct {
	Pixels []byte
	Width  uint32
	Height uint32
}

// SamplerStagingData configures a sampler. Zero fields fall back to linear filtering
// with repeat addressing.
type SamplerStagingData struct {
	AddressModeU  wgpu.AddressMode
	AddressModeV  wgpu.AddressMode
	AddressModeW  wgpu.AddressMode
	MagFilter     wgpu.FilterMode
	MinFilter     wgpu.FilterMode
	MipmapFilter  wgpu.MipmapFilterMode
	LodMinClamp   float32
	LodMaxClamp   float32
	MaxAnisotropy uint16
}

// whitePixel is bound in place of textures that have not finished loading.
var whitePixel = TextureStagingData{
	Pixels: []byte{255, 255, 255, 255},
	Width:  1,
	Height: 1,
}
