package material

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialParams is the GPU-aligned material block appended to every object uniform.
// Size: 32 bytes.
type GPUMaterialParams struct {
	Color      [4]float32 // offset  0: RGBA base color
	UseTexture float32    // offset 16: 1 when the bound texture holds real pixels
	Lit        float32    // offset 20: 1 for standard materials
	_pad       [2]float32 // offset 24: padding to 32 bytes
}

// Params builds the GPU block for m. textureReady reports whether the renderer has
// uploaded m's texture.
//
// Parameters:
//   - m: the material
//   - textureReady: true once the texture is resident on the GPU
//
// Returns:
//   - GPUMaterialParams: the packed parameters
func Params(m Material, textureReady bool) GPUMaterialParams {
	p := GPUMaterialParams{Color: m.Color()}
	if textureReady {
		p.UseTexture = 1
	}
	if m.Kind() == KindStandard {
		p.Lit = 1
	}
	return p
}

// Size returns the size of the GPUMaterialParams struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUMaterialParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the parameters into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUMaterialParams) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(g.UseTexture))
	binary.LittleEndian.PutUint32(buf[20:], math.Float32bits(g.Lit))
	return buf
}
