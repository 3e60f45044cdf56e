package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULighting is the GPU-aligned lighting block of the frame uniform.
// One ambient term and one point light are supported. Size: 48 bytes.
type GPULighting struct {
	Ambient       [3]float32 // offset  0: summed ambient radiance
	_pad0         float32    // offset 12
	PointPosition [3]float32 // offset 16: world-space point light position
	_pad1         float32    // offset 28
	PointColor    [3]float32 // offset 32: point light radiance, black when absent
	_pad2         float32    // offset 44
}

// Pack folds lights into a GPULighting block. Ambient lights are summed; the first
// enabled point light is used and any further point lights are ignored.
//
// Parameters:
//   - lights: the scene lights
//
// Returns:
//   - GPULighting: the packed lighting block
func Pack(lights []Light) GPULighting {
	var g GPULighting
	pointSet := false
	for _, l := range lights {
		if !l.Enabled() {
			continue
		}
		r := l.Radiance()
		switch l.Type() {
		case LightTypeAmbient:
			for i := range 3 {
				g.Ambient[i] += r[i]
			}
		case LightTypePoint:
			if pointSet {
				continue
			}
			g.PointPosition = l.Position()
			g.PointColor = r
			pointSet = true
		}
	}
	return g
}

// Size returns the size of the GPULighting struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPULighting) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the lighting block into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPULighting) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Ambient[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.PointPosition[i]))
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.PointColor[i]))
	}
	return buf
}
