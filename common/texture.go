// package common contains plain data types and helpers shared throughout the engine.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
	"sync/atomic"
)

// TextureState reports where a Texture is in its asynchronous load.
type TextureState int32

const (
	// TexturePending means the pixels have not been decoded yet.
	TexturePending TextureState = iota

	// TextureReady means Pixels returns valid RGBA data.
	TextureReady

	// TextureFailed means the source could not be read or decoded. The texture stays blank.
	TextureFailed
)

// Texture is an image destined for the GPU. It is created pending and filled in by a loader,
// possibly from another goroutine. Renderers poll State and upload once it is TextureReady.
type Texture struct {
	// Name identifies the texture, typically its file name.
	Name string

	// Path is the file the pixels are read from when Data is empty.
	Path string

	// Data holds encoded image bytes (PNG/JPEG) as an alternative to Path.
	Data []byte

	state atomic.Int32

	mu     sync.Mutex
	pixels []byte
	width  uint32
	height uint32
	err    error
}

// NewTexture creates a pending texture backed by a file path.
//
// Parameters:
//   - name: identifier of the texture
//   - path: file to decode
//
// Returns:
//   - *Texture: the pending texture
func NewTexture(name, path string) *Texture {
	return &Texture{Name: name, Path: path}
}

// State returns the current load state.
//
// Returns:
//   - TextureState: pending, ready or failed
func (t *Texture) State() TextureState {
	if t == nil {
		return TextureFailed
	}
	return TextureState(t.state.Load())
}

// Ready reports whether the pixels are available.
//
// Returns:
//   - bool: true once decoding succeeded
func (t *Texture) Ready() bool {
	return t.State() == TextureReady
}

// Pixels returns the decoded RGBA pixels (4 bytes per pixel, row-major) and the dimensions.
// The slice is nil until the texture is ready.
//
// Returns:
//   - []byte: RGBA pixels
//   - uint32: width in pixels
//   - uint32: height in pixels
func (t *Texture) Pixels() ([]byte, uint32, uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pixels, t.width, t.height
}

// Err returns the decode error of a failed texture.
//
// Returns:
//   - error: the failure cause, or nil
func (t *Texture) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Decode reads and decodes the source into RGBA pixels and marks the texture ready.
// On failure the texture is marked failed and the error is returned.
// Reference: https://pkg.go.dev/image
//
// Returns:
//   - error: error if the source cannot be opened or decoded
func (t *Texture) Decode() error {
	pix, w, h, err := t.decode()

	t.mu.Lock()
	t.pixels, t.width, t.height, t.err = pix, w, h, err
	t.mu.Unlock()

	if err != nil {
		t.state.Store(int32(TextureFailed))
		return err
	}
	t.state.Store(int32(TextureReady))
	return nil
}

// SetPixels marks the texture ready with already-decoded RGBA pixels.
//
// Parameters:
//   - pixels: RGBA data, width*height*4 bytes
//   - width: width in pixels
//   - height: height in pixels
func (t *Texture) SetPixels(pixels []byte, width, height uint32) {
	t.mu.Lock()
	t.pixels, t.width, t.height, t.err = pixels, width, height, nil
	t.mu.Unlock()
	t.state.Store(int32(TextureReady))
}

func (t *Texture) decode() ([]byte, uint32, uint32, error) {
	var (
		img image.Image
		err error
	)
	switch {
	case len(t.Data) > 0:
		img, _, err = image.Decode(bytes.NewReader(t.Data))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode embedded image %s: %w", t.Name, err)
		}
	case t.Path != "":
		file, openErr := os.Open(t.Path)
		if openErr != nil {
			return nil, 0, 0, fmt.Errorf("failed to open texture file %s: %w", t.Path, openErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode texture file %s: %w", t.Path, err)
		}
	default:
		return nil, 0, 0, fmt.Errorf("texture %s has neither data nor path", t.Name)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return rgba.Pix, uint32(bounds.Dx()), uint32(bounds.Dy()), nil
}
