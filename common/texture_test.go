package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestTextureDecodeFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2k_mars.png")
	if err := os.WriteFile(path, encodePNG(t, 4, 2), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tex := NewTexture("2k_mars.png", path)
	if tex.State() != TexturePending {
		t.Fatalf("new texture state = %v, want pending", tex.State())
	}
	if err := tex.Decode(); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !tex.Ready() {
		t.Fatalf("texture not ready after decode")
	}
	pix, w, h := tex.Pixels()
	if w != 4 || h != 2 || len(pix) != 4*2*4 {
		t.Fatalf("pixels %dx%d len %d", w, h, len(pix))
	}
	if pix[0] != 255 || pix[3] != 255 {
		t.Fatalf("first pixel = %v, want opaque red", pix[:4])
	}
}

func TestTextureDecodeFromData(t *testing.T) {
	tex := &Texture{Name: "embedded", Data: encodePNG(t, 1, 1)}
	if err := tex.Decode(); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !tex.Ready() {
		t.Fatalf("embedded texture not ready")
	}
}

func TestTextureDecodeMissingFileFails(t *testing.T) {
	tex := NewTexture("2k_pluto.jpg", filepath.Join(t.TempDir(), "nope.jpg"))
	if err := tex.Decode(); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if tex.State() != TextureFailed || tex.Err() == nil {
		t.Fatalf("state = %v err = %v, want failed", tex.State(), tex.Err())
	}
	if pix, _, _ := tex.Pixels(); pix != nil {
		t.Fatalf("failed texture has pixels")
	}
}

func TestNilTextureIsFailed(t *testing.T) {
	var tex *Texture
	if tex.State() != TextureFailed || tex.Ready() {
		t.Fatalf("nil texture should report failed")
	}
}
