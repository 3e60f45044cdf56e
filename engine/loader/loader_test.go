package loader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
)

func writePNG(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadDecodesInBackground(t *testing.T) {
	dir := t.TempDir()
	names := []string{"2k_sun.png", "2k_earth.png", "2k_mars.png", "2k_saturn_ring.png"}
	for _, n := range names {
		writePNG(t, dir, n, 8, 4)
	}

	l := NewTextureLoader(WithRoot(dir), WithWorkers(2))
	defer l.Close()

	textures := make([]*common.Texture, len(names))
	for i, n := range names {
		textures[i] = l.Load(n)
	}
	l.Wait()

	if l.Pending() != 0 {
		t.Fatalf("pending = %d after Wait, want 0", l.Pending())
	}
	for i, tex := range textures {
		if !tex.Ready() {
			t.Fatalf("%s state = %v, want ready (err %v)", names[i], tex.State(), tex.Err())
		}
		_, w, h := tex.Pixels()
		if w != 8 || h != 4 {
			t.Fatalf("%s size = %dx%d, want 8x4", names[i], w, h)
		}
	}
}

func TestLoadCachesByName(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "2k_venus.png", 2, 2)

	l := NewTextureLoader(WithRoot(dir), WithWorkers(1))
	defer l.Close()

	a := l.Load("2k_venus.png")
	b := l.Load("2k_venus.png")
	if a != b {
		t.Fatal("loading the same name twice should return the cached texture")
	}
	if l.Get("2k_venus.png") != a {
		t.Fatal("Get should return the cached texture")
	}
	if l.Get("missing.png") != nil {
		t.Fatal("Get of an unknown name should return nil")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	l := NewTextureLoader(WithRoot(t.TempDir()), WithWorkers(1))
	defer l.Close()

	tex := l.Load("2k_neptune.jpg")
	l.Wait()

	if tex.State() != common.TextureFailed {
		t.Fatalf("state = %v, want failed", tex.State())
	}
	if tex.Err() == nil {
		t.Fatal("failed texture should carry an error")
	}
}

func TestLoadData(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 5))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	l := NewTextureLoader(WithWorkers(1), WithQueueSize(1))
	defer l.Close()

	tex := l.LoadData("inline", buf.Bytes())
	l.Wait()

	if !tex.Ready() {
		t.Fatalf("state = %v, want ready", tex.State())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	l := NewTextureLoader(WithWorkers(1))
	l.Close()
	l.Close()

	tex := l.Load("late.png")
	if tex.State() != common.TexturePending {
		t.Fatalf("texture queued after Close should stay pending, got %v", tex.State())
	}
}
