package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orrery.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("orrery", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s != Defaults() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
	if s.Title != "Solar System" || s.Width != 1280 || s.Height != 720 || s.PanelAddr != "127.0.0.1:8080" {
		t.Fatalf("unexpected defaults %+v", s)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, `{"width": 1600, "height": 900, "msaa": 1, "seed": 42, "softwareRenderer": true}`)

	s, err := Load("orrery", []string{"--config", path, "--width", "800", "--panel-addr", ""})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		got, want any
	}{
		{"flag beats file", s.Width, 800},
		{"file beats default", s.Height, 900},
		{"file msaa", s.MSAA, 1},
		{"file seed", s.Seed, int64(42)},
		{"explicit empty flag", s.PanelAddr, ""},
		{"file software renderer", s.SoftwareRenderer, true},
		{"untouched default", s.AssetsDir, "assets"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestUnsetFlagDoesNotOverrideFile(t *testing.T) {
	path := writeConfig(t, `{"vsync": false}`)
	s, err := Load("orrery", []string{"--config=" + path})
	if err != nil {
		t.Fatal(err)
	}
	if s.VSync {
		t.Fatal("flag default should not override the file")
	}
}

func TestSoftwareRendererFlag(t *testing.T) {
	s, err := Load("orrery", []string{"--software-renderer"})
	if err != nil {
		t.Fatal(err)
	}
	if !s.SoftwareRenderer {
		t.Fatal("--software-renderer should request the fallback adapter")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.Width = 0 }},
		{"negative height", func(s *Settings) { s.Height = -1 }},
		{"msaa 2", func(s *Settings) { s.MSAA = 2 }},
		{"negative frame limit", func(s *Settings) { s.FrameLimit = -30 }},
		{"no assets", func(s *Settings) { s.AssetsDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("orrery", []string{"--msaa", "8"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("msaa 8: %v", err)
	}
	if _, err := Load("orrery", []string{"--config", filepath.Join(t.TempDir(), "missing.json")}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: %v", err)
	}
	bad := writeConfig(t, `{"width": "wide"}`)
	if _, err := Load("orrery", []string{"--config", bad}); err == nil || !strings.Contains(err.Error(), bad) {
		t.Fatalf("bad file: %v", err)
	}
	unknown := writeConfig(t, `{"fullscreen": true}`)
	if _, err := Load("orrery", []string{"--config", unknown}); err == nil {
		t.Fatal("unknown keys should be rejected")
	}
	if _, err := Load("orrery", []string{"--bogus"}); err == nil {
		t.Fatal("unknown flag should fail")
	}
}
