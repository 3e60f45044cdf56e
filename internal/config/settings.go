// Package config loads the orrery settings: defaults, then an optional JSON file, then flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// ErrInvalid is returned by Validate and Load for unusable settings.
var ErrInvalid = errors.New("invalid settings")

// Settings configures the window, renderer, assets and web panel.
type Settings struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Title            string  `json:"title"`
	AssetsDir        string  `json:"assetsDir"`
	PanelAddr        string  `json:"panelAddr"`
	VSync            bool    `json:"vsync"`
	MSAA             int     `json:"msaa"`
	SoftwareRenderer bool    `json:"softwareRenderer"`
	Profiling        bool    `json:"profiling"`
	FrameLimit       float64 `json:"frameLimit"`
	Seed             int64   `json:"seed"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Width:     1280,
		Height:    720,
		Title:     "Solar System",
		AssetsDir: "assets",
		PanelAddr: "127.0.0.1:8080",
		VSync:     true,
		MSAA:      4,
	}
}

// Validate checks the settings.
//
// Returns:
//   - error: wrapping ErrInvalid on the first problem found
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", s.Width, s.Height, ErrInvalid)
	case s.MSAA != 1 && s.MSAA != 4:
		return fmt.Errorf("msaa %d, want 1 or 4: %w", s.MSAA, ErrInvalid)
	case s.FrameLimit < 0:
		return fmt.Errorf("frame limit %v: %w", s.FrameLimit, ErrInvalid)
	case s.AssetsDir == "":
		return fmt.Errorf("empty assets dir: %w", ErrInvalid)
	}
	return nil
}

// Decode overlays the JSON in r onto s. Keys missing from the document keep their values.
//
// Parameters:
//   - r: the JSON document
//
// Returns:
//   - error: if the document cannot be parsed
func (s *Settings) Decode(r io.Reader) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	return nil
}

// LoadFile overlays the JSON file at path onto s.
//
// Parameters:
//   - path: the settings file
//
// Returns:
//   - error: if the file cannot be read or parsed
func (s *Settings) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()
	if err := s.Decode(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Flags binds the settings flags to a flag set.
type Flags struct {
	fs         *pflag.FlagSet
	configPath string
	values     Settings
}

// RegisterFlags adds every settings flag, plus --config, to fs.
//
// Parameters:
//   - fs: the flag set, typically a cobra command's Flags()
//
// Returns:
//   - *Flags: reads the merged settings after parsing
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	d := Defaults()
	f := &Flags{fs: fs}
	fs.StringVar(&f.configPath, "config", "", "path to a JSON settings file")
	fs.IntVar(&f.values.Width, "width", d.Width, "window width in pixels")
	fs.IntVar(&f.values.Height, "height", d.Height, "window height in pixels")
	fs.StringVar(&f.values.Title, "title", d.Title, "window title")
	fs.StringVar(&f.values.AssetsDir, "assets-dir", d.AssetsDir, "directory holding textures/")
	fs.StringVar(&f.values.PanelAddr, "panel-addr", d.PanelAddr, "web control panel address; empty disables it")
	fs.BoolVar(&f.values.VSync, "vsync", d.VSync, "wait for vertical sync when presenting")
	fs.IntVar(&f.values.MSAA, "msaa", d.MSAA, "multisample count (1 or 4)")
	fs.BoolVar(&f.values.SoftwareRenderer, "software-renderer", d.SoftwareRenderer, "use the fallback (CPU) GPU adapter")
	fs.BoolVar(&f.values.Profiling, "profiling", d.Profiling, "log frame and memory statistics")
	fs.Float64Var(&f.values.FrameLimit, "frame-limit", d.FrameLimit, "maximum frames per second; 0 is uncapped")
	fs.Int64Var(&f.values.Seed, "seed", d.Seed, "random seed; 0 uses the clock")
	return f
}

// Settings merges the defaults, the --config file and every flag set explicitly, in that
// order, and validates the result. Call it after the flag set has been parsed.
//
// Returns:
//   - Settings: the merged settings
//   - error: a file or validation error
func (f *Flags) Settings() (Settings, error) {
	s := Defaults()
	if f.configPath != "" {
		if err := s.LoadFile(f.configPath); err != nil {
			return Settings{}, err
		}
	}

	overrides := []struct {
		name  string
		apply func()
	}{
		{"width", func() { s.Width = f.values.Width }},
		{"height", func() { s.Height = f.values.Height }},
		{"title", func() { s.Title = f.values.Title }},
		{"assets-dir", func() { s.AssetsDir = f.values.AssetsDir }},
		{"panel-addr", func() { s.PanelAddr = f.values.PanelAddr }},
		{"vsync", func() { s.VSync = f.values.VSync }},
		{"msaa", func() { s.MSAA = f.values.MSAA }},
		{"software-renderer", func() { s.SoftwareRenderer = f.values.SoftwareRenderer }},
		{"profiling", func() { s.Profiling = f.values.Profiling }},
		{"frame-limit", func() { s.FrameLimit = f.values.FrameLimit }},
		{"seed", func() { s.Seed = f.values.Seed }},
	}
	for _, o := range overrides {
		if f.fs.Changed(o.name) {
			o.apply()
		}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load parses args on a fresh flag set and returns the merged settings.
//
// Parameters:
//   - name: the program name used in usage output
//   - args: command-line arguments, without the program name
//
// Returns:
//   - Settings: the merged settings
//   - error: a parse, file or validation error
func Load(name string, args []string) (Settings, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("parse flags: %w", err)
	}
	return f.Settings()
}
