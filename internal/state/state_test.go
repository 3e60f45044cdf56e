package state

import (
	"errors"
	"testing"
)

var names = []string{"Mercury", "Venus", "Earth"}

func TestSpeedDefaults(t *testing.T) {
	tbl := NewOrbitalSpeedTable(names)
	for _, n := range names {
		if got := tbl.Speed(n); got != DefaultSpeed {
			t.Fatalf("%s speed = %f, want %f", n, got, DefaultSpeed)
		}
	}
	if got := tbl.Speed("Pluto"); got != 0 {
		t.Fatalf("unknown speed = %f, want 0", got)
	}
}

func TestSetIsolatesEntry(t *testing.T) {
	tbl := NewOrbitalSpeedTable(names)
	if err := tbl.Set("Earth", 0.05); err != nil {
		t.Fatal(err)
	}

	snap := tbl.Snapshot()
	if snap["Earth"] != 0.05 {
		t.Fatalf("Earth = %f, want 0.05", snap["Earth"])
	}
	for _, n := range []string{"Mercury", "Venus"} {
		if snap[n] != DefaultSpeed {
			t.Fatalf("%s changed to %f", n, snap[n])
		}
	}
}

func TestSetClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, MinSpeed},
		{0.5, MaxSpeed},
		{0.02, 0.02},
	}
	tbl := NewOrbitalSpeedTable(names)
	for _, tt := range tests {
		if err := tbl.Set("Venus", tt.in); err != nil {
			t.Fatal(err)
		}
		if got := tbl.Speed("Venus"); got != tt.want {
			t.Errorf("Set(%f) -> %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestSetUnknown(t *testing.T) {
	tbl := NewOrbitalSpeedTable(names)
	if err := tbl.Set("Pluto", 0.01); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("err = %v, want ErrUnknownBody", err)
	}
	if len(tbl.Snapshot()) != len(names) {
		t.Fatal("unknown name should not be added")
	}
}

func TestNamesIsCopy(t *testing.T) {
	tbl := NewOrbitalSpeedTable(names)
	got := tbl.Names()
	got[0] = "Vulcan"
	if tbl.Names()[0] != "Mercury" {
		t.Fatal("Names should return a copy")
	}
}

func TestGlobalViewState(t *testing.T) {
	v := NewGlobalViewState()
	if v.Scale() != DefaultScale || v.Paused() || v.LightTheme() {
		t.Fatalf("defaults = %+v", v)
	}

	if got := v.SetScale(10); got != MaxScale {
		t.Fatalf("SetScale(10) = %f, want %f", got, MaxScale)
	}
	if got := v.SetScale(0); got != MinScale {
		t.Fatalf("SetScale(0) = %f, want %f", got, MinScale)
	}

	if !v.TogglePause() || v.TogglePause() {
		t.Fatal("pause should toggle on then off")
	}

	if v.ClearColor() != DarkClearColor {
		t.Fatal("dark theme should be default")
	}
	v.ToggleTheme()
	if !v.LightTheme() || v.ClearColor() != LightClearColor {
		t.Fatal("theme toggle should switch to light")
	}
}

func TestThemeColors(t *testing.T) {
	if DarkClearColor != [4]float64{0, 0, 0, 1} {
		t.Fatalf("dark = %v", DarkClearColor)
	}
	want := [4]float64{221.0 / 255, 225.0 / 255, 237.0 / 255, 1}
	for i := range want {
		if d := LightClearColor[i] - want[i]; d > 1e-9 || d < -1e-9 {
			t.Fatalf("light = %v, want %v", LightClearColor, want)
		}
	}
}
