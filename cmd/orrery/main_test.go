package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/internal/config"
)

func TestRootCommandHelp(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, flag := range []string{"--config", "--panel-addr", "--assets-dir", "--msaa"} {
		if !strings.Contains(out.String(), flag) {
			t.Fatalf("help is missing %s", flag)
		}
	}
}

func TestRootCommandRejectsInvalidSettings(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--msaa", "3"})
	if err := cmd.Execute(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("Execute() = %v, want ErrInvalid", err)
	}

	cmd = newRootCommand()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("positional arguments should be rejected")
	}
}
