package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/atomicstack/swap-form/internal/app"
	"github.com/atomicstack/swap-form/internal/config"
)

func TestProbeTerminalSkipsRegularFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if size := probeTerminal(f); size != nil {
		t.Fatalf("expected no terminal size for a regular file, got %#v", size)
	}
	if size := probeTerminal(); size != nil {
		t.Fatalf("expected no terminal size without descriptors, got %#v", size)
	}
}

func TestStartupSeedsTerminalSize(t *testing.T) {
	cfg := config.Config{App: app.Config{Variant: "search", Width: 40}}
	startup(&cfg, &terminalSize{Source: "stdout", Width: 120, Height: 40})
	if cfg.App.TerminalWidth != 120 || cfg.App.TerminalHeight != 40 {
		t.Fatalf("expected terminal size seeded, got %#v", cfg.App)
	}
	if cfg.App.Width != 40 {
		t.Fatalf("expected fixed width untouched, got %d", cfg.App.Width)
	}

	cfg = config.Config{}
	startup(&cfg, nil)
	if cfg.App.TerminalWidth != 0 || cfg.App.TerminalHeight != 0 {
		t.Fatalf("expected no size without a terminal, got %#v", cfg.App)
	}
}

func TestStartupTracePayload(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Variant: "plain",
			Tokens:  []string{"ETH", "USDC"},
		},
		File:  "/tmp/.swap-form.yaml",
		Flags: map[string]string{"variant": "plain", "footer": "true"},
		Args:  []string{"--variant", "plain"},
	}
	size := &terminalSize{Source: "stdout", Width: 80, Height: 24}

	payload := startupTracePayload(cfg, size)

	if !reflect.DeepEqual(payload["argv"], cfg.Args) {
		t.Fatalf("expected argv %v, got %v", cfg.Args, payload["argv"])
	}
	if flags, ok := payload["flags"].(map[string]string); !ok || flags["footer"] != "true" {
		t.Fatalf("expected flags in payload, got %v", payload["flags"])
	}
	if payload["variant"] != "plain" || payload["tokens"] != 2 {
		t.Fatalf("unexpected form details %v / %v", payload["variant"], payload["tokens"])
	}
	if payload["configFile"] != "/tmp/.swap-form.yaml" {
		t.Fatalf("expected config file in payload, got %v", payload["configFile"])
	}
	if payload["terminal"] != *size {
		t.Fatalf("expected terminal size, got %v", payload["terminal"])
	}

	payload = startupTracePayload(config.Config{}, nil)
	if _, ok := payload["terminal"]; ok {
		t.Fatalf("expected no terminal entry without a probe result")
	}
	if _, ok := payload["configFile"]; ok {
		t.Fatalf("expected no config file entry")
	}
}
