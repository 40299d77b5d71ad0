package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/swap-form/internal/cli"
	"github.com/atomicstack/swap-form/internal/config"
	"github.com/atomicstack/swap-form/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(cli.Execute(os.Args[1:], func(cfg *config.Config) {
		startup(cfg, probeTerminal(os.Stdout, os.Stdin))
	}))
}

// terminalSize is the first usable size reported by a probed descriptor.
type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptor interface {
	Name() string
	Fd() uintptr
}

// probeTerminal returns the size of the first descriptor that is a terminal.
// The form renders to stdout, so callers list it first.
func probeTerminal(fds ...descriptor) *terminalSize {
	for _, f := range fds {
		fd := int(f.Fd())
		if fd < 0 || !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil || width <= 0 || height <= 0 {
			continue
		}
		return &terminalSize{Source: f.Name(), Width: width, Height: height}
	}
	return nil
}

// startup bounds the first render by the terminal size and traces how the
// form was launched.
func startup(cfg *config.Config, size *terminalSize) {
	if size != nil {
		cfg.App.TerminalWidth = size.Width
		cfg.App.TerminalHeight = size.Height
	}
	events.App.Start(startupTracePayload(*cfg, size))
}

func startupTracePayload(cfg config.Config, size *terminalSize) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   cfg.Flags,
		"variant": cfg.App.Variant,
		"tokens":  len(cfg.App.Tokens),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if size != nil {
		payload["terminal"] = *size
	}
	return payload
}
