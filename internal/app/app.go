package app

import (
	"github.com/atomicstack/swap-form/internal/catalog"
	"github.com/atomicstack/swap-form/internal/logging/events"
	"github.com/atomicstack/swap-form/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Config describes user-provided application options. TerminalWidth and
// TerminalHeight are probed at startup rather than configured.
type Config struct {
	Variant          string
	Width            int
	Height           int
	ShowFooter       bool
	ValidateOnChange bool
	Tokens           []string
	TerminalWidth    int
	TerminalHeight   int
}

// Registry builds the token catalog. An empty token list selects the
// reference catalog.
func (c Config) Registry() (*catalog.Registry, error) {
	if len(c.Tokens) == 0 {
		return catalog.Default(), nil
	}
	reg, err := catalog.New(c.Tokens...)
	if err != nil {
		return nil, errors.Wrap(err, "build token catalog")
	}
	return reg, nil
}

// Options converts the configuration into UI options.
func (c Config) Options() (ui.Options, error) {
	registry, err := c.Registry()
	if err != nil {
		return ui.Options{}, err
	}
	variant, ok := ui.ParseVariant(c.Variant)
	if !ok {
		return ui.Options{}, errors.Errorf("unknown variant %q", c.Variant)
	}
	return ui.Options{
		Registry:         registry,
		Variant:          variant,
		Width:            c.Width,
		Height:           c.Height,
		TerminalWidth:    c.TerminalWidth,
		TerminalHeight:   c.TerminalHeight,
		ShowFooter:       c.ShowFooter,
		ValidateOnChange: c.ValidateOnChange,
	}, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	program := tea.NewProgram(ui.NewModel(opts), tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Exit(err)
	return err
}
