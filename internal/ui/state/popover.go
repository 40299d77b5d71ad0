package state

import (
	"github.com/atomicstack/swap-form/internal/catalog"
	"github.com/atomicstack/swap-form/internal/logging/events"
	"github.com/pkg/errors"
)

// ErrUnknownSymbol is returned when a selection is not in the catalog.
var ErrUnknownSymbol = errors.New("symbol is not in the token catalog")

// Popover encapsulates one searchable token selector: open state, filter
// text, highlighted choice, and viewport. Instances never share state beyond
// the read-only registry.
type Popover struct {
	ID             string
	Open           bool
	Items          []string
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Selected       string

	registry *catalog.Registry
	commit   func(string)
}

// NewPopover constructs a closed popover over registry. commit receives every
// selected symbol and is expected to update the owning field.
func NewPopover(id string, registry *catalog.Registry, commit func(string)) *Popover {
	if registry == nil {
		registry = catalog.Default()
	}
	p := &Popover{
		ID:         id,
		Cursor:     0,
		LastCursor: -1,
		registry:   registry,
		commit:     commit,
	}
	p.applyFilter()
	return p
}

// Show opens the popover. Prior filter text is kept and the current selection
// is highlighted when visible.
func (p *Popover) Show() bool {
	if p.Open {
		return false
	}
	p.Open = true
	if idx := p.IndexOf(p.Selected); idx >= 0 {
		p.Cursor = idx
	}
	events.Popover.Open(p.ID, p.Filter)
	return true
}

// Hide closes the popover without committing anything.
func (p *Popover) Hide() bool {
	if !p.Open {
		return false
	}
	p.Open = false
	events.Popover.Close(p.ID)
	return true
}

// Toggle flips the open state.
func (p *Popover) Toggle() {
	if p.Open {
		p.Hide()
		return
	}
	p.Show()
}

// Empty reports the "no token found" state: the filter excludes every symbol.
func (p *Popover) Empty() bool {
	return len(p.Items) == 0
}

// Current returns the highlighted symbol.
func (p *Popover) Current() (string, bool) {
	if len(p.Items) == 0 || p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return "", false
	}
	return p.Items[p.Cursor], true
}

// IndexOf returns the visible index for symbol or -1.
func (p *Popover) IndexOf(symbol string) int {
	if symbol == "" {
		return -1
	}
	for i, item := range p.Items {
		if item == symbol {
			return i
		}
	}
	return -1
}

// IsSelected reports whether symbol is the committed choice.
func (p *Popover) IsSelected(symbol string) bool {
	return symbol != "" && p.Selected == symbol
}

// Select commits symbol to the owning field and closes the popover. The
// filter text is left as is.
func (p *Popover) Select(symbol string) error {
	if !p.registry.Contains(symbol) {
		return errors.Wrapf(ErrUnknownSymbol, "%q", symbol)
	}
	p.Selected = symbol
	if p.commit != nil {
		p.commit(symbol)
	}
	p.Open = false
	events.Popover.Select(p.ID, symbol)
	return nil
}

// SelectCurrent commits the highlighted symbol. It reports false when nothing
// is highlighted.
func (p *Popover) SelectCurrent() (string, bool) {
	symbol, ok := p.Current()
	if !ok {
		return "", false
	}
	if err := p.Select(symbol); err != nil {
		return "", false
	}
	return symbol, true
}

// Sync records a selection made outside the popover, such as a form reset.
func (p *Popover) Sync(value string) {
	if p.registry.Contains(value) {
		p.Selected = value
		return
	}
	p.Selected = ""
}

// Reset closes the popover and clears filter, highlight, and selection.
func (p *Popover) Reset() {
	p.Open = false
	p.Selected = ""
	p.Filter = ""
	p.FilterCursor = 0
	p.Cursor = 0
	p.LastCursor = -1
	p.ViewportOffset = 0
	p.applyFilter()
}
