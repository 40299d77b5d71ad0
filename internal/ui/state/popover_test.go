package state

import (
	"errors"
	"testing"

	"github.com/atomicstack/swap-form/internal/catalog"
)

func TestSelectCommitsAndCloses(t *testing.T) {
	var committed string
	p := NewPopover("send", catalog.Default(), func(v string) { committed = v })
	p.Show()
	p.SetFilter("us", 2)
	if err := p.Select("USDC"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Open {
		t.Fatalf("expected popover closed after select")
	}
	if committed != "USDC" || p.Selected != "USDC" {
		t.Fatalf("expected USDC committed, got %q / %q", committed, p.Selected)
	}
	if p.Filter != "us" {
		t.Fatalf("expected filter left untouched, got %q", p.Filter)
	}
}

func TestSelectRejectsUnknownSymbol(t *testing.T) {
	called := false
	p := NewPopover("send", catalog.Default(), func(string) { called = true })
	p.Show()
	err := p.Select("XYZ")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	if called || !p.Open || p.Selected != "" {
		t.Fatalf("expected state unchanged after rejected select")
	}
}

func TestSelectCurrentUsesHighlight(t *testing.T) {
	var committed string
	p := NewPopover("receive", catalog.Default(), func(v string) { committed = v })
	p.Show()
	p.SetFilter("sol", 3)
	symbol, ok := p.SelectCurrent()
	if !ok || symbol != "SOL" || committed != "SOL" {
		t.Fatalf("expected SOL selected, got %q (%v)", symbol, ok)
	}

	p.Show()
	p.SetFilter("nothing-here", 12)
	if !p.Empty() {
		t.Fatalf("expected empty state")
	}
	if _, ok := p.SelectCurrent(); ok {
		t.Fatalf("expected no selection from empty list")
	}
	if !p.Open {
		t.Fatalf("expected popover to stay open on empty selection")
	}
}

func TestShowKeepsFilterAndHighlightsSelection(t *testing.T) {
	p := NewPopover("send", catalog.Default(), nil)
	if err := p.Select("DOT"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !p.Show() {
		t.Fatalf("expected show to open")
	}
	if current, _ := p.Current(); current != "DOT" {
		t.Fatalf("expected DOT highlighted, got %q", current)
	}
	if p.Show() {
		t.Fatalf("expected second show to be a no-op")
	}
	p.SetFilter("o", 1)
	p.Hide()
	p.Show()
	if p.Filter != "o" {
		t.Fatalf("expected filter to survive reopening, got %q", p.Filter)
	}
	p.Toggle()
	if p.Open {
		t.Fatalf("expected toggle to close")
	}
	p.Toggle()
	if !p.Open {
		t.Fatalf("expected toggle to open")
	}
}

func TestPopoversAreIndependent(t *testing.T) {
	var send, receive string
	reg := catalog.Default()
	a := NewPopover("send", reg, func(v string) { send = v })
	b := NewPopover("receive", reg, func(v string) { receive = v })
	a.Show()
	a.SetFilter("bt", 2)
	if err := a.Select("BTC"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if b.Open || b.Filter != "" || b.Selected != "" || receive != "" {
		t.Fatalf("expected receive popover untouched, got %#v", b)
	}
	if len(b.Items) != reg.Len() {
		t.Fatalf("expected receive popover unfiltered")
	}
	if send != "BTC" {
		t.Fatalf("expected send committed, got %q", send)
	}
}

func TestSyncAndReset(t *testing.T) {
	p := NewPopover("send", catalog.Default(), nil)
	p.Sync("ETH")
	if !p.IsSelected("ETH") {
		t.Fatalf("expected ETH selected after sync")
	}
	p.Sync("bogus")
	if p.Selected != "" {
		t.Fatalf("expected unknown sync to clear selection")
	}
	p.Show()
	p.SetFilter("x", 1)
	p.Reset()
	if p.Open || p.Filter != "" || len(p.Items) != catalog.Default().Len() {
		t.Fatalf("expected reset popover, got %#v", p)
	}
}
