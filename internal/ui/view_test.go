package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/swap-form/internal/swap"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsLabelsAndPlaceholders(t *testing.T) {
	view := NewModel(Options{StaticCursor: true}).View()
	for _, want := range []string{
		defaultTitle, "Token to Send", "Amount", "Token to Receive", selectorEmpty, "[ Swap ]",
		"Select the token you want to send", "Enter the amount you want to swap", "Select the token you want to receive",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewMarksSelectedItem(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Type("sol")
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyEnter)
	view := ansi.Strip(h.View())
	if !strings.Contains(view, checkmark+"SOL") {
		t.Fatalf("expected checkmark next to SOL:\n%s", view)
	}
	if strings.Contains(view, checkmark+"ETH") {
		t.Fatalf("expected only the selection to be checked:\n%s", view)
	}
}

func TestViewFilterPlaceholder(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Press(tea.KeyEnter)
	if view := ansi.Strip(h.View()); !strings.Contains(view, "Search tokens...") {
		t.Fatalf("expected filter placeholder in view:\n%s", view)
	}
}

func TestViewShowsEmptyState(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Type("qq")
	if view := h.View(); !strings.Contains(view, popoverNotFound) {
		t.Fatalf("expected %q in view:\n%s", popoverNotFound, view)
	}
}

func TestViewLimitsPopoverRows(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Press(tea.KeyEnter)
	view := h.View()
	if strings.Contains(view, "ALGO") {
		t.Fatalf("expected list clipped to %d rows:\n%s", popoverMaxRows, view)
	}
	h.Press(tea.KeyEnd)
	if view := h.View(); !strings.Contains(view, "ALGO") {
		t.Fatalf("expected viewport to follow the highlight:\n%s", view)
	}
}

func TestViewFooter(t *testing.T) {
	m := NewModel(Options{ShowFooter: true, StaticCursor: true})
	if view := m.View(); !strings.Contains(view, "ctrl+s swap") {
		t.Fatalf("expected footer help, got:\n%s", view)
	}
}

func TestViewRespectsWidthAndHeight(t *testing.T) {
	m := NewModel(Options{Width: 12, Height: 4, StaticCursor: true})
	m.Form().SetValue(swap.SendToken, "ETH")
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if w := len([]rune(line)); w > 12 {
			t.Fatalf("expected line width <= 12, got %d (%q)", w, line)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
