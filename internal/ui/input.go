package ui

import (
	"unicode"

	"github.com/atomicstack/swap-form/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleTextInput applies filter editing keys to an open popover.
func (m *Model) handleTextInput(p *popover, msg tea.KeyMsg) bool {
	if p == nil {
		return false
	}
	handled := m.editFilter(p, msg)
	if handled {
		m.syncPopoverViewport(p)
	}
	return handled
}

func (m *Model) editFilter(p *popover, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if !p.ClearFilter() {
			return false
		}
		events.Filter.Cleared(p.ID)
		return true
	case "ctrl+w":
		if !p.DeleteFilterWordBackward() {
			return false
		}
		events.Filter.WordBackspace(p.ID, p.Filter)
		return true
	case "ctrl+a":
		if !p.MoveFilterCursorStart() {
			return false
		}
		events.Filter.Cursor(p.ID, p.FilterCursor)
		return true
	case "ctrl+e":
		if !p.MoveFilterCursorEnd() {
			return false
		}
		events.Filter.Cursor(p.ID, p.FilterCursor)
		return true
	case "alt+b":
		if !p.MoveFilterCursorWordBackward() {
			return false
		}
		events.Filter.CursorWord(p.ID, p.FilterCursor)
		return true
	case "alt+f":
		if !p.MoveFilterCursorWordForward() {
			return false
		}
		events.Filter.CursorWord(p.ID, p.FilterCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !p.DeleteFilterRuneBackward() {
			return false
		}
		events.Filter.Backspace(p.ID, p.Filter)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(p, string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(p, " ")
	case tea.KeyLeft:
		if !p.MoveFilterCursorRuneBackward() {
			return false
		}
		events.Filter.Cursor(p.ID, p.FilterCursor)
		return true
	case tea.KeyRight:
		if !p.MoveFilterCursorRuneForward() {
			return false
		}
		events.Filter.Cursor(p.ID, p.FilterCursor)
		return true
	}
	return false
}

func (m *Model) appendToFilter(p *popover, text string) bool {
	if !p.InsertFilterText(text) {
		return false
	}
	events.Filter.Append(p.ID, p.Filter)
	return true
}

// filterPrompt renders the search line of an open popover with its caret.
func (m *Model) filterPrompt(p *popover) string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if p == nil || p.Filter == "" {
		runes := []rune("Search tokens...")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
