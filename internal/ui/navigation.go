package ui

import (
	"github.com/atomicstack/swap-form/internal/logging/events"
	"github.com/atomicstack/swap-form/internal/swap"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if p := m.activePopover(); p != nil {
		return m.handlePopoverKey(p, keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Close):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()
	case key.Matches(keyMsg, m.keys.Reset):
		m.reset()
		return nil
	case key.Matches(keyMsg, m.keys.Next), key.Matches(keyMsg, m.keys.Down):
		return m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Prev), key.Matches(keyMsg, m.keys.Up):
		return m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Enter):
		return m.handleEnterKey()
	}
	return m.handleFieldInput(keyMsg)
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.focus == focusSubmit {
		return m.submit()
	}
	field, _ := m.focus.field()
	if p, ok := m.popovers[field]; ok {
		p.Show()
		m.syncPopoverViewport(p)
		return nil
	}
	return m.moveFocus(1)
}

// handleFieldInput routes keys that are not navigation to the focused field.
// Printable runes on a closed selector open it with the runes as the filter.
func (m *Model) handleFieldInput(msg tea.KeyMsg) tea.Cmd {
	field, ok := m.focus.field()
	if !ok {
		return nil
	}
	if p, ok := m.popovers[field]; ok {
		if msg.Type != tea.KeyRunes || msg.Alt {
			return nil
		}
		p.Show()
		m.handleTextInput(p, msg)
		return nil
	}
	ti, ok := m.inputs[field]
	if !ok {
		return nil
	}
	before := ti.Value()
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	if ti.Value() != before {
		m.form.SetValue(field, ti.Value())
	}
	return cmd
}

func (m *Model) handlePopoverKey(p *popover, msg tea.KeyMsg) tea.Cmd {
	rows := m.popoverRows()
	switch {
	case key.Matches(msg, m.keys.Close):
		p.Hide()
		return nil
	case key.Matches(msg, m.keys.Submit):
		p.Hide()
		return m.submit()
	case key.Matches(msg, m.keys.Enter):
		if _, ok := p.SelectCurrent(); ok {
			if field, ok := m.focus.field(); ok {
				m.form.Blur(field)
			}
		}
		return nil
	case key.Matches(msg, m.keys.Up):
		p.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		p.MoveCursorDown()
	case key.Matches(msg, m.keys.PageUp):
		p.MoveCursorPageUp(rows)
	case key.Matches(msg, m.keys.PageDown):
		p.MoveCursorPageDown(rows)
	case key.Matches(msg, m.keys.Home):
		p.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		p.MoveCursorEnd()
	case key.Matches(msg, m.keys.Next):
		p.Hide()
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		p.Hide()
		return m.moveFocus(-1)
	default:
		m.handleTextInput(p, msg)
		return nil
	}
	p.EnsureCursorVisible(rows)
	return nil
}

// activePopover returns the open popover of the focused selector.
func (m *Model) activePopover() *popover {
	field, ok := m.focus.field()
	if !ok {
		return nil
	}
	if p, ok := m.popovers[field]; ok && p.Open {
		return p
	}
	return nil
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta) % int(focusCount)
	if next < 0 {
		next += int(focusCount)
	}
	return m.focusField(focusTarget(next))
}

// focusField moves focus, blurring the previous field so blur validation runs
// and closing any popover it owned.
func (m *Model) focusField(target focusTarget) tea.Cmd {
	prev := m.focus
	if prev != target {
		if field, ok := prev.field(); ok {
			if p, ok := m.popovers[field]; ok {
				p.Hide()
			}
			if ti, ok := m.inputs[field]; ok {
				ti.Blur()
			}
			m.form.Blur(field)
		}
		events.Focus.Move(prev.String(), target.String())
	}
	m.focus = target
	if field, ok := target.field(); ok {
		if ti, ok := m.inputs[field]; ok {
			return ti.Focus()
		}
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	res := m.form.Submit()
	if res.OK {
		return nil
	}
	m.clearToast()
	if fields := res.Errors.Fields(); len(fields) > 0 {
		return m.focusField(focusFor(fields[0]))
	}
	return nil
}

func (m *Model) reset() {
	m.form.Reset()
	m.clearToast()
	for field, p := range m.popovers {
		p.Reset()
		p.Sync(m.form.Field(field).Value)
	}
	for field, ti := range m.inputs {
		ti.SetValue(m.form.Field(field).Value)
	}
	m.focusField(focusSend)
}

// fieldValue is the raw text shown for field.
func (m *Model) fieldValue(field swap.Field) string {
	return m.form.Field(field).Value
}

func (m *Model) syncPopoverViewport(p *popover) {
	if p == nil {
		return
	}
	p.EnsureCursorVisible(m.popoverRows())
}

// popoverRows is the number of list rows an open popover may show.
func (m *Model) popoverRows() int {
	rows := popoverMaxRows
	if m.height <= 0 {
		return rows
	}
	// header, three fields with labels and error lines, button, filter prompt
	used := 1 + 3*3 + 2 + 1
	if m.showFooter {
		used += 2
	}
	if _, ok := m.currentToast(); ok {
		used += 2
	}
	if remain := m.height - used; remain < rows {
		rows = remain
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}
