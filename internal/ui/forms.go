package ui

import (
	"github.com/atomicstack/swap-form/internal/swap"
	"github.com/charmbracelet/lipgloss"
)

const (
	checkmark     = "✓ "
	uncheckedMark = "  "
	fieldIndent   = "  "
)

// fieldLines renders a field label, its control, an open popover, the help
// text and the field's error message.
func (m *Model) fieldLines(field swap.Field) []styledLine {
	focused := m.focus == focusFor(field)
	labelStyle := styles.FieldLabel
	if focused {
		labelStyle = styles.FocusedLabel
	}
	lines := []styledLine{{text: field.Label(), style: labelStyle}}

	if p, ok := m.popovers[field]; ok {
		lines = append(lines, m.selectorLine(field, focused))
		if p.Open {
			lines = append(lines, m.popoverLines(p)...)
		}
	} else if ti, ok := m.inputs[field]; ok {
		lines = append(lines, styledLine{text: fieldIndent + ti.View(), raw: true})
	}

	if desc := field.Description(); desc != "" {
		lines = append(lines, styledLine{text: fieldIndent + desc, style: styles.FieldDescription})
	}
	if state := m.form.Field(field); state.Error != nil {
		msg := state.Message()
		if hint := state.Error.Hint(); hint != "" {
			msg += " (" + hint + ")"
		}
		lines = append(lines, styledLine{text: fieldIndent + msg, style: styles.FieldError})
	}
	return lines
}

func (m *Model) selectorLine(field swap.Field, focused bool) styledLine {
	value := m.fieldValue(field)
	style := styles.Selector
	if value == "" {
		value = selectorEmpty
		style = styles.Placeholder
	}
	if focused {
		style = styles.FocusedSelector
	}
	return styledLine{text: fieldIndent + "[ " + value + " ▾ ]", style: style}
}

func (m *Model) popoverLines(p *popover) []styledLine {
	lines := []styledLine{{text: fieldIndent + m.filterPrompt(p), raw: true}}
	if p.Empty() {
		return append(lines, styledLine{text: fieldIndent + popoverNotFound, style: styles.Empty})
	}
	rows := m.popoverRows()
	p.EnsureCursorVisible(rows)
	items, start := p.Visible(rows)
	for i, symbol := range items {
		lines = append(lines, m.popoverItemLine(p, symbol, start+i == p.Cursor))
	}
	return lines
}

func (m *Model) popoverItemLine(p *popover, symbol string, highlighted bool) styledLine {
	style := styles.Item
	if highlighted {
		style = styles.SelectedItem
	}
	mark := uncheckedMark
	var prefixStyle *lipgloss.Style
	if p.IsSelected(symbol) {
		mark = checkmark
		prefixStyle = styles.Checkmark
	}
	prefix := fieldIndent + mark
	return styledLine{
		text:          prefix + symbol,
		style:         style,
		prefixStyle:   prefixStyle,
		highlightFrom: len([]rune(prefix)),
	}
}

func (m *Model) buttonLine() styledLine {
	style := styles.Button
	if m.focus == focusSubmit {
		style = styles.FocusedButton
	}
	return styledLine{text: "[ " + defaultTitle + " ]", style: style}
}
