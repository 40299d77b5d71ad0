package ui

import (
	"strings"

	"github.com/atomicstack/swap-form/internal/swap"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 24)
	lines = append(lines, styledLine{text: defaultTitle, style: styles.Header})
	for _, field := range swap.Fields {
		lines = append(lines, m.fieldLines(field)...)
	}
	lines = append(lines, styledLine{}, m.buttonLine())

	if t, ok := m.currentToast(); ok {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: t.title, style: styles.ToastTitle})
		for _, body := range strings.Split(t.body, "\n") {
			lines = append(lines, styledLine{text: body, style: styles.ToastBody})
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.keys.helpLine(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
