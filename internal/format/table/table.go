package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format pads rows to the widest cell of each column. Widths are measured
// with lipgloss so coloured cells line up with plain ones.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			pad := widths[c] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				cells[c] = strings.Repeat(" ", pad) + cell
				continue
			}
			if c == len(row)-1 {
				// no trailing padding on the last column
				cells[c] = cell
				continue
			}
			cells[c] = cell + strings.Repeat(" ", pad)
		}
		out[i] = strings.Join(cells, "  ")
	}
	return out
}

func columnWidths(rows [][]string) []int {
	count := 0
	for _, row := range rows {
		if len(row) > count {
			count = len(row)
		}
	}
	widths := make([]int, count)
	for _, row := range rows {
		for c, cell := range row {
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}
