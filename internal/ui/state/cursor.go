package state

import "github.com/atomicstack/swap-form/internal/logging/events"

// MoveCursorUp highlights the previous symbol, wrapping to the last.
func (p *Popover) MoveCursorUp() bool {
	n := len(p.Items)
	if n == 0 {
		return false
	}
	if p.Cursor > 0 {
		p.Cursor--
	} else {
		p.Cursor = n - 1
	}
	events.Popover.Cursor(p.ID, p.Cursor)
	return true
}

// MoveCursorDown highlights the next symbol, wrapping to the first.
func (p *Popover) MoveCursorDown() bool {
	n := len(p.Items)
	if n == 0 {
		return false
	}
	if p.Cursor < n-1 {
		p.Cursor++
	} else {
		p.Cursor = 0
	}
	events.Popover.Cursor(p.ID, p.Cursor)
	return true
}

// MoveCursorHome highlights the first symbol.
func (p *Popover) MoveCursorHome() bool {
	return p.moveCursorTo(0)
}

// MoveCursorEnd highlights the last symbol.
func (p *Popover) MoveCursorEnd() bool {
	return p.moveCursorTo(len(p.Items) - 1)
}

// MoveCursorPageUp moves the highlight up by one page.
func (p *Popover) MoveCursorPageUp(maxVisible int) bool {
	return p.moveCursorTo(p.Cursor - p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the highlight down by one page.
func (p *Popover) MoveCursorPageDown(maxVisible int) bool {
	return p.moveCursorTo(p.Cursor + p.pageSize(maxVisible))
}

// moveCursorTo clamps target into the visible list and reports movement.
func (p *Popover) moveCursorTo(target int) bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	if target < 0 {
		target = 0
	}
	if target > n-1 {
		target = n - 1
	}
	if target == p.Cursor {
		return false
	}
	p.Cursor = target
	events.Popover.Cursor(p.ID, p.Cursor)
	return true
}

func (p *Popover) pageSize(maxVisible int) int {
	total := len(p.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the highlight stays on
// screen when at most maxVisible rows are shown.
func (p *Popover) EnsureCursorVisible(maxVisible int) {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	p.Cursor = clampRune(p.Cursor, n-1)
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	p.ViewportOffset = clampRune(p.ViewportOffset, maxOffset)
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if last := p.ViewportOffset + maxVisible - 1; p.Cursor > last {
		p.ViewportOffset = clampRune(p.Cursor-maxVisible+1, maxOffset)
	}
}

// Visible returns the slice of items inside the viewport and its start index.
func (p *Popover) Visible(maxVisible int) ([]string, int) {
	p.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(p.Items) <= maxVisible {
		return p.Items, 0
	}
	start := p.ViewportOffset
	return p.Items[start : start+maxVisible], start
}
