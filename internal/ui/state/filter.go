package state

import (
	"strings"
	"unicode"
)

// SetFilter replaces the filter text and moves the filter cursor to cursor.
// Starting a filter remembers the highlight so clearing it can restore the
// previous choice; while filtering, the best match is highlighted.
func (p *Popover) SetFilter(query string, cursor int) {
	wasFiltering := strings.TrimSpace(p.Filter) != ""
	needle := strings.TrimSpace(query)
	p.Filter = query
	p.FilterCursor = clampRune(cursor, len([]rune(query)))

	if needle != "" && !wasFiltering {
		p.LastCursor = p.Cursor
	}
	p.applyFilter()

	switch {
	case needle != "":
		if idx := BestMatchIndex(p.Items, needle); idx >= 0 {
			p.Cursor = idx
		}
	case wasFiltering:
		if p.LastCursor >= 0 && p.LastCursor < len(p.Items) {
			p.Cursor = p.LastCursor
		} else {
			p.Cursor = 0
		}
		p.LastCursor = -1
	}
}

func (p *Popover) applyFilter() {
	p.Items = p.registry.Filter(p.Filter)
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if p.ViewportOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (p *Popover) FilterCursorPos() int {
	return clampRune(p.FilterCursor, len([]rune(p.Filter)))
}

// InsertFilterText inserts text into the filter at the cursor position.
func (p *Popover) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (p *Popover) DeleteFilterRuneBackward() bool {
	pos := p.FilterCursorPos()
	if pos == 0 {
		return false
	}
	return p.cutFilter(pos-1, pos)
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (p *Popover) DeleteFilterWordBackward() bool {
	pos := p.FilterCursorPos()
	if pos == 0 {
		return false
	}
	return p.cutFilter(wordStart([]rune(p.Filter), pos), pos)
}

// ClearFilter empties the filter. It reports false when already empty.
func (p *Popover) ClearFilter() bool {
	if p.Filter == "" {
		return false
	}
	p.SetFilter("", 0)
	return true
}

func (p *Popover) cutFilter(from, to int) bool {
	runes := []rune(p.Filter)
	if from < 0 || to > len(runes) || from >= to {
		return false
	}
	updated := append(append([]rune{}, runes[:from]...), runes[to:]...)
	p.SetFilter(string(updated), from)
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (p *Popover) MoveFilterCursorStart() bool {
	return p.moveFilterCursorTo(0)
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (p *Popover) MoveFilterCursorEnd() bool {
	return p.moveFilterCursorTo(len([]rune(p.Filter)))
}

// MoveFilterCursorWordBackward moves the filter cursor one word backward.
func (p *Popover) MoveFilterCursorWordBackward() bool {
	return p.moveFilterCursorTo(wordStart([]rune(p.Filter), p.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the filter cursor one word forward.
func (p *Popover) MoveFilterCursorWordForward() bool {
	return p.moveFilterCursorTo(wordEnd([]rune(p.Filter), p.FilterCursorPos()))
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (p *Popover) MoveFilterCursorRuneBackward() bool {
	return p.moveFilterCursorTo(p.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (p *Popover) MoveFilterCursorRuneForward() bool {
	return p.moveFilterCursorTo(p.FilterCursorPos() + 1)
}

func (p *Popover) moveFilterCursorTo(pos int) bool {
	pos = clampRune(pos, len([]rune(p.Filter)))
	if pos == p.FilterCursorPos() {
		return false
	}
	p.FilterCursor = pos
	return true
}

func clampRune(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}

// wordStart skips whitespace then a word, scanning left from pos.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// wordEnd skips a word then whitespace, scanning right from pos.
func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

// BestMatchIndex returns the index to highlight for query: an exact match,
// then the first prefix match, then the first substring match.
func BestMatchIndex(items []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(items) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item), lower) {
			return i
		}
	}
	return 0
}
