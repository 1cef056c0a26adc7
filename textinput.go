package strut

import (
	"strings"
	"unicode"
)

// TextBuffer manages editable text content with a cursor, driven by key
// events. It is the editing engine shared by the single-line TextField and
// the multi-line TextArea.
//
// Content is held as runes so cursor arithmetic counts characters, not
// bytes. After every mutation the cursor is clamped to [0, len(content)];
// bounds violations from ordinary interaction (rapid key repeats, stale
// positions) are clamped, never surfaced. Every accepted mutation notifies
// the change handler exactly once.
type TextBuffer struct {
	content []rune
	cursor  int

	multiline   bool
	maxLength   int // 0 = no limit
	placeholder string

	charFilter func(r rune) bool
	onChange   func(text string)
}

// NewTextBuffer returns an empty single-line buffer with the cursor at 0.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{content: make([]rune, 0, 64)}
}

// Text returns the current content.
func (b *TextBuffer) Text() string {
	return string(b.content)
}

// SetText replaces the content without notifying the change handler; it is
// the external-sync path used when an owner pushes a new value down. The
// cursor is clamped to the new length.
func (b *TextBuffer) SetText(text string) {
	if !b.multiline {
		text = stripNewlines(text)
	}
	b.content = []rune(text)
	b.cursor = b.clampPosition(b.cursor)
}

// Len returns the number of characters (runes).
func (b *TextBuffer) Len() int {
	return len(b.content)
}

// Cursor returns the cursor position, always in [0, Len()].
func (b *TextBuffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamped to the content bounds.
func (b *TextBuffer) SetCursor(pos int) {
	b.cursor = b.clampPosition(pos)
}

// SetMultiline switches between single-line and multi-line mode. Turning
// multi-line off flattens any newlines already in the buffer.
func (b *TextBuffer) SetMultiline(multiline bool) {
	b.multiline = multiline
	if !multiline {
		b.SetText(string(b.content))
	}
}

// Multiline reports whether the buffer accepts newline input.
func (b *TextBuffer) Multiline() bool { return b.multiline }

// SetMaxLength caps the content length in runes. 0 removes the cap.
func (b *TextBuffer) SetMaxLength(max int) {
	if max < 0 {
		max = 0
	}
	b.maxLength = max
}

// SetCharFilter installs a predicate that must accept each printable rune
// before it is inserted. nil accepts everything.
func (b *TextBuffer) SetCharFilter(fn func(r rune) bool) {
	b.charFilter = fn
}

// SetPlaceholder sets the hint text widgets show while the buffer is empty.
func (b *TextBuffer) SetPlaceholder(text string) { b.placeholder = text }

// Placeholder returns the hint text.
func (b *TextBuffer) Placeholder() string { return b.placeholder }

// OnChange sets the handler notified after every accepted mutation.
func (b *TextBuffer) OnChange(fn func(text string)) {
	b.onChange = fn
}

// HandleKeyDown runs one transition of the editing state machine and reports
// whether the event was consumed. Unhandled keys (Escape always; Enter and
// vertical arrows in single-line mode) are left to the caller.
func (b *TextBuffer) HandleKeyDown(e KeyEvent) bool {
	word := e.Mods.Ctrl() || e.Mods.Alt()

	switch e.Key {
	case KeyBackspace:
		if word {
			b.deleteWord(false)
		} else {
			b.deleteBackward()
		}
		return true

	case KeyDelete:
		if word {
			b.deleteWord(true)
		} else {
			b.deleteForward()
		}
		return true

	case KeyArrowLeft:
		if word {
			b.cursor = b.findWordStart(b.cursor)
		} else {
			b.cursor = b.clampPosition(b.cursor - 1)
		}
		return true

	case KeyArrowRight:
		if word {
			b.cursor = b.findWordEnd(b.cursor)
		} else {
			b.cursor = b.clampPosition(b.cursor + 1)
		}
		return true

	case KeyArrowUp:
		if !b.multiline {
			return false
		}
		b.moveVertical(-1)
		return true

	case KeyArrowDown:
		if !b.multiline {
			return false
		}
		b.moveVertical(1)
		return true

	case KeyHome:
		if e.Mods.Ctrl() {
			b.cursor = 0
		} else {
			b.cursor = b.findLineStart(b.cursor)
		}
		return true

	case KeyEnd:
		if e.Mods.Ctrl() {
			b.cursor = len(b.content)
		} else {
			b.cursor = b.findLineEnd(b.cursor)
		}
		return true

	case KeyEnter:
		if !b.multiline {
			// Caller decides (commit, blur, ...).
			return false
		}
		return b.insertRune('\n')

	case KeyEscape:
		return false
	}

	if e.Rune != 0 && unicode.IsGraphic(e.Rune) && !e.Mods.Ctrl() && !e.Mods.Super() {
		return b.insertRune(e.Rune)
	}
	return false
}

// Insert inserts text at the cursor, honoring the max-length cap and the
// char filter rune by rune. Single-line mode drops newlines.
func (b *TextBuffer) Insert(text string) {
	if !b.multiline {
		text = stripNewlines(text)
	}
	inserted := false
	for _, r := range text {
		if b.insertOne(r) {
			inserted = true
		}
	}
	if inserted {
		b.notifyChange()
	}
}

// insertRune inserts a single rune. The key is consumed either way; a rune
// rejected by the filter or the length cap just mutates nothing.
func (b *TextBuffer) insertRune(r rune) bool {
	if b.insertOne(r) {
		b.notifyChange()
	}
	return true
}

// insertOne splices one rune at the cursor if the cap allows it.
func (b *TextBuffer) insertOne(r rune) bool {
	if b.maxLength > 0 && len(b.content) >= b.maxLength {
		return false
	}
	if r != '\n' && b.charFilter != nil && !b.charFilter(r) {
		return false
	}
	b.content = append(b.content, 0)
	copy(b.content[b.cursor+1:], b.content[b.cursor:])
	b.content[b.cursor] = r
	b.cursor = b.clampPosition(b.cursor + 1)
	return true
}

// deleteBackward removes the character before the cursor, if any.
func (b *TextBuffer) deleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.cursor = b.clampPosition(b.cursor - 1)
	b.notifyChange()
}

// deleteForward removes the character at the cursor, if any.
func (b *TextBuffer) deleteForward() {
	if b.cursor >= len(b.content) {
		return
	}
	b.content = append(b.content[:b.cursor], b.content[b.cursor+1:]...)
	b.notifyChange()
}

// deleteWord removes from the cursor to the adjacent word boundary.
func (b *TextBuffer) deleteWord(forward bool) {
	if forward {
		end := b.findWordEnd(b.cursor)
		if end == b.cursor {
			return
		}
		b.content = append(b.content[:b.cursor], b.content[end:]...)
	} else {
		start := b.findWordStart(b.cursor)
		if start == b.cursor {
			return
		}
		b.content = append(b.content[:start], b.content[b.cursor:]...)
		b.cursor = start
	}
	b.cursor = b.clampPosition(b.cursor)
	b.notifyChange()
}

// moveVertical moves the cursor to the same column on the previous or next
// newline-delimited line, clamped to that line's length. The column is
// re-derived from the cursor on every move; there is no sticky desired
// column across consecutive vertical moves.
func (b *TextBuffer) moveVertical(delta int) {
	lineStart := b.findLineStart(b.cursor)
	column := b.cursor - lineStart

	if delta < 0 {
		if lineStart == 0 {
			// Already on the first line.
			b.cursor = 0
			return
		}
		prevStart := b.findLineStart(lineStart - 1)
		prevEnd := lineStart - 1
		b.cursor = minInt(prevStart+column, prevEnd)
		return
	}

	lineEnd := b.findLineEnd(b.cursor)
	if lineEnd >= len(b.content) {
		// Already on the last line.
		b.cursor = len(b.content)
		return
	}
	nextStart := lineEnd + 1
	nextEnd := b.findLineEnd(nextStart)
	b.cursor = minInt(nextStart+column, nextEnd)
}

// findLineStart returns the index just after the previous newline, or 0.
func (b *TextBuffer) findLineStart(pos int) int {
	pos = b.clampPosition(pos)
	for pos > 0 && b.content[pos-1] != '\n' {
		pos--
	}
	return pos
}

// findLineEnd returns the index of the next newline, or the content length.
func (b *TextBuffer) findLineEnd(pos int) int {
	pos = b.clampPosition(pos)
	for pos < len(b.content) && b.content[pos] != '\n' {
		pos++
	}
	return pos
}

// findWordStart returns the start of the word before pos, skipping any
// whitespace run between.
func (b *TextBuffer) findWordStart(pos int) int {
	pos = b.clampPosition(pos)
	for pos > 0 && unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	return pos
}

// findWordEnd returns the end of the word after pos, skipping any
// whitespace run between.
func (b *TextBuffer) findWordEnd(pos int) int {
	pos = b.clampPosition(pos)
	for pos < len(b.content) && unicode.IsSpace(b.content[pos]) {
		pos++
	}
	for pos < len(b.content) && !unicode.IsSpace(b.content[pos]) {
		pos++
	}
	return pos
}

// clampPosition bounds a cursor position to [0, len(content)].
func (b *TextBuffer) clampPosition(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}

func (b *TextBuffer) notifyChange() {
	if b.onChange != nil {
		b.onChange(string(b.content))
	}
}

func stripNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
