package prompt

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TextCursor is an editable line buffer with a cursor index, used by the
// text-entry prompts (Input, Password, Number). The buffer is a sequence of
// Unicode scalar values; the cursor index is always within [0, len].
type TextCursor struct {
	buffer []rune
	cursor int
}

// NewTextCursor creates a cursor over value with the cursor at the end.
func NewTextCursor(value string) *TextCursor {
	buf := []rune(value)
	return &TextCursor{buffer: buf, cursor: len(buf)}
}

// Value returns the buffer contents.
func (c *TextCursor) Value() string {
	return string(c.buffer)
}

// SetValue replaces the buffer and clamps the cursor to the new bounds.
func (c *TextCursor) SetValue(value string) {
	c.buffer = []rune(value)
	if c.cursor > len(c.buffer) {
		c.cursor = len(c.buffer)
	}
}

// SetCursor moves the cursor to index, clamped to the buffer bounds.
func (c *TextCursor) SetCursor(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(c.buffer) {
		index = len(c.buffer)
	}
	c.cursor = index
}

// Cursor returns the cursor index in scalar values.
func (c *TextCursor) Cursor() int {
	return c.cursor
}

// Len returns the buffer length in scalar values.
func (c *TextCursor) Len() int {
	return len(c.buffer)
}

// Col returns the display column of the cursor, accounting for wide
// characters before it.
func (c *TextCursor) Col() int {
	return runewidth.StringWidth(string(c.buffer[:c.cursor]))
}

// Empty reports whether the buffer is blank (empty or whitespace only).
func (c *TextCursor) Empty() bool {
	return strings.TrimSpace(string(c.buffer)) == ""
}

// Split returns the text before the cursor, the character under the cursor,
// and the text after it. When the cursor sits past the last character the
// middle part is a single space, so themes always have a cell to highlight.
func (c *TextCursor) Split() (left, under, right string) {
	left = string(c.buffer[:c.cursor])
	if c.cursor >= len(c.buffer) {
		return left, " ", ""
	}
	return left, string(c.buffer[c.cursor]), string(c.buffer[c.cursor+1:])
}

// MoveLeft moves the cursor one scalar value left.
func (c *TextCursor) MoveLeft() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveRight moves the cursor one scalar value right.
func (c *TextCursor) MoveRight() {
	if c.cursor < len(c.buffer) {
		c.cursor++
	}
}

// MoveHome moves the cursor to the start of the buffer.
func (c *TextCursor) MoveHome() {
	c.cursor = 0
}

// MoveEnd moves the cursor past the last character.
func (c *TextCursor) MoveEnd() {
	c.cursor = len(c.buffer)
}

// Insert places r at the cursor and advances past it.
func (c *TextCursor) Insert(r rune) {
	c.buffer = append(c.buffer[:c.cursor], append([]rune{r}, c.buffer[c.cursor:]...)...)
	c.cursor++
}

// DeleteLeft removes the character before the cursor.
func (c *TextCursor) DeleteLeft() {
	if c.cursor == 0 {
		return
	}
	c.buffer = append(c.buffer[:c.cursor-1], c.buffer[c.cursor:]...)
	c.cursor--
}

// DeleteRight removes the character at the cursor.
func (c *TextCursor) DeleteRight() {
	if c.cursor >= len(c.buffer) {
		return
	}
	c.buffer = append(c.buffer[:c.cursor], c.buffer[c.cursor+1:]...)
}

// DeleteWordLeft removes the word before the cursor, plus any whitespace
// between it and the cursor.
func (c *TextCursor) DeleteWordLeft() {
	start := c.prevWordIndex()
	c.buffer = append(c.buffer[:start], c.buffer[c.cursor:]...)
	c.cursor = start
}

// DeleteToEnd removes everything from the cursor to the end of the buffer.
func (c *TextCursor) DeleteToEnd() {
	c.buffer = c.buffer[:c.cursor]
}

// DeleteAll clears the buffer.
func (c *TextCursor) DeleteAll() {
	c.buffer = c.buffer[:0]
	c.cursor = 0
}

func (c *TextCursor) prevWordIndex() int {
	foundWord := false
	for i := c.cursor - 1; i >= 0; i-- {
		if unicode.IsSpace(c.buffer[i]) {
			if foundWord {
				return i + 1
			}
		} else {
			foundWord = true
		}
	}
	return 0
}
