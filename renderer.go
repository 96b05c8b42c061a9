package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderer redraws a Frame in place over the previously drawn one.
//
// Every draw re-queries the terminal width and recomputes how many physical
// rows the previous frame occupies at that width, so a resize between frames
// never leaves stale rows behind. When the incoming frame is identical to the
// one on screen and the width has not changed, draw writes nothing at all.
type renderer struct {
	driver    Driver
	prev      Frame
	prevWidth int
	drawn     bool // a frame is currently on screen
}

func newRenderer(driver Driver) *renderer {
	return &renderer{driver: driver}
}

// width returns the current terminal width, falling back to a conventional
// default when the driver cannot report one.
func (r *renderer) width() int {
	w, _, err := r.driver.Size()
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// draw replaces the on-screen frame with frame. It is a no-op when nothing
// changed since the last draw.
func (r *renderer) draw(frame Frame) error {
	w := r.width()
	if r.drawn && w == r.prevWidth && r.prev.equal(frame) {
		return nil
	}
	if err := r.clear(w); err != nil {
		return err
	}
	if err := r.write(frame, w); err != nil {
		return err
	}
	r.prev = frame
	r.prevWidth = w
	r.drawn = true
	return r.driver.Flush()
}

// finish draws the final frame for a prompt and moves past it, so the block
// becomes permanent scrollback and the next prompt starts on a fresh line.
func (r *renderer) finish(frame Frame) error {
	w := r.width()
	if err := r.clear(w); err != nil {
		return err
	}
	if err := r.write(frame, w); err != nil {
		return err
	}
	if _, err := r.driver.Write([]byte("\r\n")); err != nil {
		return err
	}
	r.prev = Frame{}
	r.drawn = false
	return r.driver.Flush()
}

// lines writes raw theme lines outside any live frame, such as intro banners
// and session messages. It must not be called while a frame is on screen.
func (r *renderer) lines(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	if _, err := r.driver.Write([]byte(b.String())); err != nil {
		return err
	}
	return r.driver.Flush()
}

// clear moves the caret back to the first row of the previous frame and
// erases everything below it. The previous row count is recomputed against
// the width in effect now, not the width at the time it was drawn.
func (r *renderer) clear(w int) error {
	if !r.drawn {
		return nil
	}
	var b strings.Builder
	b.WriteString("\r")
	if up := r.caretRow(w); up > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", up)
	}
	b.WriteString("\x1b[J")
	_, err := r.driver.Write([]byte(b.String()))
	return err
}

// write emits the frame body and leaves the caret where the frame asks for
// it, or parked at the end of the last row when the caret is hidden.
func (r *renderer) write(frame Frame, w int) error {
	var b strings.Builder
	for i, line := range frame.Lines {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(line)
	}
	if frame.ShowCursor {
		total := r.rows(frame.Lines, w)
		row, col := r.caretTarget(frame, w)
		if up := total - 1 - row; up > 0 {
			fmt.Fprintf(&b, "\x1b[%dA", up)
		}
		b.WriteString("\r")
		if col > 0 {
			fmt.Fprintf(&b, "\x1b[%dC", col)
		}
	}
	_, err := r.driver.Write([]byte(b.String()))
	return err
}

// rows counts the physical rows the lines occupy at width w, accounting for
// soft wrapping of lines wider than the terminal.
func (r *renderer) rows(lines []string, w int) int {
	if len(lines) == 0 {
		return 0
	}
	total := 0
	for _, line := range lines {
		total += r.lineRows(line, w)
	}
	return total
}

func (r *renderer) lineRows(line string, w int) int {
	dw := ansi.StringWidth(line)
	if dw <= w {
		return 1
	}
	return (dw + w - 1) / w
}

// prevRows reports how many physical rows the previous frame occupies at the
// current width.
func (r *renderer) prevRows(w int) int {
	return r.rows(r.prev.Lines, w)
}

// caretRow reports the physical row the caret was left on after the previous
// draw, measured from the top of the block.
func (r *renderer) caretRow(w int) int {
	if r.prev.ShowCursor {
		row, _ := r.caretTarget(r.prev, w)
		return row
	}
	rows := r.prevRows(w)
	if rows == 0 {
		return 0
	}
	return rows - 1
}

// caretTarget translates a frame's logical cursor position into a physical
// row and column at width w.
func (r *renderer) caretTarget(frame Frame, w int) (row, col int) {
	cur := frame.Cursor
	if cur.Row < 0 {
		cur.Row = 0
	}
	if cur.Row >= len(frame.Lines) {
		cur.Row = len(frame.Lines) - 1
	}
	for i := 0; i < cur.Row; i++ {
		row += r.lineRows(frame.Lines[i], w)
	}
	col = cur.Col
	if col < 0 {
		col = 0
	}
	if w > 0 && col >= w {
		row += col / w
		col %= w
	}
	return row, col
}

// equal reports whether two frames would render the same bytes.
func (f Frame) equal(other Frame) bool {
	if len(f.Lines) != len(other.Lines) {
		return false
	}
	for i, line := range f.Lines {
		if line != other.Lines[i] {
			return false
		}
	}
	return f.Cursor == other.Cursor && f.ShowCursor == other.ShowCursor
}
