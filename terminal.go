package prompt

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Driver is the terminal I/O backend a Session runs against. The core is
// driver-agnostic: it depends only on this interface, so alternative
// backends (or test doubles) plug in without touching the orchestrator or
// the diff engine.
type Driver interface {
	// SetRaw enters raw input mode. Reversible via Restore.
	SetRaw() error
	// Restore returns the terminal to the state captured by SetRaw.
	Restore() error
	// ReadKey blocks for the next normalized key event.
	ReadKey() (Key, error)
	// Size returns the terminal dimensions with safe fallbacks.
	Size() (width, height int, err error)
	// Write queues raw bytes for the terminal.
	Write(p []byte) (int, error)
	// Flush forces queued bytes out.
	Flush() error
	// Close releases the backend and prevents descriptor leaks.
	Close() error
}

// Terminal is the production Driver. It reads keys through go-tty, manages
// raw mode through golang.org/x/term, and routes output through go-colorable
// on Windows for ANSI support.
//
// The 'closed' flag prevents a double Close, which panics on Windows, and
// Size falls back to 80x24 so layout code never divides by zero.
type Terminal struct {
	tty           *tty.TTY
	output        io.Writer
	decoder       *keyDecoder
	closed        bool
	stdinFd       int
	originalState *term.State
}

// NewTerminal opens the process's controlling terminal.
func NewTerminal() (*Terminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	d := &Terminal{
		tty:     t,
		output:  output,
		stdinFd: int(os.Stdin.Fd()),
	}
	d.decoder = newKeyDecoder(
		func() (rune, error) {
			r, err := t.ReadRune()
			return r, err
		},
		t.Buffered,
	)
	return d, nil
}

// SetRaw captures the current terminal state and enters raw mode.
func (t *Terminal) SetRaw() error {
	if !term.IsTerminal(t.stdinFd) {
		return nil
	}
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state
	if _, err := term.MakeRaw(t.stdinFd); err != nil {
		return err
	}
	return nil
}

// Restore reinstates the state captured by SetRaw. Safe to call when raw
// mode was never entered, so teardown paths can call it unconditionally.
func (t *Terminal) Restore() error {
	if t.originalState == nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	// Drop the state so the next SetRaw captures a fresh baseline.
	t.originalState = nil
	return err
}

// ReadKey blocks for the next normalized key event.
func (t *Terminal) ReadKey() (Key, error) {
	return t.decoder.Next()
}

// Size returns the terminal dimensions, falling back to 80x24 when the
// query fails or reports a degenerate size.
func (t *Terminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

// Write queues raw bytes for the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.output.Write(p)
}

// Flush forces queued output out. Stdout is unbuffered here, so this only
// defers to writers that buffer.
func (t *Terminal) Flush() error {
	type flusher interface{ Flush() error }
	if f, ok := t.output.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close releases the TTY. Safe to call more than once.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}
