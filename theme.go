package prompt

import (
	"os"
	"runtime"
)

// CursorPos is a cursor position within a Frame: a row offset from the
// frame's first line and a display column.
type CursorPos struct {
	Row int
	Col int
}

// Frame is the concrete output of one render pass: the styled lines to draw
// and, for Active frames, where the terminal caret belongs.
type Frame struct {
	// Lines are the styled lines, top to bottom, without line terminators.
	Lines []string
	// Cursor is the caret position, meaningful only when ShowCursor is set.
	Cursor CursorPos
	// ShowCursor marks frames that carry an editable input cursor.
	ShowCursor bool
}

// MessageLevel selects the decoration for session-level message lines.
type MessageLevel int

// Message levels accepted by Theme.Line.
const (
	LevelLog MessageLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSuccess
	LevelStep
)

// Theme maps semantic prompt content to concrete terminal output. A theme
// must be deterministic: identical payload, state, and final flag always
// produce an identical Frame, with no hidden state carried between calls.
type Theme interface {
	// Intro returns the lines that open a session bracket.
	Intro(title string) []string
	// Outro returns the lines that close a session bracket. The state is
	// the last prompt's final state, letting themes mark canceled runs.
	Outro(title string, state State) []string
	// Line formats one standalone message line.
	Line(level MessageLevel, message string) string
	// Render produces the Frame for one payload. final is set for the
	// last frame of a prompt (Submit or Cancel).
	Render(payload RenderPayload, state State, final bool) Frame
}

// symbol is a display glyph with an ASCII fallback for terminals without
// reliable Unicode support.
type symbol struct {
	main     string
	fallback string
}

func (s symbol) String() string {
	if unicodeSupported {
		return s.main
	}
	return s.fallback
}

var unicodeSupported = detectUnicode()

func detectUnicode() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "vscode":
		return true
	}
	switch os.Getenv("TERM") {
	case "xterm-256color", "alacritty":
		return true
	}
	return false
}
