package prompt

import (
	"github.com/mattn/go-runewidth"
)

var (
	symStepActive = symbol{"?", "?"}
	symStepError  = symbol{"▲", "x"}
	symStepSubmit = symbol{"✔", "+"}
	symErrorBar   = symbol{"└", "-"}

	symInfo    = symbol{"•", "*"}
	symWarn    = symbol{"▲", "!"}
	symError   = symbol{"✘", "x"}
	symSuccess = symbol{"✓", "+"}
)

// MinimalTheme renders prompts as a compact block: a message line, an
// indented input or body, and optional error and hint lines.
type MinimalTheme struct{}

// NewMinimalTheme creates the compact built-in theme.
func NewMinimalTheme() *MinimalTheme {
	return &MinimalTheme{}
}

// Intro renders the session title as a single bold line.
func (t *MinimalTheme) Intro(title string) []string {
	if title == "" {
		return nil
	}
	return []string{Style(title).Bold().String()}
}

// Outro renders the closing message, marking canceled sessions.
func (t *MinimalTheme) Outro(title string, state State) []string {
	if state == StateCancel {
		return []string{Style(symWarn.String() + " Operation canceled").Fg(ColorYellow).String()}
	}
	if title == "" {
		return nil
	}
	return []string{Style(title).Bold().String()}
}

// Line formats one standalone message line.
func (t *MinimalTheme) Line(level MessageLevel, message string) string {
	switch level {
	case LevelInfo:
		return Style(symInfo.String()).Fg(ColorCyan).String() + " " + message
	case LevelWarn:
		return Style(symWarn.String()).Fg(ColorYellow).String() + " " + message
	case LevelError:
		return Style(symError.String()).Fg(ColorRed).String() + " " + message
	case LevelSuccess:
		return Style(symSuccess.String()).Fg(ColorGreen).String() + " " + message
	case LevelStep:
		return Style(symStepSubmit.String()).Fg(ColorGreen).String() + " " + Style(message).Bold().String()
	default:
		return message
	}
}

// Render produces the frame for one payload.
func (t *MinimalTheme) Render(payload RenderPayload, state State, final bool) Frame {
	switch state {
	case StateSubmit:
		return t.renderSubmit(payload)
	case StateCancel:
		return t.renderCancel(payload)
	default:
		return t.renderActive(payload)
	}
}

func (t *MinimalTheme) renderActive(payload RenderPayload) Frame {
	icon := Style(symStepActive.String()).Fg(ColorCyan).String()
	if payload.Error != "" {
		icon = Style(symStepError.String()).Fg(ColorYellow).String()
	}

	frame := Frame{
		Lines: []string{icon + " " + Style(payload.Message).Bold().String()},
	}

	if !payload.Input.None() {
		text, col, show := renderInputLine(payload.Input, payload.Placeholder)
		frame.Lines = append(frame.Lines, "  "+text)
		if show {
			frame.Cursor = CursorPos{Row: len(frame.Lines) - 1, Col: 2 + col}
			frame.ShowCursor = true
		}
	}

	frame.Lines = append(frame.Lines, payload.Body...)

	if payload.Error != "" {
		line := Style(symErrorBar.String() + " " + payload.Error).Fg(ColorYellow).String()
		frame.Lines = append(frame.Lines, line)
	}
	if payload.Hint != "" {
		frame.Lines = append(frame.Lines, "  "+Style(payload.Hint).Fg(ColorGrey).String())
	}

	return frame
}

func (t *MinimalTheme) renderSubmit(payload RenderPayload) Frame {
	frame := Frame{
		Lines: []string{
			Style(symStepSubmit.String()).Fg(ColorGreen).String() + " " + Style(payload.Message).Bold().String(),
		},
	}
	if value, ok := inputValue(payload.Input); ok {
		frame.Lines = append(frame.Lines, "  "+Style(value).Fg(ColorCyan).String())
	}
	for _, line := range payload.Body {
		frame.Lines = append(frame.Lines, Style(line).Fg(ColorGrey).String())
	}
	return frame
}

func (t *MinimalTheme) renderCancel(payload RenderPayload) Frame {
	return Frame{
		Lines: []string{
			Style(symWarn.String()).Fg(ColorYellow).String() + " " + Style(payload.Message).Bold().String(),
		},
	}
}

// renderInputLine formats the single-line input of a payload and reports the
// cursor's display column within it (for inputs that carry a cursor).
func renderInputLine(in PromptInput, placeholder string) (text string, col int, showCursor bool) {
	switch in.kind {
	case inputCursor:
		if in.cursor.Value() == "" && placeholder != "" {
			return renderPlaceholder(placeholder), 0, true
		}
		left, under, right := in.cursor.Split()
		text = left + Style(under).Reverse().String() + right
		return text, runewidth.StringWidth(left), true
	case inputRaw:
		if in.raw == "" && placeholder != "" {
			return Style(placeholder).Fg(ColorGrey).String(), 0, false
		}
		return in.raw, 0, false
	default:
		return "", 0, false
	}
}

// renderPlaceholder paints the placeholder dimmed with the cursor cell on
// its first character.
func renderPlaceholder(placeholder string) string {
	c := NewTextCursor(placeholder)
	c.MoveHome()
	_, under, right := c.Split()
	return Style(under).Reverse().String() + Style(right).Fg(ColorGrey).String()
}

// inputValue extracts the plain committed value of an input, if any.
func inputValue(in PromptInput) (string, bool) {
	switch in.kind {
	case inputCursor:
		return in.cursor.Value(), true
	case inputRaw:
		return in.raw, true
	default:
		return "", false
	}
}
