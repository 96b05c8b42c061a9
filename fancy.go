package prompt

var (
	symFancyActive = symbol{"◆", "*"}
	symFancyError  = symbol{"▲", "x"}
	symFancySubmit = symbol{"◇", "o"}

	symBarStart = symbol{"┌", ","}
	symBar      = symbol{"│", "|"}
	symBarEnd   = symbol{"└", "`"}
)

// FancyTheme renders prompts inside a bordered block with connector glyphs
// between the message, input, body, and end lines.
type FancyTheme struct{}

// NewFancyTheme creates the bordered built-in theme.
func NewFancyTheme() *FancyTheme {
	return &FancyTheme{}
}

// Intro opens the session border with a highlighted title cell.
func (t *FancyTheme) Intro(title string) []string {
	if title == "" {
		title = "Session"
	}
	return []string{
		Style(symBarStart.String()).Fg(ColorGrey).String() + "  " +
			Style(" "+title+" ").Reverse().Fg(ColorCyan).String(),
		Style(symBar.String()).Fg(ColorGrey).String(),
	}
}

// Outro closes the session border.
func (t *FancyTheme) Outro(title string, state State) []string {
	if state == StateCancel {
		return []string{
			Style(symBarEnd.String()).Fg(ColorYellow).String() + "  " +
				Style("Operation canceled "+symWarn.String()).Fg(ColorYellow).String(),
		}
	}
	return []string{
		Style(symBarEnd.String()).Fg(ColorGrey).String() + "  " + Style(title).Bold().String(),
	}
}

// Line formats one standalone message line behind the session bar.
func (t *FancyTheme) Line(level MessageLevel, message string) string {
	bar := Style(symBar.String()).Fg(ColorGrey).String()
	switch level {
	case LevelInfo:
		return bar + "  " + Style(symInfo.String()).Fg(ColorCyan).String() + " " + message
	case LevelWarn:
		return bar + "  " + Style(symWarn.String()).Fg(ColorYellow).String() + " " + message
	case LevelError:
		return bar + "  " + Style(symError.String()).Fg(ColorRed).String() + " " + message
	case LevelSuccess:
		return bar + "  " + Style(symSuccess.String()).Fg(ColorGreen).String() + " " + message
	case LevelStep:
		return Style(symFancySubmit.String()).Fg(ColorGreen).String() + "  " + Style(message).Bold().String()
	default:
		return bar + "  " + message
	}
}

// Render produces the frame for one payload.
func (t *FancyTheme) Render(payload RenderPayload, state State, final bool) Frame {
	switch state {
	case StateSubmit:
		return t.renderFinal(payload, ColorGrey, symFancySubmit)
	case StateCancel:
		return t.renderFinal(payload, ColorYellow, symFancySubmit)
	default:
		return t.renderActive(payload)
	}
}

func (t *FancyTheme) renderActive(payload RenderPayload) Frame {
	color := ColorCyan
	icon := symFancyActive
	if payload.Error != "" {
		color = ColorYellow
		icon = symFancyError
	}

	frame := Frame{
		Lines: []string{t.messageLine(icon, color, payload.Message, payload.Hint)},
	}

	if !payload.Input.None() {
		text, col, show := renderInputLine(payload.Input, payload.Placeholder)
		frame.Lines = append(frame.Lines, t.barLine(color, text))
		if show {
			frame.Cursor = CursorPos{Row: len(frame.Lines) - 1, Col: barIndent + col}
			frame.ShowCursor = true
		}
	}

	for _, line := range payload.Body {
		frame.Lines = append(frame.Lines, t.barLine(color, line))
	}

	end := Style(symBarEnd.String()).Fg(color).String()
	if payload.Error != "" {
		end += "  " + Style(payload.Error).Fg(ColorYellow).String()
	}
	frame.Lines = append(frame.Lines, end)

	return frame
}

func (t *FancyTheme) renderFinal(payload RenderPayload, color Color, icon symbol) Frame {
	frame := Frame{
		Lines: []string{t.messageLine(icon, color, payload.Message, "")},
	}
	if value, ok := inputValue(payload.Input); ok {
		frame.Lines = append(frame.Lines, t.barLine(ColorGrey, Style(value).Fg(ColorGrey).String()))
	}
	for _, line := range payload.Body {
		frame.Lines = append(frame.Lines, t.barLine(ColorGrey, Style(line).Fg(ColorGrey).String()))
	}
	frame.Lines = append(frame.Lines, Style(symBar.String()).Fg(ColorGrey).String())
	return frame
}

// barIndent is the display width of the "│  " connector prefix.
const barIndent = 3

func (t *FancyTheme) barLine(color Color, content string) string {
	return Style(symBar.String()).Fg(color).String() + "  " + content
}

func (t *FancyTheme) messageLine(icon symbol, color Color, message, hint string) string {
	line := Style(icon.String()).Fg(color).String() + "  " + Style(message).Bold().String()
	if hint != "" {
		line += " " + Style("("+hint+")").Fg(ColorGrey).String()
	}
	return line
}
