package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Number is a numeric prompt. Typing is filtered to characters that can
// still form a number, and Up/Down step the value by a configurable amount.
type Number struct {
	message  string
	hint     string
	min      float64
	max      float64
	step     float64
	validate func(float64) error
	cursor   *TextCursor
	err      string
}

// NewNumber creates a numeric prompt with the given message. The range is
// unbounded until narrowed with WithMin and WithMax.
func NewNumber(message string) *Number {
	return &Number{
		message: message,
		min:     math.Inf(-1),
		max:     math.Inf(1),
		step:    1,
		cursor:  NewTextCursor(""),
	}
}

// WithHint sets the hint shown alongside the message.
func (n *Number) WithHint(hint string) *Number {
	n.hint = hint
	return n
}

// WithMin sets the smallest accepted value.
func (n *Number) WithMin(min float64) *Number {
	n.min = min
	return n
}

// WithMax sets the largest accepted value.
func (n *Number) WithMax(max float64) *Number {
	n.max = max
	return n
}

// WithStep sets the Up/Down increment. The default is 1.
func (n *Number) WithStep(step float64) *Number {
	n.step = step
	return n
}

// WithValidator installs a validation function run on submit, after the
// range check.
func (n *Number) WithValidator(validate func(float64) error) *Number {
	n.validate = validate
	return n
}

// WithDefault pre-fills the prompt with value.
func (n *Number) WithDefault(value float64) *Number {
	n.cursor.SetValue(strconv.FormatFloat(value, 'f', -1, 64))
	n.cursor.MoveEnd()
	return n
}

// Handle implements Prompt.
func (n *Number) Handle(key Key) State {
	switch {
	case key.Code == KeyEnter:
		if _, msg := n.parse(); msg != "" {
			n.err = msg
			return StateActive
		}
		return StateSubmit
	case key.Code == KeyUp:
		n.stepBy(n.step)
	case key.Code == KeyDown:
		n.stepBy(-n.step)
	case key.Code == KeyChar && !key.Mods.Has(ModCtrl) && !key.Mods.Has(ModAlt):
		if n.accepts(key.Rune) {
			n.cursor.Insert(key.Rune)
			n.err = ""
		}
	default:
		if editCursor(n.cursor, key) {
			n.err = ""
		}
	}
	return StateActive
}

// accepts reports whether typing r at the current cursor position can still
// produce a number: digits anywhere, one leading sign, one decimal point.
func (n *Number) accepts(r rune) bool {
	switch {
	case unicode.IsDigit(r):
		return true
	case r == '-' || r == '+':
		return n.cursor.Cursor() == 0 && !strings.ContainsAny(n.cursor.Value(), "-+")
	case r == '.':
		return !strings.ContainsRune(n.cursor.Value(), '.')
	}
	return false
}

func (n *Number) parse() (float64, string) {
	raw := strings.TrimSpace(n.cursor.Value())
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, "invalid number"
	}
	if v < n.min || v > n.max {
		return 0, n.rangeError()
	}
	if n.validate != nil {
		if err := n.validate(v); err != nil {
			return 0, err.Error()
		}
	}
	return v, ""
}

func (n *Number) rangeError() string {
	switch {
	case math.IsInf(n.min, -1):
		return fmt.Sprintf("must be at most %s", formatNumber(n.max))
	case math.IsInf(n.max, 1):
		return fmt.Sprintf("must be at least %s", formatNumber(n.min))
	}
	return fmt.Sprintf("must be between %s and %s", formatNumber(n.min), formatNumber(n.max))
}

// stepBy adjusts the current value by delta, clamped to the configured
// range. An unparsable buffer steps from zero.
func (n *Number) stepBy(delta float64) {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.cursor.Value()), 64)
	if err != nil {
		v = 0
	}
	v += delta
	if v < n.min {
		v = n.min
	}
	if v > n.max {
		v = n.max
	}
	n.cursor.SetValue(formatNumber(v))
	n.cursor.MoveEnd()
	n.err = ""
}

// Render implements Prompt.
func (n *Number) Render(state State) RenderPayload {
	return RenderPayload{
		Message: n.message,
		Hint:    n.hint,
		Error:   n.err,
		Input:   InputCursor(n.cursor),
	}
}

// Submit implements Prompt.
func (n *Number) Submit() float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(n.cursor.Value()), 64)
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
