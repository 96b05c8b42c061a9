package prompt

import "strings"

// passwordMaskWidth is the constant width of the rendered mask. Rendering
// the same width whatever the buffer holds keeps the password's length out
// of the frame, not just its characters.
const passwordMaskWidth = 8

// Password is a text prompt that renders a fixed-width run of mask
// characters in place of the typed value. Neither the value nor its length
// ever appears in a render payload.
type Password struct {
	message  string
	hint     string
	mask     rune
	required bool
	validate func(string) error
	cursor   *TextCursor
	err      string
}

// NewPassword creates a masked text prompt with the given message.
func NewPassword(message string) *Password {
	return &Password{
		message: message,
		mask:    '*',
		cursor:  NewTextCursor(""),
	}
}

// WithHint sets the hint shown alongside the message.
func (p *Password) WithHint(hint string) *Password {
	p.hint = hint
	return p
}

// WithMask replaces the default '*' mask character.
func (p *Password) WithMask(mask rune) *Password {
	p.mask = mask
	return p
}

// WithValidator installs a validation function run on submit.
func (p *Password) WithValidator(validate func(string) error) *Password {
	p.validate = validate
	return p
}

// Required rejects submission of a blank value.
func (p *Password) Required() *Password {
	p.required = true
	return p
}

// Handle implements Prompt.
func (p *Password) Handle(key Key) State {
	if key.Code == KeyEnter {
		if p.required && p.cursor.Empty() {
			p.err = "required"
			return StateActive
		}
		if p.validate != nil {
			if err := p.validate(p.cursor.Value()); err != nil {
				p.err = err.Error()
				return StateActive
			}
		}
		return StateSubmit
	}
	if editCursor(p.cursor, key) {
		p.err = ""
	}
	return StateActive
}

// Render implements Prompt. The payload carries a cursor parked at the end
// of a constant-width mask, never over the real buffer.
func (p *Password) Render(state State) RenderPayload {
	masked := NewTextCursor(strings.Repeat(string(p.mask), passwordMaskWidth))
	return RenderPayload{
		Message: p.message,
		Hint:    p.hint,
		Error:   p.err,
		Input:   InputCursor(masked),
	}
}

// Submit implements Prompt.
func (p *Password) Submit() string {
	return p.cursor.Value()
}
