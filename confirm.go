package prompt

// Confirm is a yes/no prompt. Typing y or n submits immediately; arrow keys
// flip the highlighted answer and Enter submits it.
type Confirm struct {
	message string
	hint    string
	value   bool
}

// NewConfirm creates a yes/no prompt with the given message. The answer
// defaults to no.
func NewConfirm(message string) *Confirm {
	return &Confirm{message: message}
}

// WithHint sets the hint shown alongside the message.
func (c *Confirm) WithHint(hint string) *Confirm {
	c.hint = hint
	return c
}

// WithDefault sets the initially highlighted answer.
func (c *Confirm) WithDefault(value bool) *Confirm {
	c.value = value
	return c
}

// Handle implements Prompt.
func (c *Confirm) Handle(key Key) State {
	switch key.Code {
	case KeyEnter:
		return StateSubmit
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyTab:
		c.value = !c.value
	case KeyChar:
		switch key.Rune {
		case 'y', 'Y':
			c.value = true
			return StateSubmit
		case 'n', 'N':
			c.value = false
			return StateSubmit
		}
	}
	return StateActive
}

// Render implements Prompt.
func (c *Confirm) Render(state State) RenderPayload {
	if state != StateActive {
		return RenderPayload{
			Message: c.message,
			Input:   InputRaw(c.label()),
		}
	}
	yes := Style("Yes")
	no := Style("No")
	if c.value {
		yes = yes.Bold().Fg(ColorCyan)
		no = no.Dim()
	} else {
		yes = yes.Dim()
		no = no.Bold().Fg(ColorCyan)
	}
	return RenderPayload{
		Message: c.message,
		Hint:    c.hint,
		Input:   InputRaw(yes.String() + " / " + no.String()),
	}
}

func (c *Confirm) label() string {
	if c.value {
		return "Yes"
	}
	return "No"
}

// Submit implements Prompt.
func (c *Confirm) Submit() bool {
	return c.value
}
