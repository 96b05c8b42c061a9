package prompt

// Input is a single-line free text prompt.
type Input struct {
	message     string
	hint        string
	placeholder string
	required    bool
	validate    func(string) error
	cursor      *TextCursor
	err         string
}

// NewInput creates a text prompt with the given message.
func NewInput(message string) *Input {
	return &Input{
		message: message,
		cursor:  NewTextCursor(""),
	}
}

// WithHint sets the hint shown alongside the message.
func (i *Input) WithHint(hint string) *Input {
	i.hint = hint
	return i
}

// WithPlaceholder sets ghost text shown while the input is empty.
func (i *Input) WithPlaceholder(placeholder string) *Input {
	i.placeholder = placeholder
	return i
}

// WithDefault pre-fills the input with value.
func (i *Input) WithDefault(value string) *Input {
	i.cursor.SetValue(value)
	i.cursor.MoveEnd()
	return i
}

// WithValidator installs a validation function run on submit. A non-nil
// error keeps the prompt active and shows the error inline.
func (i *Input) WithValidator(validate func(string) error) *Input {
	i.validate = validate
	return i
}

// Required rejects submission of a blank value.
func (i *Input) Required() *Input {
	i.required = true
	return i
}

// Handle implements Prompt.
func (i *Input) Handle(key Key) State {
	if key.Code == KeyEnter {
		if msg, ok := i.check(); !ok {
			i.err = msg
			return StateActive
		}
		return StateSubmit
	}
	if editCursor(i.cursor, key) {
		i.err = ""
	}
	return StateActive
}

func (i *Input) check() (string, bool) {
	if i.required && i.cursor.Empty() {
		return "required", false
	}
	if i.validate != nil {
		if err := i.validate(i.cursor.Value()); err != nil {
			return err.Error(), false
		}
	}
	return "", true
}

// Render implements Prompt.
func (i *Input) Render(state State) RenderPayload {
	return RenderPayload{
		Message:     i.message,
		Hint:        i.hint,
		Placeholder: i.placeholder,
		Error:       i.err,
		Input:       InputCursor(i.cursor),
	}
}

// Submit implements Prompt.
func (i *Input) Submit() string {
	return i.cursor.Value()
}

// editCursor applies a line-editing key to the cursor and reports whether
// the key was consumed. The bindings follow the usual readline subset.
func editCursor(c *TextCursor, key Key) bool {
	if key.Mods.Has(ModCtrl) {
		switch key.Rune {
		case 'a':
			c.MoveHome()
		case 'e':
			c.MoveEnd()
		case 'b':
			c.MoveLeft()
		case 'f':
			c.MoveRight()
		case 'h':
			c.DeleteLeft()
		case 'd':
			c.DeleteRight()
		case 'u':
			c.DeleteAll()
		case 'k':
			c.DeleteToEnd()
		case 'w':
			c.DeleteWordLeft()
		default:
			return false
		}
		return true
	}
	switch key.Code {
	case KeyLeft:
		c.MoveLeft()
	case KeyRight:
		c.MoveRight()
	case KeyHome:
		c.MoveHome()
	case KeyEnd:
		c.MoveEnd()
	case KeyBackspace:
		c.DeleteLeft()
	case KeyDelete:
		c.DeleteRight()
	case KeyChar:
		if key.Mods.Has(ModAlt) {
			return false
		}
		c.Insert(key.Rune)
	default:
		return false
	}
	return true
}
