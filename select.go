package prompt

var symPointer = symbol{"❯", ">"}

// SelectOption is one choice in a Select or MultiSelect prompt.
type SelectOption[T any] struct {
	// Label is the text shown for the option.
	Label string
	// Value is returned on submit when the option is chosen.
	Value T
	// Hint is extra context shown while the option is under the cursor.
	Hint string
	// Disabled options are rendered but can never hold the cursor or be
	// submitted.
	Disabled bool
}

// Select is a single-choice list prompt. The cursor wraps at both ends and
// skips disabled options.
type Select[T any] struct {
	message  string
	hint     string
	options  []SelectOption[T]
	pageSize int
	index    int
	err      string
}

// NewSelect creates a list prompt with the given message and options.
func NewSelect[T any](message string, options []SelectOption[T]) *Select[T] {
	return &Select[T]{
		message:  message,
		options:  options,
		pageSize: 8,
	}
}

// WithHint sets the hint shown alongside the message.
func (s *Select[T]) WithHint(hint string) *Select[T] {
	s.hint = hint
	return s
}

// WithPageSize caps how many options are visible at once. Zero or negative
// disables pagination.
func (s *Select[T]) WithPageSize(size int) *Select[T] {
	s.pageSize = size
	return s
}

// WithDefaultIndex starts the cursor on the option at index.
func (s *Select[T]) WithDefaultIndex(index int) *Select[T] {
	if index >= 0 && index < len(s.options) {
		s.index = index
	}
	return s
}

// Setup validates the configuration before the first render.
func (s *Select[T]) Setup() error {
	if len(s.options) == 0 {
		return configErrorf("select %q has no options", s.message)
	}
	if !anyEnabled(s.options) {
		return configErrorf("select %q has no selectable options", s.message)
	}
	if s.options[s.index].Disabled {
		s.index = nextEnabled(s.options, s.index, 1)
	}
	return nil
}

// Handle implements Prompt.
func (s *Select[T]) Handle(key Key) State {
	switch key.Code {
	case KeyUp:
		s.index = nextEnabled(s.options, s.index, -1)
		s.err = ""
	case KeyDown:
		s.index = nextEnabled(s.options, s.index, 1)
		s.err = ""
	case KeyEnter:
		if s.options[s.index].Disabled {
			s.err = "option is disabled"
			return StateActive
		}
		return StateSubmit
	}
	return StateActive
}

// Render implements Prompt.
func (s *Select[T]) Render(state State) RenderPayload {
	payload := RenderPayload{
		Message: s.message,
		Hint:    s.hint,
		Error:   s.err,
		Input:   InputNone(),
	}
	if state == StateSubmit {
		payload.Input = InputRaw(s.options[s.index].Label)
		return payload
	}
	page := Paginate(s.pageSize, s.options, s.index)
	if !page.First {
		payload.Body = append(payload.Body, Style("…").Dim().String())
	}
	for i, opt := range page.Items {
		payload.Body = append(payload.Body, optionLine(opt.Label, opt.Hint, opt.Disabled, i == page.Cursor, ""))
	}
	if !page.Last {
		payload.Body = append(payload.Body, Style("…").Dim().String())
	}
	return payload
}

// Submit implements Prompt.
func (s *Select[T]) Submit() T {
	return s.options[s.index].Value
}

// optionLine renders one list row. check is empty for single-choice lists
// and a checkbox glyph for multi-choice ones.
func optionLine(label, hint string, disabled, current bool, check string) string {
	pointer := " "
	if current {
		pointer = Style(symPointer.String()).Fg(ColorCyan).String()
	}
	text := label
	switch {
	case disabled:
		text = Style(label).Dim().String()
	case current:
		text = Style(label).Bold().String()
	}
	line := pointer + " "
	if check != "" {
		line += check + " "
	}
	line += text
	if current && hint != "" {
		line += " " + Style("("+hint+")").Dim().String()
	}
	return line
}

// anyEnabled reports whether at least one option can hold the cursor.
func anyEnabled[T any](options []SelectOption[T]) bool {
	for _, opt := range options {
		if !opt.Disabled {
			return true
		}
	}
	return false
}

// nextEnabled walks from current in direction dir, wrapping at both ends,
// and returns the index of the next enabled option. It returns current
// unchanged when every other option is disabled.
func nextEnabled[T any](options []SelectOption[T], current, dir int) int {
	n := len(options)
	for i := 1; i <= n; i++ {
		idx := ((current+dir*i)%n + n) % n
		if !options[idx].Disabled {
			return idx
		}
	}
	return current
}
