package prompt

// State is the three-way lifecycle tag of a prompt interaction. A prompt
// starts Active and ends in exactly one of Submit or Cancel; neither terminal
// state is ever left again.
type State int

// Prompt lifecycle states.
const (
	StateActive State = iota
	StateSubmit
	StateCancel
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateSubmit:
		return "Submit"
	case StateCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

type inputKind int

const (
	inputNone inputKind = iota
	inputCursor
	inputRaw
)

// PromptInput is the single-line input portion of a RenderPayload: absent,
// an editable cursor, or a fixed string.
type PromptInput struct {
	kind   inputKind
	cursor *TextCursor
	raw    string
}

// InputNone is the absent input representation.
func InputNone() PromptInput {
	return PromptInput{kind: inputNone}
}

// InputCursor renders an editable buffer with a visible cursor.
func InputCursor(c *TextCursor) PromptInput {
	return PromptInput{kind: inputCursor, cursor: c}
}

// InputRaw renders a fixed string without a cursor.
func InputRaw(s string) PromptInput {
	return PromptInput{kind: inputRaw, raw: s}
}

// None reports whether the input is absent.
func (in PromptInput) None() bool { return in.kind == inputNone }

// RenderPayload is the semantic, theme-independent content a prompt wants
// displayed for a given state. Built-in prompts populate at most one of
// Input and Body.
type RenderPayload struct {
	// Message is the question or title line. Always present.
	Message string
	// Hint is auxiliary guidance, rendered dimmed. Optional.
	Hint string
	// Placeholder is shown in place of an empty input buffer. Optional.
	Placeholder string
	// Error is an inline validation message. The prompt stays Active while
	// it is set; this is the retry loop, not the error taxonomy.
	Error string
	// Input is the single-line input representation.
	Input PromptInput
	// Body is the multi-line body, one entry per line.
	Body []string
}

// Prompt is the capability contract every prompt kind implements. The
// Session drives it: Handle consumes key events and reports the lifecycle
// state, Render projects internal state into content for the theme, and
// Submit extracts the final value exactly once after a Submit transition.
//
// Handle and Render must not perform I/O. Render must not mutate editing or
// selection state. Prompts that need construction-time validation also
// implement Setup() error; it runs before the first render.
type Prompt[T any] interface {
	// Handle processes one key event and returns the resulting state.
	Handle(key Key) State
	// Render projects the prompt's state into displayable content.
	Render(state State) RenderPayload
	// Submit returns the final value. Called at most once.
	Submit() T
}

// setupPrompt is the optional configuration-validation upgrade to Prompt.
type setupPrompt interface {
	Setup() error
}

// cancelKey reports whether key is one of the interrupt keys. Every built-in
// checks this first so cancellation wins over submission and over any
// pending inline error.
func cancelKey(key Key) bool {
	if key.Code == KeyEsc {
		return true
	}
	return key.Code == KeyChar && key.Rune == 'c' && key.Mods.Has(ModCtrl)
}
