package prompt

import (
	"fmt"
	"strings"
)

var (
	symChecked   = symbol{"◉", "[x]"}
	symUnchecked = symbol{"◯", "[ ]"}
)

// MultiSelect is a multi-choice list prompt. Space toggles the option under
// the cursor, 'a' toggles every enabled option on the visible page, and 'i'
// inverts the whole selection. Submit returns the chosen values in the order
// the options were defined, not the order they were toggled.
//
// An empty selection is rejected on submit unless WithRequired(false) allows
// it.
type MultiSelect[T any] struct {
	message  string
	hint     string
	options  []SelectOption[T]
	selected []bool
	pageSize int
	index    int
	min      int
	max      int
	required bool
	err      string
}

// NewMultiSelect creates a multi-choice list prompt.
func NewMultiSelect[T any](message string, options []SelectOption[T]) *MultiSelect[T] {
	return &MultiSelect[T]{
		message:  message,
		options:  options,
		selected: make([]bool, len(options)),
		pageSize: 8,
		required: true,
	}
}

// WithHint sets the hint shown alongside the message.
func (m *MultiSelect[T]) WithHint(hint string) *MultiSelect[T] {
	m.hint = hint
	return m
}

// WithPageSize caps how many options are visible at once. Zero or negative
// disables pagination.
func (m *MultiSelect[T]) WithPageSize(size int) *MultiSelect[T] {
	m.pageSize = size
	return m
}

// WithPreselected marks the options at the given indexes as selected.
func (m *MultiSelect[T]) WithPreselected(indexes ...int) *MultiSelect[T] {
	for _, idx := range indexes {
		if idx >= 0 && idx < len(m.options) && !m.options[idx].Disabled {
			m.selected[idx] = true
		}
	}
	return m
}

// WithMin requires at least n selections on submit.
func (m *MultiSelect[T]) WithMin(n int) *MultiSelect[T] {
	m.min = n
	return m
}

// WithMax allows at most n selections on submit. Zero means unlimited.
func (m *MultiSelect[T]) WithMax(n int) *MultiSelect[T] {
	m.max = n
	return m
}

// WithRequired controls whether an empty selection may be submitted. The
// default is true; pass false to allow submitting nothing.
func (m *MultiSelect[T]) WithRequired(required bool) *MultiSelect[T] {
	m.required = required
	return m
}

// Setup validates the configuration before the first render.
func (m *MultiSelect[T]) Setup() error {
	if len(m.options) == 0 {
		return configErrorf("multiselect %q has no options", m.message)
	}
	if !anyEnabled(m.options) {
		return configErrorf("multiselect %q has no selectable options", m.message)
	}
	if m.max > 0 && m.min > m.max {
		return configErrorf("multiselect %q: min %d exceeds max %d", m.message, m.min, m.max)
	}
	if m.options[m.index].Disabled {
		m.index = nextEnabled(m.options, m.index, 1)
	}
	return nil
}

// Handle implements Prompt.
func (m *MultiSelect[T]) Handle(key Key) State {
	switch {
	case key.Code == KeyUp:
		m.index = nextEnabled(m.options, m.index, -1)
	case key.Code == KeyDown:
		m.index = nextEnabled(m.options, m.index, 1)
	case key.Code == KeyChar && key.Rune == ' ':
		m.toggle(m.index)
	case key.Code == KeyChar && key.Rune == 'a':
		m.togglePage()
	case key.Code == KeyChar && key.Rune == 'i':
		m.invert()
	case key.Code == KeyEnter:
		if msg := m.check(); msg != "" {
			m.err = msg
			return StateActive
		}
		return StateSubmit
	}
	return StateActive
}

func (m *MultiSelect[T]) toggle(idx int) {
	if m.options[idx].Disabled {
		return
	}
	m.selected[idx] = !m.selected[idx]
	m.err = ""
}

// togglePage selects every enabled option on the visible page, or clears
// them all when they are already selected.
func (m *MultiSelect[T]) togglePage() {
	page := Paginate(m.pageSize, m.options, m.index)
	all := true
	for i := range page.Items {
		idx := page.Offset + i
		if !m.options[idx].Disabled && !m.selected[idx] {
			all = false
			break
		}
	}
	for i := range page.Items {
		idx := page.Offset + i
		if !m.options[idx].Disabled {
			m.selected[idx] = !all
		}
	}
	m.err = ""
}

func (m *MultiSelect[T]) invert() {
	for i, opt := range m.options {
		if !opt.Disabled {
			m.selected[i] = !m.selected[i]
		}
	}
	m.err = ""
}

func (m *MultiSelect[T]) check() string {
	count := 0
	for _, sel := range m.selected {
		if sel {
			count++
		}
	}
	switch {
	case m.required && count == 0:
		return "required"
	case count < m.min:
		return fmt.Sprintf("select at least %d", m.min)
	case m.max > 0 && count > m.max:
		return fmt.Sprintf("select at most %d", m.max)
	}
	return ""
}

// Render implements Prompt.
func (m *MultiSelect[T]) Render(state State) RenderPayload {
	payload := RenderPayload{
		Message: m.message,
		Hint:    m.hint,
		Error:   m.err,
		Input:   InputNone(),
	}
	if state == StateSubmit {
		payload.Input = InputRaw(strings.Join(m.labels(), ", "))
		return payload
	}
	page := Paginate(m.pageSize, m.options, m.index)
	if !page.First {
		payload.Body = append(payload.Body, Style("…").Dim().String())
	}
	for i, opt := range page.Items {
		payload.Body = append(payload.Body, optionLine(opt.Label, opt.Hint, opt.Disabled, i == page.Cursor, m.checkbox(page.Offset+i)))
	}
	if !page.Last {
		payload.Body = append(payload.Body, Style("…").Dim().String())
	}
	return payload
}

func (m *MultiSelect[T]) checkbox(idx int) string {
	if m.selected[idx] {
		return Style(symChecked.String()).Fg(ColorGreen).String()
	}
	if m.options[idx].Disabled {
		return Style(symUnchecked.String()).Dim().String()
	}
	return symUnchecked.String()
}

func (m *MultiSelect[T]) labels() []string {
	var labels []string
	for i, opt := range m.options {
		if m.selected[i] {
			labels = append(labels, opt.Label)
		}
	}
	return labels
}

// Submit implements Prompt. Values come back in defining order.
func (m *MultiSelect[T]) Submit() []T {
	var values []T
	for i, opt := range m.options {
		if m.selected[i] {
			values = append(values, opt.Value)
		}
	}
	return values
}
