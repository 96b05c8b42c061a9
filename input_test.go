package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typed expands a string into plain character key events.
func typed(s string) []Key {
	var keys []Key
	for _, r := range s {
		keys = append(keys, Char(r))
	}
	return keys
}

func enter() Key { return Key{Code: KeyEnter} }

func TestInputSubmit(t *testing.T) {
	t.Parallel()

	t.Run("typed value round trips", func(t *testing.T) {
		t.Parallel()
		p := NewInput("Name")
		value, err := runPrompt(t, p, append(typed("hello"), enter())...)
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	})

	t.Run("mid-line editing", func(t *testing.T) {
		t.Parallel()
		keys := typed("helo")
		keys = append(keys, Key{Code: KeyLeft}, Char('l'), enter())
		value, err := runPrompt(t, NewInput("Name"), keys...)
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	})

	t.Run("default value submits untouched", func(t *testing.T) {
		t.Parallel()
		value, err := runPrompt(t, NewInput("Name").WithDefault("prefilled"), enter())
		require.NoError(t, err)
		assert.Equal(t, "prefilled", value)
	})

	t.Run("cancel wins at any time", func(t *testing.T) {
		t.Parallel()
		keys := append(typed("partial"), Key{Code: KeyEsc})
		_, err := runPrompt(t, NewInput("Name"), keys...)
		assert.ErrorIs(t, err, ErrCancel)
	})

	t.Run("ctrl c cancels", func(t *testing.T) {
		t.Parallel()
		_, err := runPrompt(t, NewInput("Name"), Ctrl('c'))
		assert.ErrorIs(t, err, ErrCancel)
	})
}

func TestInputValidation(t *testing.T) {
	t.Parallel()

	t.Run("required blocks blank submit", func(t *testing.T) {
		t.Parallel()
		p := NewInput("Name").Required()

		assert.Equal(t, StateActive, p.Handle(enter()))
		assert.Equal(t, "required", p.Render(StateActive).Error)

		p.Handle(Char('x'))
		assert.Empty(t, p.Render(StateActive).Error, "editing clears the error")
		assert.Equal(t, StateSubmit, p.Handle(enter()))
		assert.Equal(t, "x", p.Submit())
	})

	t.Run("whitespace only counts as blank", func(t *testing.T) {
		t.Parallel()
		p := NewInput("Name").Required()
		p.Handle(Char(' '))
		assert.Equal(t, StateActive, p.Handle(enter()))
	})

	t.Run("validator failure keeps the prompt active", func(t *testing.T) {
		t.Parallel()
		p := NewInput("Name").WithValidator(func(v string) error {
			if v != "ok" {
				return errors.New("must be ok")
			}
			return nil
		})
		for _, k := range typed("nope") {
			p.Handle(k)
		}
		assert.Equal(t, StateActive, p.Handle(enter()))
		assert.Equal(t, "must be ok", p.Render(StateActive).Error)
	})

	t.Run("retry after failure succeeds", func(t *testing.T) {
		t.Parallel()
		p := NewInput("Name").Required()
		keys := []Key{enter()}
		keys = append(keys, typed("second try")...)
		keys = append(keys, enter())
		value, err := runPrompt(t, p, keys...)
		require.NoError(t, err)
		assert.Equal(t, "second try", value)
	})
}

func TestInputEditingKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []Key
		want string
	}{
		{
			name: "ctrl+u clears the line",
			keys: append(typed("garbage"), Ctrl('u'), Char('x')),
			want: "x",
		},
		{
			name: "ctrl+w deletes the last word",
			keys: append(typed("keep drop"), Ctrl('w')),
			want: "keep ",
		},
		{
			name: "ctrl+a then ctrl+k empties the line",
			keys: append(typed("all gone"), Ctrl('a'), Ctrl('k')),
			want: "",
		},
		{
			name: "home and end",
			keys: append(typed("bc"), Key{Code: KeyHome}, Char('a'), Key{Code: KeyEnd}, Char('d')),
			want: "abcd",
		},
		{
			name: "backspace",
			keys: append(typed("abx"), Key{Code: KeyBackspace}, Char('c')),
			want: "abc",
		},
		{
			name: "delete under cursor",
			keys: append(typed("axbc"), Key{Code: KeyHome}, Key{Code: KeyRight}, Key{Code: KeyDelete}),
			want: "abc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewInput("Edit")
			for _, k := range tt.keys {
				p.Handle(k)
			}
			assert.Equal(t, StateSubmit, p.Handle(enter()))
			assert.Equal(t, tt.want, p.Submit())
		})
	}
}

func TestInputRenderPayload(t *testing.T) {
	t.Parallel()

	p := NewInput("Name").WithHint("as in your passport").WithPlaceholder("Jane Doe")
	payload := p.Render(StateActive)
	assert.Equal(t, "Name", payload.Message)
	assert.Equal(t, "as in your passport", payload.Hint)
	assert.Equal(t, "Jane Doe", payload.Placeholder)
	assert.False(t, payload.Input.None())
}
