package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberSubmit(t *testing.T) {
	t.Parallel()

	t.Run("integer round trips", func(t *testing.T) {
		t.Parallel()
		value, err := runPrompt(t, NewNumber("Age"), append(typed("42"), enter())...)
		require.NoError(t, err)
		assert.Equal(t, 42.0, value)
	})

	t.Run("decimal round trips", func(t *testing.T) {
		t.Parallel()
		value, err := runPrompt(t, NewNumber("Price"), append(typed("3.14"), enter())...)
		require.NoError(t, err)
		assert.Equal(t, 3.14, value)
	})

	t.Run("negative round trips", func(t *testing.T) {
		t.Parallel()
		value, err := runPrompt(t, NewNumber("Delta"), append(typed("-7"), enter())...)
		require.NoError(t, err)
		assert.Equal(t, -7.0, value)
	})

	t.Run("out of range then corrected", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("Age").WithMin(0).WithMax(120)
		keys := typed("200")
		keys = append(keys, enter(), Ctrl('u'))
		keys = append(keys, typed("42")...)
		keys = append(keys, enter())
		value, err := runPrompt(t, p, keys...)
		require.NoError(t, err)
		assert.Equal(t, 42.0, value)
	})
}

func TestNumberValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty buffer is not a number", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("Age")
		assert.Equal(t, StateActive, p.Handle(enter()))
		assert.Equal(t, "invalid number", p.Render(StateActive).Error)
	})

	t.Run("bare sign is not a number", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("Age")
		p.Handle(Char('-'))
		assert.Equal(t, StateActive, p.Handle(enter()))
		assert.Equal(t, "invalid number", p.Render(StateActive).Error)
	})

	t.Run("range errors name the bounds", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("Age").WithMin(0).WithMax(120)
		for _, k := range typed("121") {
			p.Handle(k)
		}
		p.Handle(enter())
		assert.Equal(t, "must be between 0 and 120", p.Render(StateActive).Error)
	})

	t.Run("custom validator runs after the range check", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("Port").WithValidator(func(v float64) error {
			if v != float64(int(v)) {
				return errors.New("must be a whole number")
			}
			return nil
		})
		for _, k := range typed("1.5") {
			p.Handle(k)
		}
		assert.Equal(t, StateActive, p.Handle(enter()))
		assert.Equal(t, "must be a whole number", p.Render(StateActive).Error)
	})

	t.Run("one-sided range errors", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("Count").WithMin(1)
		p.Handle(Char('0'))
		p.Handle(enter())
		assert.Equal(t, "must be at least 1", p.Render(StateActive).Error)

		p = NewNumber("Count").WithMax(10)
		for _, k := range typed("11") {
			p.Handle(k)
		}
		p.Handle(enter())
		assert.Equal(t, "must be at most 10", p.Render(StateActive).Error)
	})
}

func TestNumberTypingFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []Key
		want string
	}{
		{
			name: "letters are ignored",
			keys: typed("1a2b3"),
			want: "123",
		},
		{
			name: "second decimal point is ignored",
			keys: typed("1.2.3"),
			want: "1.23",
		},
		{
			name: "sign only at the start",
			keys: typed("1-2"),
			want: "12",
		},
		{
			name: "leading sign accepted",
			keys: typed("-12"),
			want: "-12",
		},
		{
			name: "second sign ignored",
			keys: append(typed("-1"), Key{Code: KeyHome}, Char('+')),
			want: "-1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewNumber("N")
			for _, k := range tt.keys {
				p.Handle(k)
			}
			assert.Equal(t, tt.want, p.cursor.Value())
		})
	}
}

func TestNumberStepping(t *testing.T) {
	t.Parallel()

	t.Run("up and down step by one", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("N").WithDefault(5)
		p.Handle(Key{Code: KeyUp})
		assert.Equal(t, "6", p.cursor.Value())
		p.Handle(Key{Code: KeyDown})
		p.Handle(Key{Code: KeyDown})
		assert.Equal(t, "4", p.cursor.Value())
	})

	t.Run("custom step", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("N").WithDefault(0).WithStep(0.5)
		p.Handle(Key{Code: KeyUp})
		assert.Equal(t, "0.5", p.cursor.Value())
	})

	t.Run("stepping clamps to the range", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("N").WithDefault(119).WithMax(120)
		p.Handle(Key{Code: KeyUp})
		p.Handle(Key{Code: KeyUp})
		assert.Equal(t, "120", p.cursor.Value())
	})

	t.Run("stepping from an empty buffer starts at zero", func(t *testing.T) {
		t.Parallel()
		p := NewNumber("N")
		p.Handle(Key{Code: KeyUp})
		assert.Equal(t, "1", p.cursor.Value())
	})
}
