package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextCursorEditing(t *testing.T) {
	t.Parallel()

	t.Run("insert advances cursor", func(t *testing.T) {
		t.Parallel()
		c := NewTextCursor("")
		c.Insert('h')
		c.Insert('i')
		assert.Equal(t, "hi", c.Value())
		assert.Equal(t, 2, c.Cursor())
	})

	t.Run("insert in the middle", func(t *testing.T) {
		t.Parallel()
		c := NewTextCursor("helo")
		c.MoveLeft()
		c.Insert('l')
		assert.Equal(t, "hello", c.Value())
		assert.Equal(t, 4, c.Cursor())
	})

	t.Run("delete left", func(t *testing.T) {
		t.Parallel()
		c := NewTextCursor("abc")
		c.DeleteLeft()
		assert.Equal(t, "ab", c.Value())
		c.MoveHome()
		c.DeleteLeft()
		assert.Equal(t, "ab", c.Value(), "delete at start is a no-op")
	})

	t.Run("delete right", func(t *testing.T) {
		t.Parallel()
		c := NewTextCursor("abc")
		c.DeleteRight()
		assert.Equal(t, "abc", c.Value(), "delete past the end is a no-op")
		c.MoveHome()
		c.DeleteRight()
		assert.Equal(t, "bc", c.Value())
		assert.Equal(t, 0, c.Cursor())
	})

	t.Run("delete word left", func(t *testing.T) {
		t.Parallel()
		c := NewTextCursor("one two three")
		c.DeleteWordLeft()
		assert.Equal(t, "one two ", c.Value())
		c.DeleteWordLeft()
		assert.Equal(t, "one ", c.Value())
	})

	t.Run("delete to end", func(t *testing.T) {
		t.Parallel()
		c := NewTextCursor("hello world")
		c.SetCursor(5)
		c.DeleteToEnd()
		assert.Equal(t, "hello", c.Value())
	})

	t.Run("delete all", func(t *testing.T) {
		t.Parallel()
		c := NewTextCursor("hello")
		c.DeleteAll()
		assert.Equal(t, "", c.Value())
		assert.Equal(t, 0, c.Cursor())
	})

	t.Run("movement clamps at bounds", func(t *testing.T) {
		t.Parallel()
		c := NewTextCursor("ab")
		c.MoveRight()
		assert.Equal(t, 2, c.Cursor())
		c.MoveHome()
		c.MoveLeft()
		assert.Equal(t, 0, c.Cursor())
		c.MoveEnd()
		assert.Equal(t, 2, c.Cursor())
	})
}

func TestTextCursorSetters(t *testing.T) {
	t.Parallel()

	c := NewTextCursor("hello")
	c.SetValue("hi")
	assert.Equal(t, "hi", c.Value())
	assert.Equal(t, 2, c.Cursor(), "cursor clamps to the shorter value")

	c.SetCursor(99)
	assert.Equal(t, 2, c.Cursor())
	c.SetCursor(-1)
	assert.Equal(t, 0, c.Cursor())
}

func TestTextCursorCol(t *testing.T) {
	t.Parallel()

	c := NewTextCursor("日本a")
	assert.Equal(t, 5, c.Col(), "wide runes take two cells")
	c.MoveLeft()
	assert.Equal(t, 4, c.Col())
	c.MoveHome()
	assert.Equal(t, 0, c.Col())
}

func TestTextCursorSplit(t *testing.T) {
	t.Parallel()

	c := NewTextCursor("abc")
	left, under, right := c.Split()
	assert.Equal(t, "abc", left)
	assert.Equal(t, " ", under, "past the end the cursor cell is a space")
	assert.Equal(t, "", right)

	c.SetCursor(1)
	left, under, right = c.Split()
	assert.Equal(t, "a", left)
	assert.Equal(t, "b", under)
	assert.Equal(t, "c", right)
}

func TestTextCursorEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, NewTextCursor("").Empty())
	assert.True(t, NewTextCursor("   ").Empty())
	assert.False(t, NewTextCursor(" a ").Empty())
}
