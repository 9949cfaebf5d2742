package humandateparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorAdvancePeekBackUp(t *testing.T) {
	assert := require.New(t)
	c := newCursor([]int{10, 20, 30})

	_, ok := c.peek(0)
	assert.False(ok)
	v, ok := c.peek(1)
	assert.True(ok)
	assert.Equal(10, v)

	v, ok = c.advance()
	assert.True(ok)
	assert.Equal(10, v)

	v, ok = c.peek(2)
	assert.True(ok)
	assert.Equal(30, v)
	_, ok = c.peek(3)
	assert.False(ok)

	c.advance()
	c.backUp()
	v, _ = c.peek(0)
	assert.Equal(10, v)

	c.advance()
	c.advance()
	_, ok = c.advance()
	assert.False(ok)
	_, ok = c.advance()
	assert.False(ok)

	c.backUp()
	v, ok = c.peek(0)
	assert.True(ok)
	assert.Equal(30, v)
}

func TestCursorNeverUnderflows(t *testing.T) {
	assert := require.New(t)
	c := newCursor([]int{1, 2})

	c.backUp()
	c.backUp()
	v, ok := c.advance()
	assert.True(ok)
	assert.Equal(1, v)

	c.backUp()
	c.backUp()
	v, ok = c.advance()
	assert.True(ok)
	assert.Equal(1, v)
}

func TestCursorContainsScansWholeBuffer(t *testing.T) {
	assert := require.New(t)
	c := newCursor([]int{1, 2, 3})
	c.advance()
	c.advance()
	c.advance()

	assert.True(c.contains(func(v int) bool { return v == 1 }))
	assert.False(c.contains(func(v int) bool { return v == 4 }))
}

func TestCharCursorEOF(t *testing.T) {
	assert := require.New(t)
	c := newCharCursor("ab")

	assert.Equal('a', c.next())
	assert.Equal('b', c.peekRune(1))
	assert.Equal(eof, c.peekRune(2))
	assert.Equal('b', c.next())
	assert.Equal(eof, c.next())
	assert.Equal(eof, c.next())
}
