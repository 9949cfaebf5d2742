package humandateparser

// cursor walks a fully buffered sequence forwards, one item at a time.
// Before the first advance it sits in front of the first item.
type cursor[T any] struct {
	items []T
	pos   int
}

func newCursor[T any](items []T) *cursor[T] {
	return &cursor[T]{items: items, pos: -1}
}

// advance moves to the next item. Once the sequence is exhausted it keeps
// returning false without moving further.
func (c *cursor[T]) advance() (item T, ok bool) {
	if c.pos < len(c.items) {
		c.pos++
	}
	if c.pos >= len(c.items) {
		return item, false
	}
	return c.items[c.pos], true
}

// peek looks offset items ahead of the current one without consuming anything.
func (c *cursor[T]) peek(offset int) (item T, ok bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.items) {
		return item, false
	}
	return c.items[i], true
}

// backUp retreats exactly one item, never past the start.
func (c *cursor[T]) backUp() {
	if c.pos >= 0 {
		c.pos--
	}
}

// contains reports whether any buffered item, consumed or not, matches pred.
func (c *cursor[T]) contains(pred func(T) bool) bool {
	for _, item := range c.items {
		if pred(item) {
			return true
		}
	}
	return false
}

const eof rune = -1

type charCursor struct {
	*cursor[rune]
}

func newCharCursor(text string) charCursor {
	return charCursor{cursor: newCursor([]rune(text))}
}

func (c charCursor) next() rune {
	r, ok := c.advance()
	if !ok {
		return eof
	}
	return r
}

func (c charCursor) peekRune(offset int) rune {
	r, ok := c.peek(offset)
	if !ok {
		return eof
	}
	return r
}
