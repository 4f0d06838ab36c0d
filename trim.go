package cursor

import (
	"github.com/rawbytedev/cursor/internal/textkit"
)

const asciiWhitespace = " \t\n\r\v\f"

// Whitespace returns the default ASCII whitespace set (space, tab, line
// feed, carriage return, vertical tab, form feed) as units of type C.
// The same ASCII values are used at every unit width.
func Whitespace[C Unit]() []C {
	set := make([]C, len(asciiWhitespace))
	for i := 0; i < len(asciiWhitespace); i++ {
		set[i] = C(asciiWhitespace[i])
	}
	return set
}

// isWhitespace reports whether u is in the default whitespace set,
// without materializing the set.
func isWhitespace[C Unit](u C) bool {
	for i := 0; i < len(asciiWhitespace); i++ {
		if u == C(asciiWhitespace[i]) {
			return true
		}
	}
	return false
}

// Trim strips units belonging to set from both ends. A nil set selects
// the default whitespace set. If everything is strippable the cursor
// becomes empty. Trimming is idempotent and does not allocate.
func (c *Cursor[C]) Trim(set []C) *Cursor[C] {
	return c.TrimFront(set).TrimBack(set)
}

// TrimFront strips units belonging to set from the front. A nil set
// selects the default whitespace set.
func (c *Cursor[C]) TrimFront(set []C) *Cursor[C] {
	var i int
	if set == nil {
		i = textkit.IndexFunc(c.text, func(u C) bool { return !isWhitespace(u) })
	} else {
		i = textkit.IndexNotAny(c.text, set)
	}
	if i < 0 {
		c.text = nil
	} else {
		c.text = c.text[i:]
	}
	return c
}

// TrimBack strips units belonging to set from the back. A nil set
// selects the default whitespace set.
func (c *Cursor[C]) TrimBack(set []C) *Cursor[C] {
	var i int
	if set == nil {
		i = textkit.LastIndexFunc(c.text, func(u C) bool { return !isWhitespace(u) })
	} else {
		i = textkit.LastIndexNotAny(c.text, set)
	}
	if i < 0 {
		c.text = nil
	} else {
		c.text = c.text[:i+1]
	}
	return c
}
