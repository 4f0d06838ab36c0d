// Package cursor provides a generic, allocation-free text cursor: a
// borrowed view over a contiguous run of code units that supports
// forward-only, bounds-safe scanning without copying or owning the
// underlying text.
//
// Cursors are plain values and cheap to copy; a copy is a fully
// independent view and mutating it never affects the original. The
// caller guarantees the backing buffer outlives every cursor derived
// from it (trivially true in Go for anything reachable, including
// strings viewed through FromString).
//
// Every operation is total: out-of-range element access yields a
// comma-ok "no value", conditional matches report failure without
// partial mutation, and counted operations saturate to the available
// length instead of failing. Saturation is a deliberate contract;
// callers that need a failure signal should use the boolean-returning
// or the OrEmpty variants.
//
// The default whitespace set and line separator are defined over the
// ASCII range and reinterpreted as-is at wider unit widths; no
// Unicode-aware classification is performed.
package cursor

import (
	"github.com/rawbytedev/cursor/internal/textkit"
)

// Unit constrains the code-unit types a Cursor can scan.
type Unit = textkit.Unit

// Cursor is a borrowed view over a span of code units with a forward
// read position. The zero value is an empty cursor.
type Cursor[C Unit] struct {
	text []C
}

// New returns a cursor viewing text. The slice is borrowed, never
// copied; the cursor treats it as strictly read-only.
func New[C Unit](text []C) Cursor[C] {
	return Cursor[C]{text: text}
}

// Len returns the number of code units remaining.
func (c Cursor[C]) Len() int { return len(c.text) }

// Empty reports whether the cursor has no units left.
func (c Cursor[C]) Empty() bool { return len(c.text) == 0 }

// Has reports whether at least n units remain.
func (c Cursor[C]) Has(n int) bool { return len(c.text) >= n }

// Text returns the remaining units as a borrowed slice.
func (c Cursor[C]) Text() []C { return c.text }

// Front returns the first unit, or false if the cursor is empty.
func (c Cursor[C]) Front() (C, bool) {
	if len(c.text) == 0 {
		var zero C
		return zero, false
	}
	return c.text[0], true
}

// Back returns the last unit, or false if the cursor is empty.
func (c Cursor[C]) Back() (C, bool) {
	if len(c.text) == 0 {
		var zero C
		return zero, false
	}
	return c.text[len(c.text)-1], true
}

// At returns the unit at index i, or false if i is out of range.
func (c Cursor[C]) At(i int) (C, bool) {
	if i < 0 || i >= len(c.text) {
		var zero C
		return zero, false
	}
	return c.text[i], true
}

// Slice returns a new independent cursor over the units in
// [start, end). Both bounds are clamped to [0, Len] independently; if
// end < start after clamping the result is empty. The receiver is not
// modified.
func (c Cursor[C]) Slice(start, end int) Cursor[C] {
	if start < 0 {
		start = 0
	} else if start > len(c.text) {
		start = len(c.text)
	}
	if end < 0 {
		end = 0
	} else if end > len(c.text) {
		end = len(c.text)
	}
	if end < start {
		return Cursor[C]{}
	}
	return Cursor[C]{text: c.text[start:end]}
}

// String copies the remaining units into a string, interpreting each
// unit as a rune. Intended for display and tests; byte cursors over
// UTF-8 text should use Bytes instead.
func (c Cursor[C]) String() string {
	r := make([]rune, len(c.text))
	for i, u := range c.text {
		r[i] = rune(u)
	}
	return string(r)
}

// Equal reports whether the remaining units equal text, by content.
func (c Cursor[C]) Equal(text []C) bool {
	return textkit.Equal(c.text, text)
}

// Compare orders the remaining units against text lexicographically,
// returning -1, 0 or +1.
func (c Cursor[C]) Compare(text []C) int {
	return textkit.Compare(c.text, text)
}

// StartsWith reports whether the first unit equals u.
func (c Cursor[C]) StartsWith(u C) bool {
	return len(c.text) > 0 && c.text[0] == u
}

// StartsWithSeq reports whether the cursor begins with prefix.
func (c Cursor[C]) StartsWithSeq(prefix []C) bool {
	return len(c.text) >= len(prefix) && textkit.Equal(c.text[:len(prefix)], prefix)
}

// StartsWithAny reports whether the first unit is a member of set.
func (c Cursor[C]) StartsWithAny(set []C) bool {
	return len(c.text) > 0 && textkit.Member(set, c.text[0])
}

// EndsWith reports whether the last unit equals u.
func (c Cursor[C]) EndsWith(u C) bool {
	return len(c.text) > 0 && c.text[len(c.text)-1] == u
}

// EndsWithSeq reports whether the cursor ends with suffix.
func (c Cursor[C]) EndsWithSeq(suffix []C) bool {
	return len(c.text) >= len(suffix) &&
		textkit.Equal(c.text[len(c.text)-len(suffix):], suffix)
}

// EndsWithAny reports whether the last unit is a member of set.
func (c Cursor[C]) EndsWithAny(set []C) bool {
	return len(c.text) > 0 && textkit.Member(set, c.text[len(c.text)-1])
}

// Consume removes the first unit if it equals u and reports whether it
// did. On failure the cursor is unchanged.
func (c *Cursor[C]) Consume(u C) bool {
	if !c.StartsWith(u) {
		return false
	}
	c.text = c.text[1:]
	return true
}

// ConsumeSeq removes prefix from the front if the cursor begins with it
// and reports whether it did. On failure the cursor is unchanged.
func (c *Cursor[C]) ConsumeSeq(prefix []C) bool {
	if !c.StartsWithSeq(prefix) {
		return false
	}
	c.text = c.text[len(prefix):]
	return true
}

// Drop removes up to n units from the front, saturating at the
// remaining length. Negative n is treated as zero. To remove a specific
// unit only when present, use Consume.
func (c *Cursor[C]) Drop(n int) *Cursor[C] {
	c.Take(n)
	return c
}

// Take removes up to n units from the front and returns them as a
// borrowed slice. If fewer than n remain, only the available units are
// returned; this saturation never fails. Negative n is treated as zero.
func (c *Cursor[C]) Take(n int) []C {
	if n < 0 {
		n = 0
	} else if n > len(c.text) {
		n = len(c.text)
	}
	return c.advance(n)
}

// Extract removes exactly len(dst) units and stores one in each output
// slot, in order. If fewer units remain, no slot is written and the
// cursor is unchanged.
func (c *Cursor[C]) Extract(dst ...*C) bool {
	if !c.Has(len(dst)) {
		return false
	}
	taken := c.advance(len(dst))
	for i, p := range dst {
		*p = taken[i]
	}
	return true
}

// advance removes the first n units and returns them. Callers must
// keep n within the remaining length.
func (c *Cursor[C]) advance(n int) []C {
	debugAssert(n >= 0 && n <= len(c.text), "advance past end of cursor")
	t := c.text[:n]
	c.text = c.text[n:]
	return t
}
