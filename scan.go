package cursor

import (
	"github.com/rawbytedev/cursor/internal/textkit"
)

// Conditional advance reduces to one engine: locate a boundary index
// and cut there. Every Take/Drop Until/While variant below is a thin
// adapter that picks the boundary with one of the textkit scans and
// delegates to takeAt.
//
// boundary < 0 means the condition never produced one. Under the
// saturating policy the whole remainder is consumed and returned; under
// the or-empty policy nothing is consumed and the result is empty.
func (c *Cursor[C]) takeAt(boundary int, orEmpty bool) []C {
	if boundary < 0 {
		if orEmpty {
			return nil
		}
		boundary = len(c.text)
	}
	return c.advance(boundary)
}

// TakeUntil consumes and returns everything before the first occurrence
// of u. The matching unit is not consumed. If u does not occur, the
// entire remainder is consumed and returned.
func (c *Cursor[C]) TakeUntil(u C) []C {
	return c.takeAt(textkit.Index(c.text, u), false)
}

// TakeUntilSeq consumes and returns everything before the first
// occurrence of seq as a unit. If seq does not occur, the entire
// remainder is consumed and returned.
func (c *Cursor[C]) TakeUntilSeq(seq []C) []C {
	return c.takeAt(textkit.IndexSeq(c.text, seq), false)
}

// TakeUntilAny consumes and returns everything before the first unit
// that is a member of set. If none is, the entire remainder is consumed
// and returned.
func (c *Cursor[C]) TakeUntilAny(set []C) []C {
	return c.takeAt(textkit.IndexAny(c.text, set), false)
}

// TakeUntilFunc consumes and returns everything before the first unit
// for which p reports true. If p never does, the entire remainder is
// consumed and returned.
func (c *Cursor[C]) TakeUntilFunc(p func(C) bool) []C {
	return c.takeAt(textkit.IndexFunc(c.text, p), false)
}

// TakeUntilOrEmpty is TakeUntil, except that when u does not occur
// nothing is consumed and the result is empty.
func (c *Cursor[C]) TakeUntilOrEmpty(u C) []C {
	return c.takeAt(textkit.Index(c.text, u), true)
}

// TakeUntilSeqOrEmpty is TakeUntilSeq, except that when seq does not
// occur nothing is consumed and the result is empty.
func (c *Cursor[C]) TakeUntilSeqOrEmpty(seq []C) []C {
	return c.takeAt(textkit.IndexSeq(c.text, seq), true)
}

// TakeUntilAnyOrEmpty is TakeUntilAny, except that when no member of
// set occurs nothing is consumed and the result is empty.
func (c *Cursor[C]) TakeUntilAnyOrEmpty(set []C) []C {
	return c.takeAt(textkit.IndexAny(c.text, set), true)
}

// TakeUntilFuncOrEmpty is TakeUntilFunc, except that when p never
// reports true nothing is consumed and the result is empty.
func (c *Cursor[C]) TakeUntilFuncOrEmpty(p func(C) bool) []C {
	return c.takeAt(textkit.IndexFunc(c.text, p), true)
}

// TakeWhile consumes and returns the leading run of units equal to u.
// If every remaining unit equals u, the entire remainder is consumed
// and returned.
func (c *Cursor[C]) TakeWhile(u C) []C {
	return c.takeAt(textkit.IndexFunc(c.text, func(x C) bool { return x != u }), false)
}

// TakeWhileAny consumes and returns the leading run of units that are
// members of set. If every remaining unit is, the entire remainder is
// consumed and returned.
func (c *Cursor[C]) TakeWhileAny(set []C) []C {
	return c.takeAt(textkit.IndexNotAny(c.text, set), false)
}

// TakeWhileFunc consumes and returns the leading run of units for which
// p reports true. If p holds for every remaining unit, the entire
// remainder is consumed and returned.
func (c *Cursor[C]) TakeWhileFunc(p func(C) bool) []C {
	return c.takeAt(textkit.IndexFunc(c.text, func(x C) bool { return !p(x) }), false)
}

// TakeWhileOrEmpty is TakeWhile, except that when every remaining unit
// equals u nothing is consumed and the result is empty.
func (c *Cursor[C]) TakeWhileOrEmpty(u C) []C {
	return c.takeAt(textkit.IndexFunc(c.text, func(x C) bool { return x != u }), true)
}

// TakeWhileAnyOrEmpty is TakeWhileAny, except that when every remaining
// unit belongs to set nothing is consumed and the result is empty.
func (c *Cursor[C]) TakeWhileAnyOrEmpty(set []C) []C {
	return c.takeAt(textkit.IndexNotAny(c.text, set), true)
}

// TakeWhileFuncOrEmpty is TakeWhileFunc, except that when p holds for
// every remaining unit nothing is consumed and the result is empty.
func (c *Cursor[C]) TakeWhileFuncOrEmpty(p func(C) bool) []C {
	return c.takeAt(textkit.IndexFunc(c.text, func(x C) bool { return !p(x) }), true)
}

// The Drop variants perform the same mutation as the corresponding Take
// variant but discard the text and return the cursor for chaining.

// DropUntil discards everything before the first occurrence of u.
func (c *Cursor[C]) DropUntil(u C) *Cursor[C] {
	c.TakeUntil(u)
	return c
}

// DropUntilSeq discards everything before the first occurrence of seq.
func (c *Cursor[C]) DropUntilSeq(seq []C) *Cursor[C] {
	c.TakeUntilSeq(seq)
	return c
}

// DropUntilAny discards everything before the first member of set.
func (c *Cursor[C]) DropUntilAny(set []C) *Cursor[C] {
	c.TakeUntilAny(set)
	return c
}

// DropUntilFunc discards everything before the first unit matching p.
func (c *Cursor[C]) DropUntilFunc(p func(C) bool) *Cursor[C] {
	c.TakeUntilFunc(p)
	return c
}

// DropUntilOrEmpty discards everything before the first occurrence of
// u, or nothing when u does not occur.
func (c *Cursor[C]) DropUntilOrEmpty(u C) *Cursor[C] {
	c.TakeUntilOrEmpty(u)
	return c
}

// DropUntilSeqOrEmpty discards everything before the first occurrence
// of seq, or nothing when seq does not occur.
func (c *Cursor[C]) DropUntilSeqOrEmpty(seq []C) *Cursor[C] {
	c.TakeUntilSeqOrEmpty(seq)
	return c
}

// DropUntilAnyOrEmpty discards everything before the first member of
// set, or nothing when none occurs.
func (c *Cursor[C]) DropUntilAnyOrEmpty(set []C) *Cursor[C] {
	c.TakeUntilAnyOrEmpty(set)
	return c
}

// DropUntilFuncOrEmpty discards everything before the first unit
// matching p, or nothing when p never matches.
func (c *Cursor[C]) DropUntilFuncOrEmpty(p func(C) bool) *Cursor[C] {
	c.TakeUntilFuncOrEmpty(p)
	return c
}

// DropWhile discards the leading run of units equal to u.
func (c *Cursor[C]) DropWhile(u C) *Cursor[C] {
	c.TakeWhile(u)
	return c
}

// DropWhileAny discards the leading run of units belonging to set.
func (c *Cursor[C]) DropWhileAny(set []C) *Cursor[C] {
	c.TakeWhileAny(set)
	return c
}

// DropWhileFunc discards the leading run of units matching p.
func (c *Cursor[C]) DropWhileFunc(p func(C) bool) *Cursor[C] {
	c.TakeWhileFunc(p)
	return c
}

// DropWhileOrEmpty discards the leading run of units equal to u, or
// nothing when the run covers the whole remainder.
func (c *Cursor[C]) DropWhileOrEmpty(u C) *Cursor[C] {
	c.TakeWhileOrEmpty(u)
	return c
}

// DropWhileAnyOrEmpty discards the leading run of units belonging to
// set, or nothing when the run covers the whole remainder.
func (c *Cursor[C]) DropWhileAnyOrEmpty(set []C) *Cursor[C] {
	c.TakeWhileAnyOrEmpty(set)
	return c
}

// DropWhileFuncOrEmpty discards the leading run of units matching p, or
// nothing when the run covers the whole remainder.
func (c *Cursor[C]) DropWhileFuncOrEmpty(p func(C) bool) *Cursor[C] {
	c.TakeWhileFuncOrEmpty(p)
	return c
}
