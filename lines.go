package cursor

import (
	"github.com/rawbytedev/cursor/internal/textkit"
)

// LineIter lazily yields the segments of a cursor between occurrences
// of a separator. Segments are produced on demand; the source cursor is
// never modified.
type LineIter[C Unit] struct {
	rest []C
	sep  []C
	done bool
}

// Lines returns a lazy iterator over the segments of the cursor
// separated by sep, with separators excluded. Consecutive separators
// yield empty segments, and a trailing separator yields a final empty
// segment, so the iterator always produces exactly one segment per
// separator occurrence plus one. A nil sep selects the platform default
// line separator.
//
// The receiver is not modified; calling Lines again re-derives the
// sequence from the unchanged source.
func (c Cursor[C]) Lines(sep []C) *LineIter[C] {
	if len(sep) == 0 {
		// An empty separator would never advance; fall back to the
		// platform default.
		sep = lineSeparator[C]()
	}
	return &LineIter[C]{rest: c.text, sep: sep}
}

// Next returns the next segment as an independent cursor, or false when
// the sequence is exhausted.
func (it *LineIter[C]) Next() (Cursor[C], bool) {
	if it.done {
		return Cursor[C]{}, false
	}
	i := textkit.IndexSeq(it.rest, it.sep)
	if i < 0 {
		line := Cursor[C]{text: it.rest}
		it.rest = nil
		it.done = true
		return line, true
	}
	line := Cursor[C]{text: it.rest[:i]}
	it.rest = it.rest[i+len(it.sep):]
	return line, true
}

// lineSeparator builds the platform default separator (defaultLineSep,
// selected at build time) as units of type C.
func lineSeparator[C Unit]() []C {
	sep := make([]C, len(defaultLineSep))
	for i := 0; i < len(defaultLineSep); i++ {
		sep[i] = C(defaultLineSep[i])
	}
	return sep
}
