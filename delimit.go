package cursor

import (
	"github.com/rawbytedev/cursor/internal/textkit"
)

// TakeDelimited extracts a delimited run of units. If the cursor starts
// with delim, everything strictly between that opening delim and its
// next occurrence is returned and the cursor advances past the closing
// delim. Adjacent delimiters yield an empty (non-nil failure-free)
// result.
//
// If the opening or the closing delimiter is missing, the cursor is
// left completely unchanged and (nil, false) is returned; the opening
// delimiter is never half-consumed.
func (c *Cursor[C]) TakeDelimited(delim []C) ([]C, bool) {
	if len(delim) == 0 || !c.StartsWithSeq(delim) {
		return nil, false
	}
	rest := c.text[len(delim):]
	i := textkit.IndexSeq(rest, delim)
	if i < 0 {
		return nil, false
	}
	c.text = rest[i+len(delim):]
	return rest[:i], true
}

// TakeDelimitedAny is TakeDelimited with the opening delimiter chosen
// as whichever member of set the cursor starts with; the closing
// delimiter must be that same unit. Symmetric quote matching only, no
// bracket nesting.
func (c *Cursor[C]) TakeDelimitedAny(set []C) ([]C, bool) {
	if !c.StartsWithAny(set) {
		return nil, false
	}
	delim := c.text[0]
	rest := c.text[1:]
	i := textkit.Index(rest, delim)
	if i < 0 {
		return nil, false
	}
	c.text = rest[i+1:]
	return rest[:i], true
}
