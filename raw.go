package cursor

import (
	"unsafe"
)

// FromString returns a byte cursor viewing the bytes of s without
// copying. Strings are immutable, so the read-only contract holds and
// the view stays valid for the lifetime of s.
func FromString(s string) Cursor[byte] {
	if len(s) == 0 {
		return Cursor[byte]{}
	}
	return Cursor[byte]{text: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromPointer returns a cursor over the n units starting at p. The
// caller guarantees p points to at least n valid units that outlive the
// cursor. A nil p or non-positive n yields an empty cursor.
func FromPointer[C Unit](p *C, n int) Cursor[C] {
	if p == nil || n <= 0 {
		return Cursor[C]{}
	}
	return Cursor[C]{text: unsafe.Slice(p, n)}
}

// Bytes reinterprets the remaining units as their in-memory bytes, for
// read-only interop with byte-oriented APIs. For Cursor[byte] this is
// the view itself; for wide units the result is in native byte order.
func (c Cursor[C]) Bytes() []byte {
	if len(c.text) == 0 {
		return nil
	}
	var zero C
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.text[0])), len(c.text)*int(unsafe.Sizeof(zero)))
}

// LenBytes returns the number of bytes occupied by the remaining units.
func (c Cursor[C]) LenBytes() int {
	var zero C
	return len(c.text) * int(unsafe.Sizeof(zero))
}
