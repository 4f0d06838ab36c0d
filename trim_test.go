package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimDefaultWhitespace(t *testing.T) {
	c := New([]byte("  hello world        "))
	assert.Equal(t, "hello world", c.Trim(nil).String())
}

func TestTrimFrontBack(t *testing.T) {
	c := New([]byte(" \t\nabc \t\n"))
	assert.Equal(t, "abc \t\n", c.TrimFront(nil).String())
	assert.Equal(t, "abc", c.TrimBack(nil).String())
}

func TestTrimCustomSet(t *testing.T) {
	c := New([]byte("xxhello worldyy"))
	assert.Equal(t, "hello world", c.Trim([]byte("xy")).String())

	// An explicit empty (non-nil) set strips nothing.
	c = New([]byte(" abc "))
	assert.Equal(t, " abc ", c.Trim([]byte{}).String())
}

func TestTrimAllStrippable(t *testing.T) {
	c := New([]byte(" \v\f\t\r\n"))
	assert.True(t, c.Trim(nil).Empty())

	c = New([]byte(" \v\f\t\r\n"))
	assert.True(t, c.TrimFront(nil).Empty())

	c = New([]byte(" \v\f\t\r\n"))
	assert.True(t, c.TrimBack(nil).Empty())
}

func TestTrimIdempotent(t *testing.T) {
	c := New([]byte("  hello world  "))
	once := c.Trim(nil).String()
	twice := c.Trim(nil).String()
	assert.Equal(t, once, twice)
	assert.Equal(t, "hello world", twice)
}

func TestTrimDefaultSetDoesNotAllocate(t *testing.T) {
	data := []byte("  \t hello world \t  ")
	allocs := testing.AllocsPerRun(100, func() {
		c := New(data)
		c.Trim(nil)
	})
	assert.Zero(t, allocs)

	allocs = testing.AllocsPerRun(100, func() {
		c := New(data)
		c.TrimFront(nil).TrimBack(nil)
	})
	assert.Zero(t, allocs)
}

func TestWhitespaceSetPerWidth(t *testing.T) {
	assert.Equal(t, []byte(" \t\n\r\v\f"), Whitespace[byte]())
	assert.Equal(t, []rune(" \t\n\r\v\f"), Whitespace[rune]())
	assert.Equal(t, []uint16{' ', '\t', '\n', '\r', '\v', '\f'}, Whitespace[uint16]())
}
