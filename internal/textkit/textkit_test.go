package textkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	s := []byte("hello")
	assert.Equal(t, 2, Index(s, byte('l')))
	assert.Equal(t, -1, Index(s, byte('x')))
	assert.Equal(t, -1, Index([]byte(nil), byte('x')))
}

func TestIndexSeq(t *testing.T) {
	s := []byte("hello")
	assert.Equal(t, 3, IndexSeq(s, []byte("lo")))
	assert.Equal(t, 0, IndexSeq(s, []byte("he")))
	assert.Equal(t, -1, IndexSeq(s, []byte("lol")))
	assert.Equal(t, 0, IndexSeq(s, nil))
	assert.Equal(t, -1, IndexSeq([]byte("a"), []byte("ab")))
}

func TestIndexAnyNotAny(t *testing.T) {
	s := []byte("  ab")
	set := []byte(" \t")
	assert.Equal(t, 0, IndexAny(s, set))
	assert.Equal(t, 2, IndexNotAny(s, set))
	assert.Equal(t, -1, IndexAny([]byte("ab"), set))
	assert.Equal(t, -1, IndexNotAny([]byte("  "), set))
}

func TestLastIndexNotAny(t *testing.T) {
	set := []byte(" ")
	assert.Equal(t, 2, LastIndexNotAny([]byte(" ab  "), set))
	assert.Equal(t, -1, LastIndexNotAny([]byte("   "), set))
	assert.Equal(t, -1, LastIndexNotAny(nil, set))
}

func TestIndexFunc(t *testing.T) {
	s := []byte("ab1")
	digit := func(b byte) bool { return b >= '0' && b <= '9' }
	assert.Equal(t, 2, IndexFunc(s, digit))
	assert.Equal(t, -1, IndexFunc([]byte("ab"), digit))
}

func TestLastIndexFunc(t *testing.T) {
	digit := func(b byte) bool { return b >= '0' && b <= '9' }
	assert.Equal(t, 4, LastIndexFunc([]byte("a1b2c"), func(b byte) bool { return !digit(b) }))
	assert.Equal(t, 3, LastIndexFunc([]byte("ab12"), digit))
	assert.Equal(t, -1, LastIndexFunc([]byte("abc"), digit))
	assert.Equal(t, -1, LastIndexFunc(nil, digit))
}

func TestEqualCompare(t *testing.T) {
	assert.True(t, Equal([]byte("ab"), []byte("ab")))
	assert.False(t, Equal([]byte("ab"), []byte("ac")))
	assert.False(t, Equal([]byte("ab"), []byte("abc")))
	assert.True(t, Equal[byte](nil, []byte{}))

	assert.Equal(t, 0, Compare([]byte("ab"), []byte("ab")))
	assert.Equal(t, -1, Compare([]byte("ab"), []byte("ac")))
	assert.Equal(t, 1, Compare([]byte("b"), []byte("ab")))
	assert.Equal(t, -1, Compare([]byte("ab"), []byte("abc")))
	assert.Equal(t, 1, Compare([]byte("abc"), []byte("ab")))
}

func TestWideUnits(t *testing.T) {
	s := []rune("héllo")
	assert.Equal(t, 1, Index(s, 'é'))
	assert.Equal(t, 2, IndexSeq(s, []rune("ll")))
	assert.True(t, Member([]uint16{1, 2, 3}, uint16(2)))
}
