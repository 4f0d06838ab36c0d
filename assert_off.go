//go:build !cursordebug

package cursor

// debugAssert is a no-op unless built with the cursordebug tag.
func debugAssert(bool, string) {}
