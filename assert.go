//go:build cursordebug

package cursor

import "fmt"

// debugAssert panics on a violated internal invariant. Only compiled in
// under the cursordebug tag; the documented contract never depends on
// it, in particular saturating operations saturate in every build mode.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("cursor: internal invariant violated: %s", msg))
	}
}
