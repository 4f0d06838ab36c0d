//go:build !windows

package cursor

// defaultLineSep is the platform line separator used when Lines is
// given a nil separator.
const defaultLineSep = "\n"
