package textkit

// Unit is the set of code-unit types a cursor can scan: narrow 8-bit
// units and the common wide encodings.
type Unit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// Index returns the position of the first occurrence of u in s, or -1.
func Index[C Unit](s []C, u C) int {
	for i, c := range s {
		if c == u {
			return i
		}
	}
	return -1
}

// IndexSeq returns the position of the first occurrence of seq in s as a
// unit, or -1. An empty seq matches at position 0.
func IndexSeq[C Unit](s, seq []C) int {
	if len(seq) == 0 {
		return 0
	}
	for i := 0; i+len(seq) <= len(s); i++ {
		if Equal(s[i:i+len(seq)], seq) {
			return i
		}
	}
	return -1
}

// IndexAny returns the position of the first unit of s that is a member
// of set, or -1.
func IndexAny[C Unit](s, set []C) int {
	for i, c := range s {
		if Member(set, c) {
			return i
		}
	}
	return -1
}

// IndexNotAny returns the position of the first unit of s that is not a
// member of set, or -1 if every unit belongs to set.
func IndexNotAny[C Unit](s, set []C) int {
	for i, c := range s {
		if !Member(set, c) {
			return i
		}
	}
	return -1
}

// LastIndexNotAny returns the position of the last unit of s that is not
// a member of set, or -1 if every unit belongs to set.
func LastIndexNotAny[C Unit](s, set []C) int {
	for i := len(s) - 1; i >= 0; i-- {
		if !Member(set, s[i]) {
			return i
		}
	}
	return -1
}

// IndexFunc returns the position of the first unit for which p reports
// true, or -1.
func IndexFunc[C Unit](s []C, p func(C) bool) int {
	for i, c := range s {
		if p(c) {
			return i
		}
	}
	return -1
}

// LastIndexFunc returns the position of the last unit for which p
// reports true, or -1.
func LastIndexFunc[C Unit](s []C, p func(C) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if p(s[i]) {
			return i
		}
	}
	return -1
}

// Member reports whether u is contained in set.
func Member[C Unit](set []C, u C) bool {
	return Index(set, u) >= 0
}

// Equal reports whether a and b hold the same unit sequence.
func Equal[C Unit](a, b []C) bool {
	if len(a) != len(b) {
		return false
	}
	for i, c := range a {
		if c != b[i] {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically by unit value, returning
// -1, 0 or +1.
func Compare[C Unit](a, b []C) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
