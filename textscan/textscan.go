// Package textscan provides bounds-checked substring primitives and a
// growable line reader for line-oriented parsers.
//
// Every function treats out-of-range requests as ordinary inputs reported
// through return values. None of them panic on malformed bounds.
package textscan

// Substring returns the run of s covering [start, start+length) and true,
// or ("", false) if s is empty or the requested run extends past either
// bound of s.
func Substring(s string, start, length int) (string, bool) {
	if len(s) == 0 || start < 0 || length < 0 {
		return "", false
	}

	if start > len(s) || length > len(s)-start {
		return "", false
	}

	return s[start : start+length], true
}

// HasPrefix reports whether s begins with prefix.
// It is false whenever s is shorter than prefix.
func HasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// HasSuffix reports whether s ends with suffix.
// It is false whenever s is shorter than suffix.
func HasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// TrimTerminator removes one trailing line terminator ("\n" or "\r\n")
// from s. It never removes more than one terminator.
func TrimTerminator(s string) string {
	if HasSuffix(s, "\n") {
		s = s[:len(s)-1]

		if HasSuffix(s, "\r") {
			s = s[:len(s)-1]
		}
	}

	return s
}
