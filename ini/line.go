package ini

import (
	"strings"

	"github.com/ardnew/iniq/textscan"
)

// Comment and structure markers recognized by the classifier.
const (
	commentHash      = "#"
	commentSemicolon = ";"
	commentSlash     = "//"
	blockOpen        = "/*"
	blockClose       = "*/"
	sectionOpen      = "["
	sectionClose     = "]"
	keyValueSep      = "="
)

// lineKind is the classification of a single input line.
type lineKind int

const (
	lineBlank        lineKind = iota // empty or terminator-only
	lineComment                      // #, ;, or // to end of line
	lineBlockStart                   // opens a /* block comment
	lineSection                      // [name] header
	lineKeyValue                     // key=value pair
	lineMalformed                    // section header with no extractable name
	lineUnrecognized                 // none of the above
)

// line is one classified line of input with its extracted parts.
type line struct {
	kind lineKind

	name       string // section name (lineSection)
	key, value string // pair parts (lineKeyValue)

	// blockEnd is tracked independently of kind: a single "/* ... */"
	// line is both block start and block end, and must not leave the
	// builder suspended.
	blockEnd bool
}

// classify determines the kind of a single line and extracts any embedded
// section name or key/value pair. A trailing line terminator is tolerated;
// it never participates in prefix or suffix tests.
//
// Rules apply in order, first match wins: blank, line comment ("#", ";",
// "//"), block comment start ("/*"), section header ("[name]"), key/value
// ("key=value"). Anything else is unrecognized.
func classify(raw string) line {
	s := textscan.TrimTerminator(raw)

	if s == "" {
		return line{kind: lineBlank}
	}

	if textscan.HasPrefix(s, commentHash) ||
		textscan.HasPrefix(s, commentSemicolon) ||
		textscan.HasPrefix(s, commentSlash) {
		return line{kind: lineComment}
	}

	if textscan.HasPrefix(s, blockOpen) {
		return line{kind: lineBlockStart, blockEnd: isBlockEnd(s)}
	}

	if textscan.HasPrefix(s, sectionOpen) {
		name, ok := sectionName(s)
		if !ok {
			return line{kind: lineMalformed}
		}

		return line{kind: lineSection, name: name}
	}

	if key, value, ok := splitKeyValue(s); ok {
		return line{kind: lineKeyValue, key: key, value: value}
	}

	return line{kind: lineUnrecognized}
}

// isBlockEnd reports whether the final two characters of a
// terminator-trimmed line close a block comment.
func isBlockEnd(s string) bool {
	return textscan.HasSuffix(s, blockClose)
}

// sectionName extracts the name strictly between the brackets of a header
// line. It fails on an unclosed bracket or an empty name.
func sectionName(s string) (string, bool) {
	if !textscan.HasPrefix(s, sectionOpen) || !textscan.HasSuffix(s, sectionClose) {
		return "", false
	}

	name, ok := textscan.Substring(s, 1, len(s)-2)
	if !ok || name == "" {
		return "", false
	}

	return name, true
}

// splitKeyValue splits a line on its first "=" into a trimmed key and
// value. It fails when there is no separator or the key trims to empty.
func splitKeyValue(s string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(s, keyValueSep)
	if !ok {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}

	return key, strings.TrimSpace(value), true
}
