package ini

import "log/slog"

//go:generate go tool stringer --linecomment --type WarningKind --output warning_string.go

// WarningKind identifies a recoverable parse anomaly.
type WarningKind int

const (
	// WarnMalformedSection marks a line that opens a section header but
	// whose name cannot be extracted (empty or unclosed brackets).
	WarnMalformedSection WarningKind = iota // malformed section header

	// WarnUnrecognizedLine marks a line matching no known form.
	// The line is dropped, never guessed at.
	WarnUnrecognizedLine // unrecognized line

	// WarnUnterminatedBlock marks input ending inside a block comment.
	WarnUnterminatedBlock // unterminated block comment
)

// Warning records one soft error encountered during a parse.
// Warnings never abort the parse; they accumulate on the Document.
type Warning struct {
	Kind WarningKind
	Line int    // 1-based line number in the input
	Text string // offending line, terminator stripped
}

// LogValue implements slog.LogValuer.
func (w Warning) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", w.Kind.String()),
		slog.Int("line", w.Line),
		slog.String("text", w.Text),
	)
}
