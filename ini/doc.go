// Package ini parses INI-format configuration text into a structured,
// queryable in-memory document.
//
// # Format
//
// Input is a sequence of lines. A line is one of:
//
//   - a blank line, or a comment starting with "#", ";", or "//"
//   - a block comment opened by a leading "/*" and closed by a trailing
//     "*/" (possibly on the same line)
//   - a section header "[name]"
//   - a key/value pair "key=value", split on the first "=" with
//     surrounding whitespace trimmed from both parts
//
// Items before the first section header belong to the global scope; items
// after a header belong to that section until the next header. There are
// no multi-line values, quoting rules, or interpolation.
//
// # Parsing
//
// [ParseFile], [ParseReader], and [ParseString] assemble a [Document] in
// one pass. Hard failures (unopenable or unreadable input) return nil and
// an error. Recoverable anomalies (unrecognized lines, malformed section
// headers, an unterminated block comment) are collected as [Warning]
// values on the returned Document and never abort the parse:
//
//	doc, err := ini.ParseFile(ctx, "app.ini")
//	if err != nil {
//		return err
//	}
//	for _, w := range doc.Warnings() {
//		log.Warn("parse anomaly", slog.Any("warning", w))
//	}
//
// # Querying
//
// A Document is immutable once returned and safe for concurrent reads.
// Lookups by key and section name are O(1); iteration order always equals
// insertion order:
//
//	if item, ok := doc.Lookup("server", "port"); ok {
//		fmt.Println(item.Value)
//	}
//
// Within a scope, a duplicated key keeps its original position but takes
// the last value written. A duplicated section header reopens the
// existing section.
package ini
