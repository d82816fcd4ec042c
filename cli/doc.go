// Package cli contains the command line interface for iniq.
//
// # Usage
//
// Every command parses an INI document and operates on the result:
//
//	# Look up a key in the global scope
//	iniq get timeout -f app.ini
//
//	# Look up a key inside a section
//	iniq get port server -f app.ini
//
//	# List sections with item counts
//	iniq sections -f app.ini
//
//	# Render the parsed document as JSON or YAML
//	iniq fmt json app.ini
//	iniq fmt yaml app.ini
//
//	# Query a document interactively
//	iniq repl app.ini
//
// Commands read from a file or from stdin when the source is "-".
// Recoverable parse anomalies (unrecognized lines, malformed section
// headers, unterminated block comments) are logged as warnings; the
// command still operates on the best-effort document.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
