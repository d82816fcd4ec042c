// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stdout)
//	logger.Info("parse complete", slog.Int("sections", n))
//
// A zero-value [Logger] discards everything, so library code can carry a
// Logger field without nil checks.
//
// # Configuration
//
//	logger := log.Make(os.Stdout,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Default Logger
//
// Package-level functions ([Debug], [Info], [Warn], [Error], and their
// Context variants) write through a process-wide default logger, which is
// reconfigured with [Config]:
//
//	log.Config(log.WithFormat(log.FormatText), log.WithPretty(true))
//	log.Info("starting")
//
// # Levels and Formats
//
// Five levels are supported: [LevelTrace] (below debug), [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Output is [FormatJSON]
// (default) or [FormatText]; the text format optionally colorizes output
// with [WithPretty].
package log
