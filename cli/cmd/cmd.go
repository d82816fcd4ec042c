package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/iniq/ini"
	"github.com/ardnew/iniq/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the output writer of the active kong context, or
// os.Stdout when running outside of one.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// parseDocument parses the INI document named by source, which is either
// a file path or [stdinSource].
//
// Soft parse anomalies are reported through the default logger; the
// best-effort document is still returned.
func parseDocument(ctx context.Context, source string) (*ini.Document, error) {
	var (
		doc *ini.Document
		err error
	)

	if source == stdinSource {
		doc, err = ini.ParseReader(ctx, bufio.NewReader(os.Stdin),
			ini.WithLogger(log.Default()))
	} else {
		doc, err = ini.ParseFile(ctx, source,
			ini.WithLogger(log.Default()))
	}

	if err != nil {
		return nil, ErrParseSource.Wrap(err).
			With(slog.String("source", source))
	}

	for _, w := range doc.Warnings() {
		log.WarnContext(ctx, "parse anomaly",
			slog.String("source", source),
			slog.Any("warning", w))
	}

	return doc, nil
}
