package ini

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/iniq/log"
	"github.com/ardnew/iniq/textscan"
)

// Option configures a parse operation.
type Option func(*parser)

// WithLogger attaches a structured logger used for parse diagnostics.
// Without it, diagnostics are discarded.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

// ParseFile parses the INI file at path.
//
// The file is closed before ParseFile returns, on success and on every
// failure path. An unopenable path returns nil and a hard error wrapping
// [ErrSourceUnavailable]; the underlying system error remains reachable
// through errors.As.
func ParseFile(
	ctx context.Context,
	path string,
	opts ...Option,
) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrSourceUnavailable.Wrap(err).
			With(slog.String("path", path))
	}
	defer file.Close()

	return ParseReader(ctx, file, opts...)
}

// ParseReader parses an INI document from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	p := newParser(opts...)

	for raw, err := range textscan.Lines(r) {
		if err != nil {
			return nil, ErrReadInput.Wrap(err).
				With(slog.Int("line", p.lineno+1))
		}

		p.consume(ctx, raw)
	}

	return p.finish(ctx), nil
}

// ParseString parses an INI document from a string.
func ParseString(
	ctx context.Context,
	s string,
	opts ...Option,
) (*Document, error) {
	return ParseReader(ctx, strings.NewReader(s), opts...)
}

// parser holds the builder state carried across lines.
type parser struct {
	doc     *Document
	current *Section // scope receiving key/value items
	inBlock bool     // suppressing lines until block comment end
	lineno  int      // 1-based, last line consumed
	logger  log.Logger
}

func newParser(opts ...Option) *parser {
	p := &parser{doc: newDocument()}
	p.current = p.doc.global

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// consume advances the state machine by one line of input.
func (p *parser) consume(ctx context.Context, raw string) {
	p.lineno++

	trimmed := textscan.TrimTerminator(raw)

	if p.inBlock {
		// Every line inside a block comment is skipped outright;
		// only the closing marker matters.
		if isBlockEnd(trimmed) {
			p.inBlock = false
		}

		return
	}

	ln := classify(raw)

	switch ln.kind {
	case lineBlank, lineComment:
		// no-op

	case lineBlockStart:
		// A self-contained "/* ... */" line never opens a block.
		p.inBlock = !ln.blockEnd

	case lineSection:
		p.current = p.doc.section(ln.name)

		p.logger.TraceContext(ctx, "section opened",
			slog.String("name", ln.name),
			slog.Int("line", p.lineno))

	case lineKeyValue:
		p.current.set(ln.key, ln.value)

		p.logger.TraceContext(ctx, "item set",
			slog.String("section", p.current.Name()),
			slog.String("key", ln.key),
			slog.Int("line", p.lineno))

	case lineMalformed:
		p.doc.warn(WarnMalformedSection, p.lineno, trimmed)

	case lineUnrecognized:
		p.doc.warn(WarnUnrecognizedLine, p.lineno, trimmed)
	}
}

// finish closes out the parse and returns the assembled Document.
// Ending inside a block comment is a soft error; the Document built so
// far is still valid.
func (p *parser) finish(ctx context.Context) *Document {
	if p.inBlock {
		p.doc.warn(WarnUnterminatedBlock, p.lineno, "")
	}

	p.logger.DebugContext(ctx, "parse complete",
		slog.Int("lines", p.lineno),
		slog.Int("global_items", p.doc.global.Len()),
		slog.Int("sections", p.doc.Len()),
		slog.Int("warnings", len(p.doc.warnings)))

	return p.doc
}
