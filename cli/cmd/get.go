package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/iniq/ini"
)

// Get looks up the value of a key in a parsed document.
type Get struct {
	Key     string `arg:"" help:"Item key to look up"                          name:"key"`
	Section string `arg:"" help:"Section name (omit for the global scope)"     name:"section" optional:""`
	Source  string `       help:"Source input file or '-' for stdin" default:"-" short:"f"`

	Suggest int `default:"3" help:"Maximum number of near-miss suggestions (0 disables)"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	doc, err := parseDocument(ctx, g.Source)
	if err != nil {
		return err
	}

	if g.Section != "" {
		if _, ok := doc.Section(g.Section); !ok {
			return ErrSectionNotFound.
				With(slog.String("section", g.Section))
		}
	}

	item, ok := doc.Lookup(g.Section, g.Key)
	if !ok {
		err := ErrKeyNotFound.With(
			slog.String("key", g.Key),
			slog.String("section", g.Section),
		)

		if near := g.suggestions(doc); len(near) > 0 {
			return err.With(
				slog.String("did_you_mean", strings.Join(near, ", ")))
		}

		return err
	}

	fmt.Fprintln(stdout(ctx), item.Value)

	return nil
}

// suggestions returns up to Suggest keys fuzzy-matching the requested
// key within the requested scope.
func (g *Get) suggestions(doc *ini.Document) []string {
	if g.Suggest <= 0 {
		return nil
	}

	scope := doc.Global()
	if g.Section != "" {
		s, ok := doc.Section(g.Section)
		if !ok {
			return nil
		}

		scope = s
	}

	matches := fuzzy.Find(g.Key, scope.Keys())
	if len(matches) > g.Suggest {
		matches = matches[:g.Suggest]
	}

	near := make([]string, len(matches))
	for i, m := range matches {
		near[i] = m.Str
	}

	return near
}
