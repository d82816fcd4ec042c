package cmd

import (
	"context"

	"github.com/ardnew/iniq/cli/cmd/repl"
)

// Repl opens an interactive query prompt over a parsed document.
// Unlike the other commands, it cannot read the document from stdin,
// which the prompt itself occupies.
type Repl struct {
	Source string `arg:"" help:"Source input file" name:"source" type:"existingfile"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	doc, err := parseDocument(ctx, r.Source)
	if err != nil {
		return err
	}

	return repl.Run(ctx, doc)
}
