package cmd

import (
	"context"
	"fmt"
)

// Sections lists the sections of a parsed document.
type Sections struct {
	Source string `help:"Source input file or '-' for stdin" default:"-" short:"f"`
	Keys   bool   `help:"Also list the keys inside each scope" short:"k"`
}

// Run executes the sections command.
func (s *Sections) Run(ctx context.Context) error {
	doc, err := parseDocument(ctx, s.Source)
	if err != nil {
		return err
	}

	out := stdout(ctx)

	if doc.Global().Len() > 0 {
		fmt.Fprintf(out, "(global)\t%d\n", doc.Global().Len())

		if s.Keys {
			for _, key := range doc.Global().Keys() {
				fmt.Fprintf(out, "\t%s\n", key)
			}
		}
	}

	for section := range doc.Sections() {
		fmt.Fprintf(out, "%s\t%d\n", section.Name(), section.Len())

		if s.Keys {
			for _, key := range section.Keys() {
				fmt.Fprintf(out, "\t%s\n", key)
			}
		}
	}

	return nil
}
