package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Fmt reads input, parses it, and renders the document in the chosen
// export format.
type Fmt struct {
	JSON JSON `cmd:"" default:"withargs" help:"Render as JSON (default)."`
	YAML YAML `cmd:""                    help:"Render as YAML."`
}

// JSON renders a parsed document as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	doc, err := parseDocument(ctx, j.Source)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout(ctx))
	if j.Indent > 0 {
		enc.SetIndent("", fmt.Sprintf("%*s", j.Indent, ""))
	}

	if err := enc.Encode(doc); err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return nil
}

// YAML renders a parsed document as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	doc, err := parseDocument(ctx, y.Source)
	if err != nil {
		return err
	}

	var opts []yaml.EncodeOption
	if y.Indent > 0 {
		opts = append(opts, yaml.Indent(y.Indent))
	}

	data, err := doc.YAML(opts...)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = stdout(ctx).Write(data)

	return err
}
