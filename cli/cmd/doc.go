// Package cmd provides the get, sections, fmt, and repl subcommands for
// querying INI documents.
package cmd
