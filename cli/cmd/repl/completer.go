package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/iniq/ini"
)

// maxHintCandidates caps how many completion candidates appear in the
// hint line under the prompt.
const maxHintCandidates = 8

var (
	candidateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	matchedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
)

// completer offers fuzzy completion over the queryable paths of a
// document: every global key plus every "section.key" pair.
type completer struct {
	paths []string
}

func newCompleter(doc *ini.Document) completer {
	paths := make([]string, 0, doc.Global().Len())

	paths = append(paths, doc.Global().Keys()...)

	for section := range doc.Sections() {
		for _, key := range section.Keys() {
			paths = append(paths, section.Name()+"."+key)
		}
	}

	return completer{paths: paths}
}

// matches returns the candidate paths fuzzy-matching input, best first.
// An empty input matches nothing.
func (c completer) matches(input string) fuzzy.Matches {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, ":") {
		return nil
	}

	return fuzzy.Find(input, c.paths)
}

// complete returns the best completion for input, or input unchanged
// when nothing matches.
func (c completer) complete(input string) string {
	matched := c.matches(input)
	if len(matched) == 0 {
		return input
	}

	return matched[0].Str
}

// hint renders a single line of completion candidates for input,
// truncated to width. Matched characters are highlighted.
func (c completer) hint(input string, width int) string {
	matched := c.matches(input)
	if len(matched) == 0 {
		return ""
	}

	if len(matched) > maxHintCandidates {
		matched = matched[:maxHintCandidates]
	}

	parts := make([]string, len(matched))
	for i, m := range matched {
		parts[i] = highlight(m)
	}

	const sep = "  "

	line := strings.Join(parts, sep)
	if width > 0 && lipgloss.Width(line) > width {
		// Drop candidates from the end until the line fits.
		for len(parts) > 1 && lipgloss.Width(line) > width {
			parts = parts[:len(parts)-1]
			line = strings.Join(parts, sep)
		}
	}

	return line
}

// highlight renders one candidate with its matched characters
// emphasized.
func highlight(m fuzzy.Match) string {
	var sb strings.Builder

	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		matched[i] = true
	}

	for i, r := range m.Str {
		if matched[i] {
			sb.WriteString(matchedStyle.Render(string(r)))
		} else {
			sb.WriteString(candidateStyle.Render(string(r)))
		}
	}

	return sb.String()
}
