// Package repl implements an interactive query prompt over a parsed INI
// document.
package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/iniq/ini"
)

const queryPrompt = "➜ "

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Run starts the interactive prompt over doc and blocks until the user
// quits.
func Run(ctx context.Context, doc *ini.Document) error {
	p := tea.NewProgram(newModel(doc), tea.WithContext(ctx))

	_, err := p.Run()

	return err
}

// model is the bubbletea model for the query prompt.
type model struct {
	doc       *ini.Document
	input     textinput.Model
	completer completer

	transcript []string // rendered prompt/result lines
	history    []string // submitted queries, oldest first
	histPos    int      // history cursor; len(history) means live input
	pending    string   // live input saved while browsing history

	width    int
	quitting bool
}

func newModel(doc *ini.Document) model {
	input := textinput.New()
	input.Prompt = promptStyle.Render(queryPrompt)
	input.Placeholder = "key, section.key, or :help"
	input.Focus()

	return model{
		doc:       doc,
		input:     input,
		completer: newCompleter(doc),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(queryPrompt) - 1

		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true

			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyTab:
			m.input.SetValue(m.completer.complete(m.input.Value()))
			m.input.CursorEnd()

			return m, nil

		case tea.KeyUp:
			return m.browseHistory(-1), nil

		case tea.KeyDown:
			return m.browseHistory(+1), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return strings.Join(m.transcript, "\n") + "\n"
	}

	var sb strings.Builder

	if len(m.transcript) > 0 {
		sb.WriteString(strings.Join(m.transcript, "\n"))
		sb.WriteByte('\n')
	}

	sb.WriteString(m.input.View())

	if hint := m.completer.hint(m.input.Value(), m.width); hint != "" {
		sb.WriteByte('\n')
		sb.WriteString(hint)
	}

	return sb.String()
}

// submit evaluates the current input line and appends the exchange to
// the transcript.
func (m model) submit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		return m, nil
	}

	m.transcript = append(m.transcript,
		promptStyle.Render(queryPrompt)+query)
	m.history = append(m.history, query)
	m.histPos = len(m.history)
	m.pending = ""
	m.input.SetValue("")

	if strings.HasPrefix(query, ":") {
		return m.control(query)
	}

	m.transcript = append(m.transcript, m.evaluate(query)...)

	return m, nil
}

// control handles colon-prefixed prompt commands.
func (m model) control(query string) (tea.Model, tea.Cmd) {
	switch query {
	case ":q", ":quit":
		m.quitting = true

		return m, tea.Quit

	case ":sections":
		if m.doc.Len() == 0 {
			m.transcript = append(m.transcript,
				hintStyle.Render("(no sections)"))

			return m, nil
		}

		for section := range m.doc.Sections() {
			m.transcript = append(m.transcript, resultStyle.Render(
				fmt.Sprintf("%s (%d)", section.Name(), section.Len())))
		}

		return m, nil

	case ":help":
		m.transcript = append(m.transcript, hintStyle.Render(
			"key | section.key | :sections | :help | :quit"))

		return m, nil

	default:
		m.transcript = append(m.transcript,
			errorStyle.Render("unknown command "+query))

		return m, nil
	}
}

// evaluate resolves a key or section.key query against the document.
func (m model) evaluate(query string) []string {
	// An exact global key wins, even if it contains a dot.
	if item, ok := m.doc.Get(query); ok {
		return []string{resultStyle.Render(item.Value)}
	}

	if section, key, ok := strings.Cut(query, "."); ok {
		if item, found := m.doc.Lookup(section, key); found {
			return []string{resultStyle.Render(item.Value)}
		}
	}

	return []string{errorStyle.Render("not found: " + query)}
}

// browseHistory moves the history cursor by delta and loads the entry at
// the new position into the input.
func (m model) browseHistory(delta int) model {
	if len(m.history) == 0 {
		return m
	}

	pos := m.histPos + delta
	if pos < 0 || pos > len(m.history) {
		return m
	}

	if m.histPos == len(m.history) {
		// Leaving the live line: remember it for KeyDown.
		m.pending = m.input.Value()
	}

	m.histPos = pos

	if pos == len(m.history) {
		m.input.SetValue(m.pending)
	} else {
		m.input.SetValue(m.history[pos])
	}

	m.input.CursorEnd()

	return m
}
