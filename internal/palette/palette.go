// Package palette implements the interactive command palette: a text input
// filtered against the searchable content on every keystroke, showing the
// top matches above a fixed navigation list. Selecting an entry returns it
// to the caller; the palette itself never navigates.
package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matsjfunke/website/internal/search"
)

// maxResults caps how many search matches are shown below the input.
const maxResults = 3

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	sectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the palette.
type Model struct {
	input   textinput.Model
	items   []search.Item
	results []search.Item
	cursor  int

	selected *search.Item
	quitting bool
}

// New builds a palette over the given searchable items.
func New(items []search.Item) Model {
	in := textinput.New()
	in.Placeholder = "Search content..."
	in.Prompt = "> "
	in.Focus()

	return Model{input: in, items: items}
}

// Selected returns the entry chosen with enter, or nil when the palette was
// dismissed.
func (m Model) Selected() *search.Item { return m.selected }

// Results returns the current search matches, capped at maxResults.
func (m Model) Results() []search.Item { return m.results }

// Shown returns every selectable entry in display order: search matches
// first, then the fixed navigation pages.
func (m Model) Shown() []search.Item {
	shown := make([]search.Item, 0, len(m.results)+len(search.Pages))
	shown = append(shown, m.results...)
	shown = append(shown, search.Pages...)
	return shown
}

// Cursor returns the index of the highlighted entry within Shown.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if shown := m.Shown(); len(shown) > 0 {
				item := shown[m.cursor]
				m.selected = &item
			}
			m.quitting = true
			return m, tea.Quit

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case tea.KeyDown:
			if m.cursor < len(m.Shown())-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// refresh recomputes the matches for the current query. Every keystroke
// supersedes the previous search and resets the cursor to the top entry.
func (m *Model) refresh() {
	m.results = nil
	if strings.TrimSpace(m.input.Value()) != "" {
		matches := search.Search(m.items, m.input.Value())
		if len(matches) > maxResults {
			matches = matches[:maxResults]
		}
		m.results = matches
	}
	m.cursor = 0
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("matsjfunke.com"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	query := strings.TrimSpace(m.input.Value())
	if query != "" {
		b.WriteString(sectionStyle.Render("Results"))
		b.WriteString("\n")
		if len(m.results) == 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  No results for %q", query)))
			b.WriteString("\n")
		}
		for i, item := range m.results {
			m.writeEntry(&b, item, i == m.cursor)
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for i, item := range search.Pages {
		m.writeEntry(&b, item, len(m.results)+i == m.cursor)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("up/down navigate | enter select | esc quit"))
	return b.String()
}

func (m Model) writeEntry(b *strings.Builder, item search.Item, highlighted bool) {
	line := fmt.Sprintf("%s (%s)", item.Title, item.Type.Label())
	if highlighted {
		line = selectedStyle.Render("> " + line)
	} else {
		line = "  " + line
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("    " + item.Description))
	b.WriteString("\n")
}

// Run opens the palette and blocks until the user selects an entry or
// dismisses it. A nil item with a nil error means the palette was dismissed.
func Run(items []search.Item) (*search.Item, error) {
	prog := tea.NewProgram(New(items))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("running palette: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected palette model %T", final)
	}
	return model.Selected(), nil
}
