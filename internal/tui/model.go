package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Generator produces names for the picker. *names.Generator satisfies it.
type Generator interface {
	Generate() (string, error)
}

// Detail is a label/value row shown under the list, e.g. the casing in use.
type Detail struct {
	Label string
	Value string
}

type model struct {
	view         viewState
	previousView viewState
	gen          Generator
	batch        int
	candidates   []candidate
	cursor       int
	loading      bool
	err          error
	details      []Detail
	picked       []string
	width        int
	height       int
	spinner      spinner.Model
}

func newModel(g Generator, batch int, details []Detail) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle
	if batch < 1 {
		batch = 1
	}
	return model{
		view:    viewList,
		gen:     g,
		batch:   batch,
		details: details,
		loading: true,
		width:   80,
		height:  24,
		spinner: s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(generateCmd(m.gen, m.batch, true), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case namesGeneratedMsg:
		m.loading = false
		m.err = msg.err
		added := make([]candidate, len(msg.names))
		for i, n := range msg.names {
			added[i] = candidate{Name: n}
		}
		if msg.replace {
			m.candidates = added
			m.cursor = 0
		} else {
			m.candidates = append(m.candidates, added...)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always works
	if key.Matches(msg, keys.Quit) {
		if m.view == viewHelp && msg.String() == "esc" {
			m.view = m.previousView
			return m, nil
		}
		return m, tea.Quit
	}

	if m.loading {
		return m, nil
	}

	if key.Matches(msg, keys.Help) {
		if m.view == viewHelp {
			m.view = m.previousView
		} else {
			m.previousView = m.view
			m.view = viewHelp
		}
		return m, nil
	}

	if m.view == viewHelp {
		// Any other key goes back
		m.view = m.previousView
		return m, nil
	}
	return m.handleListKey(msg)
}

func (m model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Mark):
		if len(m.candidates) > 0 {
			m.candidates[m.cursor].Marked = !m.candidates[m.cursor].Marked
		}
	case key.Matches(msg, keys.Enter):
		if len(m.candidates) == 0 {
			return m, nil
		}
		m.picked = m.markedNames()
		if len(m.picked) == 0 {
			m.picked = []string{m.candidates[m.cursor].Name}
		}
		return m, tea.Quit
	case key.Matches(msg, keys.Reroll):
		m.loading = true
		return m, tea.Batch(generateCmd(m.gen, m.batch, true), m.spinner.Tick)
	case key.Matches(msg, keys.More):
		m.loading = true
		return m, tea.Batch(generateCmd(m.gen, m.batch, false), m.spinner.Tick)
	}
	return m, nil
}

func (m model) markedNames() []string {
	var out []string
	for _, c := range m.candidates {
		if c.Marked {
			out = append(out, c.Name)
		}
	}
	return out
}

func (m model) View() string {
	var s string
	switch m.view {
	case viewList:
		s = renderList(m)
	case viewHelp:
		s = renderHelp(m)
	}
	return padToHeight(s, m.height)
}

func renderList(m model) string {
	var b strings.Builder
	w := m.width

	b.WriteString(renderBreadcrumb([]string{"names", "pick"}))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.candidates) == 0 {
		content := dimStyle.Render("No names yet.")
		if m.loading {
			content = fmt.Sprintf("%s %s", m.spinner.View(), dimStyle.Render("Generating names..."))
		}
		b.WriteString(renderTitledPanel("Names", content, w))
		b.WriteString("\n\n")
		b.WriteString(renderHelpBar([]helpItem{{"r", "retry"}, {"q", "quit"}}, w))
		b.WriteString("\n")
		return b.String()
	}

	listHeight := max(m.height-10-len(m.details), 3)
	var rows []string
	start, end := scrollWindow(m.cursor, len(m.candidates), listHeight)
	for i := start; i < end; i++ {
		c := m.candidates[i]
		mark := "  "
		if c.Marked {
			mark = markStyle.Render("● ")
		}
		length := lengthStyle.Render(fmt.Sprintf("%3d", utf8.RuneCountInString(c.Name)))

		var line string
		if i == m.cursor {
			line = fmt.Sprintf("%s %s%s  %s", cursorStyle.Render("▸"), mark, selectedRowStyle.Render(c.Name), length)
		} else {
			line = fmt.Sprintf("  %s%s  %s", mark, normalRowStyle.Render(c.Name), length)
		}
		rows = append(rows, line)
	}

	title := fmt.Sprintf("Names (%d)", len(m.candidates))
	if m.loading {
		title += " " + m.spinner.View()
	}
	b.WriteString(renderTitledPanel(title, strings.Join(rows, "\n"), w))
	b.WriteString("\n")

	if len(m.details) > 0 {
		var detail []string
		for _, d := range m.details {
			detail = append(detail, renderDetailRow(d.Label, d.Value))
		}
		b.WriteString(renderTitledPanel("Config", strings.Join(detail, "\n"), w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelpBar([]helpItem{
		{"enter", "pick"},
		{"space", "mark"},
		{"r", "new batch"},
		{"m", "more"},
		{"?", "help"},
		{"q", "quit"},
	}, w))
	b.WriteString("\n")
	return b.String()
}

func renderHelp(m model) string {
	var b strings.Builder

	b.WriteString(renderBreadcrumb([]string{"names", "help"}))
	b.WriteString("\n\n")

	var sections strings.Builder
	sections.WriteString(breadcrumbActiveStyle.Render("Keybindings"))
	sections.WriteString("\n")
	for _, k := range []key.Binding{keys.Up, keys.Down, keys.Enter, keys.Mark, keys.Reroll, keys.More, keys.Help, keys.Quit} {
		h := k.Help()
		sections.WriteString(formatHelpLine(h.Key, h.Desc))
	}
	sections.WriteString("\n")
	sections.WriteString(dimStyle.Render("enter picks the marked names, or the one under the cursor."))

	b.WriteString(renderTitledPanel("Help", sections.String(), m.width))
	b.WriteString("\n\n")
	b.WriteString(renderHelpBar([]helpItem{{"?", "close"}, {"q", "quit"}}, m.width))
	b.WriteString("\n")
	return b.String()
}

func formatHelpLine(key, desc string) string {
	return "  " + helpKeyStyle.Render(fmt.Sprintf("%-8s", key)) + "  " + dimStyle.Render(desc) + "\n"
}

// generateCmd draws n names off the update loop. Only one runs at a time
// because keys are ignored while loading.
func generateCmd(g Generator, n int, replace bool) tea.Cmd {
	return func() tea.Msg {
		out := make([]string, 0, n)
		for range n {
			name, err := g.Generate()
			if err != nil {
				return namesGeneratedMsg{names: out, replace: replace, err: err}
			}
			out = append(out, name)
		}
		return namesGeneratedMsg{names: out, replace: replace}
	}
}
