package result

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"revguide/internal/ui/theme"
)

// Model renders the finished evaluation as markdown in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	renderer *glamour.TermRenderer
	content  string
	width    int
	height   int
}

func New() Model {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)
	return Model{viewport: viewport.New(0, 0), renderer: r}
}

func (m Model) Init() tea.Cmd { return nil }

// SetContent replaces the evaluation text and scrolls back to the top.
func (m *Model) SetContent(markdown string) {
	m.content = markdown
	m.viewport.SetContent(m.rendered())
	m.viewport.GotoTop()
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	// Rebuild the renderer so word wrap follows the terminal width.
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(w-4),
	); err == nil {
		m.renderer = r
	}
	if m.content != "" {
		m.viewport.SetContent(m.rendered())
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("Evaluation") +
		theme.Muted.Render("  ↑/↓: scroll  c: compare with a human review  r: start over")
	footer := theme.Muted.Render(fmt.Sprintf("%.0f%%", m.viewport.ScrollPercent()*100))
	return strings.Join([]string{header, m.viewport.View(), footer}, "\n")
}

func (m Model) rendered() string {
	if m.content == "" {
		return theme.Muted.Render("(no evaluation)")
	}
	if m.renderer != nil {
		if out, err := m.renderer.Render(m.content); err == nil {
			return out
		}
	}
	return m.content
}
