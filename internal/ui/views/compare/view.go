package compare

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"revguide/internal/ui/theme"
)

// Model is the comparison screen: paste a human review on the left of the
// flow, run the comparison, and read the verdict in a markdown viewport.
type Model struct {
	review   textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	result   string
	busy     bool
	width    int
	height   int
}

func New() Model {
	ta := textarea.New()
	ta.Placeholder = "Paste the human review here…"
	ta.SetHeight(8)
	ta.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)

	return Model{review: ta, viewport: viewport.New(0, 0), spinner: sp, renderer: r}
}

func (m Model) Init() tea.Cmd { return textarea.Blink }

func (m *Model) Focus() tea.Cmd { return m.review.Focus() }

func (m Model) Review() string { return m.review.Value() }

func (m *Model) SetReview(text string) { m.review.SetValue(text) }

// Reset clears the screen for a fresh comparison session.
func (m *Model) Reset() {
	m.review.SetValue("")
	m.result = ""
	m.busy = false
	m.viewport.SetContent("")
}

func (m *Model) SetBusy(busy bool) tea.Cmd {
	m.busy = busy
	if busy {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model) SetResult(markdown string) {
	m.result = markdown
	m.viewport.SetContent(m.rendered())
	m.viewport.GotoTop()
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.review.SetWidth(min(w-8, 80))
	m.viewport.Width = w - 4
	vh := h - m.review.Height() - 8
	if vh < 3 {
		vh = 3
	}
	m.viewport.Height = vh
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(w-6),
	); err == nil {
		m.renderer = r
	}
	if m.result != "" {
		m.viewport.SetContent(m.rendered())
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if tick, ok := msg.(spinner.TickMsg); ok {
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(tick)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if m.busy {
		return m, nil
	}

	var cmd tea.Cmd
	m.review, cmd = m.review.Update(msg)
	cmds = append(cmds, cmd)

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Compare with a human review") + "\n\n")
	sb.WriteString(m.review.View() + "\n\n")
	switch {
	case m.busy:
		sb.WriteString(m.spinner.View() + " Comparing…\n")
	case m.result != "":
		sb.WriteString(theme.Title.Render("Verdict") + "\n")
		sb.WriteString(m.viewport.View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("ctrl+s: run comparison  esc: back to the evaluation"))
	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(sb.String())
}

func (m Model) rendered() string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(m.result); err == nil {
			return out
		}
	}
	return m.result
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
