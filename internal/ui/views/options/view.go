package options

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"revguide/internal/ui/theme"
)

// Model is the evaluation-options step: pick a target venue from the fixed
// catalog and optionally add a free-text prompt.
type Model struct {
	venues      []string
	cursor      int
	prompt      textarea.Model
	promptFocus bool
	width       int
	height      int
}

func New(venues []string) Model {
	ta := textarea.New()
	ta.Placeholder = "Optional: extra guidance for the evaluation…"
	ta.SetHeight(4)
	ta.CharLimit = 2000
	return Model{venues: venues, prompt: ta}
}

func (m Model) Init() tea.Cmd { return nil }

// CapturesKeys reports whether the prompt textarea currently eats keys that
// would otherwise drive the wizard (enter in particular).
func (m Model) CapturesKeys() bool { return m.promptFocus }

func (m Model) Venue() string {
	if len(m.venues) == 0 {
		return ""
	}
	return m.venues[m.cursor]
}

func (m Model) Prompt() string { return m.prompt.Value() }

func (m *Model) SetVenue(v string) {
	for n, venue := range m.venues {
		if venue == v {
			m.cursor = n
			return
		}
	}
}

func (m *Model) SetPrompt(p string) { m.prompt.SetValue(p) }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.prompt.SetWidth(min(w-8, 72))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			m.promptFocus = !m.promptFocus
			if m.promptFocus {
				return m, m.prompt.Focus()
			}
			m.prompt.Blur()
			return m, nil
		case "up", "down":
			if !m.promptFocus {
				if key.String() == "up" && m.cursor > 0 {
					m.cursor--
				}
				if key.String() == "down" && m.cursor < len(m.venues)-1 {
					m.cursor++
				}
				return m, nil
			}
		}
	}
	if m.promptFocus {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Target venue") + "\n\n")
	for n, venue := range m.venues {
		marker := "  "
		line := theme.Muted.Render(venue)
		if n == m.cursor {
			marker = theme.Hot.Render("> ")
			line = theme.Hot.Render(venue)
		}
		sb.WriteString(marker + line + "\n")
	}
	sb.WriteString("\n" + theme.Title.Render("Prompt") + "\n")
	sb.WriteString(m.prompt.View() + "\n\n")
	hint := "↑/↓: venue  tab: edit prompt  enter: continue  esc: back"
	if m.promptFocus {
		hint = "tab: leave prompt  esc: back"
	}
	sb.WriteString(theme.Muted.Render(hint))
	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(sb.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
