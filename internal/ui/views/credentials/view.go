package credentials

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"revguide/internal/ui/theme"
)

// Model is the API-key entry step. The key is masked and never leaves the
// process except inside the submission itself.
type Model struct {
	input textinput.Model
	width int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Gemini API key"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256
	// The wizard opens on this step, so the field starts focused.
	ti.Focus()
	return Model{input: ti}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

func (m *Model) Blur() { m.input.Blur() }

func (m *Model) SetValue(v string) { m.input.SetValue(v) }

func (m Model) Value() string { return m.input.Value() }

func (m *Model) SetSize(w, _ int) {
	m.width = w
	m.input.Width = min(w-8, 64)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	body := theme.Title.Render("Enter your Gemini API key") + "\n\n" +
		m.input.View() + "\n\n" +
		theme.Muted.Render("The key is only held in memory for this run.\nenter: continue")
	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(body)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
