package upload

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	workflowdto "revguide/internal/modules/workflow/dto"
	"revguide/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// PickedMsg is sent when the user selects a file in the picker.
type PickedMsg struct{ Path string }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the upload step: pick a paper, see its verdict, and watch the
// spinner while the submission is out on the wire.
type Model struct {
	picker  filepicker.Model
	spinner spinner.Model
	paper   *workflowdto.PaperView
	busy    bool
	width   int
	height  int
}

func New() Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf", ".doc", ".docx", ".txt"}
	fp.ShowHidden = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{picker: fp, spinner: sp}
}

func (m Model) Init() tea.Cmd { return m.picker.Init() }

// SetBusy flips the in-flight indicator. The returned Cmd keeps the spinner
// ticking and is nil when leaving the busy state.
func (m *Model) SetBusy(busy bool) tea.Cmd {
	m.busy = busy
	if busy {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model) SetPaper(p *workflowdto.PaperView) { m.paper = p }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	// Leave room for the summary block under the picker.
	ph := h - 10
	if ph < 3 {
		ph = 3
	}
	m.picker.Height = ph
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

	// The picker is frozen while a submission is in flight.
	if m.busy {
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		cmds = append(cmds, func() tea.Msg { return PickedMsg{Path: path} })
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Upload a paper") + "\n")
	sb.WriteString(theme.Muted.Render("PDF, Word document, or plain text, up to 10 MiB") + "\n\n")
	sb.WriteString(m.picker.View() + "\n")
	sb.WriteString(m.renderPaper())
	if m.busy {
		sb.WriteString("\n" + m.spinner.View() + " Evaluating… this can take a while")
	} else {
		sb.WriteString("\n" + theme.Muted.Render("enter: select and submit  s: resubmit  esc: back"))
	}
	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderPaper() string {
	if m.paper == nil {
		return theme.Muted.Render("No paper selected yet.") + "\n"
	}
	p := m.paper
	if !p.Accepted {
		return theme.Bad.Render("✗ "+p.Name) + "\n" +
			theme.Muted.Render("  "+p.RejectReason) + "\n"
	}
	detail := fmt.Sprintf("  %s, %.1f KiB", p.ContentType, float64(p.Size)/1024)
	if p.Pages > 0 {
		detail += fmt.Sprintf(", %d pages", p.Pages)
	}
	return theme.Good.Render("✓ "+p.Name) + "\n" + theme.Muted.Render(detail) + "\n"
}
