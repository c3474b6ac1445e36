package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"revguide/internal/ui/theme"
)

// Severity classifies a notice the way the remote flow classifies outcomes.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// noticeTTL is how long a notice stays up before dismissing itself.
const noticeTTL = 6 * time.Second

// noticeExpiredMsg carries the sequence number of the notice it expires, so
// a newer notice is not taken down by an older timer.
type noticeExpiredMsg struct{ seq int }

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.Surface0).
			Padding(0, 1)
	successStyle = infoStyle.Foreground(theme.Green)
	errorStyle   = infoStyle.Foreground(theme.Red)
)

// Notice is the transient feedback channel: shown once, self-dismissing, and
// never part of the durable workflow state.
type Notice struct {
	text     string
	severity Severity
	visible  bool
	seq      int
}

// Show replaces any current notice and returns the timer command that will
// dismiss it.
func (n *Notice) Show(text string, severity Severity) tea.Cmd {
	n.text = text
	n.severity = severity
	n.visible = true
	n.seq++
	seq := n.seq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// Dismiss hides the notice immediately.
func (n *Notice) Dismiss() { n.visible = false }

func (n Notice) Visible() bool { return n.visible }

func (n *Notice) Update(msg tea.Msg) {
	if expired, ok := msg.(noticeExpiredMsg); ok && expired.seq == n.seq {
		n.visible = false
	}
}

func (n Notice) View() string {
	if !n.visible {
		return ""
	}
	switch n.severity {
	case SeveritySuccess:
		return successStyle.Render("✓ " + n.text)
	case SeverityError:
		return errorStyle.Render("✗ " + n.text)
	}
	return infoStyle.Render(n.text)
}
