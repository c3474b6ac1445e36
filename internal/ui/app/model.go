package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	workflowdto "revguide/internal/modules/workflow/dto"
	"revguide/internal/ui/components"
	"revguide/internal/ui/theme"
	compareview "revguide/internal/ui/views/compare"
	credentialsview "revguide/internal/ui/views/credentials"
	optionsview "revguide/internal/ui/views/options"
	resultview "revguide/internal/ui/views/result"
	uploadview "revguide/internal/ui/views/upload"
)

// ─── port ────────────────────────────────────────────────────────────────────

// workflowPort is the slice of the workflow use-case this orchestration layer
// needs. All business rules (step gates, submission exclusion, staleness)
// live behind it.
type workflowPort interface {
	Session(ctx context.Context) workflowdto.SessionView
	Venues(ctx context.Context) []string
	SetAPIKey(ctx context.Context, key string) workflowdto.SessionView
	SetPrompt(ctx context.Context, prompt string) workflowdto.SessionView
	SetVenue(ctx context.Context, venue string) workflowdto.SessionView
	AttachPaper(ctx context.Context, path string) (workflowdto.SessionView, error)
	Next(ctx context.Context) (workflowdto.SessionView, error)
	Back(ctx context.Context) (workflowdto.SessionView, error)
	Restart(ctx context.Context) (workflowdto.SessionView, error)
	Submit(ctx context.Context) (workflowdto.SubmitOutput, error)
	StartComparison(ctx context.Context) (workflowdto.ComparisonView, error)
	SetHumanReview(ctx context.Context, text string) (workflowdto.ComparisonView, error)
	Compare(ctx context.Context) (workflowdto.CompareOutput, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenWizard screenID = iota
	screenCompare
)

// ─── async messages ──────────────────────────────────────────────────────────

type attachedMsg struct {
	view workflowdto.SessionView
	err  error
}

type submittedMsg struct {
	out workflowdto.SubmitOutput
	err error
}

type compareOpenedMsg struct {
	view workflowdto.ComparisonView
	err  error
}

type comparedMsg struct {
	out workflowdto.CompareOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Next     key.Binding
	Back     key.Binding
	Resubmit key.Binding
	Restart  key.Binding
	Compare  key.Binding
	RunCmp   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Resubmit: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "resubmit")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
		Compare:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		RunCmp:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "run comparison")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Back},
		{k.Resubmit, k.Restart, k.Compare, k.RunCmp},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: a four-step wizard plus a comparison
// screen. It never mutates workflow state itself; every transition goes
// through the port so the gates apply no matter which surface drives them.
type Model struct {
	workflow workflowPort

	credView   credentialsview.Model
	optsView   optionsview.Model
	uploadView uploadview.Model
	resView    resultview.Model
	cmpView    compareview.Model

	session workflowdto.SessionView
	screen  screenID
	keys    keyMap
	help    help.Model
	showKey bool
	notice  components.Notice
	width   int
	height  int
}

func NewModel(workflow workflowPort) Model {
	session := workflow.Session(context.Background())
	m := Model{
		workflow:   workflow,
		credView:   credentialsview.New(),
		optsView:   optionsview.New(workflow.Venues(context.Background())),
		uploadView: uploadview.New(),
		resView:    resultview.New(),
		cmpView:    compareview.New(),
		session:    session,
		keys:       defaultKeys(),
		help:       help.New(),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.credView.Init(), m.uploadView.Init())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	m.notice.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.propagateSize()

	case uploadview.PickedMsg:
		cmds = append(cmds, m.attachCmd(msg.Path))

	case attachedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.notice.Show(msg.err.Error(), components.SeverityError))
			break
		}
		m.session = msg.view
		m.uploadView.SetPaper(m.session.Paper)
		if m.session.Paper != nil && m.session.Paper.Accepted && m.session.Phase != "in_flight" {
			// An accepted pick submits immediately, like a one-shot
			// "upload and evaluate" button.
			cmds = append(cmds, m.submitCmd(), m.uploadView.SetBusy(true))
		} else if m.session.Paper != nil {
			cmds = append(cmds, m.notice.Show(m.session.Paper.RejectReason, components.SeverityError))
		}

	case submittedMsg:
		m.session = m.workflow.Session(context.Background())
		// A refused duplicate reports back while the first request is still
		// out; the spinner keeps running until nothing is in flight.
		if m.session.Phase != "in_flight" {
			cmds = append(cmds, m.uploadView.SetBusy(false))
		}
		switch {
		case msg.err != nil:
			cmds = append(cmds, m.notice.Show(msg.err.Error(), components.SeverityError))
		case !msg.out.Applied:
			// Stale completion from before a restart. Nothing to show.
		case msg.out.Phase == "failed":
			cmds = append(cmds, m.notice.Show(msg.out.Reason, components.SeverityError))
		default:
			m.resView.SetContent(msg.out.Result)
			cmds = append(cmds, m.notice.Show("evaluation received", components.SeveritySuccess))
		}

	case compareOpenedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.notice.Show(msg.err.Error(), components.SeverityError))
			break
		}
		m.screen = screenCompare
		m.cmpView.Reset()
		m.cmpView.SetReview(msg.view.HumanReview)
		cmds = append(cmds, m.cmpView.Focus())

	case comparedMsg:
		cmds = append(cmds, m.cmpView.SetBusy(false))
		switch {
		case msg.err != nil:
			cmds = append(cmds, m.notice.Show(msg.err.Error(), components.SeverityError))
		case !msg.out.Applied:
		case msg.out.Phase == "failed":
			cmds = append(cmds, m.notice.Show(msg.out.Reason, components.SeverityError))
		default:
			m.cmpView.SetResult(msg.out.Comparison)
		}

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showKey && msg.String() != "?" {
			m.showKey = false
		}
		if m.screen == screenCompare {
			return m.updateCompareKeys(msg)
		}
		return m.updateWizardKeys(msg)
	}

	cmds = append(cmds, m.routeToActive(msg))
	return m, tea.Batch(cmds...)
}

func (m Model) updateWizardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	ctx := context.Background()

	switch msg.String() {
	case "?":
		if !m.typingNow() {
			m.showKey = !m.showKey
			return m, nil
		}

	case "esc":
		if m.notice.Visible() {
			m.notice.Dismiss()
			return m, nil
		}
		m.commitStep(ctx)
		view, err := m.workflow.Back(ctx)
		if err != nil {
			return m, m.notice.Show(err.Error(), components.SeverityError)
		}
		m.session = view
		m.syncStep()
		return m, m.focusStep()

	case "enter":
		switch m.session.Step {
		case "credentials":
			m.commitStep(ctx)
			return m.advance()
		case "options":
			if m.optsView.CapturesKeys() {
				break
			}
			m.commitStep(ctx)
			return m.advance()
		}

	case "s":
		if m.session.Step == "upload" && m.session.Phase != "in_flight" &&
			m.session.Paper != nil && m.session.Paper.Accepted {
			return m, tea.Batch(m.submitCmd(), m.uploadView.SetBusy(true))
		}

	case "r":
		if m.session.Step == "result" {
			view, err := m.workflow.Restart(ctx)
			if err != nil {
				return m, m.notice.Show(err.Error(), components.SeverityError)
			}
			m.session = view
			m.uploadView.SetPaper(nil)
			m.notice.Dismiss()
			cmds = append(cmds, m.uploadView.SetBusy(false))
			return m, tea.Batch(cmds...)
		}

	case "c":
		if m.session.Step == "result" {
			return m, m.openCompareCmd()
		}
	}

	return m, m.routeToActive(msg)
}

func (m Model) updateCompareKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.notice.Visible() {
			m.notice.Dismiss()
			return m, nil
		}
		m.screen = screenWizard
		return m, nil

	case "ctrl+s":
		if _, err := m.workflow.SetHumanReview(context.Background(), m.cmpView.Review()); err != nil {
			return m, m.notice.Show(err.Error(), components.SeverityError)
		}
		return m, tea.Batch(m.compareCmd(), m.cmpView.SetBusy(true))
	}

	var cmd tea.Cmd
	m.cmpView, cmd = m.cmpView.Update(msg)
	return m, cmd
}

// advance moves to the next step, surfacing the gate error as a notice when
// the current step is incomplete.
func (m Model) advance() (tea.Model, tea.Cmd) {
	view, err := m.workflow.Next(context.Background())
	if err != nil {
		return m, m.notice.Show(err.Error(), components.SeverityError)
	}
	m.session = view
	m.syncStep()
	return m, m.focusStep()
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderStepper()
	footer := m.renderFooter()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showKey {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Padding(1, 2).Render(m.help.FullHelpView(m.keys.FullHelp()))
	} else if m.screen == screenCompare {
		content = m.cmpView.View()
	} else {
		switch m.session.Step {
		case "credentials":
			content = m.credView.View()
		case "options":
			content = m.optsView.View()
		case "upload":
			content = m.uploadView.View()
		case "result":
			content = m.resView.View()
		}
	}
	content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderStepper() string {
	parts := make([]string, len(m.session.StepTitles))
	for n, title := range m.session.StepTitles {
		switch {
		case n == m.session.StepIndex:
			parts[n] = theme.Hot.Render(" " + title + " ")
		case n < m.session.StepIndex:
			parts[n] = theme.Good.Render(" " + title + " ")
		default:
			parts[n] = theme.Muted.Render(" " + title + " ")
		}
	}
	sep := theme.Muted.Render("›")
	bar := "revguide  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderFooter() string {
	left := m.notice.View()
	if left == "" {
		left = theme.Muted.Render("step " + m.session.Step)
		if m.session.Phase == "in_flight" {
			left = theme.Hot.Render("● submitting")
		}
	}
	right := theme.Muted.Render("?:help  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// typingNow reports whether a text widget currently owns the keyboard, in
// which case printable globals like "?" must pass through.
func (m Model) typingNow() bool {
	switch m.session.Step {
	case "credentials":
		return true
	case "options":
		return m.optsView.CapturesKeys()
	}
	return m.screen == screenCompare
}

// commitStep writes the active widget's values through the port before a
// step transition, so moving back and forth never drops typed input.
func (m Model) commitStep(ctx context.Context) {
	switch m.session.Step {
	case "credentials":
		m.workflow.SetAPIKey(ctx, m.credView.Value())
	case "options":
		m.workflow.SetVenue(ctx, m.optsView.Venue())
		m.workflow.SetPrompt(ctx, m.optsView.Prompt())
	}
}

// syncStep pushes session values into the step widgets after a transition so
// going back shows what was entered before.
func (m *Model) syncStep() {
	m.credView.SetValue(m.session.APIKey)
	m.optsView.SetVenue(m.session.Venue)
	m.optsView.SetPrompt(m.session.Prompt)
	m.uploadView.SetPaper(m.session.Paper)
	if m.session.Phase == "succeeded" {
		m.resView.SetContent(m.session.Result)
	}
}

func (m *Model) focusStep() tea.Cmd {
	if m.session.Step == "credentials" {
		return m.credView.Focus()
	}
	m.credView.Blur()
	return nil
}

func (m *Model) propagateSize() {
	w, h := m.width, m.height-4
	m.credView.SetSize(w, h)
	m.optsView.SetSize(w, h)
	m.uploadView.SetSize(w, h)
	m.resView.SetSize(w, h)
	m.cmpView.SetSize(w, h)
}

func (m *Model) routeToActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.screen == screenCompare {
		m.cmpView, cmd = m.cmpView.Update(msg)
		return cmd
	}
	switch m.session.Step {
	case "credentials":
		m.credView, cmd = m.credView.Update(msg)
	case "options":
		m.optsView, cmd = m.optsView.Update(msg)
	case "upload":
		m.uploadView, cmd = m.uploadView.Update(msg)
	case "result":
		m.resView, cmd = m.resView.Update(msg)
	}
	return cmd
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) attachCmd(path string) tea.Cmd {
	return func() tea.Msg {
		view, err := m.workflow.AttachPaper(context.Background(), path)
		return attachedMsg{view: view, err: err}
	}
}

func (m Model) submitCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.workflow.Submit(context.Background())
		return submittedMsg{out: out, err: err}
	}
}

func (m Model) openCompareCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := m.workflow.StartComparison(context.Background())
		return compareOpenedMsg{view: view, err: err}
	}
}

func (m Model) compareCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.workflow.Compare(context.Background())
		return comparedMsg{out: out, err: err}
	}
}
