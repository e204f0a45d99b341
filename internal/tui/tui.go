package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/usefix/model"
	"github.com/sokinpui/usefix/usefix"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")) // Mauve
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))  // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197")) // Red
	pathStyle    = lipgloss.NewStyle()
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// --- Messages ---
type progressMsg struct {
	current int
	total   int
}

type reportMsg struct {
	model.Report
}

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	app     *usefix.App
	spinner spinner.Model
	state   state
	report  model.Report
	err     error
	current int
	total   int
}

type state int

const (
	stateProcessing state = iota
	stateSummary
	stateError
)

func New(app *usefix.App) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &Model{
		app:     app,
		spinner: s,
		state:   stateProcessing,
	}
}

// SetProgram wires per-file progress updates from the app into the running
// program. Must be called before Program.Run.
func (m *Model) SetProgram(p *tea.Program) {
	m.app.SetProgressCallback(func(current, total int) {
		p.Send(progressMsg{current: current, total: total})
	})
}

// Err returns the fatal error of the run, if any, once the program exits.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runApp)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case progressMsg:
		m.current = msg.current
		m.total = msg.total
		return m, nil

	case reportMsg:
		m.state = stateSummary
		m.report = msg.Report
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateProcessing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case stateProcessing:
		progress := ""
		if m.total > 0 {
			progress = faintStyle.Render(fmt.Sprintf(" [%d/%d]", m.current, m.total))
		}
		return fmt.Sprintf("%s Fixing files...%s", m.spinner.View(), progress)
	case stateError:
		return errorStyle.Render("Error: ", m.err.Error())
	case stateSummary:
		return m.renderSummary()
	default:
		return ""
	}
}

func (m *Model) renderSummary() string {
	var b strings.Builder

	hasContent := false
	if len(m.report.Fixed) > 0 {
		hasContent = true
		b.WriteString(successStyle.Render("Fixed:"))
		b.WriteString("\n")
		for _, f := range m.report.Fixed {
			b.WriteString(fmt.Sprintf("  %s\n", pathStyle.Render(f)))
		}
	}
	if len(m.report.Errors) > 0 {
		hasContent = true
		b.WriteString(errorStyle.Render("Failed:"))
		b.WriteString("\n")
		for _, e := range m.report.Errors {
			b.WriteString(fmt.Sprintf("  %s: %v\n", pathStyle.Render(e.Path), e.Err))
		}
	}

	if !hasContent {
		b.WriteString(faintStyle.Render("Nothing to fix."))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("\nTotal files fixed: %d", m.report.Count())))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) runApp() tea.Msg {
	report, err := m.app.Execute()
	if err != nil {
		// Check for detailed error to print stack
		if e, ok := err.(*usefix.DetailedError); ok {
			// The TUI will exit, so we can print to stderr here for the stack trace.
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
		}
		return errorMsg{err}
	}
	return reportMsg{
		Report: report,
	}
}
