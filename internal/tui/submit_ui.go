package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SubmitUI displays pipeline progress during a submit
type SubmitUI interface {
	// Start begins the display with the ordered step names
	Start(steps []string)

	// StepStarted marks a step as running
	StepStarted(name string)

	// StepFinished marks a step as done or failed
	StepFinished(name string, err error)

	// Complete finalizes the display
	Complete()
}

// NewSubmitUI creates the appropriate UI based on TTY availability
func NewSubmitUI(splog *Splog) SubmitUI {
	if IsTTY() {
		return NewTTYSubmitUI(splog)
	}
	return NewSimpleSubmitUI(splog)
}

// ============================================================================
// SimpleSubmitUI - line-by-line output for non-TTY environments
// ============================================================================

// SimpleSubmitUI implements SubmitUI with line-by-line output
type SimpleSubmitUI struct {
	splog *Splog
}

// NewSimpleSubmitUI creates a SimpleSubmitUI
func NewSimpleSubmitUI(splog *Splog) *SimpleSubmitUI {
	return &SimpleSubmitUI{splog: splog}
}

// Start implements SubmitUI
func (ui *SimpleSubmitUI) Start(_ []string) {}

// StepStarted implements SubmitUI
func (ui *SimpleSubmitUI) StepStarted(name string) {
	ui.splog.Debug("▸ %s", name)
}

// StepFinished implements SubmitUI
func (ui *SimpleSubmitUI) StepFinished(name string, err error) {
	if err != nil {
		ui.splog.Info("%s %s: %v", ColorRed("✗"), name, err)
		return
	}
	ui.splog.Info("%s %s", ColorGreen("✓"), name)
}

// Complete implements SubmitUI
func (ui *SimpleSubmitUI) Complete() {}

// ============================================================================
// TTYSubmitUI - bubbletea spinner display for interactive terminals
// ============================================================================

type stepStatus int

const (
	stepPending stepStatus = iota
	stepRunning
	stepDone
	stepFailed
)

type stepItem struct {
	name   string
	status stepStatus
	err    error
}

type stepStartedMsg struct{ name string }

type stepFinishedMsg struct {
	name string
	err  error
}

type completeMsg struct{}

type submitModel struct {
	spinner spinner.Model
	steps   []stepItem
	done    bool
}

func newSubmitModel(steps []string) submitModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	items := make([]stepItem, len(steps))
	for i, name := range steps {
		items[i] = stepItem{name: name}
	}
	return submitModel{spinner: sp, steps: items}
}

func (m submitModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m submitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepStartedMsg:
		for i := range m.steps {
			if m.steps[i].name == msg.name {
				m.steps[i].status = stepRunning
			}
		}
		return m, nil
	case stepFinishedMsg:
		for i := range m.steps {
			if m.steps[i].name == msg.name {
				if msg.err != nil {
					m.steps[i].status = stepFailed
					m.steps[i].err = msg.err
				} else {
					m.steps[i].status = stepDone
				}
			}
		}
		return m, nil
	case completeMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m submitModel) View() string {
	var b strings.Builder
	for _, step := range m.steps {
		switch step.status {
		case stepRunning:
			fmt.Fprintf(&b, "%s %s\n", m.spinner.View(), step.name)
		case stepDone:
			fmt.Fprintf(&b, "%s %s\n", ColorGreen("✓"), step.name)
		case stepFailed:
			fmt.Fprintf(&b, "%s %s: %v\n", ColorRed("✗"), step.name, step.err)
		default:
			fmt.Fprintf(&b, "%s\n", ColorDim("· "+step.name))
		}
	}
	return b.String()
}

// TTYSubmitUI implements SubmitUI with a live bubbletea display
type TTYSubmitUI struct {
	splog   *Splog
	program *tea.Program
	wg      sync.WaitGroup
}

// NewTTYSubmitUI creates a TTYSubmitUI
func NewTTYSubmitUI(splog *Splog) *TTYSubmitUI {
	return &TTYSubmitUI{splog: splog}
}

// Start implements SubmitUI. Console logging is silenced while the
// bubbletea program owns the terminal.
func (ui *TTYSubmitUI) Start(steps []string) {
	ui.splog.SetQuiet(true)
	ui.program = tea.NewProgram(newSubmitModel(steps))
	ui.wg.Add(1)
	go func() {
		defer ui.wg.Done()
		_, _ = ui.program.Run()
	}()
}

// StepStarted implements SubmitUI
func (ui *TTYSubmitUI) StepStarted(name string) {
	if ui.program != nil {
		ui.program.Send(stepStartedMsg{name: name})
	}
}

// StepFinished implements SubmitUI
func (ui *TTYSubmitUI) StepFinished(name string, err error) {
	if ui.program != nil {
		ui.program.Send(stepFinishedMsg{name: name, err: err})
	}
}

// Complete implements SubmitUI
func (ui *TTYSubmitUI) Complete() {
	if ui.program != nil {
		ui.program.Send(completeMsg{})
		ui.wg.Wait()
	}
	ui.splog.SetQuiet(false)
}
