package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"decoreco/internal/display"
	"decoreco/internal/processor"
)

const maxRecentFailures = 3

// Model is the live progress view for a run.
type Model struct {
	updates     <-chan processor.ProgressUpdate
	started     time.Time
	width       int
	total       int
	done        int
	failed      int
	saved       int
	last        processor.ProgressUpdate
	hasLast     bool
	failures    []string
	dryRun      bool
	interrupt   func()
	interrupted bool
	quitting    bool
}

type doneMsg struct{}

type updateMsg processor.ProgressUpdate

// NewModel returns a Model expecting total updates on the channel. The
// first Ctrl+C calls interrupt and keeps drawing until the run drains; a
// second one closes the view.
func NewModel(updates <-chan processor.ProgressUpdate, total int, dryRun bool, interrupt func()) Model {
	return Model{updates: updates, total: total, dryRun: dryRun, interrupt: interrupt, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		u := processor.ProgressUpdate(msg)
		m.done++
		switch u.State {
		case processor.StateFailed:
			m.failed++
			m.failures = append(m.failures, failureLine(u))
			if len(m.failures) > maxRecentFailures {
				m.failures = m.failures[len(m.failures)-maxRecentFailures:]
			}
		case processor.StateReplaced, processor.StateDryRunSkipped:
			m.saved++
		}
		m.last = u
		m.hasLast = true
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		// Raw mode turns Ctrl+C into a key press instead of SIGINT.
		if msg.String() != "ctrl+c" {
			return m, nil
		}
		if m.interrupted || m.interrupt == nil {
			m.quitting = true
			return m, tea.Quit
		}
		m.interrupted = true
		m.interrupt()
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-20)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.done) / float64(m.total)
		if ratio > 1 {
			ratio = 1
		}
	}

	elapsed := time.Since(m.started).Round(time.Second)
	title := "decoreco"
	if m.dryRun {
		title += " (dry run)"
	}
	if m.interrupted {
		title += " (interrupting)"
	}

	lines := []string{
		titleStyle.Render(title),
		dimStyle.Render("["+display.FormatDuration(elapsed)+"] ") + barStyle.Render(renderBar(barWidth, ratio)) +
			labelStyle.Render(fmt.Sprintf(" %d/%d", m.done, m.total)),
		labelStyle.Render(fmt.Sprintf("Smaller: %d", m.saved)) + dimStyle.Render(fmt.Sprintf("  errors:%d", m.failed)),
	}
	if m.hasLast {
		lines = append(lines, Message(m.last, m.width))
	}
	for _, f := range m.failures {
		lines = append(lines, errorStyle.Render(f))
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan processor.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	barStyle   = lipgloss.NewStyle().Foreground(ColorAccentAlt)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
	errorStyle = lipgloss.NewStyle().Foreground(ColorError)
)
