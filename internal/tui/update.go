package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/offscreen/internal/constants"
	"github.com/julianstephens/offscreen/internal/models"
	"github.com/julianstephens/offscreen/internal/usage"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		m.help.Width = ws.Width
		return m, nil
	}

	// The log form consumes every message while it is open, including the
	// ones huh uses internally.
	if m.state == StateLog && m.form != nil {
		return m.updateLogForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % 2
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + 2) % 2
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Refresh):
			m.saveMsg = ""
			m.refresh()
		case key.Matches(msg, m.keys.Log):
			return m.startLogForm()
		}
	}

	return m, nil
}

// startLogForm opens the log form prefilled with today's record when one
// exists, otherwise with the stored defaults.
func (m Model) startLogForm() (tea.Model, tea.Cmd) {
	target := constants.DefaultTargetMinutes
	comparison := models.ComparisonYesterday
	if settings, err := m.svc.Store.GetSettings(); err == nil {
		target = settings.DefaultTargetMinutes
		comparison = settings.DefaultComparison
	}

	data := &logFormModel{
		Target:     strconv.Itoa(target),
		Comparison: comparison,
	}
	if m.dash.Today.Recorded {
		data.Actual = strconv.Itoa(m.dash.Today.ActualMinutes)
		data.Target = strconv.Itoa(m.dash.Today.TargetMinutes)
	}

	m.formData = data
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes used today").
				Value(&data.Actual),
			huh.NewInput().
				Title("Target minutes").
				Value(&data.Target),
			huh.NewSelect[models.ComparisonMode]().
				Title("Compare against").
				Options(
					huh.NewOption("Yesterday", models.ComparisonYesterday),
					huh.NewOption("7-day average", models.ComparisonWeekAvg),
					huh.NewOption("Best day", models.ComparisonBest),
				).
				Value(&data.Comparison),
		),
	)
	m.state = StateLog
	m.saveMsg = ""
	return m, m.form.Init()
}

func (m Model) updateLogForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitLog()
		m.state = StateDashboard
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.state = StateDashboard
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) submitLog() {
	actual, err := strconv.Atoi(strings.TrimSpace(m.formData.Actual))
	if err != nil {
		m.saveMsg = fmt.Sprintf("Invalid minutes: %q", m.formData.Actual)
		return
	}
	target, err := strconv.Atoi(strings.TrimSpace(m.formData.Target))
	if err != nil {
		m.saveMsg = fmt.Sprintf("Invalid target: %q", m.formData.Target)
		return
	}

	result := m.svc.SaveDailyUsage(m.user.ID, usage.SaveInput{
		TargetMinutes: target,
		ActualMinutes: actual,
		Comparison:    m.formData.Comparison,
	})

	m.saveMsg = result.Message
	if result.Success {
		m.refresh()
	} else if len(result.Errors) > 0 {
		for _, fieldErr := range result.Errors {
			m.saveMsg = fieldErr
			break
		}
	}
}
