package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateLog && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateMonth:
		content = m.viewMonth()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Month"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	if m.loadErr != nil {
		return docStyle.Render(errorStyle.Render(fmt.Sprintf("Failed to load dashboard: %v", m.loadErr)))
	}

	var b strings.Builder

	b.WriteString(cardTitleStyle.Render(m.dash.Date) + "\n\n")

	if m.dash.Today.Recorded {
		line := fmt.Sprintf("Today: %d min of %d min target", m.dash.Today.ActualMinutes, m.dash.Today.TargetMinutes)
		if m.dash.Today.ActualMinutes <= m.dash.Today.TargetMinutes {
			b.WriteString(goodStyle.Render(line))
		} else {
			b.WriteString(badStyle.Render(line))
		}
		b.WriteString(fmt.Sprintf("\nReduced: %.0f min (%.0f%%)\n", m.dash.Today.ReducedMinutes, m.dash.Today.ReductionRate*100))
	} else {
		b.WriteString(fmt.Sprintf("Today: not logged yet (target %d min)\n", m.dash.Today.TargetMinutes))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %.0f min\n", cardTitleStyle.Render("Yesterday:"), m.dash.Comparisons.Yesterday))
	b.WriteString(fmt.Sprintf("%s %.0f min\n", cardTitleStyle.Render("7-day avg:"), m.dash.Comparisons.WeekAvg))
	b.WriteString(fmt.Sprintf("%s %.0f min\n", cardTitleStyle.Render("Best day: "), m.dash.Comparisons.Best))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %.0f min\n", cardTitleStyle.Render("Month avg:"), m.dash.MonthAverage))
	b.WriteString(fmt.Sprintf("%s %d day(s)\n", cardTitleStyle.Render("Streak:   "), m.dash.StreakDays))

	if m.saveMsg != "" {
		b.WriteString("\n" + m.saveMsg + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewMonth() string {
	if m.loadErr != nil {
		return docStyle.Render(errorStyle.Render(fmt.Sprintf("Failed to load month: %v", m.loadErr)))
	}

	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Daily usage this month") + "\n\n")

	for _, point := range m.dash.Monthly {
		if point.ActualMinutes == nil {
			b.WriteString(fmt.Sprintf("%2s  %s\n", point.Label, gapStyle.Render("·")))
			continue
		}

		bar := strings.Repeat("█", barCells(*point.ActualMinutes))
		line := fmt.Sprintf("%2s  %s %d", point.Label, bar, *point.ActualMinutes)
		if point.TargetMinutes != nil && *point.ActualMinutes <= *point.TargetMinutes {
			b.WriteString(goodStyle.Render(line))
		} else {
			b.WriteString(badStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

// barCells maps minutes to bar width, one cell per half hour, capped so a
// full day still fits a narrow terminal.
func barCells(minutes int) int {
	cells := minutes / 30
	if cells > 24 {
		cells = 24
	}
	return cells
}
