package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/offscreen/internal/models"
	"github.com/julianstephens/offscreen/internal/usage"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateMonth
	StateLog
)

// logFormModel holds the in-flight values of the log form. huh wants string
// pointers for inputs; conversion happens on submit.
type logFormModel struct {
	Actual     string
	Target     string
	Comparison models.ComparisonMode
}

type Model struct {
	svc      *usage.Service
	user     models.User
	state    SessionState
	keys     KeyMap
	help     help.Model
	form     *huh.Form
	formData *logFormModel
	dash     models.Dashboard
	loadErr  error
	saveMsg  string
	quitting bool
	width    int
	height   int
}

func NewModel(svc *usage.Service, user models.User) Model {
	m := Model{
		svc:   svc,
		user:  user,
		state: StateDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	m.dash, m.loadErr = m.svc.Dashboard(m.user.ID)
}

func (m Model) Init() tea.Cmd {
	return nil
}
