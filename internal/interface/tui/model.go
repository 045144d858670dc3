package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/auth"
	"github.com/proyectmyvet/myvet/internal/core/history"
)

type viewMode int

const (
	loginView viewMode = iota
	appointmentsView
	historyView
)

type Model struct {
	state   *auth.StateMachine
	api     *api.Client
	history *history.Cache

	mode   viewMode
	width  int
	height int
	err    error

	// Login form
	emailInput    textinput.Model
	passwordInput textinput.Model
	focusPassword bool
	loggingIn     bool
	loginError    string
	spinner       spinner.Model

	// Loaded data
	appointments []appointmentItem
	list         list.Model
	entries      []history.Entry
	historyList  list.Model
}

type appointmentItem struct {
	id     string
	date   string
	reason string
	state  string
	pet    string
	owner  string
}

func New(state *auth.StateMachine, client *api.Client, cache *history.Cache) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		state:         state,
		api:           client,
		history:       cache,
		mode:          loginView,
		emailInput:    email,
		passwordInput: password,
		spinner:       sp,
	}

	if state.State().Phase == auth.PhaseAuthenticated {
		m.mode = appointmentsView
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.mode == appointmentsView {
		return loadAppointments(m.api, m.state.State().Role)
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if len(m.appointments) > 0 {
			m.list.SetSize(msg.Width, msg.Height-2)
		}
		if len(m.entries) > 0 {
			m.historyList.SetSize(msg.Width, msg.Height-2)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.mode {
		case loginView:
			return m.updateLogin(msg)
		case appointmentsView:
			return m.updateAppointments(msg)
		case historyView:
			return m.updateHistory(msg)
		}

	case loginDoneMsg:
		m.loggingIn = false
		if msg.err != "" {
			m.loginError = msg.err
			return m, nil
		}
		m.mode = appointmentsView
		return m, loadAppointments(m.api, msg.state.Role)

	case appointmentsLoadedMsg:
		m.appointments = msg.appointments
		m.list = createAppointmentList(msg.appointments, m.width, m.height)
		return m, nil

	case historyLoadedMsg:
		m.entries = msg.entries
		m.historyList = createHistoryList(msg.entries, m.width, m.height)
		return m, nil

	case historyRemovedMsg:
		return m, loadHistory(m.history)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case errMsg:
		m.err = msg.err
		// A 401 clears the stored session; show login again on next read.
		_ = m.state.ValidateSession()
		if m.state.State().Phase != auth.PhaseAuthenticated {
			m.mode = loginView
			m.loginError = "session expired, log in again"
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n\nPress q to quit"
	}

	switch m.mode {
	case loginView:
		return m.viewLogin()
	case appointmentsView:
		return m.viewAppointments()
	case historyView:
		return m.viewHistory()
	}

	return ""
}
