package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/auth"
	"github.com/proyectmyvet/myvet/internal/core/history"
)

type errMsg struct {
	err error
}

type loginDoneMsg struct {
	state auth.State
	err   string
}

type appointmentsLoadedMsg struct {
	appointments []appointmentItem
}

type historyLoadedMsg struct {
	entries []history.Entry
}

type historyRemovedMsg struct {
	id int64
}

// login runs one state-machine cycle off the UI goroutine and reports the
// resulting snapshot.
func login(state *auth.StateMachine, email, password string) tea.Cmd {
	return func() tea.Msg {
		var failed string
		state.Login(context.Background(), email, password,
			nil,
			func(message string) { failed = message },
		)
		return loginDoneMsg{state: state.State(), err: failed}
	}
}

// loadAppointments fetches the bookings for the current role.
func loadAppointments(client *api.Client, role string) tea.Cmd {
	return func() tea.Msg {
		var items []appointmentItem
		if role == api.RoleVet {
			appointments, err := client.VetAppointments(context.Background())
			if err != nil {
				return errMsg{err}
			}
			for _, appt := range appointments {
				items = append(items, appointmentItem{
					id:     appt.ID,
					date:   appt.Date,
					reason: appt.Reason,
					state:  appt.State,
					pet:    appt.PetName,
					owner:  appt.OwnerName,
				})
			}
		} else {
			appointments, err := client.ListAppointments(context.Background())
			if err != nil {
				return errMsg{err}
			}
			for _, appt := range appointments {
				items = append(items, appointmentItem{
					id:     appt.ID,
					date:   appt.Date,
					reason: appt.Reason,
					state:  appt.State,
				})
			}
		}
		return appointmentsLoadedMsg{appointments: items}
	}
}

func loadHistory(cache *history.Cache) tea.Cmd {
	return func() tea.Msg {
		entries, err := cache.All()
		if err != nil {
			return errMsg{err}
		}
		return historyLoadedMsg{entries: entries}
	}
}

func removeHistoryEntry(cache *history.Cache, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := cache.Remove(id); err != nil {
			return errMsg{err}
		}
		return historyRemovedMsg{id: id}
	}
}
