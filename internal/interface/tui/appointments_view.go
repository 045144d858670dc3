package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/proyectmyvet/myvet/internal/core/api"
)

type appointmentListItem struct {
	appointment appointmentItem
}

func (i appointmentListItem) FilterValue() string {
	return i.appointment.reason + " " + i.appointment.pet
}

func (i appointmentListItem) Title() string {
	title := formatDate(i.appointment.date)
	if i.appointment.reason != "" {
		title += "  " + i.appointment.reason
	}
	return title
}

func (i appointmentListItem) Description() string {
	desc := ""
	if i.appointment.pet != "" {
		desc = i.appointment.pet
		if i.appointment.owner != "" {
			desc += " (" + i.appointment.owner + ")"
		}
	}
	if i.appointment.state != "" {
		if desc != "" {
			desc += " | "
		}
		desc += i.appointment.state
	}
	if desc == "" {
		desc = i.appointment.id
	}
	return desc
}

func createAppointmentList(appointments []appointmentItem, width, height int) list.Model {
	items := make([]list.Item, len(appointments))
	for i, appt := range appointments {
		items[i] = appointmentListItem{appointment: appt}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height-2)
	l.Title = "Appointments"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func (m Model) updateAppointments(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "h":
		// Vets have no local history tab
		if m.state.State().Role == api.RoleVet {
			return m, nil
		}
		m.mode = historyView
		return m, loadHistory(m.history)

	case "r":
		return m, loadAppointments(m.api, m.state.State().Role)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) viewAppointments() string {
	if len(m.appointments) == 0 {
		return titleStyle.Render("Appointments") + "\n\nNo appointments.\n\n" +
			helpStyle.Render("r refresh • h history • q quit")
	}
	return m.list.View() + "\n" + helpStyle.Render("↑/↓ move • r refresh • h history • q quit")
}

func formatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%s (%s)", t.Local().Format("Mon Jan 2 15:04"), humanize.Time(t))
}
