package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/proyectmyvet/myvet/internal/core/history"
)

type historyListItem struct {
	entry history.Entry
}

func (i historyListItem) FilterValue() string {
	return i.entry.Pet + " " + i.entry.Reason
}

func (i historyListItem) Title() string {
	title := i.entry.Date + " " + i.entry.Time
	if i.entry.Pet != "" {
		title += "  " + i.entry.Pet
	}
	return title
}

func (i historyListItem) Description() string {
	if i.entry.Reason != "" {
		return i.entry.Reason
	}
	return "(no reason recorded)"
}

func createHistoryList(entries []history.Entry, width, height int) list.Model {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = historyListItem{entry: entry}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height-2)
	l.Title = "Visit history (this device)"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.mode = appointmentsView
		return m, nil

	case "d", "backspace":
		if selected, ok := m.historyList.SelectedItem().(historyListItem); ok {
			return m, removeHistoryEntry(m.history, selected.entry.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.historyList, cmd = m.historyList.Update(msg)
	return m, cmd
}

func (m Model) viewHistory() string {
	if len(m.entries) == 0 {
		return titleStyle.Render("Visit history") + "\n\nNo visits recorded on this device.\n\n" +
			helpStyle.Render("q back")
	}
	return m.historyList.View() + "\n" + helpStyle.Render("↑/↓ move • d delete • q back")
}
