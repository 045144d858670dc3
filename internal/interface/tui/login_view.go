package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "shift+tab":
		m.focusPassword = !m.focusPassword
		if m.focusPassword {
			m.emailInput.Blur()
			return m, m.passwordInput.Focus()
		}
		m.passwordInput.Blur()
		return m, m.emailInput.Focus()

	case "enter":
		if !m.focusPassword {
			// Advance to the password field
			m.focusPassword = true
			m.emailInput.Blur()
			return m, m.passwordInput.Focus()
		}

		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if email == "" || password == "" {
			m.loginError = "email and password are required"
			return m, nil
		}

		m.loggingIn = true
		m.loginError = ""
		return m, tea.Batch(m.spinner.Tick, login(m.state, email, password))
	}

	var cmd tea.Cmd
	if m.focusPassword {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func (m Model) viewLogin() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MyVet"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Email") + "\n")
	b.WriteString(m.emailInput.View() + "\n\n")
	b.WriteString(labelStyle.Render("Password") + "\n")
	b.WriteString(m.passwordInput.View() + "\n\n")

	if m.loggingIn {
		b.WriteString(m.spinner.View() + " Logging in...\n")
	} else if m.loginError != "" {
		b.WriteString(errorStyle.Render(m.loginError) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter login • tab switch field • esc quit"))
	return b.String()
}
