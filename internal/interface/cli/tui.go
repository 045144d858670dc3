package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/proyectmyvet/myvet/internal/interface/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive client",
	Long:  "Launch an interactive terminal UI for logging in, browsing appointments, and reviewing the local visit history",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.New(a.state, a.api, a.history)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
