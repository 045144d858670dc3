package cli

import (
	"fmt"

	"github.com/proyectmyvet/myvet/internal/core/auth"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.state.ValidateSession(); err != nil {
		return err
	}

	s := a.state.State()
	if s.Phase != auth.PhaseAuthenticated {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("Email: %s\n", s.Email)
	if s.DisplayName != "" {
		fmt.Printf("Name:  %s\n", s.DisplayName)
	}
	fmt.Printf("Role:  %s\n", s.Role)
	return nil
}
