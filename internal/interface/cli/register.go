package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/spf13/cobra"
)

var (
	registerVet  bool
	registerName string
)

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create a MyVet account",
	Long: `Create an account and log in with it. Accounts are pet owners by
default; pass --vet to register as a veterinarian.

Examples:
  myvet register ana@example.com --name Ana
  myvet register drlopez@clinic.com --vet --name "Dr. Lopez"`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().BoolVar(&registerVet, "vet", false, "Register as a veterinarian")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
}

func runRegister(cmd *cobra.Command, args []string) error {
	email := strings.TrimSpace(args[0])
	if email == "" {
		return errors.New("email must not be empty")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	role := api.RoleOwner
	if registerVet {
		role = api.RoleVet
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var registerErr error
	a.state.Register(cmd.Context(), email, password, role, registerName,
		func() {
			s := a.state.State()
			fmt.Printf("Welcome to MyVet! Registered and logged in as %s (%s)\n", s.Email, s.Role)
		},
		func(message string) {
			registerErr = errors.New(message)
		},
	)
	return registerErr
}
