package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in to the clinic",
	Long: `Log in with your MyVet account. The password is read from the terminal
(or from stdin when piped). The session token is stored locally and used by
every other command until you log out.

Examples:
  myvet login ana@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
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

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var loginErr error
	a.state.Login(cmd.Context(), email, password,
		func() {
			s := a.state.State()
			name := s.DisplayName
			if name == "" {
				name = s.Email
			}
			fmt.Printf("Logged in as %s (%s)\n", name, s.Role)
		},
		func(message string) {
			loginErr = errors.New(message)
		},
	)
	return loginErr
}

// readPassword prompts without echo on a terminal, and falls back to a plain
// line read when stdin is piped.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Print(prompt)
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
