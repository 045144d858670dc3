package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/proyectmyvet/myvet/internal/core/config"
	"github.com/spf13/cobra"
)

var (
	dataPath    string
	serverURL   string
	verbose     bool
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "myvet",
	Short: "MyVet clinic client",
	Long: `myvet - terminal client for the MyVet veterinary clinic

Book and manage appointments, register pets, run AI symptom triage, and keep
a local history of your visits. Veterinarians get their own command set for
managing the clinic's schedule.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", config.DefaultDataPath(), "Local store path")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log every HTTP request and response")
}
