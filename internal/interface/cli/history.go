package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the local visit history",
	Long: `Browse appointments booked from this device. The history lives only in
the local store; cancelling an appointment on the backend does not remove it
here.`,
	RunE: runHistoryList,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a history entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRemove,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRemoveCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.history.All()
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No visits recorded yet.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%d  %s %s  %s", entry.ID, entry.Date, entry.Time, entry.Pet)
		if entry.Reason != "" {
			fmt.Printf("  %s", entry.Reason)
		}
		fmt.Printf("  (recorded %s)\n", humanize.Time(time.UnixMilli(entry.ID)))
	}
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid history id %q", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.history.Remove(id); err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}
	fmt.Println("Entry removed.")
	return nil
}
