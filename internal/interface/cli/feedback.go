package cli

import (
	"fmt"
	"strings"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/spf13/cobra"
)

var feedbackRating int

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Rate the clinic and see what others think",
}

var feedbackSendCmd = &cobra.Command{
	Use:   "send <suggestion...>",
	Short: "Send a rating and suggestion",
	Long: `Send feedback about the clinic.

Examples:
  myvet feedback send "great service" --rating 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFeedbackSend,
}

var feedbackMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List feedback you have sent",
	RunE:  runFeedbackMine,
}

var feedbackSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the clinic's average rating",
	RunE:  runFeedbackSummary,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.AddCommand(feedbackSendCmd, feedbackMineCmd, feedbackSummaryCmd)
	feedbackSendCmd.Flags().IntVar(&feedbackRating, "rating", 5, "Rating from 1 to 5")
}

func runFeedbackSend(cmd *cobra.Command, args []string) error {
	if feedbackRating < 1 || feedbackRating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	if err := a.api.CreateFeedback(cmd.Context(), api.FeedbackCreateRequest{
		Rating:     feedbackRating,
		Suggestion: strings.Join(args, " "),
	}); err != nil {
		return err
	}
	fmt.Println("Thanks for the feedback!")

	// Best-effort refresh; the submission already succeeded.
	if summary, err := a.api.GetFeedbackSummary(cmd.Context()); err == nil {
		fmt.Printf("Clinic rating: %.1f (%d reviews)\n", summary.Average, summary.Count)
	}
	return nil
}

func runFeedbackMine(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	entries, err := a.api.MyFeedback(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("You have not sent any feedback yet.")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("%s  %d/5  %s\n", entry.CreatedAt, entry.Rating, entry.Suggestion)
	}
	return nil
}

func runFeedbackSummary(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	summary, err := a.api.GetFeedbackSummary(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Clinic rating: %.1f (%d reviews)\n", summary.Average, summary.Count)
	return nil
}
