package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/triage"
	"github.com/spf13/cobra"
)

var (
	triageSpecies string
	triageAge     string
	triageContext string
	triageCopy    bool
)

var triageCmd = &cobra.Command{
	Use:   "triage <symptoms...>",
	Short: "Ask the AI agent about a pet's symptoms",
	Long: `Send a symptom description to the clinic's AI triage agent and print
its assessment: recommendations, red flags, and sources. This is guidance,
not a diagnosis.

Examples:
  myvet triage "vomiting since yesterday, not eating" --species perro --age 3
  myvet triage "limping on front left leg" --copy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTriage,
}

func init() {
	rootCmd.AddCommand(triageCmd)
	triageCmd.Flags().StringVar(&triageSpecies, "species", "", "Species")
	triageCmd.Flags().StringVar(&triageAge, "age", "", "Age")
	triageCmd.Flags().StringVar(&triageContext, "context", "", "Extra context (vaccines, diet, ...)")
	triageCmd.Flags().BoolVar(&triageCopy, "copy", false, "Copy the recommendation to the clipboard")
}

func runTriage(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	req := triage.BuildRequest(a.cfg.TriageTemplate, triage.Input{
		Symptoms: strings.Join(args, " "),
		Species:  triageSpecies,
		Age:      triageAge,
		Context:  triageContext,
	})

	resp, err := a.api.Prediagnose(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Println(triage.Format(resp))

	if triageCopy {
		if copyErr := clipboard.WriteAll(triage.Recommendation(resp)); copyErr != nil {
			fmt.Printf("Could not copy to clipboard: %v\n", copyErr)
		} else {
			fmt.Println("Recommendation copied to clipboard.")
		}
	}
	return nil
}
