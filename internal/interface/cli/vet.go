package cli

import (
	"fmt"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/spf13/cobra"
)

var (
	vetState string
	vetNotes string
)

var vetCmd = &cobra.Command{
	Use:   "vet",
	Short: "Clinic-side commands (veterinarians only)",
}

var vetAppointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "List every appointment at the clinic",
	RunE:  runVetAppointments,
}

var vetOwnersCmd = &cobra.Command{
	Use:   "owners",
	Short: "List registered owners",
	RunE:  runVetOwners,
}

var vetPetsCmd = &cobra.Command{
	Use:   "pets",
	Short: "List every pet across owners",
	RunE:  runVetPets,
}

var vetUpdateCmd = &cobra.Command{
	Use:   "update <appointment-id>",
	Short: "Update an appointment's state or notes",
	Long: `Update an appointment as it moves through the visit.

States: pendiente, en_curso, hecha.

Examples:
  myvet vet update 42 --state en_curso
  myvet vet update 42 --state hecha --notes "vaccinated, next dose in 30 days"`,
	Args: cobra.ExactArgs(1),
	RunE: runVetUpdate,
}

func init() {
	rootCmd.AddCommand(vetCmd)
	vetCmd.AddCommand(vetAppointmentsCmd, vetOwnersCmd, vetPetsCmd, vetUpdateCmd)

	vetUpdateCmd.Flags().StringVar(&vetState, "state", "", "New state (pendiente, en_curso, hecha)")
	vetUpdateCmd.Flags().StringVar(&vetNotes, "notes", "", "Visit notes")
}

func runVetAppointments(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleVet); err != nil {
		return err
	}

	appointments, err := a.api.VetAppointments(cmd.Context())
	if err != nil {
		return err
	}
	if len(appointments) == 0 {
		fmt.Println("No appointments scheduled.")
		return nil
	}

	for _, appt := range appointments {
		fmt.Printf("%s  %s", appt.ID, formatWhen(appt.Date))
		if appt.PetName != "" {
			fmt.Printf("  %s", appt.PetName)
		}
		if appt.OwnerName != "" {
			fmt.Printf(" (%s)", appt.OwnerName)
		}
		if appt.Reason != "" {
			fmt.Printf("  %s", appt.Reason)
		}
		if appt.State != "" {
			fmt.Printf("  [%s]", appt.State)
		}
		fmt.Println()
	}
	return nil
}

func runVetOwners(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleVet); err != nil {
		return err
	}

	owners, err := a.api.VetOwners(cmd.Context())
	if err != nil {
		return err
	}
	for _, owner := range owners {
		fmt.Printf("%s  %s  %s\n", owner.ID, owner.Name, owner.Email)
	}
	return nil
}

func runVetPets(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleVet); err != nil {
		return err
	}

	pets, err := a.api.VetPets(cmd.Context())
	if err != nil {
		return err
	}
	for _, pet := range pets {
		fmt.Printf("%s  %s (%s)", pet.ID, pet.Name, pet.Species)
		if pet.OwnerName != "" {
			fmt.Printf("  owner: %s", pet.OwnerName)
		}
		fmt.Println()
	}
	return nil
}

func runVetUpdate(cmd *cobra.Command, args []string) error {
	if vetState == "" && vetNotes == "" {
		return fmt.Errorf("nothing to update: pass --state and/or --notes")
	}
	switch vetState {
	case "", api.AppointmentPending, api.AppointmentInProgress, api.AppointmentDone:
	default:
		return fmt.Errorf("unknown state %q (want pendiente, en_curso, or hecha)", vetState)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleVet); err != nil {
		return err
	}

	appt, err := a.api.VetUpdateAppointment(cmd.Context(), args[0], api.VetAppointmentUpdateRequest{
		State: vetState,
		Notes: vetNotes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Appointment %s updated [%s]\n", appt.ID, appt.State)
	return nil
}
