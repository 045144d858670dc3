package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/history"
	"github.com/spf13/cobra"
)

var (
	bookPetID  string
	bookReason string
	reschedule string
)

var appointmentsCmd = &cobra.Command{
	Use:     "appointments",
	Aliases: []string{"citas"},
	Short:   "Manage your appointments",
}

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your appointments",
	RunE:  runAppointmentsList,
}

var appointmentsBookCmd = &cobra.Command{
	Use:   "book <when>",
	Short: "Book an appointment",
	Long: `Book an appointment for one of your pets. The date accepts natural
language as well as ISO timestamps. Booked appointments are also recorded in
the local visit history (see 'myvet history').

Examples:
  myvet appointments book "next tuesday at 10am" --pet <id> --reason "annual checkup"
  myvet appointments book 2026-09-03T16:00:00Z --pet <id> --reason vaccination`,
	Args: cobra.ExactArgs(1),
	RunE: runAppointmentsBook,
}

var appointmentsRescheduleCmd = &cobra.Command{
	Use:   "reschedule <id>",
	Short: "Move an appointment to a new date",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppointmentsReschedule,
}

var appointmentsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel an appointment",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppointmentsCancel,
}

func init() {
	rootCmd.AddCommand(appointmentsCmd)
	appointmentsCmd.AddCommand(appointmentsListCmd, appointmentsBookCmd,
		appointmentsRescheduleCmd, appointmentsCancelCmd)

	appointmentsBookCmd.Flags().StringVar(&bookPetID, "pet", "", "Pet id (see 'myvet pets list')")
	appointmentsBookCmd.Flags().StringVar(&bookReason, "reason", "", "Reason for the visit")
	_ = appointmentsBookCmd.MarkFlagRequired("pet")
	_ = appointmentsBookCmd.MarkFlagRequired("reason")

	appointmentsRescheduleCmd.Flags().StringVar(&reschedule, "to", "", "New date")
	_ = appointmentsRescheduleCmd.MarkFlagRequired("to")
}

func runAppointmentsList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	appointments, err := a.api.ListAppointments(cmd.Context())
	if err != nil {
		return err
	}
	if len(appointments) == 0 {
		fmt.Println("No appointments. Run 'myvet appointments book' to make one.")
		return nil
	}

	for _, appt := range appointments {
		fmt.Printf("%s  %s", appt.ID, formatWhen(appt.Date))
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

func runAppointmentsBook(cmd *cobra.Command, args []string) error {
	date, err := parseAppointmentDate(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	appt, err := a.api.CreateAppointment(cmd.Context(), api.AppointmentCreateRequest{
		Date:   date.UTC().Format(time.RFC3339),
		Reason: bookReason,
		PetID:  bookPetID,
	})
	if err != nil {
		return err
	}

	// Record the booking in the local visit history. The cache is an
	// independent client-side log, never reconciled with the backend.
	state := a.state.State()
	petName := petNameByID(cmd, a, bookPetID)
	if histErr := a.history.Append(history.Entry{
		ID:     history.NewID(),
		Pet:    petName,
		Owner:  state.DisplayName,
		Reason: bookReason,
		Date:   date.Format("2006-01-02"),
		Time:   date.Format("15:04"),
	}); histErr != nil {
		fmt.Printf("Warning: appointment booked but not recorded locally: %v\n", histErr)
	}

	fmt.Printf("Booked appointment %s for %s (%s)\n", appt.ID, formatWhen(appt.Date), humanize.Time(date))
	return nil
}

func runAppointmentsReschedule(cmd *cobra.Command, args []string) error {
	date, err := parseAppointmentDate(reschedule)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	appt, err := a.api.UpdateAppointment(cmd.Context(), args[0], api.AppointmentUpdateRequest{
		Date: date.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Rescheduled to %s\n", formatWhen(appt.Date))
	return nil
}

func runAppointmentsCancel(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	if err := a.api.DeleteAppointment(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Appointment cancelled.")
	return nil
}

// parseAppointmentDate accepts natural language ("next tuesday at 10am") and
// common timestamp formats.
func parseAppointmentDate(input string) (time.Time, error) {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	if result, err := w.Parse(input, time.Now()); err == nil && result != nil {
		return result.Time, nil
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, input); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not understand date %q", input)
}

func formatWhen(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format("Mon Jan 2 15:04")
}

// petNameByID resolves a pet id for the history record; the id itself is the
// fallback when the lookup fails.
func petNameByID(cmd *cobra.Command, a *app, id string) string {
	pets, err := a.api.ListPets(cmd.Context())
	if err != nil {
		return id
	}
	for _, pet := range pets {
		if pet.ID == id {
			return pet.Name
		}
	}
	return id
}
