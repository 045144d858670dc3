package cli

import (
	"fmt"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/auth"
	"github.com/spf13/cobra"
)

var (
	profileName    string
	profilePhone   string
	profileAddress string
	clinicName     string
	clinicPhone    string
	clinicAddress  string
	speciality     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE:  runProfileShow,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	Long: `Edit your profile. Vets can also set clinic details.

Examples:
  myvet profile edit --name Ana --phone 5551234
  myvet profile edit --clinic-name "Clinica San Roque" --speciality exoticos`,
	RunE: runProfileEdit,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileEditCmd)

	profileEditCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileEditCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	profileEditCmd.Flags().StringVar(&profileAddress, "address", "", "Address")
	profileEditCmd.Flags().StringVar(&clinicName, "clinic-name", "", "Clinic name (vets)")
	profileEditCmd.Flags().StringVar(&clinicPhone, "clinic-phone", "", "Clinic phone (vets)")
	profileEditCmd.Flags().StringVar(&clinicAddress, "clinic-address", "", "Clinic address (vets)")
	profileEditCmd.Flags().StringVar(&speciality, "speciality", "", "Speciality (vets)")
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.state.ValidateSession(); err != nil {
		return err
	}
	state := a.state.State()
	if state.Phase != auth.PhaseAuthenticated {
		return fmt.Errorf("not logged in. Run 'myvet login' first")
	}

	if state.Role == api.RoleVet {
		profile, err := a.api.VetMe(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Name:       %s\n", profile.Name)
		fmt.Printf("Email:      %s\n", profile.Email)
		fmt.Printf("Phone:      %s\n", profile.Phone)
		if profile.ClinicName != "" {
			fmt.Printf("Clinic:     %s (%s, %s)\n", profile.ClinicName, profile.ClinicPhone, profile.ClinicAddress)
		}
		if profile.Speciality != "" {
			fmt.Printf("Speciality: %s\n", profile.Speciality)
		}
		return nil
	}

	profile, err := a.api.Me(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Name:    %s\n", profile.Name)
	fmt.Printf("Email:   %s\n", profile.Email)
	fmt.Printf("Phone:   %s\n", profile.Phone)
	fmt.Printf("Address: %s\n", profile.Address)
	return nil
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.state.ValidateSession(); err != nil {
		return err
	}
	state := a.state.State()
	if state.Phase != auth.PhaseAuthenticated {
		return fmt.Errorf("not logged in. Run 'myvet login' first")
	}

	if state.Role == api.RoleVet {
		if err := a.api.VetSaveProfile(cmd.Context(), api.VetProfile{
			Name:          profileName,
			Phone:         profilePhone,
			Address:       profileAddress,
			ClinicName:    clinicName,
			ClinicPhone:   clinicPhone,
			ClinicAddress: clinicAddress,
			Speciality:    speciality,
		}); err != nil {
			return err
		}
	} else {
		if profileName == "" {
			return fmt.Errorf("--name is required")
		}
		if err := a.api.SaveProfile(cmd.Context(), api.OwnerProfileRequest{
			Name:    profileName,
			Phone:   profilePhone,
			Address: profileAddress,
		}); err != nil {
			return err
		}
	}
	fmt.Println("Profile saved.")
	return nil
}
