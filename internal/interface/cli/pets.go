package cli

import (
	"fmt"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/spf13/cobra"
)

var (
	petSpecies   string
	petBreed     string
	petBirthDate string
	petSex       string
	petAge       int
)

var petsCmd = &cobra.Command{
	Use:   "pets",
	Short: "Manage your registered pets",
}

var petsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your pets",
	RunE:  runPetsList,
}

var petsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new pet",
	Long: `Register a pet under your account.

Examples:
  myvet pets add Firulais --species perro --breed labrador --age 3
  myvet pets add Misu --species gato --sex hembra`,
	Args: cobra.ExactArgs(1),
	RunE: runPetsAdd,
}

var petsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a pet's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runPetsUpdate,
}

var petsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a pet",
	Args:  cobra.ExactArgs(1),
	RunE:  runPetsRemove,
}

func init() {
	rootCmd.AddCommand(petsCmd)
	petsCmd.AddCommand(petsListCmd, petsAddCmd, petsUpdateCmd, petsRemoveCmd)

	for _, cmd := range []*cobra.Command{petsAddCmd, petsUpdateCmd} {
		cmd.Flags().StringVar(&petSpecies, "species", "", "Species (perro, gato, ...)")
		cmd.Flags().StringVar(&petBreed, "breed", "", "Breed")
		cmd.Flags().StringVar(&petBirthDate, "born", "", "Birth date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&petSex, "sex", "", "Sex")
		cmd.Flags().IntVar(&petAge, "age", 0, "Age in years")
	}
}

func runPetsList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	pets, err := a.api.ListPets(cmd.Context())
	if err != nil {
		return err
	}
	if len(pets) == 0 {
		fmt.Println("No pets registered. Run 'myvet pets add' to register one.")
		return nil
	}

	for _, pet := range pets {
		fmt.Printf("%s  %s", pet.ID, pet.Name)
		if pet.Species != "" {
			fmt.Printf(" (%s", pet.Species)
			if pet.Breed != "" {
				fmt.Printf(", %s", pet.Breed)
			}
			fmt.Print(")")
		}
		if pet.Age > 0 {
			fmt.Printf("  %d years", pet.Age)
		}
		fmt.Println()
	}
	return nil
}

func runPetsAdd(cmd *cobra.Command, args []string) error {
	if petSpecies == "" {
		return fmt.Errorf("--species is required")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	pet, err := a.api.CreatePet(cmd.Context(), api.PetCreateRequest{
		Name:      args[0],
		Species:   petSpecies,
		Breed:     petBreed,
		BirthDate: petBirthDate,
		Sex:       petSex,
		Age:       petAge,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s (id %s)\n", pet.Name, pet.ID)
	return nil
}

func runPetsUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	pet, err := a.api.UpdatePet(cmd.Context(), args[0], api.PetUpdateRequest{
		Species:   petSpecies,
		Breed:     petBreed,
		BirthDate: petBirthDate,
		Sex:       petSex,
		Age:       petAge,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", pet.Name)
	return nil
}

func runPetsRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireRole(api.RoleOwner); err != nil {
		return err
	}

	if err := a.api.DeletePet(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Pet removed.")
	return nil
}
