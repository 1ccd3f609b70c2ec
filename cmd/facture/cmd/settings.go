package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plouvier/facture/pkg/entity"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the enterprise settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the settings",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		settings, err := st.Settings()
		exitOnError(err)

		fmt.Printf("Your settings :\n\n")

		fmt.Println("Enterprise :")
		fmt.Printf("Name: %s\n", settings.Enterprise.Name)
		fmt.Printf("Siren Number: %s\n", settings.Enterprise.Siren)
		fmt.Printf("Email: %s\n", settings.Enterprise.Email)
		fmt.Printf("Address: %s\n", settings.Enterprise.Address)
		fmt.Printf("City: %s\n", settings.Enterprise.City)
		fmt.Printf("Postal Code: %s\n", settings.Enterprise.Postal)
		fmt.Printf("Phone: %s\n", settings.Enterprise.Phone)
		fmt.Printf("Title: %s\n", settings.Enterprise.Title)

		fmt.Printf("\nInvoice clauses :\n")
		fmt.Printf("Politeness: %s\n", settings.Politeness)
		fmt.Printf("Law rules: %s\n", settings.LawRules)
	},
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the settings, prefilled with the stored values",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		current, err := st.Settings()
		exitOnError(err)

		exitOnError(st.SaveSettings(promptSettings(current)))
	},
}

var settingsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write fresh settings from scratch",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		settings := promptSettings(entity.Settings{
			LawRules:   defaultLawRules,
			Politeness: "Thank you",
		})
		exitOnError(st.SaveSettings(settings))
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsEditCmd)
	settingsCmd.AddCommand(settingsCreateCmd)
}
