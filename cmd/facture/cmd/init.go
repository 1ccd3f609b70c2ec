package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plouvier/facture/pkg/entity"
	"github.com/plouvier/facture/pkg/store"
	"github.com/plouvier/facture/pkg/workspace"
)

// defaultLawRules seeds the editor when the settings are first written.
const defaultLawRules = "Payment Terms: Net 30 days from the invoice date. In accordance with the terms and conditions of sale, a late payment penalty of 40€ per month (or the maximum rate permitted by law, whichever is lower) will be applied to all overdue balances. Interest will accrue daily from the due date until full payment is received. In addition to the late payment penalty, the purchaser agrees to reimburse the seller for all costs incurred in collecting any late payments, including, but not limited to, legal fees and collection agency charges."

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the workspace and prompt the enterprise settings",
	Run: func(cmd *cobra.Command, args []string) {
		settings := promptSettings(entity.Settings{
			LawRules:   defaultLawRules,
			Politeness: "Thank you",
		})

		layout, err := workspace.Init(workspaceRoot(), workspaceOptions())
		exitOnError(err)

		exitOnError(store.New(layout).SaveSettings(settings))
	},
}

// promptSettings asks the full settings record, prefilled from base so the
// same flow serves both init and settings edit.
func promptSettings(base entity.Settings) entity.Settings {
	name := askText("Enterprise name", base.Enterprise.Name)
	title := askText("Job title", base.Enterprise.Title)
	siren := askSiren(base.Enterprise.Siren.String())
	email := askText("Email", base.Enterprise.Email)
	address := askText("Address", base.Enterprise.Address)
	city := askText("City", base.Enterprise.City)
	postal := askText("Postal code", base.Enterprise.Postal)
	phone := askText("Phone number", base.Enterprise.Phone)
	politeness := askText("Politeness", base.Politeness)
	lawRules := askEditor("Law rules", base.LawRules)

	return entity.Settings{
		Enterprise: entity.Enterprise{
			Name:    name,
			Siren:   siren,
			Email:   email,
			Address: address,
			City:    city,
			Postal:  postal,
			Phone:   phone,
			Title:   title,
			Tva:     base.Enterprise.Tva,
		},
		LawRules:      lawRules,
		Politeness:    politeness,
		LLMInstruct:   base.LLMInstruct,
		MistralAPIKey: base.MistralAPIKey,
	}
}
