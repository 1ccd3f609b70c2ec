package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/plouvier/facture/pkg/entity"
	"github.com/plouvier/facture/pkg/mistral"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Manage invoices",
}

var invoiceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice interactively",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		customerID, _, err := selectCustomer(st)
		exitOnError(err)

		title := askText("Invoice title", "")

		var products []entity.Product
		for {
			description := askText("Product title", "")
			if description == "" {
				break
			}

			quantity := askNumber("Product quantity")
			price := askNumber("Product price")

			products = append(products, entity.Product{
				Description: description,
				Quantity:    quantity,
				Price:       price,
			})

			if !confirm("Do you want to add another product ?") {
				break
			}
		}

		path, err := st.CreateInvoice(entity.Invoice{
			Date:       entity.DateOf(time.Now()),
			CustomerID: customerID,
			Title:      title,
			Products:   products,
		})
		exitOnError(err)

		fmt.Printf("Invoice created at : %s\n", path)
	},
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every invoice",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		invoices, err := st.AllInvoices()
		exitOnError(err)

		fmt.Printf("Get %d invoice%s\n\n", len(invoices), plural(len(invoices)))
		for _, inv := range invoices {
			fmt.Println(inv)
		}
	},
}

var invoiceGetCmd = &cobra.Command{
	Use:   "get [ref]",
	Short: "Show one invoice in detail",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		inv, err := invoiceOrSelect(st, args)
		exitOnError(err)

		ref, _ := inv.Ref()
		fmt.Printf("Your invoice : %s\n", ref)
		fmt.Printf("%s\n\n", inv.Title)
		fmt.Printf("Date : %s\n", inv.Date)

		fmt.Println("Products : ")
		for _, p := range inv.Products {
			fmt.Printf(" - %s : %s * %s€ = %s€\n",
				p.Description, formatAmount(p.Quantity), formatAmount(p.Price), formatAmount(p.LineTotal()))
		}

		fmt.Printf("\nTotal price : %s €\n", formatAmount(inv.Total()))
	},
}

var invoiceDeleteCmd = &cobra.Command{
	Use:   "delete [ref]",
	Short: "Cancel an invoice with a counter-invoice",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		inv, err := invoiceOrSelect(st, args)
		exitOnError(err)

		path, err := st.CreateInvoice(inv.Cancel(entity.DateOf(time.Now())))
		exitOnError(err)

		fmt.Printf("Cancel Invoice created at : %s\n", path)
	},
}

var invoicePromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Create an invoice from a free-text description",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		prompt := askText("What is the invoice you want create ?", "")

		client := mistral.NewClient(cfg.Mistral.APIURL, cfg.Mistral.APIKey)
		inv, err := client.ExtractInvoice(st, prompt)
		exitOnError(err)

		path, err := st.CreateInvoice(inv)
		exitOnError(err)

		fmt.Printf("Invoice created in : %s\n", path)

		ref := refOfPath(path)
		exitOnError(renderInvoice(st, ref, ""))
	},
}

func init() {
	invoiceCmd.AddCommand(invoiceCreateCmd)
	invoiceCmd.AddCommand(invoiceListCmd)
	invoiceCmd.AddCommand(invoiceGetCmd)
	invoiceCmd.AddCommand(invoiceDeleteCmd)
	invoiceCmd.AddCommand(invoicePromptCmd)
}

// refOfPath recovers the invoice reference from a stored invoice path.
func refOfPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// formatAmount prints a float without trailing zeros, "350" not "350.00".
func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
