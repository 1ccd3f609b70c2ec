package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/plouvier/facture/pkg/render"
	"github.com/plouvier/facture/pkg/store"
)

var targetDir string

var generateCmd = &cobra.Command{
	Use:   "generate [ref]",
	Short: "Render one invoice to PDF",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		inv, err := invoiceOrSelect(st, args)
		exitOnError(err)

		ref, _ := inv.Ref()
		exitOnError(renderInvoice(st, ref, targetDir))
	},
}

var generateAllCmd = &cobra.Command{
	Use:   "generate-all",
	Short: "Render every invoice to PDF",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		invoices, err := st.AllInvoices()
		exitOnError(err)

		for _, inv := range invoices {
			ref, ok := inv.Ref()
			if !ok {
				continue
			}
			exitOnError(renderInvoice(st, ref, targetDir))
		}
	},
}

func init() {
	generateCmd.Flags().StringVar(&targetDir, "target-dir", "", "output directory (default is <root>/output)")
	generateAllCmd.Flags().StringVar(&targetDir, "target-dir", "", "output directory (default is <root>/output)")
}

// renderInvoice renders one stored invoice, writing the PDF under dir or
// the workspace output directory when dir is empty.
func renderInvoice(st *store.Store, ref, dir string) error {
	layout := st.Layout()
	if dir == "" {
		dir = filepath.Join(layout.Root, "output")
	}

	invoicePath := filepath.Join(layout.InvoiceDir, ref+".yaml")
	outputPath := filepath.Join(dir, ref+".pdf")

	if err := render.Generate(layout.BuildDir, layout.SettingsFile, layout.CustomerFile, invoicePath, outputPath); err != nil {
		return err
	}

	fmt.Printf("Invoice generated in : %s\n", outputPath)
	return nil
}
