// Package stats aggregates revenue figures over a selection of invoices.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/plouvier/facture/pkg/entity"
)

// Summary is the aggregate of one invoice selection (a day, a month or a
// year). The total is accumulated with decimals so the printed figure does
// not pick up binary float noise; cancellation invoices subtract naturally
// through their negative prices.
type Summary struct {
	Count int
	Total decimal.Decimal
}

// Summarize folds a selection of invoices into a Summary.
func Summarize(invoices []entity.Invoice) Summary {
	total := decimal.Zero
	for _, inv := range invoices {
		for _, p := range inv.Products {
			line := decimal.NewFromFloat(p.Quantity).Mul(decimal.NewFromFloat(p.Price))
			total = total.Add(line)
		}
	}
	return Summary{Count: len(invoices), Total: total}
}
