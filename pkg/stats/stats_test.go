package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/plouvier/facture/pkg/entity"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.Total.IsZero())
}

func TestSummarize(t *testing.T) {
	invoices := []entity.Invoice{
		{Products: []entity.Product{
			{Description: "A", Quantity: 1, Price: 100},
			{Description: "B", Quantity: 2, Price: 50},
		}},
		{Products: []entity.Product{
			{Description: "C", Quantity: 3, Price: 33.5},
		}},
	}

	summary := Summarize(invoices)

	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.Total.Equal(decimal.NewFromFloat(300.5)), "got %s", summary.Total)
}

func TestSummarizeExactDecimals(t *testing.T) {
	// 0.1 + 0.2 style sums must not pick up float noise
	invoices := []entity.Invoice{
		{Products: []entity.Product{{Quantity: 1, Price: 0.1}}},
		{Products: []entity.Product{{Quantity: 1, Price: 0.2}}},
	}

	assert.Equal(t, "0.3", Summarize(invoices).Total.String())
}

func TestSummarizeCancellation(t *testing.T) {
	invoices := []entity.Invoice{
		{Products: []entity.Product{{Description: "A", Quantity: 1, Price: 100}}},
		{Products: []entity.Product{{Description: "A", Quantity: 1, Price: -100}}},
	}

	summary := Summarize(invoices)

	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.Total.IsZero())
}
