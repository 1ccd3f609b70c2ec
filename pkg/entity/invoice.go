package entity

import (
	"fmt"
	"strconv"
)

// InvoiceDayID is the two-digit sequence number of an invoice within a
// single calendar day, "01" to "99".
type InvoiceDayID string

// NewDayID validates and zero-pads a day sequence number.
func NewDayID(id string) (InvoiceDayID, error) {
	padded, ok := zeroPadded2(id, 1, 99)
	if !ok {
		return "", ErrInvalidDayID
	}
	return InvoiceDayID(padded), nil
}

// DayIDFromInt converts a sequence number. Values outside [1, 99] are
// rejected; 100 means the day is full.
func DayIDFromInt(n int) (InvoiceDayID, error) {
	return NewDayID(strconv.Itoa(n))
}

// Int parses the sequence number back to its numeric value. Malformed ids
// count as zero, which keeps the allocator moving.
func (id InvoiceDayID) Int() int {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0
	}
	return n
}

// Invoice is a single billing document. DayID is empty on a draft and set
// once the invoice has been persisted; the field order below is the wire
// order of the invoice file.
type Invoice struct {
	Date       Date         `yaml:"date"`
	CustomerID string       `yaml:"customer_id"`
	Title      string       `yaml:"title"`
	DayID      InvoiceDayID `yaml:"invoice_day_id,omitempty"`
	Products   []Product    `yaml:"products"`
}

// Ref returns the 10-character invoice reference YYYYMMDDdd. The second
// result is false while the day id has not been assigned.
func (i Invoice) Ref() (string, bool) {
	if i.DayID == "" {
		return "", false
	}
	return i.Date.Compact() + string(i.DayID), true
}

// Total sums the line totals of every product.
func (i Invoice) Total() float64 {
	var total float64
	for _, p := range i.Products {
		total += p.LineTotal()
	}
	return total
}

func (i Invoice) String() string {
	ref, _ := i.Ref()
	return fmt.Sprintf("%s - %s - %s €", ref, i.CustomerID, strconv.FormatFloat(i.Total(), 'f', -1, 64))
}

// Cancel builds the cancellation invoice for i: a new draft dated date,
// titled after the original reference, with every price negated. The
// original invoice is left untouched and nothing links the two beyond the
// title.
func (i Invoice) Cancel(date Date) Invoice {
	ref, _ := i.Ref()
	products := make([]Product, len(i.Products))
	for k, p := range i.Products {
		products[k] = Product{
			Description: p.Description,
			Quantity:    p.Quantity,
			Price:       -p.Price,
		}
	}
	return Invoice{
		Date:       date,
		CustomerID: i.CustomerID,
		Title:      fmt.Sprintf("Cancel : %s (%s)", i.Title, ref),
		Products:   products,
	}
}
