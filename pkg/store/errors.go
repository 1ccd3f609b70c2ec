package store

import "errors"

var (
	// ErrCustomerNotFound is returned when an edit or remove names an
	// unknown customer id.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDuplicateCustomerID is returned when a created customer's name
	// slugs to an id already present in the mapping.
	ErrDuplicateCustomerID = errors.New("duplicated customer id")

	// ErrInvoiceNotFound is returned when no invoice file exists for a
	// reference.
	ErrInvoiceNotFound = errors.New("invoice reference not found")

	// ErrDuplicateInvoice is returned when a caller-supplied day id
	// collides with an invoice already filed for that date.
	ErrDuplicateInvoice = errors.New("invoice reference already exists")

	// ErrDayFull is returned by the allocator when a day already holds 99
	// invoices.
	ErrDayFull = errors.New("no invoice day id left, the day already holds 99 invoices")
)
