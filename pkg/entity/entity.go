// Package entity defines the value types of an invoicing workspace:
// customers, products, invoices and their date components, SIREN numbers,
// and the enterprise settings document. Every type carries its canonical
// YAML form, so serializing a record and reading it back yields an equal
// record with stable bytes.
package entity

import "errors"

// Validation errors returned by the value constructors.
var (
	ErrInvalidDay   = errors.New("invalid day")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidYear  = errors.New("invalid year")
	ErrInvalidDayID = errors.New("invalid invoice id, need only two digits maximum")
	ErrInvalidSiren = errors.New("invalid siren (only 9 digits characters)")
)

// allDigits reports whether s is non-empty and made of ASCII digits only.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// zeroPadded2 validates a numeric string of at most two digits whose value
// lies in [min, max] and returns it left-padded to two characters.
func zeroPadded2(s string, min, max int) (string, bool) {
	if len(s) > 2 || !allDigits(s) {
		return "", false
	}
	n := int(s[len(s)-1] - '0')
	if len(s) == 2 {
		n += int(s[0]-'0') * 10
	}
	if n < min || n > max {
		return "", false
	}
	if len(s) == 1 {
		return "0" + s, true
	}
	return s, true
}
