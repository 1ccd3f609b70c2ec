package entity

// Siren is a French enterprise identifier: exactly nine decimal digits,
// stored as text so leading zeros survive.
type Siren string

// NewSiren validates a SIREN number.
func NewSiren(siren string) (Siren, error) {
	if len(siren) != 9 || !allDigits(siren) {
		return "", ErrInvalidSiren
	}
	return Siren(siren), nil
}

func (s Siren) String() string {
	return string(s)
}
