package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSiren(t *testing.T) {
	siren, err := NewSiren("123456789")
	require.NoError(t, err)
	assert.Equal(t, "123456789", siren.String())

	// leading zeros survive
	siren, err = NewSiren("012345678")
	require.NoError(t, err)
	assert.Equal(t, "012345678", siren.String())

	for _, in := range []string{"", "12345678", "1234567890", "12345678a", "123 45678"} {
		_, err := NewSiren(in)
		assert.ErrorIs(t, err, ErrInvalidSiren, "input %q", in)
	}
}
