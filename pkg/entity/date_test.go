package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay(t *testing.T) {
	tests := []struct {
		in      string
		want    DayString
		wantErr bool
	}{
		{in: "1", want: "01"},
		{in: "01", want: "01"},
		{in: "14", want: "14"},
		{in: "31", want: "31"},
		{in: "0", wantErr: true},
		{in: "32", wantErr: true},
		{in: "123", wantErr: true},
		{in: "aa", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NewDay(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidDay, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    MonthString
		wantErr bool
	}{
		{in: "1", want: "01"},
		{in: "12", want: "12"},
		{in: "0", wantErr: true},
		{in: "13", wantErr: true},
		{in: "x", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NewMonth(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidMonth, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewYear(t *testing.T) {
	got, err := NewYear("2015")
	require.NoError(t, err)
	assert.Equal(t, YearString("2015"), got)

	_, err = NewYear("20a5")
	assert.ErrorIs(t, err, ErrInvalidYear)

	_, err = NewYear("")
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestDateOf(t *testing.T) {
	date := DateOf(time.Date(2015, time.March, 14, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, Date{Day: "14", Month: "03", Year: "2015"}, date)
	assert.Equal(t, "20150314", date.Compact())
	assert.Equal(t, "2015-03-14", date.String())
}

func TestDateTimeRoundTrip(t *testing.T) {
	date, err := NewDate(1, 2, 2020)
	require.NoError(t, err)

	parsed, err := date.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, date, DateOf(parsed))
}
