package entity

import (
	"fmt"
	"strconv"
	"time"
)

// DayString is a two-digit zero-padded day of month, "01" to "31".
type DayString string

// NewDay validates and zero-pads a day of month.
func NewDay(day string) (DayString, error) {
	padded, ok := zeroPadded2(day, 1, 31)
	if !ok {
		return "", ErrInvalidDay
	}
	return DayString(padded), nil
}

// DayOf converts a day number taken from a calendar date.
func DayOf(day int) DayString {
	return DayString(fmt.Sprintf("%02d", day))
}

// MonthString is a two-digit zero-padded month, "01" to "12".
type MonthString string

// NewMonth validates and zero-pads a month number.
func NewMonth(month string) (MonthString, error) {
	padded, ok := zeroPadded2(month, 1, 12)
	if !ok {
		return "", ErrInvalidMonth
	}
	return MonthString(padded), nil
}

// MonthOf converts a month number taken from a calendar date.
func MonthOf(month int) MonthString {
	return MonthString(fmt.Sprintf("%02d", month))
}

// YearString is an all-digit year. No range is enforced.
type YearString string

// NewYear validates a year string.
func NewYear(year string) (YearString, error) {
	if !allDigits(year) {
		return "", ErrInvalidYear
	}
	return YearString(year), nil
}

// Date is the serialized shape of an invoice date: three quoted digit
// strings nested under the date key.
type Date struct {
	Day   DayString   `yaml:"day" json:"day"`
	Month MonthString `yaml:"month" json:"month"`
	Year  YearString  `yaml:"year" json:"year"`
}

// NewDate builds a Date from calendar components.
func NewDate(day, month, year int) (Date, error) {
	d, err := NewDay(strconv.Itoa(day))
	if err != nil {
		return Date{}, err
	}
	m, err := NewMonth(strconv.Itoa(month))
	if err != nil {
		return Date{}, err
	}
	y, err := NewYear(strconv.Itoa(year))
	if err != nil {
		return Date{}, err
	}
	return Date{Day: d, Month: m, Year: y}, nil
}

// DateOf converts a time.Time, keeping only the calendar date.
func DateOf(t time.Time) Date {
	return Date{
		Day:   DayOf(t.Day()),
		Month: MonthOf(int(t.Month())),
		Year:  YearString(fmt.Sprintf("%04d", t.Year())),
	}
}

// Time converts the date back to a time.Time at midnight UTC.
func (d Date) Time() (time.Time, error) {
	year, err := strconv.Atoi(string(d.Year))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q: %w", d.Year, err)
	}
	month, err := strconv.Atoi(string(d.Month))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", d.Month, err)
	}
	day, err := strconv.Atoi(string(d.Day))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", d.Day, err)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// Compact renders the date as YYYYMMDD, the prefix of an invoice reference.
func (d Date) Compact() string {
	return string(d.Year) + string(d.Month) + string(d.Day)
}

func (d Date) String() string {
	return fmt.Sprintf("%s-%s-%s", d.Year, d.Month, d.Day)
}
