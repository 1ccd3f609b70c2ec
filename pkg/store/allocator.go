package store

import (
	"errors"
	"time"

	"github.com/plouvier/facture/pkg/entity"
)

// NextDayID returns the next free day sequence number for a date: "01" when
// nothing is filed yet, otherwise the highest existing id plus one. Ids
// that fail to parse count as zero. The scan and the later write are not
// atomic across processes; the single-writer assumption of the workspace
// covers that.
func (s *Store) NextDayID(date time.Time) (entity.InvoiceDayID, error) {
	invoices, err := s.InvoicesByDay(date)
	if err != nil {
		return "", err
	}

	max := 0
	for _, inv := range invoices {
		if n := inv.DayID.Int(); n > max {
			max = n
		}
	}

	id, err := entity.DayIDFromInt(max + 1)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidDayID) {
			return "", ErrDayFull
		}
		return "", err
	}
	return id, nil
}
