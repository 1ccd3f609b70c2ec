package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/plouvier/facture/pkg/entity"
	"github.com/plouvier/facture/pkg/workspace"
)

const invoiceExt = ".yaml"

// invoiceFiles lists the invoice directory: regular files only, dotfiles
// skipped, sorted by filename ascending. Filenames start with YYYYMMDD, so
// the order is chronological and callers can rely on it.
func (s *Store) invoiceFiles() ([]string, error) {
	entries, err := os.ReadDir(s.layout.InvoiceDir)
	if err != nil {
		return nil, fmt.Errorf("unable to read invoice directory %s: %w", s.layout.InvoiceDir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) readInvoice(name string) (entity.Invoice, error) {
	path := filepath.Join(s.layout.InvoiceDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("unable to read invoice file %s: %w", path, err)
	}

	var inv entity.Invoice
	if err := entity.FromYAML(data, &inv); err != nil {
		return entity.Invoice{}, fmt.Errorf("unable to parse invoice file %s: %w", path, err)
	}
	return inv, nil
}

// AllInvoices parses every invoice in filename order. A single unreadable
// file fails the whole listing: a corrupt store is a problem to surface,
// not to skip over.
func (s *Store) AllInvoices() ([]entity.Invoice, error) {
	return s.invoicesByPrefix("")
}

func (s *Store) invoicesByPrefix(prefix string) ([]entity.Invoice, error) {
	names, err := s.invoiceFiles()
	if err != nil {
		return nil, err
	}

	invoices := make([]entity.Invoice, 0, len(names))
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		inv, err := s.readInvoice(name)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// InvoiceByRef reads the single invoice file for a 10-character reference.
func (s *Store) InvoiceByRef(ref string) (entity.Invoice, error) {
	path := filepath.Join(s.layout.InvoiceDir, ref+invoiceExt)
	if !isFile(path) {
		return entity.Invoice{}, fmt.Errorf("%w: %s", ErrInvoiceNotFound, ref)
	}
	return s.readInvoice(ref + invoiceExt)
}

// InvoicesByDay returns the invoices filed under a calendar day. The match
// is on the filename prefix, never on the invoice body: the filename is
// authoritative.
func (s *Store) InvoicesByDay(date time.Time) ([]entity.Invoice, error) {
	return s.invoicesByPrefix(date.Format("20060102"))
}

// InvoicesByMonth returns the invoices filed under a calendar month.
func (s *Store) InvoicesByMonth(year int, month time.Month) ([]entity.Invoice, error) {
	return s.invoicesByPrefix(fmt.Sprintf("%04d%02d", year, int(month)))
}

// InvoicesByYear returns the invoices filed under a calendar year.
func (s *Store) InvoicesByYear(year int) ([]entity.Invoice, error) {
	return s.invoicesByPrefix(strconv.Itoa(year))
}

// CreateInvoice persists an invoice and returns the written file path.
// A draft without a day id gets the next one for its date from the
// allocator; a caller-supplied day id that collides with an existing file
// is rejected rather than silently overwriting it.
func (s *Store) CreateInvoice(inv entity.Invoice) (string, error) {
	if !isDir(s.layout.InvoiceDir) {
		return "", &workspace.MissingError{Kind: workspace.KindInvoiceStore, Path: s.layout.InvoiceDir}
	}

	if inv.DayID == "" {
		date, err := inv.Date.Time()
		if err != nil {
			return "", fmt.Errorf("invalid invoice date: %w", err)
		}
		id, err := s.NextDayID(date)
		if err != nil {
			return "", err
		}
		inv.DayID = id
	} else {
		ref, _ := inv.Ref()
		if isFile(filepath.Join(s.layout.InvoiceDir, ref+invoiceExt)) {
			return "", fmt.Errorf("%w: %s", ErrDuplicateInvoice, ref)
		}
	}

	if inv.Products == nil {
		inv.Products = []entity.Product{}
	}

	ref, _ := inv.Ref()
	path := filepath.Join(s.layout.InvoiceDir, ref+invoiceExt)

	data, err := entity.ToYAML(inv)
	if err != nil {
		return "", fmt.Errorf("unable to serialize invoice %s: %w", ref, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("unable to write invoice file %s: %w", path, err)
	}

	slog.Debug("Invoice written", "ref", ref, "path", path)
	return path, nil
}
