// Package store implements the file-backed stores of an invoicing
// workspace. Customers and settings each live in a single YAML document
// rewritten whole on every change; invoices are one file per document,
// named after their reference, so date queries are directory scans with a
// filename prefix filter and no database is involved.
package store

import (
	"os"
	"time"

	"github.com/plouvier/facture/pkg/entity"
	"github.com/plouvier/facture/pkg/workspace"
)

// Manager is the full capability set over a workspace. The command surface
// and the extraction bridge depend on it (or a subset of it) so tests can
// substitute a fake for the filesystem.
type Manager interface {
	CreateInvoice(inv entity.Invoice) (string, error)
	AllInvoices() ([]entity.Invoice, error)
	InvoiceByRef(ref string) (entity.Invoice, error)
	InvoicesByDay(date time.Time) ([]entity.Invoice, error)
	InvoicesByMonth(year int, month time.Month) ([]entity.Invoice, error)
	InvoicesByYear(year int) ([]entity.Invoice, error)

	AllCustomers() (map[string]entity.Customer, error)
	CreateCustomer(c entity.Customer) (entity.Customer, error)
	EditCustomer(id string, c entity.Customer) (entity.Customer, error)
	RemoveCustomer(id string) error

	Settings() (entity.Settings, error)
	SaveSettings(s entity.Settings) error
}

// Store is the filesystem implementation of Manager, bound to a resolved
// workspace layout. It assumes exclusive single-process access: writes are
// whole-file overwrites without locking.
type Store struct {
	layout *workspace.Layout
}

var _ Manager = (*Store)(nil)

// New binds a store to a workspace layout.
func New(layout *workspace.Layout) *Store {
	return &Store{layout: layout}
}

// Layout exposes the bound workspace layout, for collaborators that need
// raw paths (the render bridge).
func (s *Store) Layout() *workspace.Layout {
	return s.layout
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
