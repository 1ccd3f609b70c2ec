package store

import (
	"bytes"
	"fmt"
	"os"

	"github.com/plouvier/facture/pkg/entity"
	"github.com/plouvier/facture/pkg/workspace"
)

// AllCustomers reads the whole customer mapping. An empty document is an
// empty mapping.
func (s *Store) AllCustomers() (map[string]entity.Customer, error) {
	data, err := os.ReadFile(s.layout.CustomerFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read customer file %s: %w", s.layout.CustomerFile, err)
	}

	customers := map[string]entity.Customer{}
	if len(bytes.TrimSpace(data)) == 0 {
		return customers, nil
	}
	if err := entity.FromYAML(data, &customers); err != nil {
		return nil, fmt.Errorf("unable to parse customer file %s: %w", s.layout.CustomerFile, err)
	}
	return customers, nil
}

// CreateCustomer inserts a customer under the slug of its name and writes
// the mapping back. The stored record is returned.
func (s *Store) CreateCustomer(c entity.Customer) (entity.Customer, error) {
	if !isFile(s.layout.CustomerFile) {
		return entity.Customer{}, &workspace.MissingError{Kind: workspace.KindCustomerStore, Path: s.layout.CustomerFile}
	}

	customers, err := s.AllCustomers()
	if err != nil {
		return entity.Customer{}, err
	}

	id := c.ID()
	if _, ok := customers[id]; ok {
		return entity.Customer{}, fmt.Errorf("%w: %s", ErrDuplicateCustomerID, id)
	}

	customers[id] = c
	if err := s.writeCustomers(customers); err != nil {
		return entity.Customer{}, err
	}
	return c, nil
}

// EditCustomer replaces the record stored under id. The key is kept as is,
// even when the new name would slug differently: invoice references to the
// id stay valid.
func (s *Store) EditCustomer(id string, c entity.Customer) (entity.Customer, error) {
	if !isFile(s.layout.CustomerFile) {
		return entity.Customer{}, &workspace.MissingError{Kind: workspace.KindCustomerStore, Path: s.layout.CustomerFile}
	}

	customers, err := s.AllCustomers()
	if err != nil {
		return entity.Customer{}, err
	}

	if _, ok := customers[id]; !ok {
		return entity.Customer{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, id)
	}

	customers[id] = c
	if err := s.writeCustomers(customers); err != nil {
		return entity.Customer{}, err
	}
	return c, nil
}

// RemoveCustomer deletes the record stored under id.
func (s *Store) RemoveCustomer(id string) error {
	if !isFile(s.layout.CustomerFile) {
		return &workspace.MissingError{Kind: workspace.KindCustomerStore, Path: s.layout.CustomerFile}
	}

	customers, err := s.AllCustomers()
	if err != nil {
		return err
	}

	if _, ok := customers[id]; !ok {
		return fmt.Errorf("%w: %s", ErrCustomerNotFound, id)
	}

	delete(customers, id)
	return s.writeCustomers(customers)
}

func (s *Store) writeCustomers(customers map[string]entity.Customer) error {
	data, err := entity.ToYAML(customers)
	if err != nil {
		return fmt.Errorf("unable to serialize customer mapping: %w", err)
	}
	if err := os.WriteFile(s.layout.CustomerFile, data, 0o644); err != nil {
		return fmt.Errorf("unable to write customer file %s: %w", s.layout.CustomerFile, err)
	}
	return nil
}
