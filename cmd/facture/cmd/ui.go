package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/AlecAivazis/survey/v2"

	"github.com/plouvier/facture/pkg/entity"
	"github.com/plouvier/facture/pkg/store"
)

var errNoInvoice = errors.New("No invoice already created found")

// askText prompts for one line of text, prefilled with initial when editing
// an existing record.
func askText(message, initial string) string {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Default: initial}, &out)
	exitOnError(err)
	return out
}

// askNumber prompts until the answer parses as a number.
func askNumber(message string) float64 {
	var out string
	err := survey.AskOne(&survey.Input{Message: message}, &out, survey.WithValidator(func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return errors.New("Invalid number")
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return errors.New("Invalid number")
		}
		return nil
	}))
	exitOnError(err)
	value, err := strconv.ParseFloat(out, 64)
	exitOnError(err)
	return value
}

// askSiren re-prompts until the answer is a valid SIREN.
func askSiren(initial string) entity.Siren {
	for {
		answer := askText("SIREN", initial)
		siren, err := entity.NewSiren(answer)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return siren
	}
}

func confirm(message string) bool {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message}, &out)
	exitOnError(err)
	return out
}

// askEditor opens $EDITOR on the given text and returns the edited result.
func askEditor(message, text string) string {
	var out string
	err := survey.AskOne(&survey.Editor{
		Message:       message,
		Default:       text,
		AppendDefault: true,
		HideDefault:   true,
	}, &out)
	exitOnError(err)
	return out
}

// selectFrom shows a filterable list and returns the chosen index.
func selectFrom(message string, items []string) int {
	var index int
	err := survey.AskOne(&survey.Select{Message: message, Options: items}, &index)
	exitOnError(err)
	return index
}

// sortedCustomerIDs keeps listings and selections in a stable order.
func sortedCustomerIDs(customers map[string]entity.Customer) []string {
	ids := make([]string, 0, len(customers))
	for id := range customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// selectCustomer lists all customers by name and returns the chosen id and
// record.
func selectCustomer(st *store.Store) (string, entity.Customer, error) {
	customers, err := st.AllCustomers()
	if err != nil {
		return "", entity.Customer{}, err
	}

	ids := sortedCustomerIDs(customers)

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = customers[id].Name
	}

	index := selectFrom("What is your customer?", names)
	return ids[index], customers[ids[index]], nil
}

// customerOrSelect resolves an optional positional customer id, falling
// back to an interactive selection.
func customerOrSelect(st *store.Store, args []string) (string, entity.Customer, error) {
	if len(args) > 0 {
		customers, err := st.AllCustomers()
		if err != nil {
			return "", entity.Customer{}, err
		}
		customer, ok := customers[args[0]]
		if !ok {
			return "", entity.Customer{}, fmt.Errorf("Customer %s not found", args[0])
		}
		return args[0], customer, nil
	}
	return selectCustomer(st)
}

// selectInvoice shows every stored invoice and returns the chosen one.
func selectInvoice(st *store.Store) (entity.Invoice, error) {
	invoices, err := st.AllInvoices()
	if err != nil {
		return entity.Invoice{}, err
	}
	if len(invoices) == 0 {
		return entity.Invoice{}, errNoInvoice
	}

	lines := make([]string, len(invoices))
	for i, inv := range invoices {
		lines[i] = inv.String()
	}

	index := selectFrom("What is your invoice?", lines)
	return invoices[index], nil
}

// invoiceOrSelect resolves an optional positional reference, falling back
// to an interactive selection.
func invoiceOrSelect(st *store.Store, args []string) (entity.Invoice, error) {
	if len(args) > 0 {
		return st.InvoiceByRef(args[0])
	}
	return selectInvoice(st)
}
