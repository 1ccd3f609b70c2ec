package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plouvier/facture/pkg/entity"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		customer := promptCustomer(entity.Customer{})

		created, err := st.CreateCustomer(customer)
		exitOnError(err)

		fmt.Printf("Customer %s created\n", created.Name)
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every customer",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		customers, err := st.AllCustomers()
		exitOnError(err)

		fmt.Printf("Get %d customer%s\n\n", len(customers), plural(len(customers)))
		for _, id := range sortedCustomerIDs(customers) {
			fmt.Println(customers[id].Name)
		}
	},
}

var customerGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one customer",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		_, customer, err := customerOrSelect(st, args)
		exitOnError(err)

		fmt.Printf("Your customer : %s\n\n", customer.Name)
		fmt.Printf("Address : \n%s\n%s %s\n", customer.Address, customer.Postal, customer.City)
	},
}

var customerEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a customer, keeping its id",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		id, current, err := customerOrSelect(st, args)
		exitOnError(err)

		edited, err := st.EditCustomer(id, promptCustomer(current))
		exitOnError(err)

		fmt.Printf("Customer %s edited\n", edited.Name)
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a customer",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		id, _, err := customerOrSelect(st, args)
		exitOnError(err)

		exitOnError(st.RemoveCustomer(id))
		fmt.Printf("Customer %s deleted\n", id)
	},
}

func init() {
	customerCmd.AddCommand(customerCreateCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerGetCmd)
	customerCmd.AddCommand(customerEditCmd)
	customerCmd.AddCommand(customerDeleteCmd)
}

// promptCustomer asks the full customer record, prefilled from base when
// editing.
func promptCustomer(base entity.Customer) entity.Customer {
	return entity.Customer{
		Name:    askText("Enterprise name", base.Name),
		Address: askText("Address", base.Address),
		City:    askText("City", base.City),
		Postal:  askText("Postal code", base.Postal),
	}
}
