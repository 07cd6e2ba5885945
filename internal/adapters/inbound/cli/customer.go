package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scoopctl/scoopctl/internal/adapters/outbound/tui"
)

func newCustomerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage the customer registry",
	}
	cmd.AddCommand(newCustomerListCmd())
	cmd.AddCommand(newCustomerAddCmd())
	cmd.AddCommand(newCustomerShowCmd())
	return cmd
}

func newCustomerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCustomers(s.customers.Customers()))
			return nil
		},
	}
}

func newCustomerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add CUSTOMER_ID NAME",
		Short: "Register a new customer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cmd)
			if err != nil {
				return err
			}
			s.customers.AddCustomer(args[0], args[1])
			fmt.Fprintln(cmd.OutOrStdout(), "Customer added successfully!")
			return nil
		},
	}
}

func newCustomerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show CUSTOMER_ID",
		Short: "Show one customer and their order history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cmd)
			if err != nil {
				return err
			}

			customer, ok := s.customers.FindCustomer(args[0])
			if !ok {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderNotFound("Customer"))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCustomerDetails(customer))
			return nil
		},
	}
}
