package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scoopctl/scoopctl/internal/adapters/outbound/tui"
)

func newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place and track orders",
	}
	cmd.AddCommand(newOrderPlaceCmd())
	cmd.AddCommand(newOrderListCmd())
	cmd.AddCommand(newOrderShowCmd())
	cmd.AddCommand(newOrderStatusCmd())
	return cmd
}

func newOrderPlaceCmd() *cobra.Command {
	var (
		customerName string
		itemSpecs    []string
	)

	cmd := &cobra.Command{
		Use:   "place CUSTOMER_ID",
		Short: "Place a new order",
		Long:  "Create an order for a customer (registering the customer on first reference), add the given items, and place it. Item ids are not checked against the menu; unknown ids price at zero.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID := args[0]

			s, err := openShop(cmd)
			if err != nil {
				return err
			}

			if _, ok := s.customers.FindCustomer(customerID); !ok {
				name := customerName
				if name == "" {
					name = customerID
				}
				s.customers.AddCustomer(customerID, name)
				fmt.Fprintf(cmd.OutOrStdout(), "New customer created: %s\n", name)
			}

			order := s.orders.CreateOrder(customerID)
			for _, spec := range itemSpecs {
				itemID, quantity, err := parseItemSpec(spec)
				if err != nil {
					return err
				}
				order.AddItem(itemID, quantity)
			}

			if len(order.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No items in order. Order cancelled.")
				return nil
			}

			if !s.orders.PlaceOrder(order) {
				return fmt.Errorf("placing order %s failed", order.OrderID)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReceipt(order, s.cfg.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&customerName, "name", "", "Customer name (used when the customer is new)")
	cmd.Flags().StringArrayVar(&itemSpecs, "item", nil, "Item to add, as ID or ID:QTY (repeatable)")

	return cmd
}

// parseItemSpec parses "F01" or "F01:2" into an item id and quantity.
func parseItemSpec(spec string) (string, int, error) {
	itemID, qty, found := strings.Cut(spec, ":")
	if itemID == "" {
		return "", 0, fmt.Errorf("invalid item spec %q", spec)
	}
	if !found {
		return itemID, 1, nil
	}
	quantity, err := strconv.Atoi(qty)
	if err != nil || quantity <= 0 {
		return "", 0, fmt.Errorf("invalid quantity in item spec %q", spec)
	}
	return itemID, quantity, nil
}

func newOrderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrderList(s.orders.Orders(), s.cfg.Currency))
			return nil
		},
	}
}

func newOrderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ORDER_ID",
		Short: "Show the details of one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cmd)
			if err != nil {
				return err
			}

			details, ok := s.orders.OrderDetails(args[0])
			if !ok {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderNotFound("Order"))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrderDetails(details, s.cfg.Currency))
			return nil
		},
	}
}

func newOrderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status ORDER_ID STATUS",
		Short: "Update an order's status",
		Long:  "Set an order's status. The usual lifecycle is pending, preparing, ready, completed, but any value is accepted.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cmd)
			if err != nil {
				return err
			}

			orderID, status := args[0], args[1]
			if !s.orders.UpdateStatus(orderID, status) {
				return fmt.Errorf("order %s not found", orderID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", orderID, status)
			return nil
		},
	}
}
