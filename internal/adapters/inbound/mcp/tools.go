package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/scoopctl/scoopctl/internal/adapters/outbound/blobstore"
	"github.com/scoopctl/scoopctl/internal/application"
	"github.com/scoopctl/scoopctl/internal/domain"
)

// registerTools registers all scoopctl MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.ShopConfig) {
	// 1. scoop_menu
	s.AddTool(
		mcplib.NewTool("scoop_menu",
			mcplib.WithDescription("Returns the full menu catalog as JSON"),
		),
		handleMenu(cfg),
	)

	// 2. scoop_add_menu_item
	s.AddTool(
		mcplib.NewTool("scoop_add_menu_item",
			mcplib.WithDescription("Add a new item to the menu catalog"),
			mcplib.WithString("item_id",
				mcplib.Required(),
				mcplib.Description("Item id (e.g. F04)"),
			),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Item name"),
			),
			mcplib.WithNumber("price",
				mcplib.Required(),
				mcplib.Description("Unit price"),
			),
			mcplib.WithString("category",
				mcplib.Required(),
				mcplib.Description("Category: flavor, topping, or container"),
			),
		),
		handleAddMenuItem(cfg),
	)

	// 3. scoop_place_order
	s.AddTool(
		mcplib.NewTool("scoop_place_order",
			mcplib.WithDescription("Place an order for a customer, creating the customer on first reference. Item ids are not validated; unknown ids price at zero."),
			mcplib.WithString("customer_id",
				mcplib.Required(),
				mcplib.Description("Customer id"),
			),
			mcplib.WithString("customer_name",
				mcplib.Description("Customer name, used when the customer is new"),
			),
			mcplib.WithString("items",
				mcplib.Required(),
				mcplib.Description("Comma-separated items as ID or ID:QTY (e.g. \"F01:2,C01\")"),
			),
		),
		handlePlaceOrder(cfg),
	)

	// 4. scoop_list_orders
	s.AddTool(
		mcplib.NewTool("scoop_list_orders",
			mcplib.WithDescription("Returns all orders as JSON, in insertion order"),
		),
		handleListOrders(cfg),
	)

	// 5. scoop_order_details
	s.AddTool(
		mcplib.NewTool("scoop_order_details",
			mcplib.WithDescription("Returns the resolved details of one order (customer name, priced lines)"),
			mcplib.WithString("order_id",
				mcplib.Required(),
				mcplib.Description("Order id"),
			),
		),
		handleOrderDetails(cfg),
	)

	// 6. scoop_update_order_status
	s.AddTool(
		mcplib.NewTool("scoop_update_order_status",
			mcplib.WithDescription("Update an order's status. Usual lifecycle: pending, preparing, ready, completed; any value is accepted."),
			mcplib.WithString("order_id",
				mcplib.Required(),
				mcplib.Description("Order id"),
			),
			mcplib.WithString("status",
				mcplib.Required(),
				mcplib.Description("New status"),
			),
		),
		handleUpdateOrderStatus(cfg),
	)

	// 7. scoop_customer_history
	s.AddTool(
		mcplib.NewTool("scoop_customer_history",
			mcplib.WithDescription("Returns one customer and their order history"),
			mcplib.WithString("customer_id",
				mcplib.Required(),
				mcplib.Description("Customer id"),
			),
		),
		handleCustomerHistory(cfg),
	)
}

// newServices wires fresh services onto the configured data directory so
// every call sees the current documents.
func newServices(cfg domain.ShopConfig) (*application.MenuService, *application.CustomerService, *application.OrderService) {
	store := blobstore.New(cfg.DataDir)
	menu := application.NewMenuService(store, nil)
	customers := application.NewCustomerService(store, nil)
	orders := application.NewOrderService(store, menu, customers,
		application.WithIDScheme(cfg.IDScheme))
	return menu, customers, orders
}

func handleMenu(cfg domain.ShopConfig) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		menu, _, _ := newServices(cfg)
		return jsonResult(menu.Items())
	}
}

func handleAddMenuItem(cfg domain.ShopConfig) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		itemID, err := request.RequireString("item_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		price, err := request.RequireFloat("price")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		category, err := request.RequireString("category")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		menu, _, _ := newServices(cfg)
		if !menu.AddItem(itemID, name, price, domain.Category(category)) {
			return errorResult("saving menu failed"), nil
		}
		item, _ := menu.FindItem(itemID)
		return jsonResult(item)
	}
}

func handlePlaceOrder(cfg domain.ShopConfig) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		customerID, err := request.RequireString("customer_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		itemsArg, err := request.RequireString("items")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		customerName := request.GetString("customer_name", customerID)

		lines, err := parseItems(itemsArg)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if len(lines) == 0 {
			return errorResult("no items in order"), nil
		}

		_, customers, orders := newServices(cfg)
		if _, ok := customers.FindCustomer(customerID); !ok {
			customers.AddCustomer(customerID, customerName)
		}

		order := orders.CreateOrder(customerID)
		for _, line := range lines {
			order.AddItem(line.ItemID, line.Quantity)
		}
		if !orders.PlaceOrder(order) {
			return errorResult(fmt.Sprintf("placing order %s failed", order.OrderID)), nil
		}
		return jsonResult(order)
	}
}

func handleListOrders(cfg domain.ShopConfig) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, _, orders := newServices(cfg)
		return jsonResult(orders.Orders())
	}
}

func handleOrderDetails(cfg domain.ShopConfig) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		orderID, err := request.RequireString("order_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, _, orders := newServices(cfg)
		details, ok := orders.OrderDetails(orderID)
		if !ok {
			return errorResult(fmt.Sprintf("order %s not found", orderID)), nil
		}
		return jsonResult(details)
	}
}

func handleUpdateOrderStatus(cfg domain.ShopConfig) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		orderID, err := request.RequireString("order_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		status, err := request.RequireString("status")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, _, orders := newServices(cfg)
		if !orders.UpdateStatus(orderID, status) {
			return errorResult(fmt.Sprintf("order %s not found", orderID)), nil
		}
		order, _ := orders.FindOrder(orderID)
		return jsonResult(order)
	}
}

func handleCustomerHistory(cfg domain.ShopConfig) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		customerID, err := request.RequireString("customer_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, customers, _ := newServices(cfg)
		customer, ok := customers.FindCustomer(customerID)
		if !ok {
			return errorResult(fmt.Sprintf("customer %s not found", customerID)), nil
		}
		return jsonResult(customer)
	}
}

// parseItems parses a comma-separated list of ID or ID:QTY specs.
func parseItems(arg string) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine
	for _, spec := range strings.Split(arg, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		itemID, qty, found := strings.Cut(spec, ":")
		if itemID == "" {
			return nil, fmt.Errorf("invalid item spec %q", spec)
		}
		quantity := 1
		if found {
			q, err := strconv.Atoi(qty)
			if err != nil || q <= 0 {
				return nil, fmt.Errorf("invalid quantity in item spec %q", spec)
			}
			quantity = q
		}
		lines = append(lines, domain.OrderLine{ItemID: itemID, Quantity: quantity})
	}
	return lines, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a text result flagged as an error.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
