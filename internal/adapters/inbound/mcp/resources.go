package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/scoopctl/scoopctl/internal/domain"
)

// registerResources registers all scoopctl MCP resources on the given
// server.
func registerResources(s *server.MCPServer, cfg domain.ShopConfig) {
	// 1. scoopctl://menu - the catalog
	s.AddResource(
		mcplib.NewResource(
			"scoopctl://menu",
			"Menu",
			mcplib.WithResourceDescription("The menu catalog in insertion order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleMenuResource(cfg),
	)

	// 2. scoopctl://orders - all orders
	s.AddResource(
		mcplib.NewResource(
			"scoopctl://orders",
			"Orders",
			mcplib.WithResourceDescription("All orders in insertion order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleOrdersResource(cfg),
	)

	// 3. scoopctl://customers - the registry
	s.AddResource(
		mcplib.NewResource(
			"scoopctl://customers",
			"Customers",
			mcplib.WithResourceDescription("The customer registry with order histories"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCustomersResource(cfg),
	)

	// 4. scoopctl://orders/{id} - one order's resolved details
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"scoopctl://orders/{id}",
			"Order Details",
			mcplib.WithTemplateDescription("Resolved details of a specific order"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleOrderResource(cfg),
	)
}

func handleMenuResource(cfg domain.ShopConfig) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		menu, _, _ := newServices(cfg)
		return jsonResource("scoopctl://menu", menu.Items())
	}
}

func handleOrdersResource(cfg domain.ShopConfig) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, _, orders := newServices(cfg)
		return jsonResource("scoopctl://orders", orders.Orders())
	}
}

func handleCustomersResource(cfg domain.ShopConfig) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, customers, _ := newServices(cfg)
		return jsonResource("scoopctl://customers", customers.Customers())
	}
}

func handleOrderResource(cfg domain.ShopConfig) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		orderID, ok := request.Params.Arguments["id"].(string)
		if !ok || orderID == "" {
			return nil, fmt.Errorf("order id is required")
		}

		_, _, orders := newServices(cfg)
		details, found := orders.OrderDetails(orderID)
		if !found {
			return nil, fmt.Errorf("order %s not found", orderID)
		}
		return jsonResource(request.Params.URI, details)
	}
}

// jsonResource marshals v and wraps it as a single JSON resource.
func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
