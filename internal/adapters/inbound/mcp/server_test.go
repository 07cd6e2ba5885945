package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/scoopctl/scoopctl/internal/adapters/inbound/mcp"
	"github.com/scoopctl/scoopctl/internal/domain"
)

func testConfig(t *testing.T) domain.ShopConfig {
	cfg := domain.DefaultShopConfig()
	cfg.DataDir = t.TempDir()
	return cfg
}

func TestNewScoopMCPServer(t *testing.T) {
	s := mcpadapter.NewScoopMCPServer(testConfig(t))
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewScoopMCPServer(testConfig(t))
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"scoop_menu",
		"scoop_add_menu_item",
		"scoop_place_order",
		"scoop_list_orders",
		"scoop_order_details",
		"scoop_update_order_status",
		"scoop_customer_history",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
