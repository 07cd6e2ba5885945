package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/scoopctl/scoopctl/internal/domain"
)

// NewScoopMCPServer creates an MCP server with all scoopctl tools and
// resources registered, operating on the shop described by cfg.
func NewScoopMCPServer(cfg domain.ShopConfig) *server.MCPServer {
	s := server.NewMCPServer(
		"scoopctl",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, cfg)
	registerResources(s, cfg)

	return s
}
