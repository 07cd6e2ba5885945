package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/scoopctl/scoopctl/internal/adapters/inbound/mcp"
	"github.com/scoopctl/scoopctl/internal/adapters/outbound/config"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the scoopctl MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scoopctl MCP server (stdio)",
		Long:  "Start the scoopctl MCP server using stdio transport. This lets AI assistants browse the menu, place orders, and track order status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if dataDir, _ := cmd.Flags().GetString("data"); dataDir != "" {
				cfg.DataDir = dataDir
			}

			s := mcpadapter.NewScoopMCPServer(cfg)
			return server.ServeStdio(s)
		},
	}
}
