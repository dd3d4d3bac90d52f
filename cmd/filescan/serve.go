package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/filescan/internal/pathfilter"
	"github.com/taigrr/filescan/internal/scanner"
)

var (
	scanService *scanner.Service
	pathFilter  *pathfilter.PathFilter
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve scan and conversion tools over MCP on stdio",
		Long: `serve runs a Model Context Protocol (MCP) server on stdin/stdout that
exposes the scan, ini_to_json and extensions tools to any MCP-compatible
client.`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	// Initialize services
	scanService, pathFilter = newScanner(nil)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "filescan",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
