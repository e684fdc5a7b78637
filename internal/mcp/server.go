package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

const instructions = `Generates random adjective-noun names such as "rusty-nail" or
"pushy-pencil-5602". Use generate_names to draw names and show_config to see the
configuration the server resolved at startup.`

// NewServer creates a new names MCP server.
func NewServer(version string) *server.MCPServer {
	return server.NewMCPServer(
		"names",
		version,
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
	)
}

// Serve starts the MCP server on stdio.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
