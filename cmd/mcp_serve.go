package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/protocollar/names/internal/jsonout"
	namesmcp "github.com/protocollar/names/internal/mcp"
)

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server on stdio",
	Args:  cobra.NoArgs,
	RunE:  runMCPServe,
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// stdout carries the MCP protocol.
	jsonout.SetMsgOut(io.Discard)

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	// Fail at startup rather than on the first tool call.
	if _, err := newGenerator(s, nil); err != nil {
		return err
	}

	srv := namesmcp.NewServer(Version)
	registerMCPTools(srv, s)
	logger.Debug("serving MCP on stdio", "config", s.Path)
	return namesmcp.Serve(srv)
}
