package cmd

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server for AI agent integration",
	Long: `MCP server for AI agent integration.

names includes a built-in Model Context Protocol (MCP) server that lets AI
agents generate names programmatically.

SETUP

  Manual .mcp.json:

    {
      "mcpServers": {
        "names": {
          "command": "names",
          "args": ["mcp", "serve"]
        }
      }
    }

AVAILABLE TOOLS

  generate_names   Generate names (amount, number, casing, separator,
                   truncate, reroll, seed)
  show_config      Show the configuration the server resolved at startup

The server resolves its configuration once at startup from config files, the
environment and any generator flags passed to "names mcp serve". Tool
arguments override it per call.`,
}
