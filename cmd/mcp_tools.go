package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/protocollar/names/internal/config"
	"github.com/protocollar/names/pkg/names"
)

// maxMCPAmount bounds generate_names so one call cannot flood the client.
const maxMCPAmount = 1000

// mcpResult marshals v as JSON and returns it as MCP text content.
func mcpResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
	}, nil
}

// mcpError returns an MCP error result.
func mcpError(msg string) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(msg)},
		IsError: true,
	}, nil
}

// registerMCPTools adds the tools to s. base is the configuration resolved
// at startup; every call builds its own generator from a copy of it.
func registerMCPTools(s *server.MCPServer, base *config.Settings) {
	s.AddTool(
		mcp.NewTool("generate_names",
			mcp.WithDescription("Generate random adjective-noun names such as \"rusty-nail\"."),
			mcp.WithNumber("amount", mcp.Description(fmt.Sprintf("How many names to generate (1-%d, default 1)", maxMCPAmount))),
			mcp.WithNumber("number", mcp.Description(fmt.Sprintf("Append a zero-padded number with this many digits (1-%d)", names.MaxDigits))),
			mcp.WithString("casing", mcp.Description("Casing: lowercase, uppercase, capitalize, capitalize-first, capitalize-last, snake, screaming-snake, camel, pascal, kebab, screaming-kebab")),
			mcp.WithString("separator", mcp.Description("Word separator for casings that take one; \"none\" for no separator")),
			mcp.WithNumber("truncate", mcp.Description("Cut names to at most this many characters")),
			mcp.WithNumber("reroll", mcp.Description("Regenerate until a name has exactly this many characters")),
			mcp.WithNumber("seed", mcp.Description("Seed for a reproducible sequence")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGenerateNames(base),
	)

	s.AddTool(
		mcp.NewTool("show_config",
			mcp.WithDescription("Show the resolved naming, casing and length configuration and word-list sizes."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleShowConfig(base),
	)
}

func handleGenerateNames(base *config.Settings) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		amount := req.GetInt("amount", 1)
		if amount < 1 || amount > maxMCPAmount {
			return mcpError(fmt.Sprintf("amount must be between 1 and %d, got %d", maxMCPAmount, amount))
		}

		_, hasTruncate := args["truncate"]
		_, hasReroll := args["reroll"]
		if hasTruncate && hasReroll {
			return mcpError("truncate and reroll cannot be used together")
		}

		ov := config.Overrides{
			Casing: req.GetString("casing", ""),
			Number: req.GetInt("number", 0),
		}
		if _, ok := args["separator"]; ok {
			sep := config.ParseSeparator(req.GetString("separator", ""))
			ov.Separator = &sep
		}
		if hasTruncate {
			l := names.TruncateTo(req.GetInt("truncate", 0))
			ov.Length = &l
		}
		if hasReroll {
			l := names.RerollTo(req.GetInt("reroll", 0))
			ov.Length = &l
		}

		var src names.Source
		if _, ok := args["seed"]; ok {
			seed := req.GetInt("seed", 0)
			if seed < 0 {
				return mcpError(fmt.Sprintf("seed must not be negative, got %d", seed))
			}
			src = names.NewSeededSource(uint64(seed))
		}

		s := *base
		if err := s.Apply(ov); err != nil {
			return mcpError(err.Error())
		}
		g, err := newGenerator(&s, src)
		if err != nil {
			return mcpError(err.Error())
		}

		result := generateResult{
			Names:  make([]string, 0, amount),
			Naming: g.Naming(),
			Casing: g.Casing(),
			Length: g.Length(),
		}
		for range amount {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			name, err := generateOne(g)
			if err != nil {
				return mcpError(err.Error())
			}
			result.Names = append(result.Names, name)
		}
		return mcpResult(result)
	}
}

func handleShowConfig(base *config.Settings) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		g, err := newGenerator(base, nil)
		if err != nil {
			return mcpError(err.Error())
		}
		return mcpResult(newConfigView(base, g))
	}
}
