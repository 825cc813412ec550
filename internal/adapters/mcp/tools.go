package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"toolsforwork/internal/adapters/memory"
	"toolsforwork/internal/application/commands"
	"toolsforwork/internal/config"
	"toolsforwork/internal/domain"
	"toolsforwork/internal/ports"
)

// ToolName returns the MCP tool name for a transformer, e.g. "update_enum"
func ToolName(t domain.Transformer) string {
	return "update_" + t.Name
}

// RegisterTransformTools adds one tool per transformer plus a catalog tool.
// Every call runs against its own recording host, so tool calls never share
// notifications or panels.
func RegisterTransformTools(s *server.MCPServer, launcher ports.Launcher, cfg config.Config, opts ...commands.Option) {
	for _, t := range domain.Transformers() {
		s.AddTool(transformTool(t), transformHandler(t, launcher, cfg, opts))
	}
	s.AddTool(listCommandsTool(), listCommandsHandler(cfg))
}

// --- update_<name> ---

func transformTool(t domain.Transformer) mcp.Tool {
	return mcp.NewTool(ToolName(t),
		mcp.WithDescription(fmt.Sprintf("Run the %s (%s) on a TypeScript file in place. Returns the notifications and output panels the command produced.", t.Title, t.Script)),
		mcp.WithString("path",
			mcp.Description("Path to the .ts or .tsx file to transform"),
			mcp.Required(),
		),
	)
}

func transformHandler(t domain.Transformer, launcher ports.Launcher, cfg config.Config, opts []commands.Option) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := strings.TrimSpace(req.GetString("path", ""))
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		host := memory.NewHost(path)
		cmd := commands.NewTransformCommand(host, launcher, cfg, t, opts...)
		result, err := cmd.Execute(ctx)

		transcript := strings.TrimSpace(host.Transcript())
		if err != nil {
			if transcript == "" {
				return toolError(err)
			}
			return mcp.NewToolResultError(transcript), nil
		}
		if transcript == "" {
			transcript = result.Message
		}
		return mcp.NewToolResultText(transcript), nil
	}
}

// --- list_commands ---

func listCommandsTool() mcp.Tool {
	return mcp.NewTool("list_commands",
		mcp.WithDescription("List the available transformations with their command IDs and script locations."),
	)
}

func listCommandsHandler(cfg config.Config) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, t := range domain.Transformers() {
			script := cfg.ScriptPath(t.Script)
			status := "ok"
			if _, err := os.Stat(script); err != nil {
				status = "missing"
			}
			fmt.Fprintf(&sb, "%s\t%s\t%s\t%s (%s)\n", ToolName(t), t.ID, t.Title, script, status)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
