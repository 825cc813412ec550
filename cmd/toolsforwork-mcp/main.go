package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "toolsforwork/internal/adapters/mcp"
	"toolsforwork/internal/adapters/process"
	"toolsforwork/internal/config"
	"toolsforwork/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("toolsforwork-mcp: %v", err)
	}

	rootFlag := flag.String("root", cfg.Root, "installation root containing the transformer scripts")
	flag.Parse()

	if cfg, err = cfg.WithRoot(*rootFlag); err != nil {
		log.Fatalf("toolsforwork-mcp: %v", err)
	}

	// stdout carries the protocol, so logs go to stderr or the log file
	logOut, closeLog, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		log.Fatalf("toolsforwork-mcp: %v", err)
	}
	defer closeLog()
	if cfg.LogFile == "" {
		logOut = os.Stderr
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("toolsforwork-mcp: %v", err)
	}
	logging.Init(level, cfg.LogFormat, logOut)

	launcher := process.NewLauncher(process.WithLogger(logging.New("launcher")))

	mcpServer := server.NewMCPServer(
		"toolsforwork-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTransformTools(mcpServer, launcher, cfg)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("toolsforwork-mcp: %v", err)
	}
}
