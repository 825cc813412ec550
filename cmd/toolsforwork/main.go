package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"toolsforwork/internal/adapters/editor"
	"toolsforwork/internal/adapters/process"
	"toolsforwork/internal/adapters/tui"
	"toolsforwork/internal/application/commands"
	"toolsforwork/internal/config"
	"toolsforwork/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootFlag := flag.String("root", cfg.Root, "installation root containing the transformer scripts")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: toolsforwork [--root dir] <file.ts|file.tsx>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if cfg, err = cfg.WithRoot(*rootFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs never go to the terminal while the UI owns it
	logOut, closeLog, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Init(level, cfg.LogFormat, logOut)

	// Initialize adapters
	host := tui.NewHost(flag.Arg(0))
	launcher := process.NewLauncher(process.WithLogger(logging.New("launcher")))
	registry := commands.NewRegistry(host, launcher, cfg)

	// Create and run TUI app
	app := tui.NewApp(registry, flag.Arg(0), tui.WithEditor(editor.NewOpener()))

	p := tea.NewProgram(app, tea.WithAltScreen())
	host.SetSender(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
