// Package terminal implements the host surface for line-oriented command
// line use. Notifications and progress go to the error stream; output
// panels are printed to the output stream when shown.
package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"toolsforwork/internal/adapters/tui/styles"
	"toolsforwork/internal/logging"
	"toolsforwork/internal/ports"
)

// Host implements ports.Host on a pair of writers
type Host struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	doc    *Document
	panels map[string]*Panel
	plain  bool
}

// Option configures the Host
type Option func(*Host)

// WithPlainText disables ANSI styling
func WithPlainText() Option {
	return func(h *Host) {
		h.plain = true
	}
}

// NewHost creates a host whose active document is path.
// An empty path means no editor is active.
func NewHost(path string, out, errOut io.Writer, opts ...Option) *Host {
	h := &Host{
		out:    out,
		errOut: errOut,
		panels: make(map[string]*Panel),
	}
	if path != "" {
		h.doc = &Document{path: path, logger: logging.New("terminal")}
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) render(style lipgloss.Style, s string) string {
	if h.plain {
		return s
	}
	return style.Render(s)
}

// ActiveDocument implements ports.Workspace
func (h *Host) ActiveDocument() (ports.Document, bool) {
	if h.doc == nil {
		return nil, false
	}
	return h.doc, true
}

// Notify implements ports.Notifier
func (h *Host) Notify(n ports.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	label := strings.ToUpper(n.Severity.String())
	prefix := h.render(styles.ForSeverity(n.Severity), label)
	if n.Source != "" {
		fmt.Fprintf(h.errOut, "%s %s: %s\n", prefix, n.Source, n.Message)
		return
	}
	fmt.Fprintf(h.errOut, "%s %s\n", prefix, n.Message)
}

// WithProgress implements ports.ProgressReporter. A terminal has no
// indeterminate indicator, so the title is printed when the task starts.
func (h *Host) WithProgress(ctx context.Context, opts ports.ProgressOptions, task func(ctx context.Context) error) error {
	h.mu.Lock()
	fmt.Fprintln(h.errOut, h.render(styles.MutedText, opts.Title))
	h.mu.Unlock()
	return task(ctx)
}

// OutputPanel implements ports.OutputPanels
func (h *Host) OutputPanel(name string) ports.OutputPanel {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.panels[name]
	if !ok {
		p = &Panel{name: name, host: h}
		h.panels[name] = p
	}
	return p
}

// Document is a file on disk. Reverting re-reads it so the caller learns
// about unreadable results right away.
type Document struct {
	path   string
	logger *slog.Logger
}

// Path implements ports.Document
func (d *Document) Path() string {
	return d.path
}

// Revert implements ports.Document
func (d *Document) Revert(ctx context.Context) error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.path, err)
	}
	d.logger.DebugContext(ctx, "document reloaded", slog.String("path", d.path), slog.Int("bytes", len(data)))
	return nil
}

// Panel buffers lines until Show prints them
type Panel struct {
	mu    sync.Mutex
	name  string
	host  *Host
	lines []string
}

// Clear implements ports.OutputPanel
func (p *Panel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = nil
}

// AppendLine implements ports.OutputPanel
func (p *Panel) AppendLine(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = append(p.lines, line)
}

// Show implements ports.OutputPanel
func (p *Panel) Show() {
	p.mu.Lock()
	lines := append([]string(nil), p.lines...)
	p.mu.Unlock()

	h := p.host
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintln(h.out, h.render(styles.PanelTitle, "── "+p.name+" ──"))
	for _, line := range lines {
		fmt.Fprintln(h.out, strings.TrimRight(line, "\n"))
	}
}
