// Package memory provides a host that records every interaction instead of
// rendering it. The MCP server turns the record into a tool result; tests
// assert on it.
package memory

import (
	"context"
	"strings"
	"sync"

	"toolsforwork/internal/ports"
)

// Host implements ports.Host by recording notifications, progress scopes,
// panel output and reload requests
type Host struct {
	mu sync.Mutex

	doc *Document

	notifications []ports.Notification
	progress      []ports.ProgressOptions
	activeTasks   int
	panels        map[string]*Panel
	shown         []string
}

// NewHost creates a host whose active document is path.
// An empty path means no editor is active.
func NewHost(path string) *Host {
	h := &Host{panels: make(map[string]*Panel)}
	if path != "" {
		h.doc = &Document{path: path}
	}
	return h
}

// ActiveDocument implements ports.Workspace
func (h *Host) ActiveDocument() (ports.Document, bool) {
	if h.doc == nil {
		return nil, false
	}
	return h.doc, true
}

// Document returns the recorded document, or nil if no editor is active
func (h *Host) Document() *Document {
	return h.doc
}

// Notify implements ports.Notifier
func (h *Host) Notify(n ports.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notifications = append(h.notifications, n)
}

// WithProgress implements ports.ProgressReporter
func (h *Host) WithProgress(ctx context.Context, opts ports.ProgressOptions, task func(ctx context.Context) error) error {
	h.mu.Lock()
	h.progress = append(h.progress, opts)
	h.activeTasks++
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.activeTasks--
		h.mu.Unlock()
	}()
	return task(ctx)
}

// ProgressActive reports whether a progress scope is currently open
func (h *Host) ProgressActive() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeTasks > 0
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

// Notifications returns a copy of every notification in order
func (h *Host) Notifications() []ports.Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ports.Notification(nil), h.notifications...)
}

// NotificationsOf returns the notifications with the given severity
func (h *Host) NotificationsOf(sev ports.Severity) []ports.Notification {
	var out []ports.Notification
	for _, n := range h.Notifications() {
		if n.Severity == sev {
			out = append(out, n)
		}
	}
	return out
}

// Progress returns the options of every progress scope opened
func (h *Host) Progress() []ports.ProgressOptions {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ports.ProgressOptions(nil), h.progress...)
}

// Panel returns the named panel if it was ever requested
func (h *Host) Panel(name string) (*Panel, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.panels[name]
	return p, ok
}

// ShownPanels returns the names of panels in the order Show was called
func (h *Host) ShownPanels() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.shown...)
}

// Transcript renders notifications and shown panels as plain text
func (h *Host) Transcript() string {
	var b strings.Builder
	for _, n := range h.Notifications() {
		b.WriteString("[")
		b.WriteString(n.Severity.String())
		b.WriteString("] ")
		if n.Source != "" {
			b.WriteString(n.Source)
			b.WriteString(": ")
		}
		b.WriteString(n.Message)
		b.WriteString("\n")
	}
	for _, name := range h.ShownPanels() {
		p, _ := h.Panel(name)
		b.WriteString("\n== ")
		b.WriteString(name)
		b.WriteString(" ==\n")
		for _, line := range p.Lines() {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if h.doc != nil && h.doc.Reverts() > 0 {
		b.WriteString("\nreloaded ")
		b.WriteString(h.doc.path)
		b.WriteString("\n")
	}
	return b.String()
}

// Document records reload requests
type Document struct {
	mu      sync.Mutex
	path    string
	reverts int
	err     error
}

// Path implements ports.Document
func (d *Document) Path() string {
	return d.path
}

// Revert implements ports.Document
func (d *Document) Revert(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reverts++
	return d.err
}

// FailRevert makes subsequent Revert calls return err
func (d *Document) FailRevert(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

// Reverts returns how many times a reload was requested
func (d *Document) Reverts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reverts
}

// Panel records the lines written to a named output panel
type Panel struct {
	mu     sync.Mutex
	name   string
	host   *Host
	lines  []string
	clears int
}

// Clear implements ports.OutputPanel
func (p *Panel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = nil
	p.clears++
}

// AppendLine implements ports.OutputPanel
func (p *Panel) AppendLine(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = append(p.lines, line)
}

// Show implements ports.OutputPanel
func (p *Panel) Show() {
	p.host.mu.Lock()
	defer p.host.mu.Unlock()
	p.host.shown = append(p.host.shown, p.name)
}

// Lines returns the current panel content
func (p *Panel) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...)
}

// Clears returns how many times the panel was cleared
func (p *Panel) Clears() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clears
}
