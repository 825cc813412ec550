package tui

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"toolsforwork/internal/ports"
)

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// NotificationMsg carries a notification to the status line
type NotificationMsg struct {
	Notification ports.Notification
}

// ProgressStartedMsg opens a progress indicator
type ProgressStartedMsg struct {
	ID    int
	Title string
}

// ProgressDoneMsg closes the progress indicator with the same ID
type ProgressDoneMsg struct {
	ID int
}

// PanelShownMsg brings an output panel into focus
type PanelShownMsg struct {
	Name  string
	Lines []string
}

// DocumentLoadedMsg replaces the document view with fresh file content
type DocumentLoadedMsg struct {
	Path    string
	Content string
}

// Host implements ports.Host for the TUI. Commands run on a tea.Cmd
// goroutine and every host call is forwarded to the program as a message.
type Host struct {
	mu     sync.Mutex
	sender Sender
	doc    *Document
	panels map[string]*Panel
	nextID int
}

// NewHost creates a host for the file at path. An empty path means no
// document is open.
func NewHost(path string) *Host {
	h := &Host{panels: make(map[string]*Panel)}
	if path != "" {
		h.doc = &Document{path: path, host: h}
	}
	return h
}

// SetSender connects the host to a program. Messages sent before this are
// dropped.
func (h *Host) SetSender(s Sender) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sender = s
}

func (h *Host) send(msg tea.Msg) {
	h.mu.Lock()
	s := h.sender
	h.mu.Unlock()
	if s != nil {
		s.Send(msg)
	}
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
	h.send(NotificationMsg{Notification: n})
}

// WithProgress implements ports.ProgressReporter. The indicator is closed
// only after task returns.
func (h *Host) WithProgress(ctx context.Context, opts ports.ProgressOptions, task func(ctx context.Context) error) error {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.mu.Unlock()

	h.send(ProgressStartedMsg{ID: id, Title: opts.Title})
	defer h.send(ProgressDoneMsg{ID: id})
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

// Document is the file shown in the TUI
type Document struct {
	path string
	host *Host
}

// Path implements ports.Document
func (d *Document) Path() string {
	return d.path
}

// Revert implements ports.Document by re-reading the file and pushing the
// content to the document view
func (d *Document) Revert(ctx context.Context) error {
	content, err := LoadDocument(d.path)
	if err != nil {
		return err
	}
	d.host.send(DocumentLoadedMsg{Path: d.path, Content: content})
	return nil
}

// LoadDocument reads a file for display
func LoadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Panel buffers lines and publishes a snapshot on Show
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
	p.host.send(PanelShownMsg{Name: p.name, Lines: lines})
}
