package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"toolsforwork/internal/adapters/tui/styles"
	"toolsforwork/internal/adapters/tui/views"
	"toolsforwork/internal/domain"
	"toolsforwork/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDocument ViewState = iota
	ViewPanel
	ViewHelp
)

// Invoker runs a registered command. *commands.Registry satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, id domain.CommandID)
}

// App is the main TUI application model
type App struct {
	commands Invoker
	editor   ports.EditorOpener
	copy     func(string) error

	path     string
	state    ViewState
	document *views.DocumentModel
	panel    *views.PanelModel
	help     *views.HelpModel
	spinner  spinner.Model
	running  map[int]string
	status   *ports.Notification

	width  int
	height int
}

// Option configures an App
type Option func(*App)

// WithEditor enables opening the document in an external editor
func WithEditor(ed ports.EditorOpener) Option {
	return func(a *App) {
		a.editor = ed
	}
}

// WithClipboard replaces the clipboard writer
func WithClipboard(write func(string) error) Option {
	return func(a *App) {
		a.copy = write
	}
}

// NewApp creates a new TUI application for the document at path
func NewApp(commands Invoker, path string, opts ...Option) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	a := &App{
		commands: commands,
		copy:     clipboard.WriteAll,
		path:     path,
		state:    ViewDocument,
		document: views.NewDocumentModel(path),
		panel:    views.NewPanelModel(),
		help:     views.NewHelpModel(),
		spinner:  sp,
		running:  make(map[int]string),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init loads the document
func (a *App) Init() tea.Cmd {
	return a.load()
}

type commandDoneMsg struct {
	id domain.CommandID
}

type documentErrMsg struct {
	err error
}

type editorFinishedMsg struct {
	err error
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.document.SetSize(msg.Width, msg.Height)
		a.panel.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// Host messages
	case NotificationMsg:
		n := msg.Notification
		a.status = &n
		return a, nil

	case ProgressStartedMsg:
		a.running[msg.ID] = msg.Title
		if len(a.running) == 1 {
			return a, a.spinner.Tick
		}
		return a, nil

	case ProgressDoneMsg:
		delete(a.running, msg.ID)
		return a, nil

	case PanelShownMsg:
		a.panel.SetPanel(msg.Name, msg.Lines)
		a.state = ViewPanel
		return a, nil

	case DocumentLoadedMsg:
		if msg.Path == a.path {
			a.document.SetContent(msg.Content)
		}
		return a, nil

	case documentErrMsg:
		a.setStatus(ports.SeverityError, msg.err.Error())
		return a, nil

	case commandDoneMsg:
		return a, nil

	case editorFinishedMsg:
		if msg.err != nil {
			a.setStatus(ports.SeverityError, msg.err.Error())
		}
		return a, a.load()

	case spinner.TickMsg:
		if len(a.running) == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case views.CloseHelpMsg:
		a.state = ViewDocument
		return a, nil

	case tea.KeyMsg:
		if a.state != ViewHelp {
			if cmd, handled := a.handleKey(msg); handled {
				return a, cmd
			}
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDocument:
		_, cmd = a.document.Update(msg)
	case ViewPanel:
		_, cmd = a.panel.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, Keys.Help):
		a.state = ViewHelp
		return nil, true
	case key.Matches(msg, Keys.Enum):
		return a.invoke(domain.CommandUpdateEnum), true
	case key.Matches(msg, Keys.Import):
		return a.invoke(domain.CommandUpdateImport), true
	case key.Matches(msg, Keys.Panel):
		if a.state == ViewPanel {
			a.state = ViewDocument
		} else if !a.panel.Empty() {
			a.state = ViewPanel
		}
		return nil, true
	case key.Matches(msg, Keys.Copy):
		a.copyPanel()
		return nil, true
	case key.Matches(msg, Keys.Edit):
		return a.openEditor(), true
	case key.Matches(msg, Keys.Reload):
		return a.load(), true
	}
	return nil, false
}

// invoke runs the command off the update loop. The host forwards every
// notification and panel back as messages.
func (a *App) invoke(id domain.CommandID) tea.Cmd {
	commands := a.commands
	return func() tea.Msg {
		commands.Invoke(context.Background(), id)
		return commandDoneMsg{id: id}
	}
}

func (a *App) load() tea.Cmd {
	path := a.path
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		content, err := LoadDocument(path)
		if err != nil {
			return documentErrMsg{err: err}
		}
		return DocumentLoadedMsg{Path: path, Content: content}
	}
}

func (a *App) copyPanel() {
	if a.panel.Empty() {
		a.setStatus(ports.SeverityWarning, "No output to copy")
		return
	}
	if err := a.copy(a.panel.Text()); err != nil {
		a.setStatus(ports.SeverityError, fmt.Sprintf("Copy failed: %v", err))
		return
	}
	a.setStatus(ports.SeverityInfo, "Copied "+a.panel.Name+" to clipboard")
}

func (a *App) openEditor() tea.Cmd {
	if a.editor == nil || a.path == "" {
		return nil
	}

	cmd, err := a.editor.Command(a.path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) setStatus(sev ports.Severity, message string) {
	a.status = &ports.Notification{Severity: sev, Source: "toolsforwork", Message: message}
}

// Busy reports whether a transformation is in progress
func (a *App) Busy() bool {
	return len(a.running) > 0
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("toolsforwork"))
	if a.path != "" {
		b.WriteString(" ")
		b.WriteString(styles.Subtitle.Render(a.path))
	}
	b.WriteString("\n")

	switch a.state {
	case ViewPanel:
		b.WriteString(a.panel.View())
	default:
		b.WriteString(a.document.View())
	}
	b.WriteString("\n")
	b.WriteString(a.statusLine())
	b.WriteString("\n")
	b.WriteString(a.helpBar())

	return styles.App.Render(b.String())
}

func (a *App) statusLine() string {
	if len(a.running) > 0 {
		titles := make([]string, 0, len(a.running))
		for _, t := range a.running {
			titles = append(titles, t)
		}
		slices.Sort(titles)
		return a.spinner.View() + " " + styles.MutedText.Render(strings.Join(titles, ", "))
	}
	if a.status == nil {
		return ""
	}
	n := a.status
	return styles.ForSeverity(n.Severity).Render(n.Source+": ") + styles.StatusText.Render(n.Message)
}

func (a *App) helpBar() string {
	bindings := []key.Binding{Keys.Enum, Keys.Import, Keys.Panel, Keys.Copy, Keys.Edit, Keys.Help, Keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.Render(" • "))
}
