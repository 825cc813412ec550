package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"toolsforwork/internal/adapters/tui/styles"
)

// PanelModel shows the most recently focused output panel
type PanelModel struct {
	ViewState
	Name     string
	lines    []string
	viewport viewport.Model
}

// NewPanelModel creates an empty panel view
func NewPanelModel() *PanelModel {
	return &PanelModel{viewport: viewport.New(80, 20)}
}

// SetSize updates the view dimensions
func (m *PanelModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = width - 4
	m.viewport.Height = bodyHeight(height) - 1
}

// SetPanel replaces the panel content and scrolls to the top
func (m *PanelModel) SetPanel(name string, lines []string) {
	m.Name = name
	m.lines = append([]string(nil), lines...)
	m.viewport.SetContent(m.Text())
	m.viewport.GotoTop()
}

// Empty reports whether any panel has been shown yet
func (m *PanelModel) Empty() bool {
	return m.Name == ""
}

// Text returns the panel content as plain text
func (m *PanelModel) Text() string {
	trimmed := make([]string, len(m.lines))
	for i, l := range m.lines {
		trimmed[i] = strings.TrimRight(l, "\n")
	}
	return strings.Join(trimmed, "\n")
}

// Init initializes the panel view
func (m *PanelModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling
func (m *PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the panel view
func (m *PanelModel) View() string {
	if m.Empty() {
		return styles.MutedText.Render("No output yet.")
	}
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	return styles.PanelFrame.Render(b.String())
}
