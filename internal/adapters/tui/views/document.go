package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"toolsforwork/internal/adapters/tui/styles"
)

// DocumentModel shows the target file with line numbers
type DocumentModel struct {
	ViewState
	Path     string
	content  string
	viewport viewport.Model
}

// NewDocumentModel creates a document view for path
func NewDocumentModel(path string) *DocumentModel {
	return &DocumentModel{
		Path:     path,
		viewport: viewport.New(80, 20),
	}
}

// SetSize updates the view dimensions
func (m *DocumentModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = width - 4
	m.viewport.Height = bodyHeight(height)
	m.viewport.SetContent(numberLines(m.content))
}

// SetContent replaces the displayed file content, keeping the scroll
// position where possible
func (m *DocumentModel) SetContent(content string) {
	m.content = content
	offset := m.viewport.YOffset
	m.viewport.SetContent(numberLines(content))
	m.viewport.SetYOffset(offset)
}

// Content returns the displayed file content
func (m *DocumentModel) Content() string {
	return m.content
}

// Init initializes the document view
func (m *DocumentModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling
func (m *DocumentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the document view
func (m *DocumentModel) View() string {
	if m.Path == "" {
		return styles.MutedText.Render("No document open. Start with a .ts or .tsx file path.")
	}
	return styles.DocumentFrame.Render(m.viewport.View())
}

// numberLines prefixes every line with a right-aligned line number
func numberLines(content string) string {
	if content == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	width := len(fmt.Sprint(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(styles.LineNumber.Render(fmt.Sprintf("%*d ", width, i+1)))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
