package views

import (
	"strings"
	"testing"
)

func TestBodyHeight(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{40, 34},
		{10, 4},
		{9, 3},
		{0, 3},
	}
	for _, tt := range tests {
		if got := bodyHeight(tt.total); got != tt.want {
			t.Errorf("bodyHeight(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestDocumentModel_SetSize(t *testing.T) {
	m := NewDocumentModel("colors.ts")
	m.SetSize(100, 40)

	if m.Width != 100 || m.Height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.Width, m.Height)
	}
	if m.viewport.Width != 96 || m.viewport.Height != 34 {
		t.Errorf("viewport = %dx%d, want 96x34", m.viewport.Width, m.viewport.Height)
	}
}

func TestNumberLines(t *testing.T) {
	got := numberLines("a\nb\n")
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	if !strings.HasSuffix(lines[0], "a") || !strings.HasSuffix(lines[1], "b") {
		t.Errorf("numberLines() = %q", got)
	}
	if numberLines("") != "" {
		t.Error("numberLines(\"\") not empty")
	}
}

func TestPanelModel(t *testing.T) {
	m := NewPanelModel()
	if !m.Empty() {
		t.Fatal("new panel not empty")
	}

	m.SetSize(80, 20)
	if m.Width != 80 || m.Height != 20 {
		t.Errorf("size = %dx%d, want 80x20", m.Width, m.Height)
	}

	m.SetPanel("Import Updater", []string{"Transformation result:", "sorted 4 imports\n"})
	if m.Empty() {
		t.Fatal("panel empty after SetPanel")
	}
	if got, want := m.Text(), "Transformation result:\nsorted 4 imports"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
