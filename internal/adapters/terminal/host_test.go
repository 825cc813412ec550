package terminal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"toolsforwork/internal/ports"
)

var _ ports.Host = (*Host)(nil)

func TestHost_NotifyFormatsSourceAndSeverity(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewHost("/src/a.ts", &out, &errOut, WithPlainText())

	h.Notify(ports.Notification{Severity: ports.SeverityWarning, Source: "Enum Updater", Message: "only .ts"})
	h.Notify(ports.Notification{Severity: ports.SeverityError, Message: "boom"})

	want := "WARNING Enum Updater: only .ts\nERROR boom\n"
	if got := errOut.String(); got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
}

func TestHost_PanelPrintsOnShow(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewHost("/src/a.ts", &out, &errOut, WithPlainText())

	p := h.OutputPanel("Enum Updater Errors")
	p.AppendLine("stale")
	p.Clear()
	p.AppendLine("Errors:")
	p.AppendLine("ValueError: bad enum\n")
	if out.Len() != 0 {
		t.Fatal("panel should not print before Show")
	}
	p.Show()

	want := "── Enum Updater Errors ──\nErrors:\nValueError: bad enum\n"
	if got := out.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestHost_ProgressPrintsTitle(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewHost("/src/a.ts", &out, &errOut, WithPlainText())

	ran := false
	err := h.WithProgress(context.Background(), ports.ProgressOptions{Title: "Updating imports..."}, func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("WithProgress ran=%v err=%v", ran, err)
	}
	if !strings.Contains(errOut.String(), "Updating imports...") {
		t.Errorf("progress title missing: %q", errOut.String())
	}
}

func TestDocument_Revert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.ts")
	if err := os.WriteFile(path, []byte("export enum Color {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h := NewHost(path, &bytes.Buffer{}, &bytes.Buffer{})
	doc, ok := h.ActiveDocument()
	if !ok {
		t.Fatal("expected active document")
	}
	if err := doc.Revert(context.Background()); err != nil {
		t.Errorf("Revert: %v", err)
	}

	missing := NewHost(filepath.Join(t.TempDir(), "gone.ts"), &bytes.Buffer{}, &bytes.Buffer{})
	doc, _ = missing.ActiveDocument()
	if err := doc.Revert(context.Background()); err == nil {
		t.Error("expected error reverting a missing file")
	}
}

func TestHost_NoDocument(t *testing.T) {
	h := NewHost("", &bytes.Buffer{}, &bytes.Buffer{})
	if _, ok := h.ActiveDocument(); ok {
		t.Error("expected no active document")
	}
}
