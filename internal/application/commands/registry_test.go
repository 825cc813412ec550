package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"toolsforwork/internal/adapters/memory"
	"toolsforwork/internal/application"
	"toolsforwork/internal/domain"
	"toolsforwork/internal/ports"
)

func TestRegistry_Commands(t *testing.T) {
	cfg := setupRoot(t)
	r := NewRegistry(memory.NewHost(""), &fakeLauncher{}, cfg)

	var ids []domain.CommandID
	for _, tr := range r.Commands() {
		ids = append(ids, tr.ID)
	}
	want := []domain.CommandID{domain.CommandUpdateEnum, domain.CommandUpdateImport}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("Commands() mismatch:\n%s", diff)
	}
	for _, id := range want {
		if !r.Registered(id) {
			t.Errorf("%s not registered", id)
		}
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry(memory.NewHost(""), &fakeLauncher{}, setupRoot(t))
	if err := r.Register(domain.EnumUpdater); err == nil {
		t.Error("expected duplicate registration error")
	}
	if err := r.Register(domain.Transformer{}); err == nil {
		t.Error("expected error for empty command ID")
	}
}

func TestRegistry_ExecuteDispatchesByID(t *testing.T) {
	cfg := setupRoot(t, domain.EnumUpdater.Script, domain.ImportUpdater.Script)
	host := memory.NewHost("/src/index.ts")
	launcher := &fakeLauncher{term: domain.Exited(0)}
	r := NewRegistry(host, launcher, cfg)

	result, err := r.Execute(context.Background(), domain.CommandUpdateImport)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Invocation.Transformer.ID != domain.CommandUpdateImport {
		t.Errorf("ran %s", result.Invocation.Transformer.ID)
	}
	if !strings.HasSuffix(launcher.specs[0].Args[2], "import_updater.py") {
		t.Errorf("launched %v", launcher.specs[0].Args)
	}

	if _, err := r.Execute(context.Background(), "toolsforwork.format"); !errors.Is(err, application.ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
}

func TestRegistry_InvokeNeverEscapes(t *testing.T) {
	cfg := setupRoot(t, domain.EnumUpdater.Script)
	host := memory.NewHost("/src/colors.ts")
	launcher := &fakeLauncher{}
	launcher.onRun = func(domain.LaunchSpec, domain.StreamSink) domain.Termination {
		panic("launcher exploded")
	}
	r := NewRegistry(host, launcher, cfg)

	r.Invoke(context.Background(), domain.CommandUpdateEnum)

	errs := host.NotificationsOf(ports.SeverityError)
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "launcher exploded") {
		t.Errorf("errors = %+v", errs)
	}
}

func TestRegistry_InvokeUnknownCommand(t *testing.T) {
	host := memory.NewHost("/src/colors.ts")
	r := NewRegistry(host, &fakeLauncher{}, setupRoot(t))

	r.Invoke(context.Background(), "toolsforwork.format")

	if errs := host.NotificationsOf(ports.SeverityError); len(errs) != 1 {
		t.Errorf("errors = %+v, want 1", errs)
	}
}

func TestRegistry_InvokeFailureStaysLocal(t *testing.T) {
	cfg := setupRoot(t, domain.EnumUpdater.Script)
	host := memory.NewHost("/src/colors.ts")
	launcher := &fakeLauncher{stderr: []string{"bad"}, term: domain.Exited(1)}
	r := NewRegistry(host, launcher, cfg)

	r.Invoke(context.Background(), domain.CommandUpdateEnum)

	errs := host.NotificationsOf(ports.SeverityError)
	if len(errs) != 1 || errs[0].Message != "bad" {
		t.Errorf("errors = %+v", errs)
	}
}
