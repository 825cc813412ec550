package commands

import (
	"context"
	"fmt"
	"log/slog"

	"toolsforwork/internal/application"
	"toolsforwork/internal/config"
	"toolsforwork/internal/domain"
	"toolsforwork/internal/logging"
	"toolsforwork/internal/ports"
)

// Registry binds command identities to transformers. It is the boundary a
// host dispatches through.
type Registry struct {
	host     ports.Host
	launcher ports.Launcher
	cfg      config.Config
	opts     []Option
	logger   *slog.Logger

	transformers map[domain.CommandID]domain.Transformer
	order        []domain.CommandID
}

// NewRegistry creates a registry holding every built-in transformer
func NewRegistry(host ports.Host, launcher ports.Launcher, cfg config.Config, opts ...Option) *Registry {
	r := &Registry{
		host:         host,
		launcher:     launcher,
		cfg:          cfg,
		opts:         opts,
		logger:       logging.New("registry"),
		transformers: make(map[domain.CommandID]domain.Transformer),
	}
	for _, t := range domain.Transformers() {
		if err := r.Register(t); err != nil {
			r.logger.Error("command not registered", slog.String("command", string(t.ID)), slog.String("error", err.Error()))
		}
	}
	return r
}

// Register adds a transformer under its command ID
func (r *Registry) Register(t domain.Transformer) error {
	if err := application.ValidateRequired("command", string(t.ID)); err != nil {
		return err
	}
	if _, exists := r.transformers[t.ID]; exists {
		return fmt.Errorf("command %s already registered", t.ID)
	}
	r.transformers[t.ID] = t
	r.order = append(r.order, t.ID)
	r.logger.Debug("command registered", slog.String("command", string(t.ID)))
	return nil
}

// Registered reports whether a command ID is bound
func (r *Registry) Registered(id domain.CommandID) bool {
	_, ok := r.transformers[id]
	return ok
}

// Commands returns the registered transformers in registration order
func (r *Registry) Commands() []domain.Transformer {
	out := make([]domain.Transformer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.transformers[id])
	}
	return out
}

// Command builds a fresh TransformCommand for id. Each call gets its own
// command so invocations never share state.
func (r *Registry) Command(id domain.CommandID) (*TransformCommand, error) {
	t, ok := r.transformers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", application.ErrUnknownCommand, id)
	}
	return NewTransformCommand(r.host, r.launcher, r.cfg, t, r.opts...), nil
}

// Execute runs the command bound to id and returns its result
func (r *Registry) Execute(ctx context.Context, id domain.CommandID) (*TransformResult, error) {
	cmd, err := r.Command(id)
	if err != nil {
		return nil, err
	}
	return cmd.Execute(ctx)
}

// Invoke runs the command bound to id for a host that expects no result.
// Nothing escapes: errors are already user-visible and panics become an
// error notification.
func (r *Registry) Invoke(ctx context.Context, id domain.CommandID) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("command panicked", slog.String("command", string(id)), slog.Any("panic", rec))
			r.host.Notify(ports.Notification{
				Severity: ports.SeverityError,
				Source:   string(id),
				Message:  fmt.Sprintf("Command failed unexpectedly: %v", rec),
			})
		}
	}()

	cmd, err := r.Command(id)
	if err != nil {
		r.host.Notify(ports.Notification{
			Severity: ports.SeverityError,
			Source:   string(id),
			Message:  err.Error(),
		})
		return
	}
	if _, err := cmd.Execute(ctx); err != nil {
		r.logger.Debug("command ended with error", slog.String("command", string(id)), slog.String("error", err.Error()))
	}
}
