package application

import (
	"fmt"

	"toolsforwork/internal/domain"
)

// Re-export domain types for use by adapters
type (
	CommandID   = domain.CommandID
	Transformer = domain.Transformer
	Outcome     = domain.Outcome
	State       = domain.State
)

const (
	CommandUpdateEnum   = domain.CommandUpdateEnum
	CommandUpdateImport = domain.CommandUpdateImport
)

// Transformers returns the command catalog in registration order
func Transformers() []Transformer {
	return domain.Transformers()
}

// LookupTransformer finds a transformer by command ID or short name
func LookupTransformer(key string) (Transformer, error) {
	t, err := domain.LookupTransformer(key)
	if err != nil {
		return Transformer{}, fmt.Errorf("%w: %s", ErrUnknownCommand, key)
	}
	return t, nil
}
