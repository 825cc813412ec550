package domain

import (
	"fmt"
	"strings"
)

// CommandID identifies a user-invokable command at the registration boundary
type CommandID string

const (
	CommandUpdateEnum   CommandID = "toolsforwork.update-enum"
	CommandUpdateImport CommandID = "toolsforwork.update-import"
)

// Transformer describes one external transformation script and the
// user-facing labels of the command bound to it
type Transformer struct {
	ID             CommandID
	Name           string // short name, e.g. "enum"
	Script         string // file name under the script directory
	Title          string // e.g. "Enum Updater"
	ProgressTitle  string
	SuccessMessage string
}

// OutputPanel returns the name of the panel that receives successful output
func (t Transformer) OutputPanel() string {
	return t.Title
}

// ErrorPanel returns the name of the panel that receives failure output
func (t Transformer) ErrorPanel() string {
	return t.Title + " Errors"
}

func (t Transformer) String() string {
	return string(t.ID)
}

// Built-in transformers
var (
	EnumUpdater = Transformer{
		ID:             CommandUpdateEnum,
		Name:           "enum",
		Script:         "enum_updater.py",
		Title:          "Enum Updater",
		ProgressTitle:  "Updating enum...",
		SuccessMessage: "Enum transformed successfully!",
	}

	ImportUpdater = Transformer{
		ID:             CommandUpdateImport,
		Name:           "import",
		Script:         "import_updater.py",
		Title:          "Import Updater",
		ProgressTitle:  "Updating imports...",
		SuccessMessage: "Imports transformed successfully!",
	}
)

// Transformers returns the command catalog in registration order
func Transformers() []Transformer {
	return []Transformer{EnumUpdater, ImportUpdater}
}

// LookupTransformer finds a transformer by command ID or short name
func LookupTransformer(key string) (Transformer, error) {
	key = strings.TrimSpace(key)
	for _, t := range Transformers() {
		if string(t.ID) == key || t.Name == key {
			return t, nil
		}
	}
	return Transformer{}, fmt.Errorf("unknown command: %s", key)
}
