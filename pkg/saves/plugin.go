package saves

import (
	"context"

	"github.com/google/uuid"
)

// Plugin extends the engine with optional background functionality.
// Initialize is called when the engine starts, Shutdown when it stops.
type Plugin interface {
	Name() string
	Initialize(ctx context.Context, cfg PluginConfig) error
	Shutdown(ctx context.Context) error
}

// Saver is the narrow save capability handed to plugins.
type Saver interface {
	Save(ctx context.Context, slotID int, label string) (uuid.UUID, error)
}

// TranslationImporter is the narrow import capability handed to plugins.
type TranslationImporter interface {
	ImportTable(data, languageName string, columnIndex int, ignoreEmptyCells, rtl bool) error
}

// PluginConfig carries the directories, logger, and capability interfaces a
// plugin may use. Plugins depend on these narrow interfaces rather than the
// whole engine.
type PluginConfig struct {
	SaveDir         string
	ImportDir       string
	TranslationsDir string
	ProfileID       int

	Logger   Logger
	Saver    Saver
	Importer TranslationImporter
}
