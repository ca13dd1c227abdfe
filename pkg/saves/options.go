package saves

import (
	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
	"github.com/keraunic-tonic/friendship/pkg/log"
)

// Re-exported types so embedders never import internal packages directly.
type (
	// Logger is the structured logging interface from pkg/log.
	Logger = log.Logger

	// LogField is a structured log field.
	LogField = log.Field

	// SaveStore is the pluggable storage backend interface.
	SaveStore = ports.SaveStore

	// SaveDescriptor identifies one entry of the save catalog.
	SaveDescriptor = domain.SaveDescriptor

	// Subsystem is a save-time fragment producer and load-time consumer.
	Subsystem = ports.Subsystem

	// RestorePolicy gates which state categories a load restores.
	RestorePolicy = ports.RestorePolicy

	// ScreenshotSource captures the image stored alongside a save.
	ScreenshotSource = ports.ScreenshotSource
)

// FullRestore returns the policy an ordinary load uses: everything on.
func FullRestore() RestorePolicy { return ports.FullRestore() }

// AutosaveSlot is the slot ID reserved for autosaves.
const AutosaveSlot = domain.AutosaveSlot

// Option configures optional behavior of the engine.
type Option func(*options)

type options struct {
	logger       Logger
	store        SaveStore
	importStore  SaveStore
	screenshots  ScreenshotSource
	eventHandler EventHandler
	plugins      []Plugin
	subsystems   []Subsystem
}

// WithLogger sets a custom logger. Without it the engine is silent.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore replaces the default filesystem store with a custom backend.
func WithStore(store SaveStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithImportStore sets the backend ImportSave copies foreign slots from.
// Overrides Config.ImportDir.
func WithImportStore(store SaveStore) Option {
	return func(o *options) {
		o.importStore = store
	}
}

// WithScreenshotSource sets the strategy that captures save screenshots.
func WithScreenshotSource(src ScreenshotSource) Option {
	return func(o *options) {
		o.screenshots = src
	}
}

// WithEventHandler sets a handler for save/load events. Events are called
// synchronously from the operation's goroutine.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPlugin registers a plugin, initialized when the engine starts.
// Plugins initialize in registration order and shut down in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}

// WithSubsystem registers an extra subsystem after the built-in ones, so
// the hosting game can contribute its own snapshot fragments.
func WithSubsystem(sub Subsystem) Option {
	return func(o *options) {
		o.subsystems = append(o.subsystems, sub)
	}
}
