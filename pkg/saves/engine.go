package saves

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/keraunic-tonic/friendship/internal/adapters/fs"
	logAdapter "github.com/keraunic-tonic/friendship/internal/adapters/log"
	"github.com/keraunic-tonic/friendship/internal/app"
	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/game"
	"github.com/keraunic-tonic/friendship/pkg/lang"
	"github.com/keraunic-tonic/friendship/pkg/log"
)

// World bundles the built-in subsystems (state handler, player input,
// player, inventory, variables, menus, localization bridge, scene director).
type World = game.World

// Engine is the embeddable save/load runtime: the save coordinator, the
// localization store, and the built-in subsystems wired together.
// Use New to create an instance, Start to initialize plugins.
type Engine struct {
	config Config
	opts   options

	coord  *app.Coordinator
	world  *game.World
	store  SaveStore
	lang   *lang.Store
	logger Logger

	plugins []Plugin

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
}

// New creates an engine with the given configuration.
// Returns an error if the configuration is invalid.
func New(cfg Config, opts ...Option) (*Engine, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var logger Logger
	if o.logger != nil {
		logger = o.logger
	} else {
		logger = logAdapter.NewNoopLogger()
	}

	store := o.store
	if store == nil {
		if cfg.SaveDir == "" {
			return nil, fmt.Errorf("%w: save dir is required", domain.ErrInvalidConfig)
		}
		store = fs.NewSaveStore(cfg.SaveDir)
	}
	importStore := o.importStore
	if importStore == nil && cfg.ImportDir != "" {
		importStore = fs.NewSaveStore(cfg.ImportDir)
	}

	langStore := lang.NewStore(cfg.Lang, logger)
	world := game.NewWorld(langStore, cfg.StartScene)
	subsystems := append(world.Subsystems(), o.subsystems...)

	emitter := &eventEmitterWrapper{handler: o.eventHandler}
	coord := app.NewCoordinator(app.Config{
		ProfileID:         cfg.ProfileID,
		MaxSaveSlots:      cfg.MaxSaveSlots,
		TakeScreenshots:   cfg.TakeScreenshots,
		ScreenshotDelay:   cfg.ScreenshotDelay,
		SortByUpdateTime:  cfg.SortByUpdateTime,
		ForceReloadScene:  cfg.ForceReloadScene,
		SaveDeferInterval: cfg.SaveDeferInterval,
		SaveDeferAttempts: cfg.SaveDeferAttempts,
	}, store, importStore, o.screenshots, subsystems, logger, emitter)

	return &Engine{
		config:  cfg,
		opts:    o,
		coord:   coord,
		world:   world,
		store:   store,
		lang:    langStore,
		logger:  logger,
		plugins: o.plugins,
	}, nil
}

// Start initializes the registered plugins. Returns an error if already
// started or if a plugin fails to initialize; plugins initialized before
// the failure are shut down again.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return fmt.Errorf("%w: engine already started", domain.ErrInvalidConfig)
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	pluginCfg := PluginConfig{
		SaveDir:         e.config.SaveDir,
		ImportDir:       e.config.ImportDir,
		TranslationsDir: e.config.TranslationsDir,
		ProfileID:       e.config.ProfileID,
		Logger:          e.logger,
		Saver:           e.coord,
		Importer:        e.lang,
	}
	for i, p := range e.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			e.logger.Error("plugin initialization failed",
				log.String("plugin", p.Name()),
				log.Err(err))
			for j := i - 1; j >= 0; j-- {
				_ = e.plugins[j].Shutdown(context.Background())
			}
			cancel()
			return err
		}
		e.logger.Info("plugin initialized", log.String("plugin", p.Name()))
	}

	e.started = true
	return nil
}

// Stop shuts down plugins in reverse registration order.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return nil
	}
	if e.cancel != nil {
		e.cancel()
	}

	shutdownCtx := context.Background()
	for i := len(e.plugins) - 1; i >= 0; i-- {
		p := e.plugins[i]
		if err := p.Shutdown(shutdownCtx); err != nil {
			e.logger.Error("plugin shutdown failed",
				log.String("plugin", p.Name()),
				log.Err(err))
		} else {
			e.logger.Info("plugin shutdown complete", log.String("plugin", p.Name()))
		}
	}
	e.started = false
	return nil
}

// Save captures a snapshot and persists it under slotID.
func (e *Engine) Save(ctx context.Context, slotID int, label string) (uuid.UUID, error) {
	return e.coord.Save(ctx, slotID, label)
}

// Load restores the snapshot stored under slotID.
func (e *Engine) Load(ctx context.Context, slotID int, policy RestorePolicy) (uuid.UUID, error) {
	return e.coord.Load(ctx, slotID, policy)
}

// Enumerate lists the saves in the active profile's catalog.
func (e *Engine) Enumerate(ctx context.Context) []SaveDescriptor {
	return e.coord.Enumerate(ctx)
}

// Delete removes a save from the catalog.
func (e *Engine) Delete(ctx context.Context, slotID int) error {
	return e.coord.Delete(ctx, slotID)
}

// Rename changes a save's display label.
func (e *Engine) Rename(ctx context.Context, slotID int, label string) error {
	return e.coord.Rename(ctx, slotID, label)
}

// ImportSave copies a slot from the import store into the active catalog.
func (e *Engine) ImportSave(ctx context.Context, slotID, profileID int) error {
	return e.coord.ImportSave(ctx, slotID, profileID)
}

// Lang returns the localization store.
func (e *Engine) Lang() *lang.Store { return e.lang }

// World returns the built-in subsystems.
func (e *Engine) World() *World { return e.world }

// validateModuleVersions checks that all sub-module versions are compatible.
func validateModuleVersions() error {
	modules := map[string]struct {
		version    string
		minVersion string
	}{
		"lang": {lang.Version, lang.MinCompatibleVersion},
		"log":  {log.Version, log.MinCompatibleVersion},
	}

	for name, m := range modules {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}
	return nil
}

// isVersionCompatible checks version >= minVersion for "major.minor.patch"
// version strings.
func isVersionCompatible(version, minVersion string) bool {
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
