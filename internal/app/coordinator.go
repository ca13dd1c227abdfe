// Package app contains the save coordinator: the orchestration layer that
// pulls snapshot fragments from the registered game subsystems at save time
// and pushes them back, in a fixed order, at load time.
package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/keraunic-tonic/friendship/internal/ports"
)

// Config contains configuration for the save coordinator.
type Config struct {
	// ProfileID partitions the save catalog per player profile.
	ProfileID int

	// MaxSaveSlots caps the number of ordinary saves per profile.
	// Zero means unlimited. The autosave slot is exempt.
	MaxSaveSlots int

	// TakeScreenshots captures an image alongside each save.
	TakeScreenshots bool

	// ScreenshotDelay is how long to wait before capturing, so save/load
	// UI has a chance to hide itself first.
	ScreenshotDelay time.Duration

	// SortByUpdateTime orders enumeration results newest-first instead of
	// by slot number.
	SortByUpdateTime bool

	// ForceReloadScene reloads the scene on every load, even when the
	// snapshot targets the scene already active.
	ForceReloadScene bool

	// SaveDeferInterval and SaveDeferAttempts bound the retry loop a save
	// enters when a load is in progress.
	SaveDeferInterval time.Duration
	SaveDeferAttempts int
}

// EventEmitter receives operation outcomes. Calls are synchronous from the
// operation's goroutine; implementations should return quickly.
type EventEmitter interface {
	OnSaveCompleted(slotID int, token uuid.UUID)
	OnSaveFailed(slotID int, token uuid.UUID, err error)
	OnLoadCompleted(slotID int, token uuid.UUID)
	OnLoadFailed(slotID int, token uuid.UUID, err error)

	// OnCatalogChanged fires after any operation that alters the save
	// catalog (save, delete, rename, import), so dependent UI can
	// recalculate its slot lists.
	OnCatalogChanged()
}

// Coordinator orchestrates saving and loading across the registered
// subsystems and the storage backend. All collaborators are injected at
// construction; the coordinator holds no global state.
type Coordinator struct {
	cfg         Config
	store       ports.SaveStore
	importStore ports.SaveStore
	screenshots ports.ScreenshotSource
	logger      ports.Logger
	emitter     EventEmitter

	// subsystems in registration order, which is also the fixed restore
	// order: state handler, player input, inventory, variables, menus,
	// localization, scene.
	subsystems []ports.Subsystem
	scene      ports.SceneDirector

	tracker *requestTracker
}

// NewCoordinator creates a coordinator. importStore may be nil when no
// foreign save directory is configured; the scene director is discovered
// among the registered subsystems.
func NewCoordinator(
	cfg Config,
	store ports.SaveStore,
	importStore ports.SaveStore,
	screenshots ports.ScreenshotSource,
	subsystems []ports.Subsystem,
	logger ports.Logger,
	emitter EventEmitter,
) *Coordinator {
	if cfg.SaveDeferInterval <= 0 {
		cfg.SaveDeferInterval = DefaultDeferInitial
	}
	if cfg.SaveDeferAttempts <= 0 {
		cfg.SaveDeferAttempts = 20
	}
	if screenshots == nil {
		screenshots = ports.NoScreenshot{}
	}

	var scene ports.SceneDirector
	for _, sub := range subsystems {
		if sd, ok := sub.(ports.SceneDirector); ok {
			scene = sd
		}
	}

	return &Coordinator{
		cfg:         cfg,
		store:       store,
		importStore: importStore,
		screenshots: screenshots,
		logger:      logger,
		emitter:     emitter,
		subsystems:  subsystems,
		scene:       scene,
		tracker:     newRequestTracker(),
	}
}

// LoadInProgress reports whether a load request is outstanding.
func (c *Coordinator) LoadInProgress() bool {
	return c.tracker.LoadInProgress()
}

// SaveInProgress reports whether a save request is outstanding.
func (c *Coordinator) SaveInProgress() bool {
	return c.tracker.SaveInProgress()
}

func (c *Coordinator) emitSaveFailed(slotID int, token uuid.UUID, err error) {
	c.logger.Warn("save failed",
		ports.Int("slot", slotID),
		ports.Err(err),
	)
	if c.emitter != nil {
		c.emitter.OnSaveFailed(slotID, token, err)
	}
}

func (c *Coordinator) emitLoadFailed(slotID int, token uuid.UUID, err error) {
	c.logger.Warn("load failed",
		ports.Int("slot", slotID),
		ports.Err(err),
	)
	if c.emitter != nil {
		c.emitter.OnLoadFailed(slotID, token, err)
	}
}

func (c *Coordinator) emitCatalogChanged() {
	if c.emitter != nil {
		c.emitter.OnCatalogChanged()
	}
}
