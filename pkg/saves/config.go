package saves

import (
	"fmt"
	"time"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/pkg/lang"
)

// Config holds the configuration for the save engine.
// Use SetDefaults to fill unset fields with sensible defaults.
type Config struct {
	// SaveDir is the directory the default filesystem store writes to.
	// Required unless a custom store is injected with WithStore.
	SaveDir string

	// ImportDir optionally points at a second save directory (an older
	// install, a cloud sync folder) that ImportSave copies slots from.
	ImportDir string

	// TranslationsDir optionally points at a directory of per-language
	// CSV tables; plugins watch it for hot reloads.
	TranslationsDir string

	// ProfileID partitions the save catalog per player profile.
	ProfileID int

	// MaxSaveSlots caps the number of ordinary saves per profile.
	// Zero means unlimited; the autosave slot is always exempt.
	MaxSaveSlots int

	// StartScene is the scene active before any load.
	StartScene string

	// TakeScreenshots captures an image alongside each save after
	// ScreenshotDelay (so save UI can hide itself first).
	TakeScreenshots bool
	ScreenshotDelay time.Duration

	// SortByUpdateTime orders enumeration newest-first instead of by slot.
	SortByUpdateTime bool

	// ForceReloadScene reloads the scene on every load, even when the
	// snapshot targets the scene already active.
	ForceReloadScene bool

	// SaveDeferInterval and SaveDeferAttempts bound the retry loop a save
	// enters when a load is in progress.
	SaveDeferInterval time.Duration
	SaveDeferAttempts int

	// Lang configures the localization store.
	Lang lang.StoreConfig
}

// SetDefaults fills unset fields with default values.
func (c *Config) SetDefaults() {
	if c.MaxSaveSlots == 0 {
		c.MaxSaveSlots = 10
	}
	if c.ScreenshotDelay == 0 {
		c.ScreenshotDelay = 500 * time.Millisecond
	}
	if c.SaveDeferInterval == 0 {
		c.SaveDeferInterval = 50 * time.Millisecond
	}
	if c.SaveDeferAttempts == 0 {
		c.SaveDeferAttempts = 20
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.ProfileID < 0 {
		return fmt.Errorf("%w: profile id must not be negative", domain.ErrInvalidConfig)
	}
	if c.MaxSaveSlots < 0 {
		return fmt.Errorf("%w: max save slots must not be negative", domain.ErrInvalidConfig)
	}
	if c.ScreenshotDelay < 0 {
		return fmt.Errorf("%w: screenshot delay must not be negative", domain.ErrInvalidConfig)
	}
	if c.SaveDeferInterval < 0 || c.SaveDeferAttempts < 0 {
		return fmt.Errorf("%w: save defer settings must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}
