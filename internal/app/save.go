package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// Save captures a snapshot from every registered subsystem and persists it
// under the given slot. The returned token identifies the request in
// completion events.
//
// A save never starts while a load is in progress: the attempt is deferred
// with a bounded backoff loop, and fails with ErrLoadInProgress only when
// the load outlasts every attempt. A save that targets a new slot while the
// catalog is at its configured maximum fails fast without writing.
func (c *Coordinator) Save(ctx context.Context, slotID int, label string) (uuid.UUID, error) {
	token := c.tracker.BeginSave()

	if err := c.deferWhileLoading(ctx); err != nil {
		c.emitSaveFailed(slotID, token, err)
		return token, err
	}

	if err := c.checkSlotCap(ctx, slotID); err != nil {
		c.emitSaveFailed(slotID, token, err)
		return token, err
	}

	snap, err := c.captureSnapshot(ctx)
	if err != nil {
		c.emitSaveFailed(slotID, token, err)
		return token, err
	}

	blob, err := snap.Encode()
	if err != nil {
		c.emitSaveFailed(slotID, token, err)
		return token, err
	}

	screenshot := c.captureScreenshot(ctx)

	desc := domain.SaveDescriptor{
		SlotID:        slotID,
		ProfileID:     c.cfg.ProfileID,
		Label:         label,
		IsAutosave:    slotID == domain.AutosaveSlot,
		HasScreenshot: screenshot != nil,
		UpdatedAt:     time.Now(),
	}
	if err := c.store.Write(ctx, desc, []byte(blob)); err != nil {
		c.emitSaveFailed(slotID, token, err)
		return token, err
	}
	if screenshot != nil {
		if err := c.store.WriteScreenshot(ctx, slotID, c.cfg.ProfileID, screenshot); err != nil {
			// The save itself is already durable.
			c.logger.Warn("screenshot write failed",
				ports.Int("slot", slotID),
				ports.Err(err),
			)
		}
	}

	if !c.tracker.FinishSave(token) {
		c.logger.Debug("discarding stale save completion", ports.Int("slot", slotID))
		return token, domain.ErrStaleCompletion
	}

	c.logger.Info("save completed",
		ports.Int("slot", slotID),
		ports.Int("profile", c.cfg.ProfileID),
	)
	if c.emitter != nil {
		c.emitter.OnSaveCompleted(slotID, token)
	}
	c.emitCatalogChanged()
	return token, nil
}

// deferWhileLoading waits for an in-progress load to finish, backing off
// between attempts rather than dropping the save.
func (c *Coordinator) deferWhileLoading(ctx context.Context) error {
	if !c.tracker.LoadInProgress() {
		return nil
	}

	c.logger.Debug("save deferred: load in progress")
	back := newBackoff(c.cfg.SaveDeferInterval, DefaultDeferMax)
	for attempt := 0; attempt < c.cfg.SaveDeferAttempts; attempt++ {
		if err := back.Wait(ctx); err != nil {
			return err
		}
		if !c.tracker.LoadInProgress() {
			return nil
		}
	}
	return domain.ErrLoadInProgress
}

// checkSlotCap rejects a save to a brand-new slot once the catalog holds
// MaxSaveSlots saves. Overwrites and the autosave slot are always allowed.
func (c *Coordinator) checkSlotCap(ctx context.Context, slotID int) error {
	if c.cfg.MaxSaveSlots <= 0 || slotID == domain.AutosaveSlot {
		return nil
	}

	descs, err := c.store.List(ctx, c.cfg.ProfileID)
	if err != nil {
		return err
	}
	count := 0
	for _, d := range descs {
		if d.SlotID == slotID {
			// Overwriting an existing slot never hits the cap.
			return nil
		}
		if d.SlotID != domain.AutosaveSlot {
			count++
		}
	}
	if count >= c.cfg.MaxSaveSlots {
		return fmt.Errorf("%w: %d slots", domain.ErrSaveLimitReached, c.cfg.MaxSaveSlots)
	}
	return nil
}

// captureSnapshot pulls a fragment from each subsystem in registration
// order and assembles the snapshot aggregate.
func (c *Coordinator) captureSnapshot(ctx context.Context) (domain.SaveSnapshot, error) {
	var snap domain.SaveSnapshot

	for _, sub := range c.subsystems {
		frag, err := sub.Capture(ctx)
		if err != nil {
			return snap, fmt.Errorf("capture %s: %w", sub.Name(), err)
		}
		snap.Main.SetFragment(sub.Name(), frag)

		if p, ok := sub.(ports.PlayerIdentity); ok {
			snap.Main.CurrentPlayerID = p.PlayerID()
			snap.Main.MovementMethod = p.MovementMethod()
		}
		if l, ok := sub.(ports.LanguageState); ok {
			snap.Main.LanguageIndex = l.ActiveLanguage()
		}
	}

	if c.scene != nil {
		snap.Main.CurrentScene = c.scene.CurrentScene()
		blocks, err := c.scene.CaptureScenes(ctx)
		if err != nil {
			return snap, fmt.Errorf("capture scenes: %w", err)
		}
		snap.Scenes = blocks
	}
	return snap, nil
}

// captureScreenshot waits the configured delay (so UI can hide itself) and
// captures the slot image. Failures degrade to a save without screenshot.
func (c *Coordinator) captureScreenshot(ctx context.Context) []byte {
	if !c.cfg.TakeScreenshots {
		return nil
	}

	if c.cfg.ScreenshotDelay > 0 {
		timer := time.NewTimer(c.cfg.ScreenshotDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}

	image, err := c.screenshots.Capture(ctx)
	if err != nil {
		c.logger.Warn("screenshot capture failed", ports.Err(err))
		return nil
	}
	return image
}
