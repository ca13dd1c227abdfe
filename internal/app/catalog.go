package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// Enumerate lists the saves in the active profile's catalog, ordered by
// slot number or, when configured, newest-first. Storage failures degrade
// to an empty catalog so callers can always render a slot list.
func (c *Coordinator) Enumerate(ctx context.Context) []domain.SaveDescriptor {
	descs, err := c.store.List(ctx, c.cfg.ProfileID)
	if err != nil {
		c.logger.Warn("catalog enumeration failed",
			ports.Int("profile", c.cfg.ProfileID),
			ports.Err(err),
		)
		return nil
	}

	if c.cfg.SortByUpdateTime {
		sort.SliceStable(descs, func(i, j int) bool {
			return descs[i].UpdatedAt.After(descs[j].UpdatedAt)
		})
	} else {
		sort.SliceStable(descs, func(i, j int) bool {
			return descs[i].SlotID < descs[j].SlotID
		})
	}
	return descs
}

// Delete removes a save and its screenshot from the catalog.
func (c *Coordinator) Delete(ctx context.Context, slotID int) error {
	if err := c.store.Delete(ctx, slotID, c.cfg.ProfileID); err != nil {
		return err
	}
	c.logger.Info("save deleted",
		ports.Int("slot", slotID),
		ports.Int("profile", c.cfg.ProfileID),
	)
	c.emitCatalogChanged()
	return nil
}

// Rename changes a save's display label without touching its data.
func (c *Coordinator) Rename(ctx context.Context, slotID int, label string) error {
	if err := c.store.SetLabel(ctx, slotID, c.cfg.ProfileID, label); err != nil {
		return err
	}
	c.logger.Info("save renamed",
		ports.Int("slot", slotID),
		ports.String("label", label),
	)
	c.emitCatalogChanged()
	return nil
}

// ImportSave copies the blob for slotID from the configured import store
// into the active catalog as-is, without restoring it. Importing requires
// an import store to have been configured.
func (c *Coordinator) ImportSave(ctx context.Context, slotID int, profileID int) error {
	if c.importStore == nil {
		return fmt.Errorf("%w: no import store configured", domain.ErrInvalidConfig)
	}

	blob, err := c.importStore.Read(ctx, slotID, profileID)
	if err != nil {
		return fmt.Errorf("read import slot %d: %w", slotID, err)
	}

	// Validate before committing so a foreign blob in the wrong format
	// never lands in the catalog.
	if _, err := domain.DecodeSnapshot(string(blob)); err != nil {
		return err
	}

	descs, err := c.importStore.List(ctx, profileID)
	if err != nil {
		return fmt.Errorf("list import catalog: %w", err)
	}
	desc := domain.SaveDescriptor{
		SlotID:     slotID,
		ProfileID:  c.cfg.ProfileID,
		IsAutosave: slotID == domain.AutosaveSlot,
	}
	for _, d := range descs {
		if d.SlotID == slotID {
			desc.Label = d.Label
			desc.UpdatedAt = d.UpdatedAt
			break
		}
	}

	if err := c.store.Write(ctx, desc, blob); err != nil {
		return fmt.Errorf("write imported slot %d: %w", slotID, err)
	}
	c.logger.Info("save imported",
		ports.Int("slot", slotID),
		ports.Int("from_profile", profileID),
	)
	c.emitCatalogChanged()
	return nil
}
