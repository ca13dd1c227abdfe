package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// Load reads the snapshot for slotID and restores it into the registered
// subsystems. The policy gates which categories of state are touched; pass
// ports.FullRestore() for an ordinary load.
//
// Restore is sequential and ordered. A fragment that fails to parse aborts
// the load before later subsystems run; decode failures happen before any
// subsystem is touched, so in-memory state stays as it was.
func (c *Coordinator) Load(ctx context.Context, slotID int, policy ports.RestorePolicy) (uuid.UUID, error) {
	token := c.tracker.BeginLoad()

	blob, err := c.store.Read(ctx, slotID, c.cfg.ProfileID)
	if err != nil {
		c.emitLoadFailed(slotID, token, err)
		return token, err
	}

	snap, err := domain.DecodeSnapshot(string(blob))
	if err != nil {
		c.emitLoadFailed(slotID, token, err)
		return token, err
	}

	if err := c.restoreSnapshot(ctx, snap, policy); err != nil {
		c.emitLoadFailed(slotID, token, err)
		return token, err
	}

	if !c.tracker.FinishLoad(token) {
		c.logger.Debug("discarding stale load completion", ports.Int("slot", slotID))
		return token, domain.ErrStaleCompletion
	}

	for _, sub := range c.subsystems {
		if err := sub.OnLoadComplete(ctx); err != nil {
			// Post-load hooks are best effort; the restore already happened.
			c.logger.Warn("post-load hook failed",
				ports.String("subsystem", sub.Name()),
				ports.Err(err),
			)
		}
	}

	c.logger.Info("load completed",
		ports.Int("slot", slotID),
		ports.Int("profile", c.cfg.ProfileID),
	)
	if c.emitter != nil {
		c.emitter.OnLoadCompleted(slotID, token)
	}
	return token, nil
}

// restoreSnapshot pushes the snapshot back into the subsystems in the fixed
// restore order, then resolves the scene change.
func (c *Coordinator) restoreSnapshot(ctx context.Context, snap domain.SaveSnapshot, policy ports.RestorePolicy) error {
	for _, sub := range c.subsystems {
		frag, ok := snap.Main.Fragment(sub.Name())
		if !ok {
			// Saves written before a subsystem existed simply have no
			// fragment for it.
			c.logger.Debug("no fragment in snapshot", ports.String("subsystem", sub.Name()))
			continue
		}
		if err := sub.Restore(ctx, frag, policy); err != nil {
			return fmt.Errorf("restore %s: %w", sub.Name(), err)
		}
	}

	if c.scene == nil {
		return nil
	}

	target := snap.Main.CurrentScene
	current := c.scene.CurrentScene()
	switchScene := policy.Scene && (c.cfg.ForceReloadScene || target != current)

	if switchScene {
		var subScenes []string
		if block, ok := snap.SceneBlock(target); ok {
			subScenes = block.SubScenes
		}
		if err := c.scene.SwitchScene(ctx, target, subScenes); err != nil {
			return fmt.Errorf("switch scene %q: %w", target, err)
		}
	} else {
		// Resuming in place: cut one-shot sound effects so they do not
		// play over the restored state.
		c.scene.StopTransientAudio()
	}

	if err := c.scene.RestoreScenes(ctx, snap.Scenes, policy); err != nil {
		return fmt.Errorf("restore scenes: %w", err)
	}
	return nil
}
