package domain

import (
	"fmt"
	"time"
)

// AutosaveSlot is the slot ID reserved for the autosave.
const AutosaveSlot = 0

// SaveDescriptor identifies one save slot in a profile's catalog.
// Descriptors are created when enumerating stored saves or immediately
// before a write; a descriptor becomes stale once a newer write for the
// same slot supersedes it.
type SaveDescriptor struct {
	SlotID    int
	ProfileID int

	// Label is the display label shown in save/load menus. Empty means
	// the default label for the slot.
	Label string

	IsAutosave    bool
	HasScreenshot bool
	UpdatedAt     time.Time
}

// DisplayLabel returns the label to show for the slot, falling back to a
// generated default when none was set.
func (d SaveDescriptor) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	if d.SlotID == AutosaveSlot || d.IsAutosave {
		return "Autosave"
	}
	return fmt.Sprintf("Save %d", d.SlotID)
}
