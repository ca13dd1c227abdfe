package ports

import (
	"context"

	"github.com/keraunic-tonic/friendship/internal/domain"
)

// SaveStore persists save blobs and their catalog metadata, keyed by
// (slot ID, profile ID). The default backend is the local filesystem;
// tests substitute an in-memory fake.
type SaveStore interface {
	// List enumerates the stored saves for a profile in slot order.
	// Returns an empty slice when nothing is stored.
	List(ctx context.Context, profileID int) ([]domain.SaveDescriptor, error)

	// Read returns the raw blob for a slot.
	// Returns domain.ErrSlotNotFound when the slot has no save.
	Read(ctx context.Context, slotID, profileID int) ([]byte, error)

	// Write persists a blob under the descriptor's slot, replacing any
	// previous save for that slot, and records the descriptor's label in
	// the label index. The write must be atomic: a crash mid-write must
	// never leave a truncated blob behind.
	Write(ctx context.Context, desc domain.SaveDescriptor, blob []byte) error

	// Delete removes a slot's blob, screenshot, and label-index entry.
	// Returns domain.ErrSlotNotFound when the slot has no save.
	Delete(ctx context.Context, slotID, profileID int) error

	// SetLabel updates the label index entry for a stored slot.
	SetLabel(ctx context.Context, slotID, profileID int, label string) error

	// WriteScreenshot stores the screenshot captured alongside a save.
	WriteScreenshot(ctx context.Context, slotID, profileID int, image []byte) error

	// ReadScreenshot returns the stored screenshot for a slot, or
	// domain.ErrSlotNotFound when none exists.
	ReadScreenshot(ctx context.Context, slotID, profileID int) ([]byte, error)
}
