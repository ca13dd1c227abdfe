// Package memory implements an in-memory save store used by tests and by
// embedders that manage persistence themselves.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/keraunic-tonic/friendship/internal/domain"
)

type slotKey struct {
	slot    int
	profile int
}

type record struct {
	desc       domain.SaveDescriptor
	blob       []byte
	screenshot []byte
}

// SaveStore implements ports.SaveStore entirely in memory.
type SaveStore struct {
	mu    sync.RWMutex
	slots map[slotKey]*record

	// WriteErr, ReadErr, and ListErr, when set, are returned by the
	// corresponding operation. Tests use them to exercise
	// storage-failure paths.
	WriteErr error
	ReadErr  error
	ListErr  error
}

// NewSaveStore creates an empty in-memory store.
func NewSaveStore() *SaveStore {
	return &SaveStore{slots: make(map[slotKey]*record)}
}

// List enumerates stored saves for a profile in slot order.
func (s *SaveStore) List(ctx context.Context, profileID int) ([]domain.SaveDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var descs []domain.SaveDescriptor
	for key, rec := range s.slots {
		if key.profile == profileID {
			descs = append(descs, rec.desc)
		}
	}
	sort.Slice(descs, func(i, j int) bool { return descs[i].SlotID < descs[j].SlotID })
	return descs, nil
}

// Read returns the stored blob for a slot.
func (s *SaveStore) Read(ctx context.Context, slotID, profileID int) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	rec, ok := s.slots[slotKey{slotID, profileID}]
	if !ok {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
	}
	blob := make([]byte, len(rec.blob))
	copy(blob, rec.blob)
	return blob, nil
}

// Write stores a blob under the descriptor's slot.
func (s *SaveStore) Write(ctx context.Context, desc domain.SaveDescriptor, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}
	stored := make([]byte, len(blob))
	copy(stored, blob)
	if desc.UpdatedAt.IsZero() {
		desc.UpdatedAt = time.Now()
	}
	key := slotKey{desc.SlotID, desc.ProfileID}
	prev := s.slots[key]
	rec := &record{desc: desc, blob: stored}
	if prev != nil {
		rec.screenshot = prev.screenshot
	}
	s.slots[key] = rec
	return nil
}

// Delete removes a slot.
func (s *SaveStore) Delete(ctx context.Context, slotID, profileID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := slotKey{slotID, profileID}
	if _, ok := s.slots[key]; !ok {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
	}
	delete(s.slots, key)
	return nil
}

// SetLabel updates a stored slot's label.
func (s *SaveStore) SetLabel(ctx context.Context, slotID, profileID int, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.slots[slotKey{slotID, profileID}]
	if !ok {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
	}
	rec.desc.Label = label
	return nil
}

// WriteScreenshot stores a screenshot for a slot.
func (s *SaveStore) WriteScreenshot(ctx context.Context, slotID, profileID int, image []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.slots[slotKey{slotID, profileID}]
	if !ok {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
	}
	rec.screenshot = make([]byte, len(image))
	copy(rec.screenshot, image)
	rec.desc.HasScreenshot = true
	return nil
}

// ReadScreenshot returns a slot's stored screenshot.
func (s *SaveStore) ReadScreenshot(ctx context.Context, slotID, profileID int) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.slots[slotKey{slotID, profileID}]
	if !ok || rec.screenshot == nil {
		return nil, fmt.Errorf("%w: slot %d screenshot", domain.ErrSlotNotFound, slotID)
	}
	shot := make([]byte, len(rec.screenshot))
	copy(shot, rec.screenshot)
	return shot, nil
}

// Len returns the number of stored saves across all profiles.
func (s *SaveStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}
