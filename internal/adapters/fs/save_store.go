// Package fs implements the filesystem save store: one blob file per slot,
// an optional screenshot alongside it, and a pipe/colon-delimited label
// index kept as a side file per profile.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/keraunic-tonic/friendship/internal/domain"
)

const (
	saveExt        = ".save"
	screenshotExt  = ".png"
	labelIndexName = "labels.idx"
	slotPrefix     = "slot-"
)

// SaveStore implements ports.SaveStore on a local directory. Saves are
// partitioned per profile: <root>/profile-<id>/slot-<nnn>.save.
type SaveStore struct {
	root string
}

// NewSaveStore creates a store rooted at dir. The directory is created
// lazily on first write.
func NewSaveStore(dir string) *SaveStore {
	return &SaveStore{root: dir}
}

func (s *SaveStore) profileDir(profileID int) string {
	return filepath.Join(s.root, fmt.Sprintf("profile-%d", profileID))
}

func (s *SaveStore) blobPath(slotID, profileID int) string {
	return filepath.Join(s.profileDir(profileID), fmt.Sprintf("%s%03d%s", slotPrefix, slotID, saveExt))
}

func (s *SaveStore) screenshotPath(slotID, profileID int) string {
	return filepath.Join(s.profileDir(profileID), fmt.Sprintf("%s%03d%s", slotPrefix, slotID, screenshotExt))
}

// List enumerates stored saves for a profile in slot order.
// A missing profile directory yields an empty list, not an error.
func (s *SaveStore) List(ctx context.Context, profileID int) ([]domain.SaveDescriptor, error) {
	dir := s.profileDir(profileID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	labels, _ := s.readLabelIndex(profileID)

	var descs []domain.SaveDescriptor
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		slot, ok := slotFromName(e.Name())
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		_, shotErr := os.Stat(s.screenshotPath(slot, profileID))
		descs = append(descs, domain.SaveDescriptor{
			SlotID:        slot,
			ProfileID:     profileID,
			Label:         labels[slot],
			IsAutosave:    slot == domain.AutosaveSlot,
			HasScreenshot: shotErr == nil,
			UpdatedAt:     info.ModTime(),
		})
	}

	sort.Slice(descs, func(i, j int) bool { return descs[i].SlotID < descs[j].SlotID })
	return descs, nil
}

// Read returns the raw blob for a slot.
func (s *SaveStore) Read(ctx context.Context, slotID, profileID int) ([]byte, error) {
	data, err := os.ReadFile(s.blobPath(slotID, profileID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
		}
		return nil, err
	}
	return data, nil
}

// Write persists a blob atomically (temp file, then rename) and records the
// descriptor's label in the index.
func (s *SaveStore) Write(ctx context.Context, desc domain.SaveDescriptor, blob []byte) error {
	if err := os.MkdirAll(s.profileDir(desc.ProfileID), 0o700); err != nil {
		return err
	}

	path := s.blobPath(desc.SlotID, desc.ProfileID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}

	return s.updateLabelIndex(desc.ProfileID, func(labels map[int]string) {
		if desc.Label == "" {
			delete(labels, desc.SlotID)
			return
		}
		labels[desc.SlotID] = desc.Label
	})
}

// Delete removes a slot's blob, screenshot, and label-index entry.
func (s *SaveStore) Delete(ctx context.Context, slotID, profileID int) error {
	if err := os.Remove(s.blobPath(slotID, profileID)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
		}
		return err
	}
	// Screenshot is best-effort: the save itself is already gone.
	_ = os.Remove(s.screenshotPath(slotID, profileID))

	return s.updateLabelIndex(profileID, func(labels map[int]string) {
		delete(labels, slotID)
	})
}

// SetLabel updates the label index entry for a stored slot.
func (s *SaveStore) SetLabel(ctx context.Context, slotID, profileID int, label string) error {
	if _, err := os.Stat(s.blobPath(slotID, profileID)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
		}
		return err
	}
	return s.updateLabelIndex(profileID, func(labels map[int]string) {
		if label == "" {
			delete(labels, slotID)
			return
		}
		labels[slotID] = label
	})
}

// WriteScreenshot stores the screenshot captured alongside a save.
func (s *SaveStore) WriteScreenshot(ctx context.Context, slotID, profileID int, image []byte) error {
	if err := os.MkdirAll(s.profileDir(profileID), 0o700); err != nil {
		return err
	}
	path := s.screenshotPath(slotID, profileID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, image, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadScreenshot returns the stored screenshot for a slot.
func (s *SaveStore) ReadScreenshot(ctx context.Context, slotID, profileID int) ([]byte, error) {
	data, err := os.ReadFile(s.screenshotPath(slotID, profileID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: slot %d screenshot", domain.ErrSlotNotFound, slotID)
		}
		return nil, err
	}
	return data, nil
}

// slotFromName parses "slot-003.save" into 3.
func slotFromName(name string) (int, bool) {
	if !strings.HasPrefix(name, slotPrefix) || !strings.HasSuffix(name, saveExt) {
		return 0, false
	}
	numStr := strings.TrimSuffix(strings.TrimPrefix(name, slotPrefix), saveExt)
	n, err := strconv.Atoi(numStr)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Label index format: "slot:label|slot:label". Labels are sanitized on
// write so the two delimiters cannot occur inside a label.

func (s *SaveStore) labelIndexPath(profileID int) string {
	return filepath.Join(s.profileDir(profileID), labelIndexName)
}

func (s *SaveStore) readLabelIndex(profileID int) (map[int]string, error) {
	labels := make(map[int]string)
	data, err := os.ReadFile(s.labelIndexPath(profileID))
	if err != nil {
		if os.IsNotExist(err) {
			return labels, nil
		}
		return labels, err
	}

	for _, record := range strings.Split(string(data), "|") {
		if record == "" {
			continue
		}
		slotStr, label, ok := strings.Cut(record, ":")
		if !ok {
			continue
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil {
			continue
		}
		labels[slot] = label
	}
	return labels, nil
}

func (s *SaveStore) updateLabelIndex(profileID int, mutate func(map[int]string)) error {
	labels, err := s.readLabelIndex(profileID)
	if err != nil {
		return err
	}
	mutate(labels)

	slots := make([]int, 0, len(labels))
	for slot := range labels {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	records := make([]string, 0, len(slots))
	for _, slot := range slots {
		records = append(records, strconv.Itoa(slot)+":"+sanitizeLabel(labels[slot]))
	}

	path := s.labelIndexPath(profileID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.Join(records, "|")), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// sanitizeLabel strips the index delimiters from a display label.
func sanitizeLabel(label string) string {
	label = strings.ReplaceAll(label, "|", " ")
	return strings.ReplaceAll(label, ":", " ")
}
