// Package sqlite implements a save store backed by a SQLite database, for
// platforms where a single database file beats a directory of save files
// (cloud-sync targets, consoles with transactional storage).
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keraunic-tonic/friendship/internal/domain"
)

// saveRecord is the gorm model for one stored save slot.
type saveRecord struct {
	ID        uint `gorm:"primaryKey"`
	SlotID    int  `gorm:"uniqueIndex:idx_slot_profile"`
	ProfileID int  `gorm:"uniqueIndex:idx_slot_profile"`

	Label      string
	IsAutosave bool
	Blob       []byte
	Screenshot []byte
	UpdatedAt  time.Time
}

func (saveRecord) TableName() string { return "saves" }

// SaveStore implements ports.SaveStore on a SQLite database.
type SaveStore struct {
	db *gorm.DB
}

// Open opens (and migrates) the database at path. Use ":memory:" in tests.
func Open(path string) (*SaveStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open save database: %w", err)
	}
	if err := db.AutoMigrate(&saveRecord{}); err != nil {
		return nil, fmt.Errorf("migrate save database: %w", err)
	}
	return &SaveStore{db: db}, nil
}

// NewSaveStore wraps an existing gorm handle. The saves table must already
// be migrated.
func NewSaveStore(db *gorm.DB) *SaveStore {
	return &SaveStore{db: db}
}

// List enumerates stored saves for a profile in slot order.
func (s *SaveStore) List(ctx context.Context, profileID int) ([]domain.SaveDescriptor, error) {
	var records []saveRecord
	result := s.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("slot_id").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	descs := make([]domain.SaveDescriptor, 0, len(records))
	for _, rec := range records {
		descs = append(descs, descriptorOf(rec))
	}
	return descs, nil
}

// Read returns the stored blob for a slot.
func (s *SaveStore) Read(ctx context.Context, slotID, profileID int) ([]byte, error) {
	rec, err := s.find(ctx, slotID, profileID)
	if err != nil {
		return nil, err
	}
	return rec.Blob, nil
}

// Write upserts a slot's blob and label.
func (s *SaveStore) Write(ctx context.Context, desc domain.SaveDescriptor, blob []byte) error {
	updatedAt := desc.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	rec := saveRecord{
		SlotID:     desc.SlotID,
		ProfileID:  desc.ProfileID,
		Label:      desc.Label,
		IsAutosave: desc.IsAutosave,
		Blob:       blob,
		UpdatedAt:  updatedAt,
	}
	result := s.db.WithContext(ctx).
		Where("slot_id = ? AND profile_id = ?", desc.SlotID, desc.ProfileID).
		Assign(map[string]interface{}{
			"label":       rec.Label,
			"is_autosave": rec.IsAutosave,
			"blob":        rec.Blob,
			"updated_at":  rec.UpdatedAt,
		}).
		FirstOrCreate(&rec)
	return result.Error
}

// Delete removes a slot's record.
func (s *SaveStore) Delete(ctx context.Context, slotID, profileID int) error {
	result := s.db.WithContext(ctx).
		Where("slot_id = ? AND profile_id = ?", slotID, profileID).
		Delete(&saveRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
	}
	return nil
}

// SetLabel updates a stored slot's label.
func (s *SaveStore) SetLabel(ctx context.Context, slotID, profileID int, label string) error {
	result := s.db.WithContext(ctx).
		Model(&saveRecord{}).
		Where("slot_id = ? AND profile_id = ?", slotID, profileID).
		Update("label", label)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
	}
	return nil
}

// WriteScreenshot stores a screenshot for a slot.
func (s *SaveStore) WriteScreenshot(ctx context.Context, slotID, profileID int, image []byte) error {
	result := s.db.WithContext(ctx).
		Model(&saveRecord{}).
		Where("slot_id = ? AND profile_id = ?", slotID, profileID).
		Update("screenshot", image)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
	}
	return nil
}

// ReadScreenshot returns a slot's stored screenshot.
func (s *SaveStore) ReadScreenshot(ctx context.Context, slotID, profileID int) ([]byte, error) {
	rec, err := s.find(ctx, slotID, profileID)
	if err != nil {
		return nil, err
	}
	if rec.Screenshot == nil {
		return nil, fmt.Errorf("%w: slot %d screenshot", domain.ErrSlotNotFound, slotID)
	}
	return rec.Screenshot, nil
}

func (s *SaveStore) find(ctx context.Context, slotID, profileID int) (saveRecord, error) {
	var rec saveRecord
	result := s.db.WithContext(ctx).
		Where("slot_id = ? AND profile_id = ?", slotID, profileID).
		First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return rec, fmt.Errorf("%w: slot %d", domain.ErrSlotNotFound, slotID)
		}
		return rec, result.Error
	}
	return rec, nil
}

func descriptorOf(rec saveRecord) domain.SaveDescriptor {
	return domain.SaveDescriptor{
		SlotID:        rec.SlotID,
		ProfileID:     rec.ProfileID,
		Label:         rec.Label,
		IsAutosave:    rec.IsAutosave,
		HasScreenshot: len(rec.Screenshot) > 0,
		UpdatedAt:     rec.UpdatedAt,
	}
}
