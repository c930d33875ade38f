package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
)

// GORMJournalRepository is a GORM implementation of JournalRepository.
type GORMJournalRepository struct {
	db *gorm.DB
}

// NewGORMJournalRepository creates a new instance of GORMJournalRepository.
func NewGORMJournalRepository(db *gorm.DB) *GORMJournalRepository {
	return &GORMJournalRepository{db: db}
}

// Create stores a new journal entry. Several entries may share a date.
func (r *GORMJournalRepository) Create(entry *models.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// GetAll retrieves all journal entries. No order is guaranteed.
func (r *GORMJournalRepository) GetAll() ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return entries, nil
}

// GetByID retrieves a single journal entry by its ID.
func (r *GORMJournalRepository) GetByID(id string) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("journal entry with ID %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &entry, nil
}

// Update replaces all fields of an existing journal entry.
func (r *GORMJournalRepository) Update(entry *models.JournalEntry) error {
	var existing models.JournalEntry
	if err := r.db.First(&existing, "id = ?", entry.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("journal entry with ID %s not found", entry.ID)
		}
		return apperrors.NewInternal(err)
	}
	if err := r.db.Save(entry).Error; err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// Delete removes a journal entry by its ID.
func (r *GORMJournalRepository) Delete(id string) error {
	res := r.db.Delete(&models.JournalEntry{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("journal entry with ID %s not found", id)
	}
	return nil
}
