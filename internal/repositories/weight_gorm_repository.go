package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
)

// GORMWeightRepository is a GORM implementation of WeightRepository.
type GORMWeightRepository struct {
	db *gorm.DB
}

// NewGORMWeightRepository creates a new instance of GORMWeightRepository.
func NewGORMWeightRepository(db *gorm.DB) *GORMWeightRepository {
	return &GORMWeightRepository{db: db}
}

// Upsert creates the entry, or updates the existing row when one already
// exists for the same date. The whole check-then-act runs in one
// transaction; if a concurrent upsert wins the insert race, the unique
// index on date rejects ours and we fall back to the update path. Either
// way at most one row per date survives.
func (r *GORMWeightRepository) Upsert(entry *models.WeightEntry) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.WeightEntry
		err := tx.First(&existing, "date = ?", entry.Date).Error
		switch {
		case err == nil:
			return applyWeightPatch(tx, entry, &existing)
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry.ID = uuid.New().String()
			if err := tx.Create(entry).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// lost the insert race to a concurrent upsert
					var row models.WeightEntry
					if ferr := tx.First(&row, "date = ?", entry.Date).Error; ferr != nil {
						return ferr
					}
					return applyWeightPatch(tx, entry, &row)
				}
				return err
			}
			created = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, apperrors.NewInternal(err)
	}
	return created, nil
}

// applyWeightPatch merges the payload into the stored row and rewrites the
// payload with the persisted state so callers see the surviving identifier.
func applyWeightPatch(tx *gorm.DB, payload, row *models.WeightEntry) error {
	payload.Patch().Apply(row)
	if err := tx.Save(row).Error; err != nil {
		return err
	}
	*payload = *row
	return nil
}

// GetAll retrieves all weight entries. No order is guaranteed.
func (r *GORMWeightRepository) GetAll() ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return entries, nil
}

// GetByID retrieves a single weight entry by its ID.
func (r *GORMWeightRepository) GetByID(id string) (*models.WeightEntry, error) {
	var entry models.WeightEntry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("weight entry with ID %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &entry, nil
}

// Update replaces all fields of an existing weight entry.
func (r *GORMWeightRepository) Update(entry *models.WeightEntry) error {
	var existing models.WeightEntry
	if err := r.db.First(&existing, "id = ?", entry.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("weight entry with ID %s not found", entry.ID)
		}
		return apperrors.NewInternal(err)
	}
	if err := r.db.Save(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("a weight entry for %s already exists", entry.Date)
		}
		return apperrors.NewInternal(err)
	}
	return nil
}

// Delete removes a weight entry by its ID.
func (r *GORMWeightRepository) Delete(id string) error {
	res := r.db.Delete(&models.WeightEntry{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("weight entry with ID %s not found", id)
	}
	return nil
}
