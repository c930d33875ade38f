package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
)

// GORMWorkoutRepository is a GORM implementation of WorkoutRepository.
// Workout sets have no natural key: every create yields a new row.
type GORMWorkoutRepository struct {
	db *gorm.DB
}

// NewGORMWorkoutRepository creates a new instance of GORMWorkoutRepository.
func NewGORMWorkoutRepository(db *gorm.DB) *GORMWorkoutRepository {
	return &GORMWorkoutRepository{db: db}
}

// Create stores a new workout set.
func (r *GORMWorkoutRepository) Create(set *models.WorkoutSet) error {
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	if err := r.db.Create(set).Error; err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// GetAll retrieves all workout sets. No order is guaranteed.
func (r *GORMWorkoutRepository) GetAll() ([]models.WorkoutSet, error) {
	var sets []models.WorkoutSet
	if err := r.db.Find(&sets).Error; err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return sets, nil
}

// GetByID retrieves a single workout set by its ID.
func (r *GORMWorkoutRepository) GetByID(id string) (*models.WorkoutSet, error) {
	var set models.WorkoutSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("workout set with ID %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &set, nil
}

// Update replaces all fields of an existing workout set.
func (r *GORMWorkoutRepository) Update(set *models.WorkoutSet) error {
	var existing models.WorkoutSet
	if err := r.db.First(&existing, "id = ?", set.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("workout set with ID %s not found", set.ID)
		}
		return apperrors.NewInternal(err)
	}
	if err := r.db.Save(set).Error; err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// Delete removes a workout set by its ID.
func (r *GORMWorkoutRepository) Delete(id string) error {
	res := r.db.Delete(&models.WorkoutSet{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("workout set with ID %s not found", id)
	}
	return nil
}
