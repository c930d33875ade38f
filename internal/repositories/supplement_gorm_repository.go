package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
)

// GORMSupplementRepository is a GORM implementation of SupplementRepository.
type GORMSupplementRepository struct {
	db *gorm.DB
}

// NewGORMSupplementRepository creates a new instance of GORMSupplementRepository.
func NewGORMSupplementRepository(db *gorm.DB) *GORMSupplementRepository {
	return &GORMSupplementRepository{db: db}
}

// Create stores a new supplement.
func (r *GORMSupplementRepository) Create(s *models.Supplement) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if err := r.db.Create(s).Error; err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// GetAll retrieves all supplements. No order is guaranteed.
func (r *GORMSupplementRepository) GetAll() ([]models.Supplement, error) {
	var supplements []models.Supplement
	if err := r.db.Find(&supplements).Error; err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return supplements, nil
}

// GetByID retrieves a single supplement by its ID.
func (r *GORMSupplementRepository) GetByID(id string) (*models.Supplement, error) {
	var s models.Supplement
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("supplement with ID %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &s, nil
}

// Update replaces all fields of an existing supplement.
func (r *GORMSupplementRepository) Update(s *models.Supplement) error {
	var existing models.Supplement
	if err := r.db.First(&existing, "id = ?", s.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("supplement with ID %s not found", s.ID)
		}
		return apperrors.NewInternal(err)
	}
	if err := r.db.Save(s).Error; err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// Delete removes a supplement by its ID.
func (r *GORMSupplementRepository) Delete(id string) error {
	res := r.db.Delete(&models.Supplement{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("supplement with ID %s not found", id)
	}
	return nil
}
