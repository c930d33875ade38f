package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
)

// GORMMeasurementRepository is a GORM implementation of MeasurementRepository.
type GORMMeasurementRepository struct {
	db *gorm.DB
}

// NewGORMMeasurementRepository creates a new instance of GORMMeasurementRepository.
func NewGORMMeasurementRepository(db *gorm.DB) *GORMMeasurementRepository {
	return &GORMMeasurementRepository{db: db}
}

// Upsert creates the measurement, or merges the fields present in the
// payload into the existing row for the same date. Fields the client
// omitted keep their stored values. Runs as one transaction with a
// duplicate-key fallback, same as the weight upsert.
func (r *GORMMeasurementRepository) Upsert(m *models.BodyMeasurement) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BodyMeasurement
		err := tx.First(&existing, "date = ?", m.Date).Error
		switch {
		case err == nil:
			return applyMeasurementPatch(tx, m, &existing)
		case errors.Is(err, gorm.ErrRecordNotFound):
			m.ID = uuid.New().String()
			if err := tx.Create(m).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					var row models.BodyMeasurement
					if ferr := tx.First(&row, "date = ?", m.Date).Error; ferr != nil {
						return ferr
					}
					return applyMeasurementPatch(tx, m, &row)
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

func applyMeasurementPatch(tx *gorm.DB, payload, row *models.BodyMeasurement) error {
	payload.Patch().Apply(row)
	if err := tx.Save(row).Error; err != nil {
		return err
	}
	*payload = *row
	return nil
}

// GetAll retrieves all body measurements. No order is guaranteed.
func (r *GORMMeasurementRepository) GetAll() ([]models.BodyMeasurement, error) {
	var measurements []models.BodyMeasurement
	if err := r.db.Find(&measurements).Error; err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return measurements, nil
}

// GetByID retrieves a single body measurement by its ID.
func (r *GORMMeasurementRepository) GetByID(id string) (*models.BodyMeasurement, error) {
	var m models.BodyMeasurement
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("measurement with ID %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &m, nil
}

// Update replaces all fields of an existing body measurement.
func (r *GORMMeasurementRepository) Update(m *models.BodyMeasurement) error {
	var existing models.BodyMeasurement
	if err := r.db.First(&existing, "id = ?", m.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("measurement with ID %s not found", m.ID)
		}
		return apperrors.NewInternal(err)
	}
	// Save writes every column, so fields dropped from the payload become NULL.
	if err := r.db.Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("a measurement for %s already exists", m.Date)
		}
		return apperrors.NewInternal(err)
	}
	return nil
}

// Delete removes a body measurement by its ID.
func (r *GORMMeasurementRepository) Delete(id string) error {
	res := r.db.Delete(&models.BodyMeasurement{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("measurement with ID %s not found", id)
	}
	return nil
}
