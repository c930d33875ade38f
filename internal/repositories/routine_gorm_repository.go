package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
)

// GORMRoutineRepository is a GORM implementation of RoutineRepository.
type GORMRoutineRepository struct {
	db *gorm.DB

	// now is swappable for tests
	now func() time.Time
}

// NewGORMRoutineRepository creates a new instance of GORMRoutineRepository.
func NewGORMRoutineRepository(db *gorm.DB) *GORMRoutineRepository {
	return &GORMRoutineRepository{db: db, now: time.Now}
}

// Upsert creates the routine, or replaces the exercise list of the existing
// routine with the same name. UpdatedAt is always set to the current date.
func (r *GORMRoutineRepository) Upsert(routine *models.Routine) (bool, error) {
	today := r.now().Format(models.DateLayout)
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Routine
		err := tx.First(&existing, "name = ?", routine.Name).Error
		switch {
		case err == nil:
			return r.applyRoutinePatch(tx, routine, &existing, today)
		case errors.Is(err, gorm.ErrRecordNotFound):
			routine.ID = uuid.New().String()
			routine.UpdatedAt = today
			if err := tx.Create(routine).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					var row models.Routine
					if ferr := tx.First(&row, "name = ?", routine.Name).Error; ferr != nil {
						return ferr
					}
					return r.applyRoutinePatch(tx, routine, &row, today)
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

func (r *GORMRoutineRepository) applyRoutinePatch(tx *gorm.DB, payload, row *models.Routine, today string) error {
	payload.Patch().Apply(row)
	row.UpdatedAt = today
	if err := tx.Save(row).Error; err != nil {
		return err
	}
	*payload = *row
	return nil
}

// GetAll retrieves all routines. No order is guaranteed.
func (r *GORMRoutineRepository) GetAll() ([]models.Routine, error) {
	var routines []models.Routine
	if err := r.db.Find(&routines).Error; err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return routines, nil
}

// GetByID retrieves a single routine by its ID.
func (r *GORMRoutineRepository) GetByID(id string) (*models.Routine, error) {
	var routine models.Routine
	if err := r.db.First(&routine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("routine with ID %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &routine, nil
}

// Update replaces all fields of an existing routine and refreshes its
// updated date.
func (r *GORMRoutineRepository) Update(routine *models.Routine) error {
	var existing models.Routine
	if err := r.db.First(&existing, "id = ?", routine.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("routine with ID %s not found", routine.ID)
		}
		return apperrors.NewInternal(err)
	}
	routine.UpdatedAt = r.now().Format(models.DateLayout)
	if err := r.db.Save(routine).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("a routine named '%s' already exists", routine.Name)
		}
		return apperrors.NewInternal(err)
	}
	return nil
}

// Delete removes a routine by its ID.
func (r *GORMRoutineRepository) Delete(id string) error {
	res := r.db.Delete(&models.Routine{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("routine with ID %s not found", id)
	}
	return nil
}
