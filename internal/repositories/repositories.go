package repositories

import "fittrack/internal/models"

// UserRepository defines the interface for identity data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

// WeightRepository defines the interface for body-weight entries.
// Upsert reports whether a new row was created; on update the entry is
// rewritten with the stored row, keeping its original identifier.
type WeightRepository interface {
	Upsert(entry *models.WeightEntry) (created bool, err error)
	GetAll() ([]models.WeightEntry, error)
	GetByID(id string) (*models.WeightEntry, error)
	Update(entry *models.WeightEntry) error
	Delete(id string) error
}

// MeasurementRepository defines the interface for body measurements.
type MeasurementRepository interface {
	Upsert(m *models.BodyMeasurement) (created bool, err error)
	GetAll() ([]models.BodyMeasurement, error)
	GetByID(id string) (*models.BodyMeasurement, error)
	Update(m *models.BodyMeasurement) error
	Delete(id string) error
}

// WorkoutRepository defines the interface for workout sets.
type WorkoutRepository interface {
	Create(set *models.WorkoutSet) error
	GetAll() ([]models.WorkoutSet, error)
	GetByID(id string) (*models.WorkoutSet, error)
	Update(set *models.WorkoutSet) error
	Delete(id string) error
}

// SupplementRepository defines the interface for supplements.
type SupplementRepository interface {
	Create(s *models.Supplement) error
	GetAll() ([]models.Supplement, error)
	GetByID(id string) (*models.Supplement, error)
	Update(s *models.Supplement) error
	Delete(id string) error
}

// JournalRepository defines the interface for journal entries.
type JournalRepository interface {
	Create(entry *models.JournalEntry) error
	GetAll() ([]models.JournalEntry, error)
	GetByID(id string) (*models.JournalEntry, error)
	Update(entry *models.JournalEntry) error
	Delete(id string) error
}

// RoutineRepository defines the interface for exercise routines.
type RoutineRepository interface {
	Upsert(routine *models.Routine) (created bool, err error)
	GetAll() ([]models.Routine, error)
	GetByID(id string) (*models.Routine, error)
	Update(routine *models.Routine) error
	Delete(id string) error
}
