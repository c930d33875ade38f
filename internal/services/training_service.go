package services

import (
	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// TrainingService handles workout sets and exercise routines.
type TrainingService struct {
	workoutRepo repositories.WorkoutRepository
	routineRepo repositories.RoutineRepository
}

// NewTrainingService creates a new TrainingService.
func NewTrainingService(workoutRepo repositories.WorkoutRepository, routineRepo repositories.RoutineRepository) *TrainingService {
	return &TrainingService{
		workoutRepo: workoutRepo,
		routineRepo: routineRepo,
	}
}

// CreateWorkout stores a new workout set. Sets carry no natural key, so
// every create yields a fresh row.
func (s *TrainingService) CreateWorkout(set *models.WorkoutSet) error {
	return s.workoutRepo.Create(set)
}

// GetAllWorkouts retrieves all workout sets.
func (s *TrainingService) GetAllWorkouts() ([]models.WorkoutSet, error) {
	return s.workoutRepo.GetAll()
}

// GetWorkoutByID retrieves a single workout set.
func (s *TrainingService) GetWorkoutByID(id string) (*models.WorkoutSet, error) {
	return s.workoutRepo.GetByID(id)
}

// UpdateWorkout replaces an existing workout set.
func (s *TrainingService) UpdateWorkout(set *models.WorkoutSet) error {
	return s.workoutRepo.Update(set)
}

// DeleteWorkout removes a workout set.
func (s *TrainingService) DeleteWorkout(id string) error {
	return s.workoutRepo.Delete(id)
}

// UpsertRoutine creates the routine or replaces the exercise list of the
// routine with the same name.
func (s *TrainingService) UpsertRoutine(routine *models.Routine) (bool, error) {
	return s.routineRepo.Upsert(routine)
}

// GetAllRoutines retrieves all routines.
func (s *TrainingService) GetAllRoutines() ([]models.Routine, error) {
	return s.routineRepo.GetAll()
}

// GetRoutineByID retrieves a single routine.
func (s *TrainingService) GetRoutineByID(id string) (*models.Routine, error) {
	return s.routineRepo.GetByID(id)
}

// UpdateRoutine replaces an existing routine.
func (s *TrainingService) UpdateRoutine(routine *models.Routine) error {
	return s.routineRepo.Update(routine)
}

// DeleteRoutine removes a routine.
func (s *TrainingService) DeleteRoutine(id string) error {
	return s.routineRepo.Delete(id)
}
