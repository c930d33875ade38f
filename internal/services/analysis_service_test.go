package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/services"
	"fittrack/pkg/mistral"
)

// MockWorkoutRepository is a mock implementation of repositories.WorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(set *models.WorkoutSet) error {
	args := m.Called(set)
	return args.Error(0)
}

func (m *MockWorkoutRepository) GetAll() ([]models.WorkoutSet, error) {
	args := m.Called()
	return args.Get(0).([]models.WorkoutSet), args.Error(1)
}

func (m *MockWorkoutRepository) GetByID(id string) (*models.WorkoutSet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutSet), args.Error(1)
}

func (m *MockWorkoutRepository) Update(set *models.WorkoutSet) error {
	args := m.Called(set)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockSupplementRepository is a mock implementation of repositories.SupplementRepository
type MockSupplementRepository struct {
	mock.Mock
}

func (m *MockSupplementRepository) Create(s *models.Supplement) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSupplementRepository) GetAll() ([]models.Supplement, error) {
	args := m.Called()
	return args.Get(0).([]models.Supplement), args.Error(1)
}

func (m *MockSupplementRepository) GetByID(id string) (*models.Supplement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplement), args.Error(1)
}

func (m *MockSupplementRepository) Update(s *models.Supplement) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSupplementRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockJournalRepository is a mock implementation of repositories.JournalRepository
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) Create(entry *models.JournalEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockJournalRepository) GetAll() ([]models.JournalEntry, error) {
	args := m.Called()
	return args.Get(0).([]models.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) GetByID(id string) (*models.JournalEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) Update(entry *models.JournalEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockJournalRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockRoutineRepository is a mock implementation of repositories.RoutineRepository
type MockRoutineRepository struct {
	mock.Mock
}

func (m *MockRoutineRepository) Upsert(routine *models.Routine) (bool, error) {
	args := m.Called(routine)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoutineRepository) GetAll() ([]models.Routine, error) {
	args := m.Called()
	return args.Get(0).([]models.Routine), args.Error(1)
}

func (m *MockRoutineRepository) GetByID(id string) (*models.Routine, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineRepository) Update(routine *models.Routine) error {
	args := m.Called(routine)
	return args.Error(0)
}

func (m *MockRoutineRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockGenerator is a mock implementation of services.AnalysisGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateAnalysis(ctx context.Context, payload []byte, instruction string) (string, error) {
	args := m.Called(ctx, payload, instruction)
	return args.String(0), args.Error(1)
}

func newAnalysisFixture() (*services.AnalysisService, *MockGenerator) {
	weightRepo := new(MockWeightRepository)
	measurementRepo := new(MockMeasurementRepository)
	workoutRepo := new(MockWorkoutRepository)
	supplementRepo := new(MockSupplementRepository)
	journalRepo := new(MockJournalRepository)
	routineRepo := new(MockRoutineRepository)
	generator := new(MockGenerator)

	weightRepo.On("GetAll").Return([]models.WeightEntry{
		{ID: "w2", Date: "2024-01-02", Value: 80},
		{ID: "w1", Date: "2024-01-01", Value: 81},
	}, nil)
	measurementRepo.On("GetAll").Return([]models.BodyMeasurement{}, nil)
	workoutRepo.On("GetAll").Return([]models.WorkoutSet{
		{ID: "s1", Date: "2024-01-01", Exercise: "Squat", Sets: 4, Reps: 8},
	}, nil)
	supplementRepo.On("GetAll").Return([]models.Supplement{}, nil)
	journalRepo.On("GetAll").Return([]models.JournalEntry{}, nil)
	routineRepo.On("GetAll").Return([]models.Routine{}, nil)

	service := services.NewAnalysisService(
		weightRepo, measurementRepo, workoutRepo, supplementRepo, journalRepo, routineRepo,
		generator,
	)
	return service, generator
}

func TestAnalysisService_Analyze(t *testing.T) {
	service, generator := newAnalysisFixture()

	generator.On("GenerateAnalysis", mock.Anything, mock.Anything, "How is my progress?").
		Return("Looking good.", nil).Once()

	result, err := service.Analyze(context.Background(), "How is my progress?")
	assert.NoError(t, err)
	assert.Equal(t, "Looking good.", result.Analysis)
	assert.Equal(t, 2, result.Counts["weights"])
	assert.Equal(t, 1, result.Counts["workouts"])
	assert.Equal(t, 0, result.Counts["routines"])

	// The payload must be valid JSON with weights sorted by date.
	payload := generator.Calls[0].Arguments.Get(1).([]byte)
	var decoded struct {
		Weights []models.WeightEntry `json:"weights"`
	}
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "2024-01-01", decoded.Weights[0].Date)
	assert.Equal(t, "2024-01-02", decoded.Weights[1].Date)
	generator.AssertExpectations(t)
}

func TestAnalysisService_Analyze_DefaultInstruction(t *testing.T) {
	service, generator := newAnalysisFixture()

	generator.On("GenerateAnalysis", mock.Anything, mock.Anything, services.DefaultAnalysisInstruction).
		Return("Advice.", nil).Once()

	_, err := service.Analyze(context.Background(), "")
	assert.NoError(t, err)
	generator.AssertExpectations(t)
}

func TestAnalysisService_Analyze_UpstreamErrors(t *testing.T) {
	var upstream *apperrors.UpstreamError

	// An error response from the service maps to bad-gateway.
	service, generator := newAnalysisFixture()
	generator.On("GenerateAnalysis", mock.Anything, mock.Anything, mock.Anything).
		Return("", &mistral.APIError{StatusCode: 500, Body: "boom"}).Once()
	_, err := service.Analyze(context.Background(), "prompt")
	assert.ErrorAs(t, err, &upstream)
	assert.True(t, upstream.BadGateway)

	// An unreachable service maps to service-unavailable.
	service, generator = newAnalysisFixture()
	generator.On("GenerateAnalysis", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection refused")).Once()
	_, err = service.Analyze(context.Background(), "prompt")
	assert.ErrorAs(t, err, &upstream)
	assert.False(t, upstream.BadGateway)
}
