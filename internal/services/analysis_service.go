package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/pkg/mistral"
)

// DefaultAnalysisInstruction is used when the caller supplies no prompt.
const DefaultAnalysisInstruction = "Analyze my physical transformation data and give me personalized advice"

// AnalysisGenerator is the capability the analysis passthrough needs from
// the external text-generation service.
type AnalysisGenerator interface {
	GenerateAnalysis(ctx context.Context, payload []byte, instruction string) (string, error)
}

// AnalysisResult carries the generated text and the number of rows of each
// entity kind that were included in the payload.
type AnalysisResult struct {
	Analysis string         `json:"analysis"`
	Counts   map[string]int `json:"counts"`
}

// AnalysisService gathers every tracked row, forwards it to the external
// generator and relays the generated text without interpreting it.
type AnalysisService struct {
	weightRepo      repositories.WeightRepository
	measurementRepo repositories.MeasurementRepository
	workoutRepo     repositories.WorkoutRepository
	supplementRepo  repositories.SupplementRepository
	journalRepo     repositories.JournalRepository
	routineRepo     repositories.RoutineRepository
	generator       AnalysisGenerator
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(
	weightRepo repositories.WeightRepository,
	measurementRepo repositories.MeasurementRepository,
	workoutRepo repositories.WorkoutRepository,
	supplementRepo repositories.SupplementRepository,
	journalRepo repositories.JournalRepository,
	routineRepo repositories.RoutineRepository,
	generator AnalysisGenerator,
) *AnalysisService {
	return &AnalysisService{
		weightRepo:      weightRepo,
		measurementRepo: measurementRepo,
		workoutRepo:     workoutRepo,
		supplementRepo:  supplementRepo,
		journalRepo:     journalRepo,
		routineRepo:     routineRepo,
		generator:       generator,
	}
}

// analysisPayload is the structured document forwarded to the generator.
type analysisPayload struct {
	Weights      []models.WeightEntry     `json:"weights"`
	Measurements []models.BodyMeasurement `json:"measurements"`
	Workouts     []models.WorkoutSet      `json:"workouts"`
	Supplements  []models.Supplement      `json:"supplements"`
	Journal      []models.JournalEntry    `json:"journal"`
	Routines     []models.Routine         `json:"routines"`
}

// Analyze serializes all rows ordered by date and asks the external service
// for an analysis guided by the instruction. Upstream failures are not
// retried: an unreachable service maps to service-unavailable, an error
// response to bad-gateway.
func (s *AnalysisService) Analyze(ctx context.Context, instruction string) (*AnalysisResult, error) {
	if instruction == "" {
		instruction = DefaultAnalysisInstruction
	}

	payload, counts, err := s.collect()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	text, err := s.generator.GenerateAnalysis(ctx, body, instruction)
	if err != nil {
		var apiErr *mistral.APIError
		if errors.As(err, &apiErr) {
			return nil, &apperrors.UpstreamError{Message: "analysis service returned an error", BadGateway: true, Err: err}
		}
		return nil, &apperrors.UpstreamError{Message: "analysis service unreachable", Err: err}
	}

	return &AnalysisResult{Analysis: text, Counts: counts}, nil
}

// collect loads every entity kind and sorts each slice chronologically.
func (s *AnalysisService) collect() (*analysisPayload, map[string]int, error) {
	weights, err := s.weightRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i].Date < weights[j].Date })

	measurements, err := s.measurementRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(measurements, func(i, j int) bool { return measurements[i].Date < measurements[j].Date })

	workouts, err := s.workoutRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].Date < workouts[j].Date })

	supplements, err := s.supplementRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(supplements, func(i, j int) bool { return supplements[i].StartDate < supplements[j].StartDate })

	journal, err := s.journalRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(journal, func(i, j int) bool { return journal[i].Date < journal[j].Date })

	routines, err := s.routineRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(routines, func(i, j int) bool { return routines[i].UpdatedAt < routines[j].UpdatedAt })

	payload := &analysisPayload{
		Weights:      weights,
		Measurements: measurements,
		Workouts:     workouts,
		Supplements:  supplements,
		Journal:      journal,
		Routines:     routines,
	}
	counts := map[string]int{
		"weights":      len(weights),
		"measurements": len(measurements),
		"workouts":     len(workouts),
		"supplements":  len(supplements),
		"journal":      len(journal),
		"routines":     len(routines),
	}
	return payload, counts, nil
}
