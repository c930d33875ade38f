package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// exportHeader is the fixed column order of the CSV export.
var exportHeader = []string{
	"date", "weight", "waist", "neck", "shoulders", "chest", "navel", "hips",
	"left_biceps", "right_biceps", "left_thigh", "right_thigh", "left_calf", "right_calf",
}

// BodyService handles body-weight entries and body measurements, including
// the merged CSV export.
type BodyService struct {
	weightRepo      repositories.WeightRepository
	measurementRepo repositories.MeasurementRepository
}

// NewBodyService creates a new BodyService.
func NewBodyService(weightRepo repositories.WeightRepository, measurementRepo repositories.MeasurementRepository) *BodyService {
	return &BodyService{
		weightRepo:      weightRepo,
		measurementRepo: measurementRepo,
	}
}

// UpsertWeight creates the entry or updates the row for the same date.
// The returned flag reports whether a new row was created.
func (s *BodyService) UpsertWeight(entry *models.WeightEntry) (bool, error) {
	return s.weightRepo.Upsert(entry)
}

// GetAllWeights retrieves all weight entries.
func (s *BodyService) GetAllWeights() ([]models.WeightEntry, error) {
	return s.weightRepo.GetAll()
}

// GetWeightByID retrieves a single weight entry.
func (s *BodyService) GetWeightByID(id string) (*models.WeightEntry, error) {
	return s.weightRepo.GetByID(id)
}

// UpdateWeight replaces an existing weight entry.
func (s *BodyService) UpdateWeight(entry *models.WeightEntry) error {
	return s.weightRepo.Update(entry)
}

// DeleteWeight removes a weight entry.
func (s *BodyService) DeleteWeight(id string) error {
	return s.weightRepo.Delete(id)
}

// UpsertMeasurement creates the measurement or merges the present fields
// into the row for the same date.
func (s *BodyService) UpsertMeasurement(m *models.BodyMeasurement) (bool, error) {
	return s.measurementRepo.Upsert(m)
}

// GetAllMeasurements retrieves all body measurements.
func (s *BodyService) GetAllMeasurements() ([]models.BodyMeasurement, error) {
	return s.measurementRepo.GetAll()
}

// GetMeasurementByID retrieves a single body measurement.
func (s *BodyService) GetMeasurementByID(id string) (*models.BodyMeasurement, error) {
	return s.measurementRepo.GetByID(id)
}

// UpdateMeasurement replaces an existing body measurement.
func (s *BodyService) UpdateMeasurement(m *models.BodyMeasurement) error {
	return s.measurementRepo.Update(m)
}

// DeleteMeasurement removes a body measurement.
func (s *BodyService) DeleteMeasurement(id string) error {
	return s.measurementRepo.Delete(id)
}

// ExportCSV folds weight entries and body measurements into one CSV row per
// distinct date, ascending. A date present in only one source still yields
// a row; the columns of the other source stay empty.
func (s *BodyService) ExportCSV() ([]byte, error) {
	weights, err := s.weightRepo.GetAll()
	if err != nil {
		return nil, err
	}
	measurements, err := s.measurementRepo.GetAll()
	if err != nil {
		return nil, err
	}

	type row struct {
		weight      *float64
		measurement *models.BodyMeasurement
	}
	byDate := make(map[string]*row)
	for i := range weights {
		v := weights[i].Value
		byDate[weights[i].Date] = &row{weight: &v}
	}
	for i := range measurements {
		m := &measurements[i]
		if r, ok := byDate[m.Date]; ok {
			r.measurement = m
		} else {
			byDate[m.Date] = &row{measurement: m}
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// Dates are zero-padded ISO strings, so lexical order is chronological.
	sort.Strings(dates)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	for _, d := range dates {
		r := byDate[d]
		record := make([]string, 0, len(exportHeader))
		record = append(record, d, formatOptional(r.weight))
		m := r.measurement
		if m == nil {
			m = &models.BodyMeasurement{}
		}
		record = append(record,
			formatOptional(m.Waist),
			formatOptional(m.Neck),
			formatOptional(m.Shoulders),
			formatOptional(m.Chest),
			formatOptional(m.Navel),
			formatOptional(m.Hips),
			formatOptional(m.LeftBiceps),
			formatOptional(m.RightBiceps),
			formatOptional(m.LeftThigh),
			formatOptional(m.RightThigh),
			formatOptional(m.LeftCalf),
			formatOptional(m.RightCalf),
		)
		if err := w.Write(record); err != nil {
			return nil, apperrors.NewInternal(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.NewInternal(fmt.Errorf("failed to write export: %w", err))
	}
	return buf.Bytes(), nil
}

// formatOptional renders an optional value with the shortest exact decimal
// representation, or empty when absent.
func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
