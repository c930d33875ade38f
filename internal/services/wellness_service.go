package services

import (
	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// WellnessService handles supplements and the physiological journal.
type WellnessService struct {
	supplementRepo repositories.SupplementRepository
	journalRepo    repositories.JournalRepository
}

// NewWellnessService creates a new WellnessService.
func NewWellnessService(supplementRepo repositories.SupplementRepository, journalRepo repositories.JournalRepository) *WellnessService {
	return &WellnessService{
		supplementRepo: supplementRepo,
		journalRepo:    journalRepo,
	}
}

// CreateSupplement stores a new supplement.
func (s *WellnessService) CreateSupplement(sup *models.Supplement) error {
	return s.supplementRepo.Create(sup)
}

// GetAllSupplements retrieves all supplements.
func (s *WellnessService) GetAllSupplements() ([]models.Supplement, error) {
	return s.supplementRepo.GetAll()
}

// GetSupplementByID retrieves a single supplement.
func (s *WellnessService) GetSupplementByID(id string) (*models.Supplement, error) {
	return s.supplementRepo.GetByID(id)
}

// UpdateSupplement replaces an existing supplement.
func (s *WellnessService) UpdateSupplement(sup *models.Supplement) error {
	return s.supplementRepo.Update(sup)
}

// DeleteSupplement removes a supplement.
func (s *WellnessService) DeleteSupplement(id string) error {
	return s.supplementRepo.Delete(id)
}

// CreateJournalEntry stores a new journal entry.
func (s *WellnessService) CreateJournalEntry(entry *models.JournalEntry) error {
	return s.journalRepo.Create(entry)
}

// GetAllJournalEntries retrieves all journal entries.
func (s *WellnessService) GetAllJournalEntries() ([]models.JournalEntry, error) {
	return s.journalRepo.GetAll()
}

// GetJournalEntryByID retrieves a single journal entry.
func (s *WellnessService) GetJournalEntryByID(id string) (*models.JournalEntry, error) {
	return s.journalRepo.GetByID(id)
}

// UpdateJournalEntry replaces an existing journal entry.
func (s *WellnessService) UpdateJournalEntry(entry *models.JournalEntry) error {
	return s.journalRepo.Update(entry)
}

// DeleteJournalEntry removes a journal entry.
func (s *WellnessService) DeleteJournalEntry(id string) error {
	return s.journalRepo.Delete(id)
}
