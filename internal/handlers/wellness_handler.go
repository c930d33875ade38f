package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fittrack/internal/models"
	"fittrack/internal/services"
)

// WellnessHandler handles HTTP requests for supplements and the
// physiological journal.
type WellnessHandler struct {
	service  *services.WellnessService
	validate *validator.Validate
}

// NewWellnessHandler creates a new WellnessHandler.
func NewWellnessHandler(service *services.WellnessService) *WellnessHandler {
	return &WellnessHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the supplement and journal routes.
func (h *WellnessHandler) RegisterRoutes(router fiber.Router) {
	supplements := router.Group("/supplements")
	supplements.Get("/", h.HandleGetSupplements)
	supplements.Post("/", h.HandleCreateSupplement)
	supplements.Get("/:id", h.HandleGetSupplementByID)
	supplements.Put("/:id", h.HandleUpdateSupplement)
	supplements.Delete("/:id", h.HandleDeleteSupplement)

	journal := router.Group("/journal-entries")
	journal.Get("/", h.HandleGetJournalEntries)
	journal.Post("/", h.HandleCreateJournalEntry)
	journal.Get("/:id", h.HandleGetJournalEntryByID)
	journal.Put("/:id", h.HandleUpdateJournalEntry)
	journal.Delete("/:id", h.HandleDeleteJournalEntry)
}

// HandleCreateSupplement stores a new supplement.
func (h *WellnessHandler) HandleCreateSupplement(c *fiber.Ctx) error {
	var sup models.Supplement
	if err := c.BodyParser(&sup); err != nil {
		return respondBadBody(c, err)
	}
	sup.ID = ""
	if err := h.validate.Struct(sup); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.CreateSupplement(&sup); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Supplement created",
		"supplement": sup,
	})
}

// HandleGetSupplements retrieves all supplements.
func (h *WellnessHandler) HandleGetSupplements(c *fiber.Ctx) error {
	supplements, err := h.service.GetAllSupplements()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplements)
}

// HandleGetSupplementByID retrieves one supplement.
func (h *WellnessHandler) HandleGetSupplementByID(c *fiber.Ctx) error {
	sup, err := h.service.GetSupplementByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sup)
}

// HandleUpdateSupplement replaces a supplement addressed by id.
func (h *WellnessHandler) HandleUpdateSupplement(c *fiber.Ctx) error {
	var sup models.Supplement
	if err := c.BodyParser(&sup); err != nil {
		return respondBadBody(c, err)
	}
	sup.ID = c.Params("id")
	if err := h.validate.StructExcept(sup, "ID"); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateSupplement(&sup); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":    "Supplement updated",
		"supplement": sup,
	})
}

// HandleDeleteSupplement removes a supplement.
func (h *WellnessHandler) HandleDeleteSupplement(c *fiber.Ctx) error {
	if err := h.service.DeleteSupplement(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplement deleted"})
}

// HandleCreateJournalEntry stores a new journal entry.
func (h *WellnessHandler) HandleCreateJournalEntry(c *fiber.Ctx) error {
	var entry models.JournalEntry
	if err := c.BodyParser(&entry); err != nil {
		return respondBadBody(c, err)
	}
	entry.ID = ""
	if err := h.validate.Struct(entry); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.CreateJournalEntry(&entry); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Journal entry created",
		"entry":   entry,
	})
}

// HandleGetJournalEntries retrieves all journal entries.
func (h *WellnessHandler) HandleGetJournalEntries(c *fiber.Ctx) error {
	entries, err := h.service.GetAllJournalEntries()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// HandleGetJournalEntryByID retrieves one journal entry.
func (h *WellnessHandler) HandleGetJournalEntryByID(c *fiber.Ctx) error {
	entry, err := h.service.GetJournalEntryByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// HandleUpdateJournalEntry replaces a journal entry addressed by id.
func (h *WellnessHandler) HandleUpdateJournalEntry(c *fiber.Ctx) error {
	var entry models.JournalEntry
	if err := c.BodyParser(&entry); err != nil {
		return respondBadBody(c, err)
	}
	entry.ID = c.Params("id")
	if err := h.validate.StructExcept(entry, "ID"); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateJournalEntry(&entry); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Journal entry updated",
		"entry":   entry,
	})
}

// HandleDeleteJournalEntry removes a journal entry.
func (h *WellnessHandler) HandleDeleteJournalEntry(c *fiber.Ctx) error {
	if err := h.service.DeleteJournalEntry(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Journal entry deleted"})
}
