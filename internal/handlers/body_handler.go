package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fittrack/internal/models"
	"fittrack/internal/services"
)

// BodyHandler handles HTTP requests for weight entries, body measurements
// and the CSV export.
type BodyHandler struct {
	service  *services.BodyService
	validate *validator.Validate
}

// NewBodyHandler creates a new BodyHandler.
func NewBodyHandler(service *services.BodyService) *BodyHandler {
	return &BodyHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the weight, measurement and export routes.
func (h *BodyHandler) RegisterRoutes(router fiber.Router) {
	weights := router.Group("/weights")
	weights.Get("/", h.HandleGetWeights)
	weights.Post("/", h.HandleUpsertWeight)
	weights.Get("/:id", h.HandleGetWeightByID)
	weights.Put("/:id", h.HandleUpdateWeight)
	weights.Delete("/:id", h.HandleDeleteWeight)

	measurements := router.Group("/measurements")
	measurements.Get("/", h.HandleGetMeasurements)
	measurements.Post("/", h.HandleUpsertMeasurement)
	measurements.Get("/:id", h.HandleGetMeasurementByID)
	measurements.Put("/:id", h.HandleUpdateMeasurement)
	measurements.Delete("/:id", h.HandleDeleteMeasurement)

	router.Get("/export/csv", h.HandleExportCSV)
}

// HandleUpsertWeight creates a weight entry, or updates the entry already
// stored for the same date. 201 signals a new row, 200 an update.
func (h *BodyHandler) HandleUpsertWeight(c *fiber.Ctx) error {
	var entry models.WeightEntry
	if err := c.BodyParser(&entry); err != nil {
		return respondBadBody(c, err)
	}
	entry.ID = ""
	if err := h.validate.Struct(entry); err != nil {
		return respondValidation(c, err)
	}

	created, err := h.service.UpsertWeight(&entry)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Weight entry updated"
	if created {
		status = fiber.StatusCreated
		message = "Weight entry created"
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"entry":   entry,
	})
}

// HandleGetWeights retrieves all weight entries.
func (h *BodyHandler) HandleGetWeights(c *fiber.Ctx) error {
	entries, err := h.service.GetAllWeights()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// HandleGetWeightByID retrieves one weight entry.
func (h *BodyHandler) HandleGetWeightByID(c *fiber.Ctx) error {
	entry, err := h.service.GetWeightByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// HandleUpdateWeight replaces a weight entry addressed by id.
func (h *BodyHandler) HandleUpdateWeight(c *fiber.Ctx) error {
	var entry models.WeightEntry
	if err := c.BodyParser(&entry); err != nil {
		return respondBadBody(c, err)
	}
	entry.ID = c.Params("id")
	if err := h.validate.StructExcept(entry, "ID"); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateWeight(&entry); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Weight entry updated",
		"entry":   entry,
	})
}

// HandleDeleteWeight removes a weight entry.
func (h *BodyHandler) HandleDeleteWeight(c *fiber.Ctx) error {
	if err := h.service.DeleteWeight(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Weight entry deleted"})
}

// HandleUpsertMeasurement creates a measurement, or merges the present
// fields into the measurement stored for the same date.
func (h *BodyHandler) HandleUpsertMeasurement(c *fiber.Ctx) error {
	var m models.BodyMeasurement
	if err := c.BodyParser(&m); err != nil {
		return respondBadBody(c, err)
	}
	m.ID = ""
	if err := h.validate.Struct(m); err != nil {
		return respondValidation(c, err)
	}

	created, err := h.service.UpsertMeasurement(&m)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Measurements updated"
	if created {
		status = fiber.StatusCreated
		message = "Measurements created"
	}
	return c.Status(status).JSON(fiber.Map{
		"message":     message,
		"measurement": m,
	})
}

// HandleGetMeasurements retrieves all body measurements.
func (h *BodyHandler) HandleGetMeasurements(c *fiber.Ctx) error {
	measurements, err := h.service.GetAllMeasurements()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(measurements)
}

// HandleGetMeasurementByID retrieves one body measurement.
func (h *BodyHandler) HandleGetMeasurementByID(c *fiber.Ctx) error {
	m, err := h.service.GetMeasurementByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// HandleUpdateMeasurement replaces a body measurement addressed by id.
// Unlike the upsert, fields absent from the payload are cleared.
func (h *BodyHandler) HandleUpdateMeasurement(c *fiber.Ctx) error {
	var m models.BodyMeasurement
	if err := c.BodyParser(&m); err != nil {
		return respondBadBody(c, err)
	}
	m.ID = c.Params("id")
	if err := h.validate.StructExcept(m, "ID"); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateMeasurement(&m); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":     "Measurements updated",
		"measurement": m,
	})
}

// HandleDeleteMeasurement removes a body measurement.
func (h *BodyHandler) HandleDeleteMeasurement(c *fiber.Ctx) error {
	if err := h.service.DeleteMeasurement(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Measurements deleted"})
}

// HandleExportCSV streams the merged weight/measurement table as CSV.
func (h *BodyHandler) HandleExportCSV(c *fiber.Ctx) error {
	data, err := h.service.ExportCSV()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="export.csv"`)
	return c.Send(data)
}
