package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fittrack/internal/services"
)

// AnalysisHandler handles the AI analysis passthrough.
type AnalysisHandler struct {
	service  *services.AnalysisService
	validate *validator.Validate
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(service *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the analysis route.
func (h *AnalysisHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/analysis", h.HandleAnalyze)
}

// AnalysisRequest is the request body for the analysis route. The prompt
// is optional; a default instruction is used when it is empty.
type AnalysisRequest struct {
	Prompt string `json:"prompt" validate:"omitempty,max=2000"`
}

// HandleAnalyze forwards all tracked data to the external analysis service
// and relays the generated text with per-entity row counts.
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req AnalysisRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return respondBadBody(c, err)
		}
		if err := h.validate.Struct(req); err != nil {
			return respondValidation(c, err)
		}
	}

	result, err := h.service.Analyze(c.UserContext(), req.Prompt)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
