package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fittrack/internal/models"
	"fittrack/internal/services"
)

// TrainingHandler handles HTTP requests for workout sets and routines.
type TrainingHandler struct {
	service  *services.TrainingService
	validate *validator.Validate
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(service *services.TrainingService) *TrainingHandler {
	return &TrainingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the workout and routine routes.
func (h *TrainingHandler) RegisterRoutes(router fiber.Router) {
	workouts := router.Group("/workouts")
	workouts.Get("/", h.HandleGetWorkouts)
	workouts.Post("/", h.HandleCreateWorkout)
	workouts.Get("/:id", h.HandleGetWorkoutByID)
	workouts.Put("/:id", h.HandleUpdateWorkout)
	workouts.Delete("/:id", h.HandleDeleteWorkout)

	routines := router.Group("/routines")
	routines.Get("/", h.HandleGetRoutines)
	routines.Post("/", h.HandleUpsertRoutine)
	routines.Get("/:id", h.HandleGetRoutineByID)
	routines.Put("/:id", h.HandleUpdateRoutine)
	routines.Delete("/:id", h.HandleDeleteRoutine)
}

// HandleCreateWorkout stores a new workout set. Every create yields a new
// row, even for identical payloads.
func (h *TrainingHandler) HandleCreateWorkout(c *fiber.Ctx) error {
	var set models.WorkoutSet
	if err := c.BodyParser(&set); err != nil {
		return respondBadBody(c, err)
	}
	set.ID = ""
	if err := h.validate.Struct(set); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.CreateWorkout(&set); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Workout set created",
		"workout": set,
	})
}

// HandleGetWorkouts retrieves all workout sets.
func (h *TrainingHandler) HandleGetWorkouts(c *fiber.Ctx) error {
	sets, err := h.service.GetAllWorkouts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sets)
}

// HandleGetWorkoutByID retrieves one workout set.
func (h *TrainingHandler) HandleGetWorkoutByID(c *fiber.Ctx) error {
	set, err := h.service.GetWorkoutByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(set)
}

// HandleUpdateWorkout replaces a workout set addressed by id.
func (h *TrainingHandler) HandleUpdateWorkout(c *fiber.Ctx) error {
	var set models.WorkoutSet
	if err := c.BodyParser(&set); err != nil {
		return respondBadBody(c, err)
	}
	set.ID = c.Params("id")
	if err := h.validate.StructExcept(set, "ID"); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateWorkout(&set); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Workout set updated",
		"workout": set,
	})
}

// HandleDeleteWorkout removes a workout set.
func (h *TrainingHandler) HandleDeleteWorkout(c *fiber.Ctx) error {
	if err := h.service.DeleteWorkout(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Workout set deleted"})
}

// HandleUpsertRoutine creates a routine, or replaces the exercise list of
// the routine already stored under the same name.
func (h *TrainingHandler) HandleUpsertRoutine(c *fiber.Ctx) error {
	var routine models.Routine
	if err := c.BodyParser(&routine); err != nil {
		return respondBadBody(c, err)
	}
	routine.ID = ""
	routine.UpdatedAt = ""
	if err := h.validate.Struct(routine); err != nil {
		return respondValidation(c, err)
	}

	created, err := h.service.UpsertRoutine(&routine)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Routine updated"
	if created {
		status = fiber.StatusCreated
		message = "Routine created"
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"routine": routine,
	})
}

// HandleGetRoutines retrieves all routines.
func (h *TrainingHandler) HandleGetRoutines(c *fiber.Ctx) error {
	routines, err := h.service.GetAllRoutines()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(routines)
}

// HandleGetRoutineByID retrieves one routine.
func (h *TrainingHandler) HandleGetRoutineByID(c *fiber.Ctx) error {
	routine, err := h.service.GetRoutineByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(routine)
}

// HandleUpdateRoutine replaces a routine addressed by id.
func (h *TrainingHandler) HandleUpdateRoutine(c *fiber.Ctx) error {
	var routine models.Routine
	if err := c.BodyParser(&routine); err != nil {
		return respondBadBody(c, err)
	}
	routine.ID = c.Params("id")
	if err := h.validate.StructExcept(routine, "ID"); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateRoutine(&routine); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Routine updated",
		"routine": routine,
	})
}

// HandleDeleteRoutine removes a routine.
func (h *TrainingHandler) HandleDeleteRoutine(c *fiber.Ctx) error {
	if err := h.service.DeleteRoutine(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Routine deleted"})
}
