package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"fittrack/internal/config"
	"fittrack/internal/handlers"
	"fittrack/internal/middleware"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
	"fittrack/pkg/mistral"
)

func main() {
	cfg := config.Load()

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		// Throwaway key: every restart logs out all sessions, and multiple
		// processes will not accept each other's tokens.
		jwtSecret = services.RandomSigningKey()
		log.Println("WARNING: JWT_SECRET not configured, generated a process-local signing key")
	}

	// --- Store ---
	db, err := repositories.OpenDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	weightRepo := repositories.NewGORMWeightRepository(db)
	measurementRepo := repositories.NewGORMMeasurementRepository(db)
	workoutRepo := repositories.NewGORMWorkoutRepository(db)
	supplementRepo := repositories.NewGORMSupplementRepository(db)
	journalRepo := repositories.NewGORMJournalRepository(db)
	routineRepo := repositories.NewGORMRoutineRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret, cfg.TokenLifetime)
	bodyService := services.NewBodyService(weightRepo, measurementRepo)
	trainingService := services.NewTrainingService(workoutRepo, routineRepo)
	wellnessService := services.NewWellnessService(supplementRepo, journalRepo)
	mistralClient := mistral.NewClient(mistral.Config{
		APIKey:  cfg.MistralAPIKey,
		BaseURL: cfg.MistralAPIURL,
	})
	analysisService := services.NewAnalysisService(
		weightRepo, measurementRepo, workoutRepo, supplementRepo, journalRepo, routineRepo,
		mistralClient,
	)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	bodyHandler := handlers.NewBodyHandler(bodyService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	// --- Fiber App ---
	app := fiber.New()

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Authorization, Content-Type",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	if cfg.IsProduction() {
		app.Use(middleware.StrictTransport())
	}

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	bodyHandler.RegisterRoutes(protected)
	trainingHandler.RegisterRoutes(protected)
	wellnessHandler.RegisterRoutes(protected)
	analysisHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Interactive route listing, development only.
	if !cfg.IsProduction() {
		app.Get("/docs", func(c *fiber.Ctx) error {
			type routeDoc struct {
				Method string `json:"method"`
				Path   string `json:"path"`
			}
			var docs []routeDoc
			for _, group := range app.Stack() {
				for _, route := range group {
					if route.Path == "/" || route.Method == "HEAD" {
						continue
					}
					docs = append(docs, routeDoc{Method: route.Method, Path: route.Path})
				}
			}
			return c.JSON(docs)
		})
	}

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := cfg.Address()
		if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
			log.Printf("Starting HTTPS server on %s", addr)
			if err := app.ListenTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile); err != nil {
				log.Fatalf("Server failed to start: %v", err)
			}
			return
		}
		log.Printf("WARNING: TLS certificate not configured, serving plaintext HTTP on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
