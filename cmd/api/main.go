package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"mockmate/interview-api/internal/config"
	"mockmate/interview-api/internal/handlers"
	"mockmate/interview-api/internal/middleware"
	"mockmate/interview-api/internal/repositories"
	"mockmate/interview-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	llmService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	interviewService := services.NewInterviewService(sessionRepo, resultRepo, llmService)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, tokenService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	adminHandler := handlers.NewAdminHandler(userRepo, sessionRepo, resultRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Mock Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now(),
		})
	})

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.HandleRegister)
	auth.Post("/login", authHandler.HandleLogin)

	interview := api.Group("/interview", middleware.Protect(tokenService))
	interview.Post("/start", interviewHandler.HandleStart)
	interview.Post("/evaluate", interviewHandler.HandleEvaluate)
	interview.Get("/report/:sessionId", interviewHandler.HandleReport)

	admin := api.Group("/admin", middleware.Protect(tokenService), middleware.AdminOnly)
	admin.Get("/stats", adminHandler.HandleStats)
	admin.Get("/users", adminHandler.HandleListUsers)
	admin.Get("/users/:userId", adminHandler.HandleUserDetail)
	admin.Get("/debug", adminHandler.HandleDebug)
	admin.Post("/migrate-orphans", adminHandler.HandleMigrateOrphans)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Mock Interview API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/register",
				"POST /api/v1/auth/login",
				"POST /api/v1/interview/start",
				"POST /api/v1/interview/evaluate",
				"GET /api/v1/interview/report/:sessionId",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
