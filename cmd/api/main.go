package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/everafter/gallery-backend/internal/config"
	"github.com/everafter/gallery-backend/internal/handler"
	"github.com/everafter/gallery-backend/internal/repository"
	"github.com/everafter/gallery-backend/internal/service"
	"github.com/everafter/gallery-backend/pkg/database"
	"github.com/everafter/gallery-backend/pkg/logger"
	"github.com/everafter/gallery-backend/pkg/utils"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Repositories. With DATABASE_URL set everything lives in Postgres;
	// otherwise state is held in process-local maps and resets on restart.
	var (
		adminRepo    repository.AdminRepository
		customerRepo repository.CustomerRepository
		settingsRepo repository.SettingsRepository
		statsRepo    repository.StatsRepository
		galleryRepo  repository.GalleryRepository
		userRepo     repository.UserRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := database.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			zapLogger.Fatal("failed to connect to database", zap.Error(err))
		}
		adminRepo = repository.NewGormAdminRepository(db)
		customerRepo = repository.NewGormCustomerRepository(db)
		settingsRepo = repository.NewGormSettingsRepository(db)
		statsRepo = repository.NewGormStatsRepository(db)
		galleryRepo = repository.NewGormGalleryRepository(db)
		userRepo = repository.NewGormUserRepository(db)
		zapLogger.Info("using postgres storage")
	} else {
		adminRepo = repository.NewMemoryAdminRepository()
		customerRepo = repository.NewMemoryCustomerRepository()
		settingsRepo = repository.NewMemorySettingsRepository()
		statsRepo = repository.NewMemoryStatsRepository()
		galleryRepo = repository.NewMemoryGalleryRepository()
		userRepo = repository.NewMemoryUserRepository()
		zapLogger.Info("using in-memory storage")
	}

	// Services
	authService := service.NewAuthService(adminRepo, customerRepo, settingsRepo, zapLogger)
	customerService := service.NewCustomerService(customerRepo, settingsRepo, statsRepo, zapLogger)
	galleryService := service.NewGalleryService(galleryRepo, zapLogger)
	userService := service.NewUserService(userRepo)

	// Default admin + demo tenants
	if err := database.Seed(adminRepo, customerService, cfg.SeedDemo, zapLogger); err != nil {
		zapLogger.Fatal("failed to seed data", zap.Error(err))
	}

	// Validator
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	customerHandler := handler.NewCustomerHandler(customerService, validator)
	galleryHandler := handler.NewGalleryHandler(galleryService, validator)
	userHandler := handler.NewUserHandler(userService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handler.RegisterRoutes(app, authHandler, customerHandler, galleryHandler, userHandler)

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
