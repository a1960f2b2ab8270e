package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"localpro_backend/database"
	"localpro_backend/internal/config"
	"localpro_backend/internal/email"
	"localpro_backend/internal/handlers"
	"localpro_backend/internal/logger"
	"localpro_backend/internal/middleware"
	"localpro_backend/internal/repositories"
	"localpro_backend/internal/routes"
	"localpro_backend/internal/services"
	"localpro_backend/internal/storage"
	"localpro_backend/internal/validator"
)

// Run boots the application: config, logger, database, migrations and
// the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedCategories(gormDB); err != nil {
		logger.Fatal("Category seeding failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin
// engine. Tests call it directly with their own database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("SMTP is not configured, outgoing email is logged only")
		emailService = email.NewLogProvider()
	}

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	serviceRepo := repositories.NewServiceRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	uploadRepo := repositories.NewUploadRepository(gormDB)

	uploadConfig := &services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, profileRepo, refreshTokenRepo, emailService),
		ProfileService:  services.NewProfileService(profileRepo),
		ServiceService:  services.NewServiceService(serviceRepo, categoryRepo),
		CategoryService: services.NewCategoryService(categoryRepo),
		ReviewService:   services.NewReviewService(reviewRepo, serviceRepo),
		UploadService:   services.NewUploadService(uploadRepo, storageInstance, uploadConfig),
		EmailService:    emailService,
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		ProfileHandler:  handlers.NewProfileHandler(baseHandler, container.ProfileService),
		ServiceHandler:  handlers.NewServiceHandler(baseHandler, container.ServiceService, container.ReviewService),
		CategoryHandler: handlers.NewCategoryHandler(baseHandler, container.CategoryService),
		UploadHandler:   handlers.NewUploadHandler(baseHandler, container.UploadService),
		FileHandler:     handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
