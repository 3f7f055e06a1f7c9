package app

import (
	"errors"
	"fmt"
	"time"

	"academy_backend/database"
	"academy_backend/internal/auth"
	"academy_backend/internal/config"
	"academy_backend/internal/handlers"
	"academy_backend/internal/logger"
	"academy_backend/internal/middleware"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/routes"
	"academy_backend/internal/services"
	"academy_backend/internal/storage"
	"academy_backend/internal/utils"
	"academy_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedSuperAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed superadmin", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Tests call it
// directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	serviceContainer := initializeServices(cfg, store, tokens)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens, cfg.Storage.BasePath)

	return ginRouter
}

func initializeServices(cfg *config.Config, store storage.Storage, tokens *auth.TokenManager) *services.ServiceContainer {
	mailer := utils.NewEmailSender(cfg)
	if !mailer.Enabled() {
		logger.Warn("SMTP is not configured, welcome emails are disabled")
	}

	userRepo := repositories.NewUserRepository()
	videoRepo := repositories.NewVideoRepository()

	uploadService := services.NewUploadService(store, services.UploadConfig{
		ImageTypes:    cfg.Upload.ImageTypes,
		VideoTypes:    cfg.Upload.VideoTypes,
		MaxImageFiles: cfg.Upload.MaxImageFiles,
		MaxVideoSize:  cfg.Upload.MaxVideoSize,
	})

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, tokens),
		TrainerService: services.NewTrainerService(userRepo, mailer),
		StudentService: services.NewStudentService(userRepo, mailer),
		VideoService:   services.NewVideoService(userRepo, videoRepo),
		UploadService:  uploadService,
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedSuperAdmin creates the bootstrap superadmin account when the
// config names one and no user holds that email yet.
func seedSuperAdmin(db *gorm.DB, cfg *config.Config) error {
	email := cfg.Bootstrap.SuperAdminEmail
	password := cfg.Bootstrap.SuperAdminPassword

	if email == "" || password == "" {
		logger.Warn("Bootstrap superadmin is not configured. Skipping seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository()

	_, err := userRepo.FindByEmail(db, email)
	if err == nil {
		logger.Info("Superadmin already exists. Skipping creation.", "email", email)
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check for superadmin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash superadmin password: %w", err)
	}

	name := cfg.Bootstrap.SuperAdminName
	if name == "" {
		name = "Super Admin"
	}

	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleSuperAdmin,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return fmt.Errorf("failed to create superadmin: %w", err)
	}

	logger.Info("Bootstrap superadmin created", "email", email)
	return nil
}
