package app

import (
	"context"
	"fmt"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the repositories depend on.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if redisCache != nil {
		if err := redisCache.Ping(context.Background()); err != nil {
			logger.Warn("Redis unavailable, recommendation cache disabled", "error", err)
			redisCache = nil
		} else {
			logger.Info("Redis connected", "addr", cfg.Redis.Addr)
		}
	}

	ginRouter, worker := SetupRouter(cfg, gormDB, redisCache)

	if err := worker.Start(context.Background()); err != nil {
		logger.Fatal("Failed to start alert worker", "error", err)
	}
	defer worker.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, redisCache *cache.Cache) (*gin.Engine, *workers.AlertWorker) {
	userRepo := repositories.NewUserRepository(gormDB)
	orgRepo := repositories.NewOrganizationRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	vendorRepo := repositories.NewVendorRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	alertRepo := repositories.NewJobAlertRepository(gormDB)

	scoringService := services.NewScoringService(userRepo, jobRepo)
	serviceContainer := &services.ServiceContainer{
		UserService:         services.NewUserService(userRepo),
		OrganizationService: services.NewOrganizationService(orgRepo),
		JobService:          services.NewJobService(jobRepo, orgRepo),
		VendorService:       services.NewVendorService(vendorRepo),
		ApplicationService: services.NewApplicationService(
			applicationRepo, jobRepo, userRepo, vendorRepo, notificationRepo, scoringService, redisCache,
		),
		ScoringService: scoringService,
		SearchService:  services.NewSearchService(jobRepo),
		RecommendationService: services.NewRecommendationService(
			userRepo, jobRepo, applicationRepo, redisCache,
			time.Duration(cfg.Recommendations.CacheTTLSeconds)*time.Second,
		),
		NotificationService: services.NewNotificationService(notificationRepo),
		AlertService:        services.NewAlertService(alertRepo, userRepo),
	}

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		UserHandler:         handlers.NewUserHandler(base, serviceContainer.UserService),
		OrganizationHandler: handlers.NewOrganizationHandler(base, serviceContainer.OrganizationService),
		JobHandler:          handlers.NewJobHandler(base, serviceContainer.JobService),
		VendorHandler:       handlers.NewVendorHandler(base, serviceContainer.VendorService),
		ApplicationHandler:  handlers.NewApplicationHandler(base, serviceContainer.ApplicationService),
		ScoringHandler:      handlers.NewScoringHandler(base, serviceContainer.ScoringService),
		SearchHandler: handlers.NewSearchHandler(
			base, serviceContainer.SearchService, serviceContainer.RecommendationService,
		),
		NotificationHandler: handlers.NewNotificationHandler(base, serviceContainer.NotificationService),
		AlertHandler:        handlers.NewAlertHandler(base, serviceContainer.AlertService),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		gin.Recovery(),
	)

	routes.RegisterRoutes(ginRouter, appHandlers)

	worker := workers.NewAlertWorker(alertRepo, jobRepo, notificationRepo, cfg.Alerts.Schedule)
	return ginRouter, worker
}
