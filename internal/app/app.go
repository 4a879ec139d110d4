package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fitclub_backend/database"
	"fitclub_backend/internal/auth"
	"fitclub_backend/internal/config"
	"fitclub_backend/internal/email"
	"fitclub_backend/internal/handlers"
	"fitclub_backend/internal/logger"
	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/internal/routes"
	"fitclub_backend/internal/services"
	"fitclub_backend/internal/validator"
)

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
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstOwner(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first owner account", "error", err)
	}

	stop := make(chan struct{})
	defer close(stop)
	auth.Revocations.StartJanitor(time.Minute, stop)

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewGomailProvider(cfg)
	} else {
		logger.Warn("SMTP is not configured, outgoing email is disabled")
		emailProvider = &noopEmailProvider{}
	}

	userRepo := repositories.NewUserRepository()
	trainerRepo := repositories.NewTrainerRepository()
	planRepo := repositories.NewPlanRepository()
	shopRepo := repositories.NewShopRepository()
	orderRepo := repositories.NewOrderRepository()
	contactRepo := repositories.NewContactRepository()

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(userRepo, trainerRepo, auth.Revocations),
		UserService:       services.NewUserService(userRepo, trainerRepo, orderRepo),
		TrainerService:    services.NewTrainerService(trainerRepo),
		MembershipService: services.NewMembershipService(planRepo, userRepo),
		ShopService:       services.NewShopService(shopRepo, userRepo, orderRepo),
		OrderService:      services.NewOrderService(orderRepo, shopRepo, userRepo, emailProvider),
		PortalService:     services.NewPortalService(trainerRepo, userRepo, emailProvider),
		ContactService:    services.NewContactService(contactRepo),
		AdminService:      services.NewAdminService(userRepo, trainerRepo),
		EmailProvider:     emailProvider,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, sc.AuthService),
		UserHandler:       handlers.NewUserHandler(baseHandler, sc.UserService),
		TrainerHandler:    handlers.NewTrainerHandler(baseHandler, sc.TrainerService),
		MembershipHandler: handlers.NewMembershipHandler(baseHandler, sc.MembershipService),
		ShopHandler:       handlers.NewShopHandler(baseHandler, sc.ShopService),
		OrderHandler:      handlers.NewOrderHandler(baseHandler, sc.OrderService),
		PortalHandler:     handlers.NewPortalHandler(baseHandler, sc.PortalService),
		ContactHandler:    handlers.NewContactHandler(baseHandler, sc.ContactService),
		AdminHandler:      handlers.NewAdminHandler(baseHandler, sc.AdminService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.FrontendURL))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstOwner creates the first OWNER account from config. Skipped when
// the seed credentials are not set or the account already exists.
func seedFirstOwner(db *gorm.DB, cfg *config.Config) error {
	ownerEmail := cfg.Seed.OwnerEmail
	ownerPassword := cfg.Seed.OwnerPassword

	if ownerEmail == "" || ownerPassword == "" {
		logger.Warn("Seed owner credentials are not set, skipping owner seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", ownerEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Owner account already exists, skipping creation", "email", ownerEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for owner account: %w", result.Error)
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	name := cfg.Seed.OwnerName
	if name == "" {
		name = "Owner"
	}
	owner := &models.User{
		Name:         name,
		Email:        ownerEmail,
		PasswordHash: hash,
		Role:         models.UserRoleOwner,
	}
	if err := db.Create(owner).Error; err != nil {
		return fmt.Errorf("failed to create owner account: %w", err)
	}

	logger.Info("Created first owner account", "email", ownerEmail)
	return nil
}
