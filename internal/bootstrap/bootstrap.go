package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	appControllers "github.com/chwc/clinicops/internal/app/controllers"
	appMigrations "github.com/chwc/clinicops/internal/app/migrations"
	appRepos "github.com/chwc/clinicops/internal/app/repositories"
	appRoutes "github.com/chwc/clinicops/internal/app/routes"
	appServices "github.com/chwc/clinicops/internal/app/services"
	"github.com/chwc/clinicops/internal/config"
	"github.com/chwc/clinicops/internal/db"
	appMiddleware "github.com/chwc/clinicops/internal/middleware"
	pkgAuth "github.com/chwc/clinicops/internal/pkg/auth"
	"github.com/chwc/clinicops/internal/pkg/filestorage"
	"github.com/chwc/clinicops/internal/pkg/helpers"
	"github.com/chwc/clinicops/internal/pkg/logger"
	"github.com/chwc/clinicops/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	EligibilityService    appServices.EligibilityService
	OnboardingService     appServices.OnboardingService
	DocumentService       appServices.DocumentService
	AppointmentService    appServices.AppointmentService
	EmergencyService      appServices.EmergencyService
	StudentService        appServices.StudentService
	ScheduleService       appServices.ScheduleService
	AuthController        *appControllers.AuthController
	EligibilityController *appControllers.EligibilityController
	OnboardingController  *appControllers.OnboardingController
	DocumentController    *appControllers.DocumentController
	AppointmentController *appControllers.AppointmentController
	EmergencyController   *appControllers.EmergencyController
	StudentController     *appControllers.StudentController
	ScheduleController    *appControllers.ScheduleController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	FileStorage           *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		logger.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	// Databases that predate the review workflow get the columns added here
	if err := migrator.EnsureApprovalColumns(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Failed to ensure approval columns")
		dbPool.Close()
		return nil, err
	}

	logger.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(
		cfg.JWT.Secret,
		helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		cfg.JWT.Issuer,
	)

	deps.EligibilityService = appServices.NewEligibilityService(
		deps.Repos.OnboardingRepository,
		deps.Repos.DocumentRepository,
	)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.EligibilityService,
		deps.JWTService,
	)
	deps.OnboardingService = appServices.NewOnboardingService(deps.Repos.OnboardingRepository)
	deps.DocumentService = appServices.NewDocumentService(deps.Repos.DocumentRepository, deps.FileStorage)
	deps.AppointmentService = appServices.NewAppointmentService(deps.Repos.AppointmentRepository, deps.EligibilityService)
	deps.EmergencyService = appServices.NewEmergencyService(deps.Repos.EmergencyRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.UserRepository)
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.ScheduleRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.EligibilityController = appControllers.NewEligibilityController(deps.EligibilityService)
	deps.OnboardingController = appControllers.NewOnboardingController(deps.OnboardingService)
	deps.DocumentController = appControllers.NewDocumentController(deps.DocumentService)
	deps.AppointmentController = appControllers.NewAppointmentController(deps.AppointmentService)
	deps.EmergencyController = appControllers.NewEmergencyController(deps.EmergencyService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.Static("/uploads", cfg.Server.StoragePath)

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.EligibilityController,
		deps.OnboardingController,
		deps.DocumentController,
		deps.AppointmentController,
		deps.EmergencyController,
		deps.StudentController,
		deps.ScheduleController,
		deps.AuthMiddleware,
	)

	return router
}
