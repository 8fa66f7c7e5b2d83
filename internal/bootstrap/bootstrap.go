// Package bootstrap wires the application together: configuration, logger,
// database, migrations, optional sample data, and the HTTP/bridge surfaces.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/oguzhan/uniregistry/internal/app/controllers"
	appMigrations "github.com/oguzhan/uniregistry/internal/app/migrations"
	appModels "github.com/oguzhan/uniregistry/internal/app/models"
	appRepos "github.com/oguzhan/uniregistry/internal/app/repositories"
	appRoutes "github.com/oguzhan/uniregistry/internal/app/routes"
	appServices "github.com/oguzhan/uniregistry/internal/app/services"
	"github.com/oguzhan/uniregistry/internal/bridge"
	"github.com/oguzhan/uniregistry/internal/config"
	"github.com/oguzhan/uniregistry/internal/db"
	appMiddleware "github.com/oguzhan/uniregistry/internal/middleware"
	"github.com/oguzhan/uniregistry/internal/pkg/logger"
	"github.com/oguzhan/uniregistry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	DepartmentController *appControllers.EntityController[appModels.Department]
	InstructorController *appControllers.EntityController[appModels.Instructor]
	StudentController    *appControllers.EntityController[appModels.Student]
	CourseController     *appControllers.EntityController[appModels.Course]
	EnrollmentController *appControllers.EntityController[appModels.Enrollment]
	PaymentController    *appControllers.EntityController[appModels.Payment]
	ReportController     *appControllers.ReportController

	BridgeHandler *bridge.Handler

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// optionally seeds sample data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(cfg, dbPool, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}

	if cfg.Database.Seed {
		if err := seed.CreateSampleData(context.Background(), dbPool, lgr); err != nil {
			// Sample data is a convenience; startup continues without it.
			lgr.Error().Err(err).Msg("Failed to create sample data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// RunMigrations applies every pending migration file, stopping at the first
// failure.
func RunMigrations(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and
// transport adapters.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Services = appServices.NewServices(deps.Repos)

	deps.DepartmentController = appControllers.NewEntityController(deps.Services.Departments, "Departments")
	deps.InstructorController = appControllers.NewEntityController(deps.Services.Instructors, "Instructors")
	deps.StudentController = appControllers.NewEntityController(deps.Services.Students, "Students")
	deps.CourseController = appControllers.NewEntityController(deps.Services.Courses, "Courses")
	deps.EnrollmentController = appControllers.NewEntityController(deps.Services.Enrollments, "Enrollments")
	deps.PaymentController = appControllers.NewEntityController(deps.Services.Payments, "Payments")
	deps.ReportController = appControllers.NewReportController(deps.Services.Reports)

	deps.BridgeHandler = bridge.NewHandler(bridge.BuildRegistry(deps.Services), lgr)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.DepartmentController,
		deps.InstructorController,
		deps.StudentController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.PaymentController,
		deps.ReportController,
		deps.BridgeHandler,
	)

	return router
}
