package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ngvthanh/classform/internal/app/controllers"
	appMigrations "github.com/ngvthanh/classform/internal/app/migrations"
	appRepos "github.com/ngvthanh/classform/internal/app/repositories"
	appRoutes "github.com/ngvthanh/classform/internal/app/routes"
	appServices "github.com/ngvthanh/classform/internal/app/services"
	"github.com/ngvthanh/classform/internal/config"
	"github.com/ngvthanh/classform/internal/db"
	appMiddleware "github.com/ngvthanh/classform/internal/middleware"
	pkgAuth "github.com/ngvthanh/classform/internal/pkg/auth"
	"github.com/ngvthanh/classform/internal/pkg/logger"
	"github.com/ngvthanh/classform/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       appServices.StudentService
	SubmissionService    appServices.SubmissionService
	AdminService         appServices.AdminService
	ReportService        appServices.ReportService
	StudentController    *appControllers.StudentController
	SubmissionController *appControllers.SubmissionController
	AdminController      *appControllers.AdminController
	AdminMiddleware      *appMiddleware.AdminMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the roster.
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
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A partially seeded roster is still usable
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.AdminTokenSecret(),
		TokenExp:    cfg.AdminTokenExpiration(),
		TokenIssuer: cfg.Admin.TokenIssuer,
	})

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.SubmissionService = appServices.NewSubmissionService(deps.Repos.SubmissionRepository, lgr)
	deps.AdminService = appServices.NewAdminService(cfg.Admin.Password, deps.JWTService, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.SubmissionRepository)

	deps.AdminMiddleware = appMiddleware.NewAdminMiddleware(deps.JWTService, deps.AdminService)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SubmissionController = appControllers.NewSubmissionController(deps.SubmissionService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.ReportService)

	return deps, nil
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

	router := gin.Default()
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.SubmissionController,
		deps.AdminController,
		deps.AdminMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
