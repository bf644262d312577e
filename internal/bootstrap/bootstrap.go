package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/transferdesk/internal/app/controllers"
	appMigrations "github.com/yigit/transferdesk/internal/app/migrations"
	appRepos "github.com/yigit/transferdesk/internal/app/repositories"
	appRoutes "github.com/yigit/transferdesk/internal/app/routes"
	appServices "github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/config"
	"github.com/yigit/transferdesk/internal/db"
	appMiddleware "github.com/yigit/transferdesk/internal/middleware"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/filestorage"
	"github.com/yigit/transferdesk/internal/pkg/logger"
	"github.com/yigit/transferdesk/internal/seed"
)

// LogOutput receives application logs. The CLI points it at stderr so
// tables on stdout stay clean.
var LogOutput io.Writer = os.Stdout

// MigrationsDir holds the SQL files applied to a postgres document store
var MigrationsDir = "migrations"

// Services holds the application services shared by the HTTP server and
// the CLI
type Services struct {
	LookupService   appServices.LookupService
	TransferService appServices.TransferService
	DirectorService appServices.DirectorService
	StudentService  appServices.StudentService
	ApprovalService appServices.ApprovalService
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services
	Controllers appRoutes.Controllers
	Repos       *appRepos.Repositories
	Logger      zerolog.Logger
	FileStorage *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
		Output: LogOutput,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the document store named by the configured driver,
// applies migrations for postgres and creates the default data.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (docstore.Store, error) {
	store, err := openStore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	if err := seed.CreateDefaultData(ctx, appRepos.NewRepositories(store), cfg.Seed.Samples, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
	return store, nil
}

func openStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (docstore.Store, error) {
	driver := strings.ToLower(cfg.Database.Driver)
	lgr.Info().Str("driver", driver).Msg("Opening document store...")

	switch driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using the in-memory store; records are lost on exit")
		return docstore.NewMemoryStore(), nil

	case config.DriverSQLite:
		store, err := docstore.OpenSQLite(ctx, cfg.Database.SQLitePath)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.Database.SQLitePath).Msg("Failed to open sqlite store")
			return nil, err
		}
		return store, nil

	default:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		if _, err := os.Stat(MigrationsDir); os.IsNotExist(err) {
			database.Close()
			lgr.Error().Str("path", MigrationsDir).Msg("Migrations directory not found")
			return nil, fmt.Errorf("migrations directory not found at %s: %w", MigrationsDir, err)
		}

		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(database, lgr).MigrateFromDirectory(ctx, MigrationsDir); err != nil {
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		return docstore.NewPostgresStore(database.Pool), nil
	}
}

// BuildServices wires repositories and services over an open store.
func BuildServices(cfg *config.Config, store docstore.Store, blobs filestorage.BlobStore, lgr zerolog.Logger) (*appRepos.Repositories, Services) {
	repos := appRepos.NewRepositories(store)
	lookups := appServices.NewLookupService(repos.CollegeRepository, repos.ProgramRepository)

	return repos, Services{
		LookupService: lookups,
		TransferService: appServices.NewTransferService(
			lookups,
			repos.TransferRepository,
			blobs,
			cfg.Transfer.UploadPrefix,
			lgr,
		),
		DirectorService: appServices.NewDirectorService(
			lookups,
			repos.CredentialRepository,
			repos.DirectorRepository,
			lgr,
		),
		StudentService:  appServices.NewStudentService(repos.StudentRepository),
		ApprovalService: appServices.NewApprovalService(repos.ApprovalRepository),
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store docstore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	// The base URL must match the static file serving path
	fileStorageBaseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Repos, deps.Services = BuildServices(cfg, store, deps.FileStorage, lgr)

	deps.Controllers = appRoutes.Controllers{
		Form:     appControllers.NewFormController(deps.TransferService, deps.DirectorService),
		Lookup:   appControllers.NewLookupController(deps.LookupService),
		Transfer: appControllers.NewTransferController(deps.TransferService, deps.FileStorage, cfg.Server.MaxUploadSize),
		Director: appControllers.NewDirectorController(deps.DirectorService),
		Student:  appControllers.NewStudentController(deps.StudentService),
		Approval: appControllers.NewApprovalController(deps.ApprovalService),
	}

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

	router := gin.New()
	router.Use(appMiddleware.Recovery(lgr), appMiddleware.RequestLogger(lgr))
	router.MaxMultipartMemory = cfg.Server.MaxUploadSize

	appRoutes.SetupRouter(router, deps.Controllers)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
