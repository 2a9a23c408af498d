package bootstrap

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tullab/tullab/docs" // Import generated swagger docs
	appControllers "github.com/tullab/tullab/internal/app/controllers"
	appMigrations "github.com/tullab/tullab/internal/app/migrations"
	"github.com/tullab/tullab/internal/app/reaper"
	appRepos "github.com/tullab/tullab/internal/app/repositories"
	appRoutes "github.com/tullab/tullab/internal/app/routes"
	appServices "github.com/tullab/tullab/internal/app/services"
	"github.com/tullab/tullab/internal/config"
	"github.com/tullab/tullab/internal/db"
	appMiddleware "github.com/tullab/tullab/internal/middleware"
	pkgAuth "github.com/tullab/tullab/internal/pkg/auth"
	"github.com/tullab/tullab/internal/pkg/filestorage"
	"github.com/tullab/tullab/internal/pkg/helpers"
	"github.com/tullab/tullab/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	ExamService         appServices.ExamService
	StudyFileService    appServices.StudyFileService
	QuizService         appServices.QuizService
	AuthController      *appControllers.AuthController
	ExamController      *appControllers.ExamController
	StudyFileController *appControllers.StudyFileController
	QuizController      *appControllers.QuizController
	SubjectController   *appControllers.SubjectController
	HealthController    *appControllers.HealthController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Reaper              *reaper.Reaper
	Logger              zerolog.Logger
	FileStorage         *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env is convenient in development; absence is fine
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env file")
	}

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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	// Initialize file storage; the baseURL must match the static file
	// serving endpoint
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService, err = appServices.NewAuthService(deps.JWTService, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize auth service")
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository)
	deps.StudyFileService = appServices.NewStudyFileService(deps.Repos.StudyFileRepository, deps.FileStorage)
	deps.QuizService = appServices.NewQuizService(deps.Repos.QuizRepository)

	// The reaper works straight against the exam repository; it purges
	// expired exams on its own schedule regardless of API traffic
	deps.Reaper = reaper.New(deps.Repos.ExamRepository, logger.With("reaper"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)
	deps.StudyFileController = appControllers.NewStudyFileController(deps.StudyFileService)
	deps.QuizController = appControllers.NewQuizController(deps.QuizService)
	deps.SubjectController = appControllers.NewSubjectController()
	deps.HealthController = appControllers.NewHealthController(database.Pool)

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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ExamController,
		deps.StudyFileController,
		deps.QuizController,
		deps.SubjectController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
