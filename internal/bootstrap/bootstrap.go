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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shiningstar/learninglens/docs" // Import generated swagger docs
	appControllers "github.com/shiningstar/learninglens/internal/app/controllers"
	appMigrations "github.com/shiningstar/learninglens/internal/app/migrations"
	appRepos "github.com/shiningstar/learninglens/internal/app/repositories"
	appRoutes "github.com/shiningstar/learninglens/internal/app/routes"
	appServices "github.com/shiningstar/learninglens/internal/app/services"
	"github.com/shiningstar/learninglens/internal/config"
	"github.com/shiningstar/learninglens/internal/db"
	appMiddleware "github.com/shiningstar/learninglens/internal/middleware"
	pkgAuth "github.com/shiningstar/learninglens/internal/pkg/auth"
	"github.com/shiningstar/learninglens/internal/pkg/helpers"
	"github.com/shiningstar/learninglens/internal/pkg/logger"
	"github.com/shiningstar/learninglens/internal/seed"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UserService          appServices.UserService
	StudentService       appServices.StudentService
	AssessmentService    appServices.AssessmentService
	ReportService        appServices.ReportService
	ActivityLogService   appServices.ActivityLogService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	StudentController    *appControllers.StudentController
	AssessmentController *appControllers.AssessmentController
	ReportController     *appControllers.ReportController
	LogController        *appControllers.LogController
	HealthController     *appControllers.HealthController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	RateLimiter          *appMiddleware.RateLimiter
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Redis                *db.RedisClient
	Logger               zerolog.Logger
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.Run(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create Default Data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupRedis establishes the redis connection used for caching, refresh
// tokens and rate limiting.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*db.RedisClient, error) {
	lgr.Info().Str("addr", cfg.GetRedisAddr()).Msg("Establishing redis connection...")
	redisClient, err := db.NewRedisClient(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to redis")
		return nil, err
	}
	lgr.Info().Msg("Redis connection successfully established.")
	return redisClient, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *db.RedisClient, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Redis: redisClient}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Initialize services
	deps.ActivityLogService = appServices.NewActivityLogService(deps.Repos.ActivityLogRepository, lgr)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		redisClient,
		deps.ActivityLogService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.ActivityLogService, lgr)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.StudentAccessRepository,
		deps.Repos.UserRepository,
		deps.ActivityLogService,
		lgr,
	)
	deps.AssessmentService = appServices.NewAssessmentService(
		deps.Repos.AssessmentRepository,
		deps.Repos.StudentRepository,
		redisClient,
		deps.ActivityLogService,
		lgr,
	)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.ReportRepository,
		deps.AssessmentService,
		deps.ActivityLogService,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.RateLimiter = appMiddleware.NewRateLimiter(redisClient, loginRateLimit, loginRateWindow)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AssessmentController = appControllers.NewAssessmentController(deps.AssessmentService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.LogController = appControllers.NewLogController(deps.ActivityLogService)
	deps.HealthController = appControllers.NewHealthController()

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.StudentController,
		deps.AssessmentController,
		deps.ReportController,
		deps.LogController,
		deps.HealthController,
		deps.AuthMiddleware,
		deps.RateLimiter,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
