package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/evstratovd/home-manager/internal/facades"
	"github.com/evstratovd/home-manager/internal/handlers"
	"github.com/evstratovd/home-manager/internal/jwt"
	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/middlewares"
	"github.com/evstratovd/home-manager/internal/migrations"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/repositories"
	"github.com/evstratovd/home-manager/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all runtime configuration resolved from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	DashboardTTL      int // Dashboard cache TTL in seconds

	KafkaBrokers           string // Comma-separated broker list; empty disables publishing
	KafkaActivityTopic     string
	KafkaNotificationTopic string

	S3Region       string
	S3Bucket       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool

	JWTSecretKey string
	JWTExpSecond int
}

// @title home-manager API
// @version 1.0.0
// @description Household management service: maintenance schedules, inventory, bills, tasks and documents
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, S3, logging, and JWT configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PgHost:     getEnv("POSTGRES_HOST", "localhost"),
		PgUser:     getEnv("POSTGRES_USER", "user"),
		PgPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PgDB:       getEnv("POSTGRES_DB", "database"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers:           getEnv("KAFKA_BROKERS", ""),
		KafkaActivityTopic:     getEnv("KAFKA_ACTIVITY_TOPIC", "activity"),
		KafkaNotificationTopic: getEnv("KAFKA_NOTIFICATION_TOPIC", "notifications"),

		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", "home-manager-documents"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	var err error
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return cfg, err
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return cfg, err
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return cfg, err
	}
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, err
	}
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return cfg, err
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return cfg, err
	}
	if cfg.DashboardTTL, err = strconv.Atoi(getEnv("DASHBOARD_CACHE_TTL_SECOND", "300")); err != nil {
		return cfg, err
	}
	if cfg.S3UsePathStyle, err = strconv.ParseBool(getEnv("S3_USE_PATH_STYLE", "false")); err != nil {
		return cfg, err
	}
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, S3, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Run schema migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writers for activity and notification streams. Publishing is
	// best-effort and disabled when no brokers are configured.
	var activityWriter, notificationWriter services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		activityWriter = &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    cfg.KafkaActivityTopic,
			Balancer: &kafka.LeastBytes{},
		}
		notificationWriter = &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    cfg.KafkaNotificationTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer activityWriter.Close()
		defer notificationWriter.Close()
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, event publishing disabled")
	}

	// Object storage for document files
	storage, err := facades.NewDocumentStorageS3Facade(ctx, facades.S3Config{
		Region:       cfg.S3Region,
		Bucket:       cfg.S3Bucket,
		Endpoint:     cfg.S3Endpoint,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		return fmt.Errorf("S3 initialization error: %w", err)
	}

	// Initialize JWT service
	tokens := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	maintenanceReadRepo := repositories.NewMaintenanceReadRepository(db)
	maintenanceWriteRepo := repositories.NewMaintenanceWriteRepository(db, txGetter)
	inventoryReadRepo := repositories.NewInventoryReadRepository(db)
	inventoryWriteRepo := repositories.NewInventoryWriteRepository(db, txGetter)
	expenseReadRepo := repositories.NewExpenseReadRepository(db)
	expenseWriteRepo := repositories.NewExpenseWriteRepository(db, txGetter)
	taskReadRepo := repositories.NewTaskReadRepository(db)
	taskWriteRepo := repositories.NewTaskWriteRepository(db, txGetter)
	documentReadRepo := repositories.NewDocumentReadRepository(db)
	documentWriteRepo := repositories.NewDocumentWriteRepository(db, txGetter)
	providerReadRepo := repositories.NewProviderReadRepository(db)
	providerWriteRepo := repositories.NewProviderWriteRepository(db, txGetter)
	dashboardReadRepo := repositories.NewDashboardReadRepository(db)
	dashboardCacheRepo := repositories.NewDashboardCacheRepository(rdb, time.Duration(cfg.DashboardTTL)*time.Second)

	// Initialize services
	activityService := services.NewActivityService(activityWriter, notificationWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, activityService)
	maintenanceService := services.NewMaintenanceService(maintenanceReadRepo, maintenanceWriteRepo, activityService)
	inventoryService := services.NewInventoryService(inventoryReadRepo, inventoryWriteRepo, activityService)
	expenseService := services.NewExpenseService(expenseReadRepo, expenseWriteRepo, activityService)
	providerService := services.NewProviderService(providerReadRepo, providerWriteRepo, activityService)
	taskService := services.NewTaskService(taskReadRepo, taskWriteRepo, userReadRepo, activityService)
	documentService := services.NewDocumentService(documentReadRepo, documentWriteRepo, storage, activityService, facades.NewStorageKey)
	dashboardService := services.NewDashboardService(dashboardReadRepo, maintenanceReadRepo, taskReadRepo, expenseReadRepo, dashboardCacheRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Get("/auth/profile", handlers.NewGetProfileHandler(authService))
			r.Put("/auth/profile", handlers.NewUpdateProfileHandler(authService))

			r.With(middlewares.RoleMiddleware(models.RoleAdmin)).
				Get("/users", handlers.NewListUsersHandler(authService))

			r.Get("/dashboard", handlers.NewDashboardSummaryHandler(dashboardService))

			// Read endpoints, open to any authenticated role
			r.Get("/maintenance", handlers.NewListMaintenanceItemsHandler(maintenanceService))
			r.Get("/maintenance/{id}", handlers.NewGetMaintenanceItemHandler(maintenanceService))
			r.Get("/maintenance/{id}/history", handlers.NewMaintenanceHistoryHandler(maintenanceService))
			r.Get("/providers", handlers.NewListServiceProvidersHandler(providerService))
			r.Get("/providers/{id}", handlers.NewGetServiceProviderHandler(providerService))
			r.Get("/inventory", handlers.NewListInventoryItemsHandler(inventoryService))
			r.Get("/inventory/low-stock", handlers.NewLowStockHandler(inventoryService))
			r.Get("/inventory/{id}", handlers.NewGetInventoryItemHandler(inventoryService))
			r.Get("/expenses", handlers.NewListExpensesHandler(expenseService))
			r.Get("/expenses/summary", handlers.NewExpenseSummaryHandler(expenseService))
			r.Get("/expenses/export", handlers.NewExportExpensesHandler(expenseService))
			r.Get("/expenses/{id}", handlers.NewGetExpenseHandler(expenseService))
			r.Get("/tasks", handlers.NewListTasksHandler(taskService))
			r.Get("/tasks/{id}", handlers.NewGetTaskHandler(taskService))
			r.Get("/tasks/{id}/comments", handlers.NewTaskCommentsHandler(taskService))
			r.Get("/documents", handlers.NewListDocumentsHandler(documentService))
			r.Get("/documents/{id}", handlers.NewGetDocumentHandler(documentService))
			r.Get("/documents/{id}/download", handlers.NewDocumentDownloadURLHandler(documentService))

			// Mutating endpoints require at least the family_member role
			// and run inside a per-request transaction.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RoleMiddleware(models.RoleFamilyMember))
				r.Use(middlewares.TxMiddleware(db))

				r.Post("/maintenance", handlers.NewCreateMaintenanceItemHandler(maintenanceService))
				r.Put("/maintenance/{id}", handlers.NewUpdateMaintenanceItemHandler(maintenanceService))
				r.Delete("/maintenance/{id}", handlers.NewDeleteMaintenanceItemHandler(maintenanceService))
				r.Post("/maintenance/{id}/complete", handlers.NewCompleteMaintenanceItemHandler(maintenanceService))

				r.Post("/providers", handlers.NewCreateServiceProviderHandler(providerService))
				r.Put("/providers/{id}", handlers.NewUpdateServiceProviderHandler(providerService))
				r.Delete("/providers/{id}", handlers.NewDeleteServiceProviderHandler(providerService))

				r.Post("/inventory", handlers.NewCreateInventoryItemHandler(inventoryService))
				r.Put("/inventory/{id}", handlers.NewUpdateInventoryItemHandler(inventoryService))
				r.Delete("/inventory/{id}", handlers.NewDeleteInventoryItemHandler(inventoryService))
				r.Post("/inventory/{id}/adjust", handlers.NewAdjustInventoryQuantityHandler(inventoryService))

				r.Post("/expenses", handlers.NewCreateExpenseHandler(expenseService))
				r.Put("/expenses/{id}", handlers.NewUpdateExpenseHandler(expenseService))
				r.Delete("/expenses/{id}", handlers.NewDeleteExpenseHandler(expenseService))
				r.Post("/expenses/{id}/pay", handlers.NewPayExpenseHandler(expenseService))

				r.Post("/tasks", handlers.NewCreateTaskHandler(taskService))
				r.Put("/tasks/{id}", handlers.NewUpdateTaskHandler(taskService))
				r.Delete("/tasks/{id}", handlers.NewDeleteTaskHandler(taskService))
				r.Post("/tasks/{id}/assign", handlers.NewAssignTaskHandler(taskService))
				r.Post("/tasks/{id}/complete", handlers.NewCompleteTaskHandler(taskService))
				r.Post("/tasks/{id}/comments", handlers.NewAddTaskCommentHandler(taskService))

				r.Post("/documents", handlers.NewRegisterDocumentHandler(documentService))
				r.Delete("/documents/{id}", handlers.NewDeleteDocumentHandler(documentService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
