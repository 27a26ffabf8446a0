package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/config"
	"github.com/noah-isme/student-progress-api/internal/database"
	"github.com/noah-isme/student-progress-api/internal/dto"
	"github.com/noah-isme/student-progress-api/internal/handler"
	"github.com/noah-isme/student-progress-api/internal/middleware"
	"github.com/noah-isme/student-progress-api/internal/repository"
	"github.com/noah-isme/student-progress-api/internal/router"
	"github.com/noah-isme/student-progress-api/internal/service"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level).With().Str("service", cfg.AppName).Logger()

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open store")
	}

	if cfg.SeedCourses {
		created, err := repository.SeedDefaultCourses(context.Background(), store)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed default courses")
		}
		if created > 0 {
			logger.Info().Int("courses", created).Msg("seeded default courses")
		}
	}

	notifier, closeEvents := openChangeNotifier(cfg, logger)
	defer closeEvents()

	validate := dto.NewValidator()

	studentService := service.NewStudentService(store, validate, notifier, logger)
	courseService := service.NewCourseService(store, validate, notifier, logger)
	assignmentService := service.NewAssignmentService(store, validate, notifier, logger)
	progressService := service.NewProgressService(store, validate, notifier, logger)
	statisticsService := service.NewStatisticsService(store, logger)
	exportService := service.NewExportService(store, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		ErrorHandler: middleware.ErrorHandler(logger, cfg.IsDevelopment()),
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		StudentHandler:    handler.NewStudentHandler(studentService, logger),
		CourseHandler:     handler.NewCourseHandler(courseService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		ProgressHandler:   handler.NewProgressHandler(progressService, logger),
		StatisticsHandler: handler.NewStatisticsHandler(statisticsService, logger),
		ExportHandler:     handler.NewExportHandler(exportService, logger),
	})

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddress()).Str("storage", cfg.StorageDriver).Msg("http server listening")
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	waitForShutdown(app, logger)
}

func openStore(cfg config.Config, logger zerolog.Logger) (repository.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn().Msg("using in-memory storage; data is lost on restart")
		return repository.NewMemoryStore(), nil
	case config.StoragePostgres:
		db, err := database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return migrated(repository.NewGormStore(db))
	case config.StorageSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return migrated(repository.NewGormStore(db))
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func migrated(store *repository.GormStore) (repository.Store, error) {
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return store, nil
}

// openChangeNotifier connects the optional event transports. A transport that cannot be reached
// is skipped so the API still serves requests.
func openChangeNotifier(cfg config.Config, logger zerolog.Logger) (service.ChangeNotifier, func()) {
	var (
		redisClient *redis.Client
		natsConn    *nats.Conn
		publisher   service.SubjectPublisher
	)

	if cfg.RedisURL != "" {
		client, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable; change events disabled on redis")
		} else {
			redisClient = client
		}
	}

	if cfg.NATSURL != "" {
		conn, err := database.ConnectNATS(cfg.NATSURL, cfg.AppName)
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable; change events disabled on nats")
		} else {
			natsConn = conn
			publisher = conn
		}
	}

	closeFn := func() {
		if natsConn != nil {
			natsConn.Close()
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}

	if redisClient == nil && publisher == nil {
		return nil, closeFn
	}
	return service.NewChangeNotifier(redisClient, publisher, cfg.EventsChannel, logger), closeFn
}

func waitForShutdown(app *fiber.App, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
