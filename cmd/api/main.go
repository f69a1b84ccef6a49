// @title           Kanban Board API
// @version         1.0
// @description     Board state engine and drag resolution for kanban boards

// @host      localhost:8000
// @BasePath  /api/kanban

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	_ "kanban-board-api/docs" // Swagger docs import

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/config"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/job"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/router"
	"kanban-board-api/internal/service"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Kanban Board API stopped with error", zap.Error(err))
	}
	logger.Info("Server exited gracefully")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Kanban Board API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("storage", cfg.Storage.Backend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.NewWithLogger(logger)

	storage, err := repository.OpenStorage(ctx, cfg, logger, m)
	if err != nil {
		return fmt.Errorf("failed to open board storage: %w", err)
	}
	defer storage.Close()

	hub := realtime.NewHub(logger, m)
	sinks := service.MultiSink{hub}

	if storage.Redis != nil && cfg.Redis.Channel != "" {
		sinks = append(sinks, client.NewRedisEventPublisher(storage.Redis, cfg.Redis.Channel, logger, m))
		logger.Info("Redis event publishing enabled", zap.String("channel", cfg.Redis.Channel))
	}

	var notifier *client.NotificationClient
	if cfg.Notification.BaseURL != "" {
		notifier = client.NewNotificationClient(cfg.Notification.BaseURL, cfg.Notification.APIKey, cfg.Notification.Timeout, logger, m)
		sinks = append(sinks, notifier)
		logger.Info("Notification client initialized", zap.String("base_url", cfg.Notification.BaseURL))
	}

	engine := service.NewBoardEngine(ctx, service.EngineConfig{
		Repository:    storage.Repository,
		Sink:          sinks,
		Metrics:       m,
		Logger:        logger,
		SaveTimeout:   cfg.Storage.SaveTimeout,
		SeedDemoBoard: cfg.Board.SeedDemoBoard,
	})
	resolver := service.NewDragResolver(engine, nil, m, logger)

	scheduler := job.NewScheduler(logger)
	if err := scheduler.Add("board-metrics", cfg.Jobs.MetricsSchedule, metrics.NewBoardTotalsCollector(engine, m, logger)); err != nil {
		return err
	}
	if cfg.Jobs.BackupSchedule != "" {
		backupRepo, err := storage.BackupRepository(ctx, cfg, logger, m)
		if err != nil {
			logger.Warn("Failed to initialize backup storage, backups disabled", zap.Error(err))
		} else if backupRepo == nil {
			logger.Warn("Backup schedule set without s3.bucket, backups disabled")
		} else if err := scheduler.Add("board-backup", cfg.Jobs.BackupSchedule, job.NewBackupJob(engine, backupRepo, m, logger)); err != nil {
			return err
		}
	}

	r := router.Setup(router.Config{
		Engine:          engine,
		Resolver:        resolver,
		Events:          hub,
		Logger:          logger,
		Metrics:         m,
		JWTSecret:       cfg.JWT.Secret,
		BasePath:        cfg.Server.BasePath,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		Roles:           cfg.Roles,
		StorageBackend:  storage.Repository.Backend(),
		ReadinessChecks: readinessChecks(storage),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return scheduler.Run(gctx)
	})
	if storage.DB != nil {
		g.Go(func() error {
			database.RunDBStatsCollector(gctx, storage.DB, m, 15*time.Second)
			return nil
		})
	}
	g.Go(func() error {
		logger.Info("Kanban Board API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.Error(err))
		}
		if notifier != nil {
			notifier.Wait()
		}
		return nil
	})

	return g.Wait()
}

func readinessChecks(storage *repository.Storage) map[string]handler.ReadinessCheck {
	checks := map[string]handler.ReadinessCheck{}
	if storage.DB != nil {
		checks["database"] = func(ctx context.Context) error {
			sqlDB, err := storage.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}
	if storage.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return storage.Redis.Ping(ctx).Err()
		}
	}
	return checks
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "configs/config.yaml"
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
