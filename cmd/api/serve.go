package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/adapter/handler"
	"github.com/jarvis-assistant/assistant/internal/adapter/repository"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/cache"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/database"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/external/smtp"
	httpmw "github.com/jarvis-assistant/assistant/internal/infrastructure/http/middleware"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/storage"
	"github.com/jarvis-assistant/assistant/internal/usecase/auth"
	"github.com/jarvis-assistant/assistant/internal/usecase/contact"
	"github.com/jarvis-assistant/assistant/internal/usecase/meeting"
	"github.com/jarvis-assistant/assistant/internal/usecase/meetingflow"
	"github.com/jarvis-assistant/assistant/internal/usecase/minutes"
	"github.com/jarvis-assistant/assistant/internal/usecase/notification"
	"github.com/jarvis-assistant/assistant/internal/usecase/settings"
	"github.com/jarvis-assistant/assistant/internal/usecase/system"
	pkgai "github.com/jarvis-assistant/assistant/pkg/ai"
	"github.com/jarvis-assistant/assistant/pkg/jwt"
	"github.com/jarvis-assistant/assistant/pkg/metrics"
	pkgvalidator "github.com/jarvis-assistant/assistant/pkg/validator"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("🔧 Initializing dependencies...", zap.String("environment", cfg.Server.Environment))

	// Database
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = database.CloseDB(db, logger) }()

	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			return errors.New("DB_AUTO_MIGRATE is enabled in production; run `assistant migrate up` instead")
		}
		if err := database.AutoMigrate(db, logger); err != nil {
			return err
		}
	} else {
		logger.Info("🔄 Skipping automatic migrations; use `assistant migrate up`")
	}

	checks := map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}

	// Flow lock: Redis when configured, process memory otherwise
	var locker meetingflow.Locker
	if cfg.Redis.Enabled {
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		redisClient, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		locker = cache.NewRedisLocker(redisClient, cfg.Flow.LockWait)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	} else {
		logger.Warn("⚠️  Redis disabled; meeting flow locks are process-local")
		store := cache.NewMemoryStore(time.Minute)
		defer store.Close()
		locker = cache.NewMemoryLocker(store, cfg.Flow.LockWait)
	}

	// Minutes archive
	var (
		archive meetingflow.MinutesArchive
		linker  meeting.MinutesLinker
	)
	if cfg.Storage.Enabled {
		logger.Info("🗄️  Connecting to object storage...", zap.String("endpoint", cfg.Storage.Endpoint))
		minioClient, err := storage.NewMinIOClient(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		archive, linker = minioClient, minioClient
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	flowRepo := repository.NewMeetingFlowRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	emailRepo := repository.NewEmailRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	uow := repository.NewUnitOfWork(db)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	flowMetrics := metrics.NewFlowMetrics(registry)

	// Use cases
	validate := pkgvalidator.New()
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)
	authService := auth.NewPasswordService(userRepo, jwtManager)
	settingsService := settings.NewService(settingsRepo, cfg.SMTP, cfg.LLM)
	contactService := contact.NewService(contactRepo, validate)
	meetingService := meeting.NewService(meetingRepo, linker)

	smtpClient := smtp.NewClient()
	chatClient := pkgai.NewChatClient(cfg.LLM)
	dispatcher := notification.NewDispatcher(smtpClient, settingsService, emailRepo, flowMetrics, logger)
	drafter := notification.NewDrafter(chatClient, settingsService, logger)
	generator := minutes.NewGenerator(chatClient, settingsService, flowMetrics, logger)
	statusService := system.NewService(chatClient, smtpClient, settingsService, checks["database"], cfg.Server.StatusCheckTimeout, logger)

	flowService := meetingflow.NewFlowService(meetingflow.Deps{
		Contacts:   contactRepo,
		Flows:      flowRepo,
		Meetings:   meetingRepo,
		UnitOfWork: uow,
		Locker:     locker,
		Generator:  generator,
		Dispatcher: dispatcher,
		Archive:    archive,
		Emails:     validate,
		Metrics:    flowMetrics,
		Logger:     logger,
	}, cfg.Flow)

	// HTTP
	e := echo.New()
	e.HideBanner = true
	e.Validator = validate
	e.HTTPErrorHandler = handler.ErrorHandler(logger, e)

	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	handlers := handler.Handlers{
		Auth:     handler.NewAuth(authService, logger),
		Flow:     handler.NewFlowHandler(flowService, logger),
		Contact:  handler.NewContactHandler(contactService, logger),
		Meeting:  handler.NewMeetingHandler(meetingService, logger),
		Email:    handler.NewEmailHandler(dispatcher, drafter, logger),
		Settings: handler.NewSettingsHandler(settingsService, logger),
		System:   handler.NewSystemHandler(statusService, logger),
	}
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	router := handler.NewRouter(cfg, handlers, httpmw.EchoAuth(jwtManager), metricsHandler, checks)
	router.Setup(e)

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("🛑 Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("✅ Server stopped gracefully")
	return nil
}
