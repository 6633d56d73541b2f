package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/goldenpays/consultancy-api/internal/api/http"
	"github.com/goldenpays/consultancy-api/internal/api/http/handlers"
	"github.com/goldenpays/consultancy-api/internal/auth"
	"github.com/goldenpays/consultancy-api/internal/config"
	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/events"
	"github.com/goldenpays/consultancy-api/internal/mail"
	"github.com/goldenpays/consultancy-api/internal/observability"
	"github.com/goldenpays/consultancy-api/internal/persistence"
	"github.com/goldenpays/consultancy-api/internal/repository"
	"github.com/goldenpays/consultancy-api/internal/service"
	"github.com/goldenpays/consultancy-api/internal/validation"
)

const shutdownTimeout = 10 * time.Second

type stores struct {
	inquiries repository.InquiryRepository
	clients   repository.ClientRepository
	projects  repository.ProjectRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	st := newStores(pg)

	var revoker auth.Revoker = auth.NewMemoryRevoker()
	var limiterStorage fiber.Storage
	if redis.Enabled() {
		revoker = auth.NewRedisRevoker(redis.Client)
		limiterStorage = persistence.NewRedisStorage(redis.Client)
	}

	metrics := observability.NewMetrics()
	validator := validation.New()
	dispatcher := events.NewInMemoryDispatcher()

	notifications := service.NewNotificationService(service.NotificationDependencies{
		Dispatcher:  dispatcher,
		Sender:      mail.NewSender(cfg.Mail, logger),
		Composer:    mail.NewComposer(cfg.Mail.From, cfg.Mail.OperatorEmail),
		Metrics:     metrics,
		Logger:      logger,
		SendTimeout: cfg.Mail.SendTimeout(),
	})
	notifications.RegisterHandlers()

	principals := repository.NewStaticPrincipalRepository(domain.Principal{
		ID:           cfg.Auth.AdminID,
		Email:        cfg.Auth.AdminEmail,
		Name:         cfg.Auth.AdminName,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		Role:         domain.RoleAdmin,
	})

	authService := service.NewAuthService(service.AuthDependencies{
		Principals:   principals,
		TokenManager: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Revoker:      revoker,
		Validator:    validator,
		Metrics:      metrics,
		Logger:       logger,
		BcryptCost:   auth.HashCost(cfg.Auth.AdminPasswordHash, cfg.Auth.BcryptCost),
	})
	intakeService := service.NewIntakeService(service.IntakeDependencies{
		Inquiries:  st.inquiries,
		Dispatcher: dispatcher,
		Validator:  validator,
		Metrics:    metrics,
		Logger:     logger,
	})
	adminService := service.NewAdminService(service.AdminDependencies{
		Inquiries:  st.inquiries,
		Clients:    st.clients,
		Projects:   st.projects,
		Dispatcher: dispatcher,
		Validator:  validator,
		Logger:     logger,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitBytes,
		ErrorHandler: httptransport.ErrorHandler(logger, cfg.App.IsProduction()),
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:         logger,
		Metrics:        metrics,
		App:            cfg.App,
		HTTP:           cfg.HTTP,
		LimiterStorage: limiterStorage,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Contact:        handlers.NewContactHandler(intakeService),
		Auth:           handlers.NewAuthHandler(authService),
		Admin:          handlers.NewAdminHandler(adminService),
		AuthMiddleware: auth.NewAuthMiddleware(authService),
		Metrics:        metrics,
	})

	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.App.Addr()),
			zap.String("env", cfg.App.Env),
			zap.String("frontend_url", cfg.HTTP.FrontendURL))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// newStores picks the postgres stores when a pool is configured and the
// process-local ones otherwise.
func newStores(pg *persistence.Postgres) stores {
	if pg.Enabled() {
		pool := pg.PoolHandle()
		return stores{
			inquiries: repository.NewInquiryRepository(pool),
			clients:   repository.NewClientRepository(pool),
			projects:  repository.NewProjectRepository(pool),
		}
	}
	return stores{
		inquiries: repository.NewMemoryInquiryRepository(),
		clients:   repository.NewMemoryClientRepository(),
		projects:  repository.NewMemoryProjectRepository(),
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
