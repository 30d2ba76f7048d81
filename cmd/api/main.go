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

	httptransport "github.com/pusdatin-umc/helpdesk-service/internal/api/http"
	"github.com/pusdatin-umc/helpdesk-service/internal/api/http/handlers"
	"github.com/pusdatin-umc/helpdesk-service/internal/auth"
	"github.com/pusdatin-umc/helpdesk-service/internal/config"
	"github.com/pusdatin-umc/helpdesk-service/internal/draft"
	"github.com/pusdatin-umc/helpdesk-service/internal/events"
	"github.com/pusdatin-umc/helpdesk-service/internal/idempotency"
	"github.com/pusdatin-umc/helpdesk-service/internal/mockdata"
	"github.com/pusdatin-umc/helpdesk-service/internal/observability"
	"github.com/pusdatin-umc/helpdesk-service/internal/persistence"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	"github.com/pusdatin-umc/helpdesk-service/internal/service"
	"github.com/pusdatin-umc/helpdesk-service/internal/storage"
	"github.com/pusdatin-umc/helpdesk-service/internal/worker"
)

const bodyLimit = 60 * 1024 * 1024

type repositories struct {
	tickets     repository.TicketRepository
	activities  repository.ActivityRepository
	attachments repository.AttachmentRepository
	users       repository.UserRepository
	assets      repository.AssetRepository
	borrows     repository.BorrowRequestRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	repos := buildRepositories(pg, cfg, logger)

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	if cfg.Postgres.SeedMockData || !pg.Enabled() {
		err := mockdata.Seed(ctx, mockdata.Targets{
			Tickets:    repos.tickets,
			Activities: repos.activities,
			Assets:     repos.assets,
			Borrows:    repos.borrows,
			Users:      repos.users,
		}, hasher.Hash, logger)
		if err != nil {
			logger.Fatal("failed to seed data", zap.Error(err))
		}
	}

	catalog := repository.NewMemoryCatalogRepository(repository.CatalogContent{
		Services:       mockdata.Services(),
		SystemServices: mockdata.SystemServices(time.Now()),
		Announcements:  mockdata.Announcements(),
		FAQs:           mockdata.FAQs(),
	})

	var objects storage.ObjectStore = storage.NewMemoryStore()
	if cfg.Storage.Enabled() {
		minioStore, err := storage.NewMinioStore(ctx, cfg.Storage, logger)
		if err != nil {
			logger.Fatal("failed to init object storage", zap.Error(err))
		}
		objects = minioStore
	}

	var draftStore draft.Store = draft.NewMemoryStore()
	var idemStore idempotency.Store = idempotency.NewMemoryStore(idempotency.DefaultTTL)
	if redis.Enabled() {
		draftStore = draft.NewRedisStore(redis.Client, cfg.Draft.TTL)
		idemStore = idempotency.NewRedisStore(redis.Client, idempotency.DefaultTTL)
	}
	autosaver := draft.NewAutosaver(draftStore, cfg.Draft.Debounce, logger)

	dispatcher := events.NewInMemoryDispatcher(logger)
	events.RegisterObserver(dispatcher, metrics, logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo: repos.users,
		Tokens:   tokens,
		Hasher:   hasher,
		Logger:   logger,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:     repos.tickets,
		ActivityRepo:   repos.activities,
		AttachmentRepo: repos.attachments,
		Objects:        objects,
		Drafts:         autosaver,
		Idempotency:    idemStore,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	assetService := service.NewAssetService(service.AssetDependencies{
		AssetRepo:  repos.assets,
		BorrowRepo: repos.borrows,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	catalogService := service.NewCatalogService(catalog, logger, nil)

	var escalationDone <-chan struct{}
	if cfg.Escalation.Enabled {
		escalation := worker.NewEscalationWorker(ticketService, metrics, cfg.Escalation.Interval, logger)
		escalationDone = escalation.Start(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
		// Params and headers are kept past the handler by the draft autosaver and
		// the idempotency store.
		Immutable: true,
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:      logger,
		Metrics:     metrics,
		Timeout:     cfg.App.RequestTimeout(),
		CORSOrigins: cfg.App.CORSOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth.CookieName, cfg.App.Env == "production"),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Drafts:         handlers.NewDraftsHandler(autosaver, metrics),
		Assets:         handlers.NewAssetsHandler(assetService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Files:          handlers.NewFilesHandler(objects),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, repos.users, cfg.Auth.CookieName),
		StatusLimiter:  httptransport.NewIPRateLimiter(cfg.RateLimit.StatusLookupPerMinute, cfg.RateLimit.Burst),
		Metrics:        metrics,
	})

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	if escalationDone != nil {
		<-escalationDone
	}
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	autosaver.Close(shutdownCtx)
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
}

// buildRepositories selects Postgres-backed repositories when a pool is available and
// in-memory ones otherwise. Tickets go through pgx, assets through gorm.
func buildRepositories(pg *persistence.Postgres, cfg *config.Config, logger *zap.Logger) repositories {
	if !pg.Enabled() {
		return repositories{
			tickets:     repository.NewMemoryTicketRepository(),
			activities:  repository.NewMemoryActivityRepository(),
			attachments: repository.NewMemoryAttachmentRepository(),
			users:       repository.NewMemoryUserRepository(),
			assets:      repository.NewMemoryAssetRepository(),
			borrows:     repository.NewMemoryBorrowRequestRepository(),
		}
	}

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(cfg.Postgres.DSN, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}
	db, err := persistence.OpenGorm(pg, logger)
	if err != nil {
		logger.Fatal("failed to open gorm", zap.Error(err))
	}
	return repositories{
		tickets:     repository.NewTicketRepository(pg.Pool),
		activities:  repository.NewActivityRepository(pg.Pool),
		attachments: repository.NewAttachmentRepository(pg.Pool),
		users:       repository.NewUserRepository(pg.Pool),
		assets:      repository.NewAssetRepository(db),
		borrows:     repository.NewBorrowRequestRepository(db),
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
