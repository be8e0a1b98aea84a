package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/nextstop-api/api/swagger"
	"github.com/noah-isme/nextstop-api/internal/handler"
	"github.com/noah-isme/nextstop-api/internal/models"
	"github.com/noah-isme/nextstop-api/internal/repository"
	"github.com/noah-isme/nextstop-api/internal/seed"
	"github.com/noah-isme/nextstop-api/internal/service"
	"github.com/noah-isme/nextstop-api/pkg/cache"
	"github.com/noah-isme/nextstop-api/pkg/config"
	"github.com/noah-isme/nextstop-api/pkg/database"
	"github.com/noah-isme/nextstop-api/pkg/jobs"
	"github.com/noah-isme/nextstop-api/pkg/logger"
)

// @title NextStopRussia API
// @version 1.0.0
// @description Catalog and student inquiry API for the NextStopRussia admissions site
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type catalogStore interface {
	ListUniversities(ctx context.Context) ([]models.University, error)
	FindUniversityByID(ctx context.Context, id string) (*models.University, error)
	CreateUniversity(ctx context.Context, university *models.University) error
	ListPrograms(ctx context.Context) ([]models.Program, error)
	FindProgramByID(ctx context.Context, id string) (*models.Program, error)
	CreateProgram(ctx context.Context, program *models.Program) error
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error
}

type inquiryStore interface {
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	CountInquiriesSince(ctx context.Context, since time.Time) (int, error)
}

type backend struct {
	catalog   catalogStore
	inquiries inquiryStore
	// empty reports whether the catalog still needs seeding.
	empty  func(ctx context.Context) (bool, error)
	checks []handler.ReadinessCheck
	close  func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openBackend(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to open store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer store.close()

	metricsSvc := service.NewMetricsService()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("catalog cache disabled", zap.Error(err))
		} else {
			store.checks = append(store.checks, handler.ReadinessCheck{
				Name:  "redis",
				Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
			})
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && redisClient != nil)

	catalogSvc := service.NewCatalogService(store.catalog, cacheSvc, service.CatalogConfig{PublicBaseURL: cfg.PublicBaseURL}, logr)
	if err := seedCatalog(ctx, cfg, store, catalogSvc, logr); err != nil {
		logr.Fatal("failed to seed catalog", zap.Error(err))
	}

	var notifier service.LeadNotifier = service.NewLogNotifier(logr)
	var leadQueue *jobs.Queue
	if cfg.Leads.AsyncNotify {
		leadQueue = jobs.NewQueue("lead-notifications", service.LeadJobHandler(notifier, logr), jobs.QueueConfig{
			Workers:    cfg.Leads.NotifyWorkers,
			MaxRetries: 0,
			Logger:     logr,
		})
		leadQueue.Start(ctx)
		notifier = service.NewQueuedNotifier(leadQueue, notifier, logr)
	}

	inquirySvc := service.NewInquiryService(store.inquiries, service.NewValidator(), notifier, metricsSvc, logr)

	var digest *service.LeadDigest
	if cfg.Leads.DigestSchedule != "" {
		digest, err = service.NewLeadDigest(inquirySvc, cfg.Leads.DigestSchedule, logr)
		if err != nil {
			logr.Fatal("invalid lead digest schedule", zap.Error(err))
		}
		digest.Start()
	}

	authSvc := service.NewAuthService(nil, logr, service.AuthConfig{
		AdminEmail:        cfg.Auth.AdminEmail,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
		Secret:            cfg.Auth.JWTSecret,
		Expiry:            cfg.Auth.JWTExpiration,
	})
	if cfg.Leads.RequireAuth && cfg.Auth.AdminPasswordHash == "" {
		logr.Warn("LEADS_REQUIRE_AUTH is set without ADMIN_PASSWORD_HASH; lead endpoints will reject every request")
	}

	router := handler.NewRouter(handler.RouterConfig{
		APIPrefix:        cfg.APIPrefix,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		EnableDocs:       cfg.Env != config.EnvProduction,
		EnableMetrics:    cfg.Metrics.Enabled,
		LeadsRequireAuth: cfg.Leads.RequireAuth,
		Logger:           logr,
		Catalog:          catalogSvc,
		Inquiries:        inquirySvc,
		Auth:             authSvc,
		Metrics:          metricsSvc,
		ReadinessChecks:  store.checks,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	if digest != nil {
		digest.Stop()
	}
	if leadQueue != nil {
		leadQueue.Stop()
	}
}

func openBackend(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store := repository.NewMemoryStore()
		return &backend{
			catalog:   store,
			inquiries: store,
			empty: func(ctx context.Context) (bool, error) {
				universities, err := store.ListUniversities(ctx)
				return len(universities) == 0, err
			},
			close: func() {},
		}, nil
	case config.StoragePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		catalog := repository.NewCatalogRepository(db)
		logr.Info("postgres store ready", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))
		return &backend{
			catalog:   catalog,
			inquiries: repository.NewInquiryRepository(db),
			empty: func(ctx context.Context) (bool, error) {
				count, err := catalog.CountUniversities(ctx)
				return count == 0, err
			},
			checks: []handler.ReadinessCheck{postgresCheck(db)},
			close: func() {
				if err := db.Close(); err != nil {
					logr.Warn("failed to close postgres", zap.Error(err))
				}
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}

func postgresCheck(db *sqlx.DB) handler.ReadinessCheck {
	return handler.ReadinessCheck{Name: "postgres", Check: db.PingContext}
}

func seedCatalog(ctx context.Context, cfg *config.Config, store *backend, catalog *service.CatalogService, logr *zap.Logger) error {
	if !cfg.Storage.SeedCatalog {
		return nil
	}
	empty, err := store.empty(ctx)
	if err != nil {
		return fmt.Errorf("inspect catalog: %w", err)
	}
	if !empty {
		logr.Info("catalog already populated, skipping seed")
		return nil
	}
	res, err := seed.Catalog(ctx, catalog)
	if err != nil {
		return err
	}
	logr.Info("catalog seeded",
		zap.Int("universities", res.Universities),
		zap.Int("programs", res.Programs),
		zap.Int("testimonials", res.Testimonials),
	)
	return nil
}
