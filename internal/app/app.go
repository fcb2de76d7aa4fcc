package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"luminax_client/internal/config"
	"luminax_client/internal/controller"
	"luminax_client/internal/notify"
	"luminax_client/internal/repository"
	"luminax_client/internal/service"
	"luminax_client/internal/state"
	"luminax_client/pkg/configwatcher"
	"luminax_client/pkg/database"
	"luminax_client/pkg/logger"
	"luminax_client/pkg/monitoring"
	"luminax_client/pkg/security"
	"luminax_client/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Store    *state.Store
	Feed     *notify.Feed
	DB       *gorm.DB
	Redis    *redis.Client
	Services *Services

	limiter *security.Limiter
	tracer  *sdktrace.TracerProvider
	stops   []func()
}

type Services struct {
	Catalog     *service.CatalogService
	Cart        *service.CartService
	Session     *service.SessionService
	Preferences *service.PreferenceService
	Enrollments *service.EnrollmentService
}

type controllers struct {
	catalog    *controller.CatalogController
	cart       *controller.CartController
	session    *controller.SessionController
	enrollment *controller.EnrollmentController
	preference *controller.PreferenceController
	health     *controller.HealthController
}

// NewApp 按配置组装存储、状态容器和服务，加载目录并恢复持久化的用户与主题
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		Config: cfg,
		Store:  state.NewStore(state.Initial()),
		Feed:   notify.NewFeed(notify.DefaultFeedCapacity),
	}

	if cfg.Tracing.Enabled && cfg.Tracing.CollectorEndpoint != "" {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Warn("Failed to initialize tracer", zap.Error(err))
		} else {
			a.tracer = tp
		}
	}

	kv, err := a.initPersistence(ctx)
	if err != nil {
		return nil, err
	}
	seeds, err := a.initSeedSource()
	if err != nil {
		return nil, err
	}

	monitoring.Init()
	a.stops = append(a.stops, monitoring.ObserveStore(a.Store))
	notifier := notify.Counted(
		notify.Fanout(notify.NewLogNotifier(logger.Log), a.Feed),
		monitoring.NotificationsTotal,
	)

	users := repository.NewUserRepository(nil)
	a.Services = &Services{
		Catalog:     service.NewCatalogService(a.Store, seeds, users, cfg.Catalog.FeaturedLimit),
		Cart:        service.NewCartService(a.Store, notifier, cfg.Pricing.TaxRate),
		Session:     service.NewSessionService(a.Store, users, notifier, cfg.Session.SimulatedDelay(), cfg.Session.DemoPassword),
		Preferences: service.NewPreferenceService(a.Store, kv, applyTheme),
		Enrollments: service.NewEnrollmentService(a.Store, notifier),
	}

	if err := a.Services.Catalog.Bootstrap(ctx); err != nil {
		return nil, err
	}
	// 先恢复再注册观察者，避免把刚读出的值写回
	a.Services.Preferences.Restore(ctx)
	a.Services.Preferences.Start()
	a.stops = append(a.stops, a.Services.Preferences.Stop)

	a.limiter = security.NewLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	a.Router = a.newRouter(&controllers{
		catalog:    controller.NewCatalogController(a.Services.Catalog),
		cart:       controller.NewCartController(a.Services.Cart),
		session:    controller.NewSessionController(a.Services.Session),
		enrollment: controller.NewEnrollmentController(a.Services.Enrollments),
		preference: controller.NewPreferenceController(a.Services.Preferences, a.Feed),
		health:     controller.NewHealthController(a.Store, kv),
	})
	return a, nil
}

func (a *App) initPersistence(ctx context.Context) (repository.KVRepository, error) {
	switch a.Config.Persistence.Type {
	case config.PersistenceRedis:
		rdb, err := database.InitRedis(ctx, &a.Config.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.Redis = rdb
		return repository.NewRedisKVRepository(rdb, a.Config.Persistence.Namespace), nil
	case config.PersistenceSQL:
		db, err := database.InitDB(&a.Config.Database)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		a.DB = db
		return repository.NewSQLKVRepository(db, a.Config.Persistence.Namespace), nil
	default:
		return repository.NewMemoryKVRepository(), nil
	}
}

func (a *App) initSeedSource() (repository.SeedRepository, error) {
	switch a.Config.Seed.Source {
	case config.SeedLocal:
		return repository.NewFileSeedRepository(a.Config.Seed.Path), nil
	case config.SeedMinio:
		client, err := database.InitMinio(&a.Config.Storage)
		if err != nil {
			return nil, fmt.Errorf("init minio: %w", err)
		}
		return repository.NewMinioSeedRepository(client, a.Config.Storage.MinioBucket, a.Config.Seed.Path), nil
	default:
		return repository.NewEmbeddedSeedRepository(), nil
	}
}

func applyTheme(dark bool) {
	logger.Log.Debug("Theme applied", zap.Bool("dark", dark))
}

// Run 启动 HTTP 服务、限流清理和种子文件监听，ctx 结束后优雅关闭
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				a.limiter.Sweep(now)
			}
		}
	})

	if a.Config.Seed.Watch && a.Config.Seed.Source == config.SeedLocal {
		g.Go(func() error {
			return configwatcher.WatchFile(ctx, a.Config.Seed.Path, configwatcher.DefaultDebounce, func() {
				_ = a.Services.Catalog.Reload(ctx)
			})
		})
	}

	err := g.Wait()
	a.Close()
	logger.Log.Info("Server exiting")
	return err
}

// Close 释放连接和观察者，可重复调用
func (a *App) Close() {
	for _, stop := range a.stops {
		stop()
	}
	a.stops = nil

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Warn("Tracer shutdown failed", zap.Error(err))
		}
		a.tracer = nil
	}
	if a.Redis != nil {
		a.Redis.Close()
		a.Redis = nil
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
		a.DB = nil
	}
}
