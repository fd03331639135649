package container

import (
	"context"
	"fmt"
	"time"

	"bszip-backend/internal/config"
	infraCache "bszip-backend/internal/infrastructure/cache"
	"bszip-backend/internal/infrastructure/database"
	"bszip-backend/internal/infrastructure/kakao"
	"bszip-backend/pkg/cache"
	"bszip-backend/pkg/geo"
	"bszip-backend/pkg/jwt"
	"bszip-backend/pkg/logger"

	bookHandler "bszip-backend/internal/domains/book/handler"
	bookService "bszip-backend/internal/domains/book/service"
	bookstoreHandler "bszip-backend/internal/domains/bookstore/handler"
	bookstoreRepo "bszip-backend/internal/domains/bookstore/repository"
	bookstoreService "bszip-backend/internal/domains/bookstore/service"
)

// HealthChecker is implemented by both database backends.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Container chứa tất cả dependencies của application.
// Thứ tự khởi tạo: Config -> Infrastructure -> Repositories -> Services -> Handlers
type Container struct {
	// INFRASTRUCTURE
	Config     *config.Config
	DB         HealthChecker
	Cache      cache.Cache // nil khi Redis không kết nối được
	JWTManager *jwt.Manager
	Kakao      *kakao.Client

	postgres *database.PostgresDB
	sqlite   *database.SQLiteDB
	redis    *infraCache.RedisCache

	// REPOSITORIES
	BookstoreRepo bookstoreRepo.RepositoryInterface

	// SERVICES
	BookService      bookService.ServiceInterface
	BookstoreService bookstoreService.ServiceInterface

	// HANDLERS
	BookHandler      *bookHandler.Handler
	BookstoreHandler *bookstoreHandler.Handler
}

// NewContainer loads config from the environment and builds the dependency graph.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Build(ctx, cfg)
}

// Build wires every layer from cfg. On error, whatever was opened is closed again.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger.Info("Initializing DI container", map[string]interface{}{
		"environment": cfg.App.Environment,
		"db_driver":   cfg.Database.Driver,
	})

	c := &Container{Config: cfg}

	if err := c.initDatabase(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initCache(ctx)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL())
	c.Kakao = kakao.NewClient(kakao.Config{
		APIKey:     cfg.Kakao.APIKey,
		BaseURL:    cfg.Kakao.BaseURL,
		PageSize:   cfg.Kakao.PageSize,
		RPS:        cfg.Kakao.RPS,
		MaxRetries: cfg.Kakao.MaxRetries,
		Timeout:    cfg.Kakao.Timeout,
	})

	c.initServices()
	c.initHandlers()

	logger.Info("DI container initialized", nil)
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	switch c.Config.Database.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(c.Config.Database.SQLitePath, c.Config.App.Environment == "development", bookstoreRepo.Models()...)
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}
		c.sqlite = db
		c.DB = db
		c.BookstoreRepo = bookstoreRepo.NewGormRepository(db.DB)

	default:
		db := database.NewPostgresDB(c.Config.Postgres)

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := db.Connect(connectCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.postgres = db
		c.DB = db

		if err := db.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}
		if err := bookstoreRepo.Migrate(ctx, db.Pool); err != nil {
			return err
		}
		c.BookstoreRepo = bookstoreRepo.NewPostgresRepository(db.Pool)
	}
	return nil
}

// initCache - Redis failure không critical, book search chạy không cache
func (c *Container) initCache(ctx context.Context) {
	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed (non-critical), book search cache disabled", err)
		_ = rc.Close()
		return
	}
	c.redis = rc
	c.Cache = rc
}

func (c *Container) initServices() {
	c.BookService = bookService.NewBookService(c.Kakao, c.Cache, c.Config.BookCache.TTL)
	c.BookstoreService = bookstoreService.NewBookstoreService(
		c.BookstoreRepo,
		geo.Distance,
		c.Config.Bookstore.SearchRadiusMeters(),
	)
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.BookstoreHandler = bookstoreHandler.NewHandler(c.BookstoreService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.postgres != nil {
		c.postgres.Close()
	}
	if c.sqlite != nil {
		if err := c.sqlite.Close(); err != nil {
			logger.Warn("Failed to close sqlite", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Warn("Failed to close Redis", err)
		}
	}
	logger.Debug("Container cleanup completed")
}
