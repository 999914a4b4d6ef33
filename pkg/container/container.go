package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookrating-backend/internal/config"
	infraCache "bookrating-backend/internal/infrastructure/cache"
	"bookrating-backend/internal/infrastructure/database"
	"bookrating-backend/pkg/cache"
	"bookrating-backend/pkg/jwt"
	pkgdb "bookrating-backend/pkg/database"

	authorHandler "bookrating-backend/internal/domains/author/handler"
	authorRepo "bookrating-backend/internal/domains/author/repository"
	authorService "bookrating-backend/internal/domains/author/service"
	bookHandler "bookrating-backend/internal/domains/book/handler"
	bookRepo "bookrating-backend/internal/domains/book/repository"
	bookService "bookrating-backend/internal/domains/book/service"
	categoryHandler "bookrating-backend/internal/domains/category/handler"
	categoryRepo "bookrating-backend/internal/domains/category/repository"
	categoryService "bookrating-backend/internal/domains/category/service"
	eventHandler "bookrating-backend/internal/domains/event/handler"
	eventRepo "bookrating-backend/internal/domains/event/repository"
	eventService "bookrating-backend/internal/domains/event/service"
	publisherHandler "bookrating-backend/internal/domains/publisher/handler"
	publisherRepo "bookrating-backend/internal/domains/publisher/repository"
	publisherService "bookrating-backend/internal/domains/publisher/service"
	reviewHandler "bookrating-backend/internal/domains/review/handler"
	reviewRepo "bookrating-backend/internal/domains/review/repository"
	reviewService "bookrating-backend/internal/domains/review/service"
	tagHandler "bookrating-backend/internal/domains/tag/handler"
	tagRepo "bookrating-backend/internal/domains/tag/repository"
	tagService "bookrating-backend/internal/domains/tag/service"
	userRepo "bookrating-backend/internal/domains/user/repository"
	wishlistHandler "bookrating-backend/internal/domains/wishlist/handler"
	wishlistRepo "bookrating-backend/internal/domains/wishlist/repository"
	wishlistService "bookrating-backend/internal/domains/wishlist/service"
)

// Container holds every long-lived dependency of the application.
// Initialization order matters: config, infrastructure, repositories,
// services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	UnitOfWork pkgdb.UnitOfWork

	AuthorRepo    authorRepo.Repository
	CategoryRepo  categoryRepo.Repository
	PublisherRepo publisherRepo.Repository
	TagRepo       tagRepo.Repository
	BookRepo      bookRepo.Repository
	EventRepo     eventRepo.Repository
	WishlistRepo  wishlistRepo.Repository
	ReviewRepo    reviewRepo.Repository
	UserRepo      userRepo.Repository

	AuthorService    authorService.Service
	CategoryService  categoryService.Service
	PublisherService publisherService.Service
	TagService       tagService.Service
	BookService      bookService.Service
	EventService     eventService.Service
	WishlistService  wishlistService.Service
	ReviewService    reviewService.Service

	AuthorHandler    *authorHandler.AuthorHandler
	CategoryHandler  *categoryHandler.CategoryHandler
	PublisherHandler *publisherHandler.PublisherHandler
	TagHandler       *tagHandler.TagHandler
	BookHandler      *bookHandler.BookHandler
	EventHandler     *eventHandler.EventHandler
	WishlistHandler  *wishlistHandler.WishlistHandler
	ReviewHandler    *reviewHandler.ReviewHandler
}

// NewContainer builds the full dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("configuration loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	c.UnitOfWork = pkgdb.NewUnitOfWork(db.Pool)
	log.Info().Msg("database connected")

	redisCache := infraCache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		// The cache is an accelerator, not a dependency; reads fall
		// through to Postgres when Redis is down.
		log.Warn().Err(err).Msg("redis unreachable, continuing without cache hits")
	} else {
		log.Info().Msg("redis connected")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(pool)
	c.TagRepo = tagRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.EventRepo = eventRepo.NewPostgresRepository(pool, c.Cache)
	c.WishlistRepo = wishlistRepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo)
	c.TagService = tagService.NewTagService(c.TagRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.EventService = eventService.NewEventService(c.EventRepo)
	c.WishlistService = wishlistService.NewWishlistService(c.WishlistRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.UserRepo, c.UnitOfWork)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.WishlistHandler = wishlistHandler.NewWishlistHandler(c.WishlistService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		} else {
			log.Info().Msg("redis connections closed")
		}
	}
}
