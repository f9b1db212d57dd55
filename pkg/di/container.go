package di

import (
	"context"

	"gorm.io/gorm"

	"catalog-service/application/serviceimpl"
	"catalog-service/domain/ports"
	"catalog-service/domain/repositories"
	"catalog-service/infrastructure/nats"
	"catalog-service/infrastructure/postgres"
	"catalog-service/infrastructure/redis"
	"catalog-service/interfaces/api/handlers"
	"catalog-service/pkg/config"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/scheduler"
	"catalog-service/pkg/treeindex"
)

// Container wires the whole application: config, infrastructure, repos,
// services, background jobs and handlers.
type Container struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	NATS      *nats.Client
	Index     *treeindex.Store
	Scheduler scheduler.EventScheduler

	CategoryRepo    repositories.CategoryRepository
	ProductTypeRepo repositories.ProductTypeRepository
	AttributeRepo   repositories.AttributeRepository
	ProductRepo     repositories.ProductRepository
	LookupRepo      repositories.LookupRepository

	Publisher ports.EventPublisher
	Services  *handlers.Services
	Handlers  *handlers.Handlers
}

func NewContainer() (*Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = cfg.Log.Output
	logCfg.FilePath = cfg.Log.FilePath
	logCfg.MaxSize = cfg.Log.MaxSize
	logCfg.MaxBackups = cfg.Log.MaxBackups
	logCfg.MaxAge = cfg.Log.MaxAge
	logCfg.Compress = cfg.Log.Compress
	if err := logger.Init(logCfg); err != nil {
		return nil, err
	}

	db, err := postgres.NewDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(db); err != nil {
		return nil, err
	}

	// Redis and NATS are optional; both constructors return nil when not
	// configured and every consumer degrades gracefully.
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	natsClient, err := nats.NewClient(cfg)
	if err != nil {
		logger.Warn("NATS unavailable, events disabled", "error", err)
		natsClient = nil
	}
	publisher, err := nats.NewEventPublisher(natsClient)
	if err != nil {
		return nil, err
	}

	categoryRepo := postgres.NewCategoryRepository(db)
	productTypeRepo := postgres.NewProductTypeRepository(db)
	attributeRepo := postgres.NewAttributeRepository(db)
	productRepo := postgres.NewProductRepository(db)
	lookupRepo := postgres.NewLookupRepository(db)

	index := treeindex.NewStore()

	categoryService := serviceimpl.NewCategoryService(categoryRepo, index, redisClient, publisher, cfg)
	productTypeService := serviceimpl.NewProductTypeService(productTypeRepo, categoryRepo, attributeRepo)
	attributeService := serviceimpl.NewAttributeService(attributeRepo, redisClient, cfg)
	productService := serviceimpl.NewProductService(productRepo, categoryRepo, attributeRepo, index, publisher, cfg)
	lookupService := serviceimpl.NewLookupService(lookupRepo)

	// Warm the taxonomy index before the server starts taking traffic.
	if err := categoryService.Reindex(context.Background()); err != nil {
		return nil, err
	}

	sched := scheduler.NewEventScheduler()
	if err := sched.AddJob("category-reindex", cfg.Catalog.ReindexCron, func() {
		if err := categoryService.Reindex(context.Background()); err != nil {
			logger.Error("Scheduled category reindex failed", "error", err)
		}
	}); err != nil {
		return nil, err
	}
	sched.Start()

	svcs := &handlers.Services{
		Category:    categoryService,
		ProductType: productTypeService,
		Attribute:   attributeService,
		Product:     productService,
		Lookup:      lookupService,
	}

	return &Container{
		Config:          cfg,
		DB:              db,
		Redis:           redisClient,
		NATS:            natsClient,
		Index:           index,
		Scheduler:       sched,
		CategoryRepo:    categoryRepo,
		ProductTypeRepo: productTypeRepo,
		AttributeRepo:   attributeRepo,
		ProductRepo:     productRepo,
		LookupRepo:      lookupRepo,
		Publisher:       publisher,
		Services:        svcs,
		Handlers:        handlers.NewHandlers(svcs),
	}, nil
}

// Cleanup releases resources in reverse construction order.
func (c *Container) Cleanup() {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.NATS != nil {
		c.NATS.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database", "error", err)
			}
		}
	}
}
