package provider

import (
	"github.com/cayro-uniformes/internal/cache"
	"github.com/cayro-uniformes/internal/config"
	"github.com/cayro-uniformes/internal/logger"
	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/queue"
	"github.com/cayro-uniformes/internal/repository"
	"github.com/cayro-uniformes/internal/service"
)

// Container contenedor de inyección de dependencias
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	VariantRepo   repository.VariantRepository
	CartRepo      repository.CartRepository
	SaleRepo      repository.SaleRepository
	InventoryRepo repository.InventoryRepository

	ColorRepo        repository.CatalogRepository[models.Color]
	SizeRepo         repository.CatalogRepository[models.Size]
	MaterialRepo     repository.CatalogRepository[models.Material]
	CategoryRepo     repository.CatalogRepository[models.Category]
	BrandRepo        repository.CatalogRepository[models.Brand]
	GenderRepo       repository.CatalogRepository[models.Gender]
	SleeveRepo       repository.CatalogRepository[models.Sleeve]
	FabricTypeRepo   repository.CatalogRepository[models.FabricType]
	NeckTypeRepo     repository.CatalogRepository[models.NeckType]
	SewingThreadRepo repository.CatalogRepository[models.SewingThread]
	FaqRepo          repository.CatalogRepository[models.Faq]

	// Services
	EmailService          *service.EmailService
	ProductService        *service.ProductService
	CartService           *service.CartService
	InventoryService      *service.InventoryService
	SaleService           *service.SaleService
	RecommendationService *service.RecommendationService

	ColorService        *service.CatalogService[models.Color]
	SizeService         *service.CatalogService[models.Size]
	MaterialService     *service.CatalogService[models.Material]
	CategoryService     *service.CatalogService[models.Category]
	BrandService        *service.CatalogService[models.Brand]
	GenderService       *service.CatalogService[models.Gender]
	SleeveService       *service.CatalogService[models.Sleeve]
	FabricTypeService   *service.CatalogService[models.FabricType]
	NeckTypeService     *service.CatalogService[models.NeckType]
	SewingThreadService *service.CatalogService[models.SewingThread]
	FaqService          *service.CatalogService[models.Faq]
}

// NewContainer inicializa el contenedor
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.VariantRepo = repository.NewVariantRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.SaleRepo = repository.NewSaleRepository(db)
	c.InventoryRepo = repository.NewInventoryRepository(db)

	c.ColorRepo = repository.NewCatalogRepository[models.Color](db, "name ASC",
		repository.ReferenceSpec{Table: "product_variants", Column: "color_id"})
	c.SizeRepo = repository.NewCatalogRepository[models.Size](db, "name ASC",
		repository.ReferenceSpec{Table: "product_variants", Column: "size_id"})
	c.MaterialRepo = repository.NewCatalogRepository[models.Material](db, "name ASC")
	c.CategoryRepo = repository.NewCatalogRepository[models.Category](db, "name ASC",
		repository.ReferenceSpec{Table: "products", Column: "category_id"})
	c.BrandRepo = repository.NewCatalogRepository[models.Brand](db, "name ASC",
		repository.ReferenceSpec{Table: "products", Column: "brand_id"})
	c.GenderRepo = repository.NewCatalogRepository[models.Gender](db, "name ASC",
		repository.ReferenceSpec{Table: "products", Column: "gender_id"})
	c.SleeveRepo = repository.NewCatalogRepository[models.Sleeve](db, "name ASC",
		repository.ReferenceSpec{Table: "products", Column: "sleeve_id"})
	c.FabricTypeRepo = repository.NewCatalogRepository[models.FabricType](db, "name ASC")
	c.NeckTypeRepo = repository.NewCatalogRepository[models.NeckType](db, "name ASC")
	c.SewingThreadRepo = repository.NewCatalogRepository[models.SewingThread](db, "name ASC")
	c.FaqRepo = repository.NewCatalogRepository[models.Faq](db, "question ASC")
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.ProductService = service.NewProductService(c.ProductRepo, c.VariantRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.UserRepo, c.VariantRepo)
	c.InventoryService = service.NewInventoryService(
		c.InventoryRepo,
		c.VariantRepo,
		c.QueueClient,
		c.Config.Inventory.LowStockThreshold,
		c.Config.Inventory.StatsCacheSeconds,
	)
	c.SaleService = service.NewSaleService(c.SaleRepo, c.QueueClient)

	recommender, err := service.NewRecommendationService(
		c.Config.Recommendation.RulesFile,
		c.Config.Recommendation.TopN,
		c.Config.Recommendation.FallbackSize,
		c.ProductRepo,
	)
	if err != nil {
		// sin archivo de reglas el recomendador sigue operando con el
		// respaldo por categoría
		logger.Warnw("provider_load_rules_failed", "error", err)
		recommender = service.NewRecommendationServiceFromRules(nil,
			c.Config.Recommendation.TopN,
			c.Config.Recommendation.FallbackSize,
			c.ProductRepo,
		)
	}
	c.RecommendationService = recommender

	c.ColorService = service.NewCatalogService(c.ColorRepo,
		service.UniqueRule[models.Color]{Column: "name", Value: func(e *models.Color) interface{} { return e.Name }},
		service.UniqueRule[models.Color]{Column: "hex_value", Value: func(e *models.Color) interface{} { return e.HexValue }},
	)
	c.SizeService = service.NewCatalogService(c.SizeRepo,
		service.UniqueRule[models.Size]{Column: "name", Value: func(e *models.Size) interface{} { return e.Name }},
	)
	c.MaterialService = service.NewCatalogService(c.MaterialRepo,
		service.UniqueRule[models.Material]{Column: "name", Value: func(e *models.Material) interface{} { return e.Name }},
	)
	c.CategoryService = service.NewCatalogService(c.CategoryRepo,
		service.UniqueRule[models.Category]{Column: "name", Value: func(e *models.Category) interface{} { return e.Name }},
	)
	c.BrandService = service.NewCatalogService(c.BrandRepo,
		service.UniqueRule[models.Brand]{Column: "name", Value: func(e *models.Brand) interface{} { return e.Name }},
	)
	c.GenderService = service.NewCatalogService(c.GenderRepo,
		service.UniqueRule[models.Gender]{Column: "name", Value: func(e *models.Gender) interface{} { return e.Name }},
	)
	c.SleeveService = service.NewCatalogService(c.SleeveRepo,
		service.UniqueRule[models.Sleeve]{Column: "name", Value: func(e *models.Sleeve) interface{} { return e.Name }},
	)
	c.FabricTypeService = service.NewCatalogService(c.FabricTypeRepo,
		service.UniqueRule[models.FabricType]{Column: "name", Value: func(e *models.FabricType) interface{} { return e.Name }},
	)
	c.NeckTypeService = service.NewCatalogService(c.NeckTypeRepo,
		service.UniqueRule[models.NeckType]{Column: "name", Value: func(e *models.NeckType) interface{} { return e.Name }},
	)
	c.SewingThreadService = service.NewCatalogService(c.SewingThreadRepo,
		service.UniqueRule[models.SewingThread]{Column: "name", Value: func(e *models.SewingThread) interface{} { return e.Name }},
	)
	c.FaqService = service.NewCatalogService(c.FaqRepo,
		service.UniqueRule[models.Faq]{Column: "question", Value: func(e *models.Faq) interface{} { return e.Question }},
	)
}
