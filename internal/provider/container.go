package provider

import (
	"github.com/optomarket/optomarket-api/internal/config"
	"github.com/optomarket/optomarket-api/internal/queue"
	"github.com/optomarket/optomarket-api/internal/repository"
	"github.com/optomarket/optomarket-api/internal/service"

	"gorm.io/gorm"
)

// Container wires repositories and services once and hands them to the
// HTTP handlers and the worker.
type Container struct {
	Cfg *config.Config
	DB  *gorm.DB

	Queue *queue.Client

	Auth         *service.AuthService
	Categories   *service.CategoryService
	Suppliers    *service.SupplierService
	Products     *service.ProductService
	Banners      *service.BannerService
	Pricing      *service.PricingService
	Prices       *service.SupplierPriceService
	Favorites    *service.FavoriteService
	Carts        *service.CartService
	Orders       *service.OrderService
	Applications *service.ApplicationService
	Deliveries   *service.DeliveryService
	Stats        *service.SupplierStatService
}

// New builds the full dependency graph.
func New(cfg *config.Config, db *gorm.DB) *Container {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	priceRepo := repository.NewSupplierPriceRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	cartRepo := repository.NewCartRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	statRepo := repository.NewSupplierStatRepository(db)

	producer := queue.NewClient(cfg.Queue)

	pricing := service.NewPricingService(supplierRepo, productRepo, categoryRepo, cfg.Cache.PricingTTLSeconds)

	return &Container{
		Cfg:   cfg,
		DB:    db,
		Queue: producer,

		Auth:         service.NewAuthService(userRepo, cfg.JWT),
		Categories:   service.NewCategoryService(categoryRepo),
		Suppliers:    service.NewSupplierService(supplierRepo, categoryRepo),
		Products:     service.NewProductService(productRepo, categoryRepo),
		Banners:      service.NewBannerService(bannerRepo),
		Pricing:      pricing,
		Prices:       service.NewSupplierPriceService(priceRepo, supplierRepo, productRepo, pricing),
		Favorites:    service.NewFavoriteService(db, favoriteRepo, productRepo, supplierRepo),
		Carts:        service.NewCartService(db, cartRepo, productRepo),
		Orders:       service.NewOrderService(orderRepo, priceRepo, supplierRepo, productRepo, producer),
		Applications: service.NewApplicationService(applicationRepo, orderRepo),
		Deliveries:   service.NewDeliveryService(deliveryRepo),
		Stats:        service.NewSupplierStatService(statRepo, orderRepo),
	}
}

// Close releases long-lived resources.
func (c *Container) Close() {
	if c.Queue != nil {
		_ = c.Queue.Close()
	}
}
