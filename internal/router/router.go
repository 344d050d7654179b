package router

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/admin"
	"github.com/optomarket/optomarket-api/internal/http/handlers/public"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// New builds the gin engine with the full route tree.
func New(container *provider.Container) *gin.Engine {
	gin.SetMode(ginMode(container.Cfg.Server.Mode))
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(), CORS(container.Cfg.CORS))

	engine.GET("/healthz", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "up"})
	})

	pub := public.New(container)
	adm := admin.New(container)

	v1 := engine.Group("/api/v1")

	open := v1.Group("/public")
	{
		open.GET("/categories", pub.CategoryTree)
		open.GET("/banners", pub.ListBanners)
		open.GET("/suppliers", pub.ListSuppliers)
		open.GET("/suppliers/:id", pub.GetSupplier)
		open.GET("/products", pub.ListProducts)
		open.GET("/products/:id", pub.GetProduct)
		open.GET("/pricing/suppliers", pub.SuppliersByCategory)
		open.GET("/pricing/products", pub.ProductsBySupplier)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/register", pub.Register)
		auth.POST("/login", LoginRateLimit(container.Cfg.Security.LoginRateLimit), pub.Login)
	}

	user := v1.Group("/user", Auth(container.Auth))
	{
		user.GET("/me", pub.Me)

		user.GET("/cart", pub.GetCart)
		user.POST("/cart/items", pub.AddCartItem)
		user.PUT("/cart/items", pub.SetCartItemQuantity)
		user.DELETE("/cart/items/:product_id", pub.RemoveCartItem)

		user.GET("/favorites", pub.ListFavorites)
		user.POST("/favorites", pub.AddFavorite)
		user.DELETE("/favorites", pub.RemoveFavorite)

		user.POST("/orders", pub.CreateOrder)
		user.GET("/orders", pub.ListOrders)
		user.GET("/orders/:id", pub.GetOrder)

		user.POST("/applications", pub.CreateApplication)
		user.GET("/applications", pub.ListApplications)
		user.GET("/applications/:id", pub.GetApplication)
		user.PUT("/applications/:id", pub.UpdateApplication)

		user.GET("/deliveries", pub.ListDeliveries)
		user.POST("/deliveries", pub.CreateDelivery)
		user.GET("/deliveries/:id", pub.GetDelivery)
		user.PUT("/deliveries/:id", pub.UpdateDelivery)
		user.PUT("/deliveries/:id/status", pub.UpdateDeliveryStatus)
		user.POST("/deliveries/:id/cancel", pub.CancelDelivery)
	}

	adminGroup := v1.Group("/admin", Auth(container.Auth), RequireAdmin())
	{
		adminGroup.POST("/categories", adm.CreateCategory)
		adminGroup.PUT("/categories/:id", adm.UpdateCategory)
		adminGroup.DELETE("/categories/:id", adm.DeleteCategory)

		adminGroup.POST("/suppliers", adm.CreateSupplier)
		adminGroup.PUT("/suppliers/:id", adm.UpdateSupplier)
		adminGroup.DELETE("/suppliers/:id", adm.DeleteSupplier)

		adminGroup.POST("/products", adm.CreateProduct)
		adminGroup.PUT("/products/:id", adm.UpdateProduct)
		adminGroup.DELETE("/products/:id", adm.DeleteProduct)

		adminGroup.GET("/supplier-prices", adm.ListSupplierPrices)
		adminGroup.POST("/supplier-prices", adm.CreateSupplierPrice)
		adminGroup.PUT("/supplier-prices/:id", adm.UpdateSupplierPrice)
		adminGroup.DELETE("/supplier-prices/:id", adm.DeleteSupplierPrice)

		adminGroup.GET("/banners", adm.ListBanners)
		adminGroup.POST("/banners", adm.CreateBanner)
		adminGroup.PUT("/banners/:id", adm.UpdateBanner)
		adminGroup.DELETE("/banners/:id", adm.DeleteBanner)

		adminGroup.GET("/applications", adm.ListApplications)
		adminGroup.GET("/applications/:id", adm.GetApplication)
		adminGroup.PUT("/applications/:id/status", adm.UpdateApplicationStatus)

		adminGroup.GET("/supplier-stats", adm.ListSupplierStats)
		adminGroup.GET("/supplier-stats/:id", adm.GetSupplierStats)
		adminGroup.POST("/supplier-stats/:id/recalc", adm.RecalcSupplierStats)
	}

	return engine
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}
