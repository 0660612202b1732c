// Package router assembles the HTTP surface: middleware chain, repositories,
// services, handlers and the route table.
package router

import (
	"time"

	"stockroom/internal/config"
	"stockroom/internal/handler"
	"stockroom/internal/identity"
	"stockroom/internal/middleware"
	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New builds the engine. verifier is constructed once by the caller and
// injected; nothing below lazily initializes identity state.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client, verifier identity.Verifier) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	users := repository.NewUserRepository(db)
	categories := repository.NewCategoryRepository(db)
	products := repository.NewProductRepository(db)
	suppliers := repository.NewSupplierRepository(db)
	sales := repository.NewSaleRepository(db)
	inventory := repository.NewInventoryRepository(db)

	authSvc := service.NewAuthService(verifier, users)
	categorySvc := service.NewCategoryService(categories)
	productSvc := service.NewProductService(products, inventory)
	supplierSvc := service.NewSupplierService(suppliers)
	salesSvc := service.NewSalesService(sales, products, inventory)
	inventorySvc := service.NewInventoryService(inventory, products)

	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(authSvc, cfg)
	categoryH := handler.NewCategoryHandler(categorySvc, cfg)
	productH := handler.NewProductHandler(productSvc, cache, cfg)
	supplierH := handler.NewSupplierHandler(supplierSvc, cfg)
	salesH := handler.NewSalesHandler(salesSvc, cfg)
	inventoryH := handler.NewInventoryHandler(inventorySvc, cfg)
	healthH := handler.NewHealthHandler(db, cache)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute).Middleware(),
	)

	r.GET("/health", healthH.Check)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.Authenticate(verifier, users))

	adminOnly := middleware.RequireRole(model.RoleAdmin)
	managers := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	usersG := authed.Group("/users")
	{
		usersG.GET("/me", userH.Me)
		usersG.GET("", adminOnly, userH.List)
		usersG.GET("/:id", adminOnly, userH.Get)
		usersG.PUT("/:id/role", adminOnly, userH.UpdateRole)
		usersG.PUT("/:id/deactivate", adminOnly, userH.Deactivate)
		usersG.PUT("/:id/activate", adminOnly, userH.Activate)
	}

	categoriesG := authed.Group("/categories")
	{
		categoriesG.GET("", categoryH.List)
		categoriesG.GET("/roots", categoryH.Roots)
		categoriesG.GET("/:id", categoryH.Get)
		categoriesG.GET("/:id/subcategories", categoryH.Subcategories)
		categoriesG.POST("", managers, categoryH.Create)
		categoriesG.PUT("/:id", managers, categoryH.Update)
		categoriesG.DELETE("/:id", adminOnly, categoryH.Delete)
	}

	productsG := authed.Group("/products")
	{
		productsG.GET("", productH.List)
		productsG.GET("/low-stock", productH.LowStock)
		productsG.GET("/inventory-value", managers, productH.InventoryValue)
		productsG.GET("/barcode/:barcode", productH.BarcodeLookup)
		productsG.GET("/:id", productH.Get)
		productsG.POST("", managers, productH.Create)
		productsG.PUT("/:id", managers, productH.Update)
		productsG.PUT("/:id/stock", managers, productH.AdjustStock)
		productsG.DELETE("/:id", adminOnly, productH.Delete)
	}

	suppliersG := authed.Group("/suppliers")
	{
		suppliersG.GET("", supplierH.List)
		suppliersG.GET("/:id", supplierH.Get)
		suppliersG.POST("", managers, supplierH.Create)
		suppliersG.PUT("/:id", managers, supplierH.Update)
		suppliersG.DELETE("/:id", adminOnly, supplierH.Delete)
	}

	salesG := authed.Group("/sales")
	{
		salesG.GET("", salesH.List)
		salesG.GET("/total", managers, salesH.Total)
		salesG.GET("/:id", salesH.Get)
		salesG.POST("", salesH.Create)
		salesG.DELETE("/:id", managers, salesH.Delete)
	}

	inventoryG := authed.Group("/inventory")
	{
		inventoryG.POST("/transactions", managers, inventoryH.Record)
		inventoryG.GET("/products/:id/transactions", inventoryH.ListByProduct)
	}

	return r
}
