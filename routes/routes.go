package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	categorySvc := services.NewCategoryService(categoryRepo)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	cartSvc.TaxRate = decimal.NewFromFloat(cfg.TaxRate)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, userRepo, services.NewAccessPolicy())

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)
	staffOnly := middlewares.AuthMiddleware(cfg.JWTSecret, string(entity.RoleAdminStaff))

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authRequired, authCtrl.Me)
	}

	// Catalog (public read, staff write)
	r.GET("/categories", categoryCtrl.List)
	r.GET("/categories/:id", categoryCtrl.Get)
	r.GET("/menu-items", menuCtrl.List)
	r.GET("/menu-items/:id", menuCtrl.Get)

	staffCatalog := r.Group("/", staffOnly)
	{
		staffCatalog.POST("/categories", categoryCtrl.Create)
		staffCatalog.PUT("/categories/:id", categoryCtrl.Update)
		staffCatalog.DELETE("/categories/:id", categoryCtrl.Delete)
		staffCatalog.POST("/menu-items", menuCtrl.Create)
		staffCatalog.PUT("/menu-items/:id", menuCtrl.Update)
		staffCatalog.PATCH("/menu-items/:id/availability", menuCtrl.SetAvailability)
		staffCatalog.DELETE("/menu-items/:id", menuCtrl.Delete)
	}

	// Cart
	cart := r.Group("/cart", authRequired)
	{
		cart.GET("", cartCtrl.View)
		cart.POST("/items", cartCtrl.Add)
		cart.POST("/quick-add", cartCtrl.QuickAdd)
		cart.PUT("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/bulk-update", cartCtrl.BulkUpdate)
		cart.POST("/sync", cartCtrl.Sync)
		cart.GET("/stats", staffOnly, cartCtrl.Stats)
	}

	// Orders
	orders := r.Group("/orders", authRequired)
	{
		orders.POST("", orderCtrl.Create)
		orders.POST("/from-cart", orderCtrl.CreateFromCart)
		orders.GET("", orderCtrl.List)
		orders.GET("/stats/dashboard", staffOnly, orderCtrl.Stats)
		orders.GET("/:id", orderCtrl.Get)
		orders.PATCH("/:id/status", staffOnly, orderCtrl.UpdateStatus)
		orders.DELETE("/:id", orderCtrl.Cancel)
	}
}
