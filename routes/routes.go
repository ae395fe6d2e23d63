package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"flowermarket-backend/configs"
	"flowermarket-backend/controllers"
	"flowermarket-backend/logger"
	"flowermarket-backend/middlewares"
	"flowermarket-backend/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, events services.OrderEventPublisher) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	log := logger.L()

	// Services
	storeSvc := services.NewStoreService(db)
	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, storeSvc, events, log)
	productSvc := services.NewProductService(db, storeSvc, log)
	promoSvc := services.NewPromotionService(db, storeSvc)
	reviewSvc := services.NewReviewService(db, storeSvc)
	statsSvc := services.NewStatsService(db, storeSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	storeCtrl := controllers.NewStoreController(storeSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	productCtrl := controllers.NewProductController(productSvc, cfg.UploadDir)
	promoCtrl := controllers.NewPromotionController(promoSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	statsCtrl := controllers.NewStatsController(statsSvc)
	marketCtrl := controllers.NewMarketController(productSvc, orderSvc)

	api := r.Group("/api")

	// Auth (public, rate limited)
	a := api.Group("/auth", middlewares.RateLimitStrict())
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Current account, any authenticated role
	api.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Market (customer surface)
	market := api.Group("/market", middlewares.RateLimitGeneral())
	{
		market.GET("/products", marketCtrl.ListProducts)
		market.GET("/products/:id/reviews", reviewCtrl.ListForProduct)

		mAuth := market.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
		mAuth.POST("/orders", marketCtrl.PlaceOrder)
		mAuth.GET("/my-orders", marketCtrl.MyOrders)
	}

	// Reviews (any authenticated user, author-side CRUD)
	reviews := api.Group("/reviews", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		reviews.POST("", reviewCtrl.Create)
		reviews.PUT("/:id", reviewCtrl.Update)
		reviews.DELETE("/:id", reviewCtrl.Delete)
	}

	// Vendor portal
	vendor := api.Group("/prestataire", middlewares.AuthMiddleware(cfg.JWTSecret, "vendor"))
	{
		vendor.GET("/store", storeCtrl.GetMyStore)
		vendor.PUT("/store", storeCtrl.Upsert)

		vendor.GET("/orders", orderCtrl.List)
		vendor.PUT("/orders/:id", orderCtrl.UpdateStatus)

		vendor.GET("/products", productCtrl.List)
		vendor.POST("/products", productCtrl.Create)
		vendor.PUT("/products/:id", productCtrl.Update)
		vendor.DELETE("/products/:id", productCtrl.Delete)

		vendor.GET("/promotions", promoCtrl.List)
		vendor.POST("/promotions", promoCtrl.Create)
		vendor.PUT("/promotions/:id", promoCtrl.Update)
		vendor.DELETE("/promotions/:id", promoCtrl.Delete)

		vendor.GET("/reviews", reviewCtrl.ListMine)
		vendor.GET("/stats", statsCtrl.Get)
	}
}
