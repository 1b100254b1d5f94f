package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sbo-seals/oilseal-api/config"
	"github.com/sbo-seals/oilseal-api/controllers"
	"github.com/sbo-seals/oilseal-api/logger"
	"github.com/sbo-seals/oilseal-api/middleware"
	"github.com/sbo-seals/oilseal-api/services"
	"github.com/sbo-seals/oilseal-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.Init(cfg.LogLevel)
	appLog.Info("starting SBO Oil Seals API server", "env", cfg.GoEnv)

	// The hosted store is optional: without it, contacts run on the local
	// file store and products/reviews are unavailable.
	var db *gorm.DB
	if cfg.HasDatabase() {
		db, err = config.ConnectDatabase(cfg.DatabaseURL)
		if err != nil {
			appLog.Error("database connection failed, contacts will use the file store", "error", err)
			db = nil
		} else if err := store.Migrate(db); err != nil {
			appLog.Error("database migration failed", "error", err)
		}
	} else {
		appLog.Warn("DATABASE_URL not set, contacts will use the file store; products and reviews are disabled")
	}

	router := newRouter(cfg, db, appLog)

	addr := ":" + cfg.Port
	appLog.Info("server listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newRouter wires stores, controllers and middleware into a gin engine.
// db may be nil when the hosted store is unavailable.
func newRouter(cfg *config.Config, db *gorm.DB, appLog *slog.Logger) *gin.Engine {
	if appLog == nil {
		appLog = slog.Default()
	}
	if cfg.IsProduction() || cfg.IsTest() {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.RegisterValidation()

	var primary store.ContactStore
	if db != nil {
		primary = store.NewContactDBStore(db)
	}
	contacts := store.NewContactFacade(primary, store.NewContactFileStore(cfg.DataDir), appLog)
	products := store.NewProductDBStore(db)
	reviews := store.NewReviewDBStore(db)

	contactCtl := controllers.NewContactController(contacts, appLog)
	reviewCtl := controllers.NewReviewController(reviews, appLog)
	productCtl := controllers.NewProductController(products, appLog)
	adminCtl := controllers.NewAdminController(contacts, services.NewNotifyService(cfg), appLog)
	healthCtl := controllers.NewHealthController(db)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(appLog))
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/health", healthCtl.Check)

	api := router.Group("/api")
	{
		api.POST("/contact", contactCtl.Create)

		api.GET("/reviews", reviewCtl.List)
		api.POST("/reviews", reviewCtl.Create)
		api.GET("/reviews/stats", reviewCtl.Stats)

		api.GET("/products", productCtl.List)
		api.GET("/products/:id", productCtl.GetByID)
		api.GET("/products/sku/:sku", productCtl.GetBySKU)

		adminGate := middleware.RequireAdminToken(cfg.AdminToken)

		api.POST("/products", adminGate, productCtl.Create)
		api.PUT("/products/:id", adminGate, productCtl.Update)
		api.DELETE("/products/:id", adminGate, productCtl.Delete)

		admin := api.Group("/admin", adminGate)
		{
			admin.GET("/contacts", adminCtl.ListContacts)
			admin.GET("/contacts/:id", adminCtl.GetContact)
			admin.POST("/contacts/:id/reply", adminCtl.Reply)
			admin.PATCH("/contacts/:id", adminCtl.UpdateStatus)
			admin.POST("/contacts/:id/notify", adminCtl.Notify)
		}
	}

	return router
}

// corsConfig mirrors the site's cross-origin policy: an explicit origin list
// when configured, otherwise open (development).
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(cfg.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.AllowedOrigins
		c.AllowCredentials = true
	} else {
		c.AllowAllOrigins = true
	}
	return c
}
