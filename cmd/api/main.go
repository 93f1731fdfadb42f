package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-depo-catalog/internal/handler"
	"go-depo-catalog/internal/logger"
	"go-depo-catalog/internal/middleware"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/repository"
	"go-depo-catalog/internal/service"
	"go-depo-catalog/internal/ws"
	"go-depo-catalog/pkg/database"
	"go-depo-catalog/pkg/imagestore"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	zlog := logger.New()
	defer zlog.Sync()

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{}, &model.Vendor{},
		&model.Category{}, &model.SubCategory{},
		&model.Product{}, &model.ProductPriceOption{},
		&model.Currency{}, &model.UnitType{},
	)

	// 3. Seed superadmin and base lookups
	seedDefaults(db, zlog)

	// 4. Image store (optional; nil store soft-fails every call)
	images, err := imagestore.New()
	if err != nil {
		zlog.Warn("image store disabled", zap.Error(err))
	}

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	vendorRepo := repository.NewVendorRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	subCategoryRepo := repository.NewSubCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	currencyRepo := repository.NewCurrencyRepo(db)
	unitRepo := repository.NewUnitTypeRepo(db)

	priceManager := service.NewPriceOptionManager(currencyRepo, unitRepo)
	slugRegistry := service.NewSlugRegistry(productRepo)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(productRepo, vendorRepo, categoryRepo, subCategoryRepo,
		priceManager, slugRegistry, images, wsHub, zlog)
	categoryService := service.NewCategoryService(categoryRepo, subCategoryRepo, images, wsHub, zlog)
	vendorService := service.NewVendorService(vendorRepo, userRepo, wsHub, zlog)
	lookupService := service.NewLookupService(currencyRepo, unitRepo)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	lookupHandler := handler.NewLookupHandler(lookupService)
	uploadHandler := handler.NewUploadHandler(images)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Depo Catalog v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// Storefront reads are open to everyone
	api.Get("/storefront/products", catalogHandler.ListPublished)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/categories", categoryHandler.ListCategories)
	api.Get("/categories/:id", categoryHandler.GetCategory)
	api.Get("/subcategories", categoryHandler.ListSubCategories)
	api.Get("/vendors", vendorHandler.ListVendors)
	api.Get("/vendors/:id", vendorHandler.GetVendor)
	api.Get("/currencies", lookupHandler.ListCurrencies)
	api.Get("/unit-types", lookupHandler.ListUnitTypes)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Product routes (scope enforced inside the service layer)
	protected.Get("/products", catalogHandler.ListProducts)
	protected.Post("/products", catalogHandler.CreateProduct)
	protected.Put("/products/:id", catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", catalogHandler.DeleteProduct)

	// Taxonomy routes (role gate re-checked in the service layer)
	taxonomyRoles := middleware.RequireRole(model.RoleSuperAdmin, model.RoleVendorAdmin)
	protected.Post("/categories", taxonomyRoles, categoryHandler.SaveCategory)
	protected.Put("/categories/:id", taxonomyRoles, categoryHandler.SaveCategory)
	protected.Delete("/categories/:id", taxonomyRoles, categoryHandler.DeleteCategory)
	protected.Post("/subcategories", taxonomyRoles, categoryHandler.SaveSubCategory)
	protected.Put("/subcategories/:id", taxonomyRoles, categoryHandler.SaveSubCategory)
	protected.Delete("/subcategories/:id", taxonomyRoles, categoryHandler.DeleteSubCategory)

	// Vendor lifecycle
	protected.Post("/vendors", middleware.RequireRole(model.RoleSuperAdmin), vendorHandler.CreateDepo)
	protected.Post("/my-store", vendorHandler.CreateMyStore)
	protected.Put("/vendors/:id", vendorHandler.UpdateVendor)
	protected.Delete("/vendors/:id", middleware.RequireRole(model.RoleSuperAdmin), vendorHandler.DeleteVendor)

	// Lookup management
	superOnly := middleware.RequireRole(model.RoleSuperAdmin)
	protected.Post("/currencies", superOnly, lookupHandler.CreateCurrency)
	protected.Put("/currencies/:id", superOnly, lookupHandler.UpdateCurrency)
	protected.Delete("/currencies/:id", superOnly, lookupHandler.DeleteCurrency)
	protected.Post("/unit-types", superOnly, lookupHandler.CreateUnitType)
	protected.Put("/unit-types/:id", superOnly, lookupHandler.UpdateUnitType)
	protected.Delete("/unit-types/:id", superOnly, lookupHandler.DeleteUnitType)

	// Uploads
	protected.Post("/uploads", uploadHandler.Upload)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaults creates the superadmin account and the base currency/unit rows
// if they don't exist yet.
func seedDefaults(db *gorm.DB, zlog *zap.Logger) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err != nil {
		admin := &model.User{
			Email:    "admin@example.com",
			FullName: "Platform Administrator",
			Role:     model.RoleSuperAdmin,
			IsActive: true,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"
		if err := admin.SetPassword("admin123"); err != nil {
			zlog.Warn("failed to hash admin password", zap.Error(err))
			return
		}
		if err := userRepo.Create(admin); err != nil {
			zlog.Warn("failed to create admin user", zap.Error(err))
		} else {
			zlog.Info("superadmin created", zap.String("email", admin.Email))
		}
	}

	var currencyCount int64
	db.Model(&model.Currency{}).Count(&currencyCount)
	if currencyCount == 0 {
		currencies := []model.Currency{
			{Code: "USD", Symbol: "$", ExchangeRate: decimal.NewFromInt(1), Status: model.LookupActive},
			{Code: "KHR", Symbol: "៛", ExchangeRate: decimal.NewFromFloat(0.00025), Status: model.LookupActive},
		}
		if err := db.Create(&currencies).Error; err != nil {
			zlog.Warn("failed to seed currencies", zap.Error(err))
		}
	}

	var unitCount int64
	db.Model(&model.UnitType{}).Count(&unitCount)
	if unitCount == 0 {
		units := []model.UnitType{
			{Name: "kg", Status: model.LookupActive},
			{Name: "bag", Status: model.LookupActive},
			{Name: "box", Status: model.LookupActive},
		}
		if err := db.Create(&units).Error; err != nil {
			zlog.Warn("failed to seed unit types", zap.Error(err))
		}
	}
}
