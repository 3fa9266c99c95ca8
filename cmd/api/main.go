package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-dropship-api/internal/handler"
	"go-dropship-api/internal/metrics"
	"go-dropship-api/internal/middleware"
	"go-dropship-api/internal/model"
	"go-dropship-api/internal/repository"
	"go-dropship-api/internal/service"
	"go-dropship-api/internal/ws"
	"go-dropship-api/pkg/cache"
	"go-dropship-api/pkg/database"
	"go-dropship-api/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if err := logger.Init(); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Supplier{}, &model.Product{}, &model.ProductType{}, &model.Transaction{}, &model.User{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Redis cache for the dashboard summary (optional)
	redisClient, err := cache.InitRedis()
	if err != nil {
		logger.L().Warn("redis unavailable, summary caching disabled", zap.Error(err))
	}

	// 5. WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	supplierRepo := repository.NewSupplierRepo(db)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo, supplierRepo, wsHub)
	ledgerService := service.NewLedgerService(txRepo, productRepo, userRepo, wsHub)
	dashService := service.NewDashboardService(productRepo, redisClient)
	supplierService := service.NewSupplierService(supplierRepo)
	authService := service.NewAuthService(userRepo, service.NewJWTIssuer())
	userService := service.NewUserService(userRepo)

	productHandler := handler.NewProductHandler(catalogService)
	txHandler := handler.NewTransactionHandler(ledgerService)
	dashHandler := handler.NewDashboardHandler(dashService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	userHandler := handler.NewUserHandler(authService, userService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Dropship Inventory API v1.0",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	// Middleware
	app.Use(logger.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(metrics.HTTPMiddleware())

	// 8. Routes
	app.Get("/metrics", metrics.Handler())

	// ============ PUBLIC ROUTES ============
	app.Post("/user/register", userHandler.Register)
	app.Post("/user/login", userHandler.Login)

	// ============ PROTECTED ROUTES ============
	auth := middleware.RequireAuth()

	product := app.Group("/product", auth)
	product.Post("", productHandler.CreateProduct)
	product.Get("/list", productHandler.ListProducts)
	product.Put("/update/:id", productHandler.UpdateProduct)
	product.Delete("/delete/:id", productHandler.DeleteProduct)
	product.Get("/:id", productHandler.GetProduct)

	transaction := app.Group("/transaction", auth)
	transaction.Post("", txHandler.CreateTransaction)
	transaction.Get("/list", txHandler.ListTransactions)
	transaction.Get("/:id", txHandler.GetTransaction)
	transaction.Put("/:id", txHandler.UpdateTransaction)
	transaction.Delete("/:id", txHandler.DeleteTransaction)

	app.Get("/dashboard/summary", auth, dashHandler.GetSummary)

	supplier := app.Group("/supplier", auth)
	supplier.Post("", supplierHandler.CreateSupplier)
	supplier.Get("/list", supplierHandler.ListSuppliers)
	supplier.Put("/update/:id", supplierHandler.UpdateSupplier)
	supplier.Delete("/delete/:id", supplierHandler.DeleteSupplier)
	supplier.Get("/:id", supplierHandler.GetSupplier)

	user := app.Group("/user", auth)
	user.Get("/list", userHandler.ListUsers)
	user.Delete("/delete/:id", userHandler.DeleteUser)
	user.Get("/:id", userHandler.GetUser)
	user.Put("/:id", userHandler.UpdateUser)

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

	logger.L().Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.L().Info("Server exited")
}

// seedAdmin creates a default admin user if none exists yet
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Role:       model.RoleAdmin,
		Name:       "Administrator",
		OutletName: "Head Office",
		Email:      "admin@example.com",
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin12345"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin12345")
	}
}
