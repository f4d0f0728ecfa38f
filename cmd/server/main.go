package main

import (
	"html/template"
	"log"
	"strings"
	"time"

	"food_ordering/internal/config"
	"food_ordering/internal/database"
	"food_ordering/internal/handlers"
	"food_ordering/internal/redis"
	"food_ordering/internal/repository"
	"food_ordering/internal/services"
	"food_ordering/pkg/mailer"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed default catalog on first boot
	if err := database.SeedIfEmpty(db); err != nil {
		log.Printf("Warning: failed to seed catalog: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize mail client
	mailClient := mailer.NewClient(cfg.MailHost, cfg.MailPort, cfg.MailUseTLS, cfg.MailUsername, cfg.MailPassword, cfg.MailSender)

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second
	catalogService := services.NewCatalogService(categoryRepo, menuRepo)
	cartService := services.NewCartService(redisClient, menuRepo, cfg.DeliveryFee, sessionTTL)
	notificationService := services.NewNotificationService(mailClient)
	orderService := services.NewOrderService(orderRepo, cartService, notificationService, cfg.InitialOrderStatus)

	// Initialize handlers
	storeHandler := handlers.NewStoreHandler(catalogService, cartService, orderService, redisClient)
	adminHandler := handlers.NewAdminHandler(catalogService, orderService, redisClient, cfg)

	// Setup routes
	router := gin.Default()
	router.SetFuncMap(template.FuncMap{
		"statusLabel": func(status string) string {
			return strings.ReplaceAll(status, "_", " ")
		},
		"mulQty": func(price float64, quantity int) float64 {
			return price * float64(quantity)
		},
	})
	router.LoadHTMLGlob("web/templates/*.html")

	// Storefront
	router.GET("/", storeHandler.Index)
	router.GET("/menu", storeHandler.Menu)
	router.GET("/cart", storeHandler.Cart)
	router.POST("/add-to-cart/:id", storeHandler.AddToCart)
	router.POST("/update-cart/:id", storeHandler.UpdateCart)
	router.GET("/checkout", storeHandler.CheckoutForm)
	router.POST("/checkout", storeHandler.Checkout)
	router.GET("/order-confirmation/:id", storeHandler.OrderConfirmation)
	router.GET("/track-order", storeHandler.TrackOrderForm)
	router.POST("/track-order", storeHandler.TrackOrder)
	router.GET("/orders", storeHandler.OrderHistory)

	// Admin auth
	router.GET("/admin-login", adminHandler.LoginForm)
	router.POST("/admin-login", adminHandler.Login)
	router.GET("/admin-logout", adminHandler.Logout)

	// Protected admin surface
	admin := router.Group("/admin", handlers.RequireAdmin(redisClient))
	{
		admin.GET("", adminHandler.Dashboard)
		admin.POST("/order/:id/update-status", adminHandler.UpdateOrderStatus)
		admin.POST("/order/:id/delete", adminHandler.DeleteOrder)
		admin.POST("/menu/add", adminHandler.AddMenuItem)
		admin.POST("/menu/:id/edit", adminHandler.EditMenuItem)
		admin.POST("/menu/:id/delete", adminHandler.DeleteMenuItem)
		admin.POST("/menu/:id/toggle", adminHandler.ToggleMenuItem)
		admin.POST("/category/add", adminHandler.AddCategory)
		admin.POST("/category/:id/delete", adminHandler.DeleteCategory)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
