package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/lulukitchen/lulu-engine/internal/cart"
	"github.com/lulukitchen/lulu-engine/internal/config"
	"github.com/lulukitchen/lulu-engine/internal/db"
	"github.com/lulukitchen/lulu-engine/internal/kv"
	"github.com/lulukitchen/lulu-engine/internal/lang"
	"github.com/lulukitchen/lulu-engine/internal/menu"
	"github.com/lulukitchen/lulu-engine/internal/middleware"
	"github.com/lulukitchen/lulu-engine/internal/order"
	"github.com/lulukitchen/lulu-engine/internal/schedule"
	"github.com/lulukitchen/lulu-engine/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"MENU_CSV_URL",
		"WHATSAPP_NUMBER",
		"BUSINESS_HOURS",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Config load failed:", err)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	store := kv.NewPostgresStore(pgDB)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── MENU ─────────────────────────
	menuService := menu.NewService(menu.NewFetcher(cfg.MenuCSVURL))
	if count, err := menuService.Reload(context.Background()); err != nil {
		log.Fatal("❌ Initial menu load failed:", err)
	} else {
		log.Printf("✅ Menu loaded: %d items", count)
	}

	menuHandler := menu.NewHandler(menuService, store)

	menus := r.Group("/menu")
	{
		menus.GET("", menuHandler.List)
		menus.GET("/recommendations", menuHandler.Recommendations)

		// Reload mutates the catalog, so it needs a session token.
		menus.POST("/reload", middleware.SessionMiddleware(), menuHandler.Reload)
	}

	// ───────────────────────── SESSIONS ─────────────────────────
	sessionHandler := session.NewHandler()
	r.POST("/session", sessionHandler.Create)

	// ───────────────────────── CART ─────────────────────────
	cartHandler := cart.NewHandler(store)

	carts := r.Group("/cart")
	carts.Use(middleware.SessionMiddleware())
	{
		carts.GET("", cartHandler.Get)
		carts.POST("/items", cartHandler.AddItem)
		carts.DELETE("/items/:id", cartHandler.RemoveItem)
		carts.DELETE("", cartHandler.Clear)
	}

	// ───────────────────────── SCHEDULE ─────────────────────────
	r.GET("/schedule/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"open": schedule.IsOpenNow(cfg.BusinessHours)})
	})

	r.GET("/schedule/slots", func(c *gin.Context) {
		step, err := strconv.Atoi(c.DefaultQuery("step", "30"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "step must be a number"})
			return
		}
		count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a number"})
			return
		}

		slots, err := schedule.NextValidSlots(cfg.BusinessHours, step, count, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		formatted := make([]string, 0, len(slots))
		for _, slot := range slots {
			formatted = append(formatted, slot.Format(time.RFC3339))
		}
		c.JSON(http.StatusOK, gin.H{"slots": formatted})
	})

	// ───────────────────────── LANGUAGE ─────────────────────────
	langHandler := lang.NewHandler(lang.NewService(store))

	langs := r.Group("/lang")
	langs.Use(middleware.SessionMiddleware())
	{
		langs.GET("", langHandler.Get)
		langs.PUT("", langHandler.Set)
	}

	// ───────────────────────── CHECKOUT ─────────────────────────
	var emailSender *order.EmailSender
	if cfg.OrderEmailEndpoint != "" {
		emailSender = order.NewEmailSender(cfg.OrderEmailEndpoint, cfg.OrderEmails)
	}

	orderService := order.NewService(
		store,
		order.NewPostgresRepository(pgDB),
		emailSender,
		cfg.BusinessHours,
		cfg.WhatsAppNumberIntl,
	)
	orderHandler := order.NewHandler(orderService, cfg.Payments)

	checkout := r.Group("/checkout")
	checkout.Use(middleware.SessionMiddleware())
	{
		checkout.POST("/quote", orderHandler.Quote)
		checkout.POST("/whatsapp", orderHandler.Whatsapp)
		checkout.POST("/order", orderHandler.Email)
	}

	r.GET("/payments/providers", orderHandler.Providers)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
