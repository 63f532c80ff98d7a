package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/restaurant-order-panel/backend"
	"github.com/yeremiapane/restaurant-order-panel/catalog"
	"github.com/yeremiapane/restaurant-order-panel/config"
	"github.com/yeremiapane/restaurant-order-panel/kds"
	"github.com/yeremiapane/restaurant-order-panel/kitchen"
	"github.com/yeremiapane/restaurant-order-panel/localbackend"
	"github.com/yeremiapane/restaurant-order-panel/middlewares"
	"github.com/yeremiapane/restaurant-order-panel/router"
	"github.com/yeremiapane/restaurant-order-panel/session"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// In local backend mode every surface lives in this same process;
	// the client talks to it over loopback.
	if cfg.LocalBackend {
		base := "http://127.0.0.1:" + cfg.Port
		cfg.PublicURL = base + "/public-panel"
		cfg.AdminURL = base + "/admin-panel"
		cfg.AuthURL = base + "/auth"
		cfg.ImagesURL = base + "/images"
	}

	client := backend.NewClient(backend.Options{
		PublicURL: cfg.PublicURL,
		AdminURL:  cfg.AdminURL,
		AuthURL:   cfg.AuthURL,
		ImagesURL: cfg.ImagesURL,
	})

	cache := catalog.NewCache(client)
	sessions := session.NewManager(cfg.SessionTTL)
	defer sessions.Stop()

	hub := kds.NewHub()
	board := kitchen.NewBoard(client, hub)
	board.Interval = cfg.PollInterval

	r := router.SetupRouter(router.Deps{
		Backend:  client,
		Cache:    cache,
		Sessions: sessions,
		Board:    board,
		Hub:      hub,
	})

	if cfg.LocalBackend {
		db, err := config.InitDB(cfg)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to open local database: %v", err)
		}
		local := localbackend.New(db)
		if err := local.Migrate(); err != nil {
			utils.ErrorLogger.Fatalf("Failed to migrate local database: %v", err)
		}
		if err := local.Seed(); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed local database: %v", err)
		}
		local.Mount(r)
		utils.InfoLogger.Println("Local backend mounted")
	}

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	board.Start()
	defer board.Stop()

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
