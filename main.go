package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"release-pulse/config"
	"release-pulse/database"
	"release-pulse/feed"
	"release-pulse/handlers"
	"release-pulse/state"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	store := state.NewStore()
	ctx := context.Background()

	ticker := state.NewTicker(store, cfg.Seed.Path)
	go ticker.Run(ctx)

	if cfg.Market.FeedURL != "" {
		poller := feed.NewPoller(cfg.Market.FeedURL, store)
		poller.Interval = cfg.Market.PollInterval()
		go poller.Run(ctx)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	srv := &handlers.Server{DB: db, Store: store, SeedPath: cfg.Seed.Path}
	srv.Register(r)

	log.Println("🚀 Starting release-pulse server on", cfg.Addr)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
