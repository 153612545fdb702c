// main.go
package main

import (
	"context"
	"log"
	"time"

	"pet-grooming/cmd"
	"pet-grooming/internal/catalog"
	"pet-grooming/internal/data/cache"
	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/wire"
	"pet-grooming/pkg/database"
	"pet-grooming/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Run schema migrations
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	cancel()

	// Redis is optional: without it the slot cache just misses
	var slots *cache.SlotCache
	if config.Redis.Addr != "" {
		rdb, err := database.InitRedis(config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, slot cache disabled", zap.Error(err))
		} else {
			ttl := time.Duration(config.Redis.SlotTTLMinutes) * time.Minute
			slots = cache.NewSlotCache(rdb, ttl, logger)
			logger.Info("Redis connected successfully")
		}
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Expired sessions pile up otherwise; sweep them hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := repos.Session.CleanExpiredSessions(ctx); err != nil {
				logger.Warn("Failed to clean expired sessions", zap.Error(err))
			}
			cancel()
		}
	}()

	// Salon offering: services, prices, slot grid
	cat := catalog.Default()

	// Wire all dependencies
	app := wire.Wiring(repos, cat, slots, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
