// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-ranker/cmd"
	"movie-ranker/internal/data/repository"
	"movie-ranker/internal/data/tmdb"
	"movie-ranker/internal/engine"
	"movie-ranker/internal/wire"
	"movie-ranker/pkg/cache"
	"movie-ranker/pkg/database"
	"movie-ranker/pkg/metrics"
	"movie-ranker/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	responseCache, err := cache.New(ctx, config.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer responseCache.Close()

	eng := engine.New(engine.Config{
		MemoEntries: config.Engine.MemoEntries,
		Logger:      logger,
	})
	if err := metrics.RegisterEngine(func() (int64, int64) {
		s := eng.Stats()
		return s.Hits, s.Misses
	}); err != nil {
		logger.Warn("Failed to register engine metrics", zap.Error(err))
	}

	app := wire.Wiring(wire.Deps{
		Repo:     repository.NewRepository(db, logger),
		Engine:   eng,
		Metadata: tmdb.NewClient(config.TMDB, logger),
		Cache:    responseCache,
	}, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
