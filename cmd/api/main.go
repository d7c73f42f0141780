package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/arcade/backend/internal/config"
	"github.com/iamasit07/arcade/backend/internal/repository/postgres"
	"github.com/iamasit07/arcade/backend/internal/repository/redis"
	"github.com/iamasit07/arcade/backend/internal/repository/sqlite"
	"github.com/iamasit07/arcade/backend/internal/service/cleanup"
	"github.com/iamasit07/arcade/backend/internal/service/game"
	transportHttp "github.com/iamasit07/arcade/backend/internal/transport/http"
	"github.com/iamasit07/arcade/backend/internal/transport/websocket"
)

// gameStore is what the service, history endpoints and cleanup worker need
// from either database.
type gameStore interface {
	game.GameRepository
	transportHttp.HistoryRepository
	cleanup.HistoryPruner
}

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg := config.LoadConfig()
	config.SetupLogging(cfg)
	if envErr != nil {
		log.Info().Msg("no .env file found, using environment")
	}

	// 1. Game store: Postgres when configured, SQLite otherwise
	var store gameStore
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		if err := postgres.RunMigrations(db); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		store = postgres.NewGameRepo(db)
	} else {
		repo, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open sqlite store")
		}
		defer repo.Close()
		store = repo
	}

	// 2. Redis snapshot cache, optional
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var cache game.SnapshotCache
	var snapshots transportHttp.SnapshotReader
	pingCtx, cancelPing := context.WithTimeout(ctx, 3*time.Second)
	if client := redis.Connect(pingCtx, cfg.RedisAddr, cfg.RedisPassword); client != nil {
		defer client.Close()
		snapshotCache := redis.NewSnapshotCache(client)
		cache = snapshotCache
		snapshots = snapshotCache
	}
	cancelPing()

	// 3. Services
	connManager := websocket.NewConnectionManager()
	opts := game.Options{
		BotDelay:    cfg.BotMoveDelay,
		FinishedTTL: cfg.FinishedGameTTL,
		IdleTTL:     cfg.IdleGameTTL,
		SnapshotTTL: cfg.SnapshotTTL,
	}
	sessionManager := game.NewSessionManager(store, cache, connManager, opts)

	cleanup.NewWorker(sessionManager, store, cfg.CleanupInterval, cfg.HistoryRetention).Start(ctx)

	// 4. HTTP
	router := transportHttp.NewRouter(transportHttp.Handlers{
		Games:          transportHttp.NewGameHandler(sessionManager, snapshots),
		Watch:          transportHttp.NewWatchHandler(sessionManager),
		History:        transportHttp.NewHistoryHandler(store, cfg.HistoryMaxLimit),
		WebSocket:      websocket.NewHandler(connManager, sessionManager, cfg.AllowedOrigins),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server is shutting down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	// let in-flight bot moves and database writes finish
	sessionManager.Wait()
	log.Info().Msg("server exited")
}
