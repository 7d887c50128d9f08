package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/config"
	"zooarcadia/internal/database"
	"zooarcadia/internal/httpapi"
	"zooarcadia/internal/stats"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect database: %v", err)
	}

	// View counters are best-effort analytics: without Redis the API
	// still serves, counters just reset on restart.
	var statsStore stats.Store
	redisStore, err := stats.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory view counters", "error", err)
		statsStore = stats.NewMemoryStore()
	} else {
		defer redisStore.Close()
		statsStore = redisStore
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Cfg:    cfg,
		DB:     db,
		Stats:  statsStore,
		Logger: logger,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting zoo arcadia API", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
