package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lucianofrutuoso/python-bet/internal/monitor"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/export"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/logging"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/oddsfeed"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/storage"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	var configPath string

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}
	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.Parse()

	// Secrets usually live in a local .env; absence is fine in containers
	// where the environment is set directly.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.Setup(&cfg.Logging, "monitor")
	slog.Info("Config loaded", "path", configPath)

	feed, err := oddsfeed.NewClient(&cfg.OddsAPI)
	if err != nil {
		log.Fatalf("Failed to create odds client: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping monitor...")
		cancel()
	}()

	if err := feed.Ping(ctx); err != nil {
		log.Fatalf("Odds service unreachable: %v", err)
	}

	var rows storage.RowStorage
	var bets storage.ValueBetStorage
	if cfg.Postgres.DSN != "" {
		pg, err := storage.NewPostgresStorage(&cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL storage: %v", err)
		}
		defer func() {
			if err := pg.Close(); err != nil {
				slog.Error("Error closing PostgreSQL storage", "error", err)
			}
		}()
		rows = pg
		bets = pg
		slog.Info("PostgreSQL storage initialized")
	} else {
		slog.Warn("No postgres DSN configured, odds rows will only go to CSV")
	}

	var cache storage.AnalysisCache
	if cfg.Redis.Addr != "" {
		redisCache, err := storage.NewRedisCache(&cfg.Redis)
		if err != nil {
			slog.Error("Failed to connect to Redis, continuing without cache", "error", err)
		} else {
			cache = redisCache
			defer redisCache.Close()
			slog.Info("Redis analysis cache initialized", "addr", cfg.Redis.Addr)
		}
	}

	if cache != nil && cfg.API.Port > 0 {
		monitor.NewAPIServer(cache, &cfg.API).Run(ctx)
	}

	exporter := export.NewCSVExporter(cfg.Monitor.ExportDir)
	notifier := monitor.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	m := monitor.New(cfg, feed, rows, bets, cache, exporter, notifier)
	if err := m.Run(ctx); err != nil {
		log.Fatalf("Monitor failed: %v", err)
	}

	slog.Info("Odds monitor stopped")
}
