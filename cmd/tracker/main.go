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

	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/logging"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/scrape"
	"github.com/lucianofrutuoso/python-bet/internal/tracker"
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

	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.Setup(&cfg.Logging, "tracker")
	slog.Info("Config loaded", "path", configPath)

	scraper, err := scrape.New(&cfg.Scraper)
	if err != nil {
		log.Fatalf("Failed to create scraper: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping tracker...")
		cancel()
	}()

	t := tracker.New(&cfg.Scraper, scraper)
	if err := t.Run(ctx); err != nil {
		log.Fatalf("Tracker failed: %v", err)
	}

	slog.Info("Odds tracker stopped")
}
