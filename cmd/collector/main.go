package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vkaratov/matchreel/internal/collector"
	"github.com/vkaratov/matchreel/internal/feed"
	"github.com/vkaratov/matchreel/internal/notify"
	"github.com/vkaratov/matchreel/internal/pkg/config"
	"github.com/vkaratov/matchreel/internal/pkg/httpapi"
	"github.com/vkaratov/matchreel/internal/pkg/logging"
	"github.com/vkaratov/matchreel/internal/pkg/models"
	"github.com/vkaratov/matchreel/internal/pkg/storage"
)

func main() {
	var configPath, fixturesPath, videosPath, seasonName, addr string

	defaultConfig := os.Getenv("CONFIG_PATH")
	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var; built-in defaults when empty)")
	flag.StringVar(&fixturesPath, "fixtures", "", "Path to the season fixtures JSON (may already be enriched)")
	flag.StringVar(&videosPath, "videos", "", "Path to the per-fixture search results dump JSON")
	flag.StringVar(&seasonName, "season", "", "Season to load from storage when -fixtures is not given (requires a postgres DSN)")
	flag.StringVar(&addr, "addr", "", "API listen address (overrides config)")
	flag.Parse()

	if videosPath == "" {
		log.Fatalf("collector: -videos is required")
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("collector: failed to load config: %v", err)
		}
	}

	if _, err := logging.Setup(&cfg.Logging, "collector"); err != nil {
		log.Printf("collector: failed to setup logging: %v, continuing with default logger", err)
	}

	cfg.ApplyEnv()
	if addr == "" {
		addr = cfg.API.Addr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping collector")
		cancel()
	}()

	var store *storage.PostgresStore
	if cfg.Postgres.DSN != "" {
		var err error
		store, err = storage.NewPostgresStore(&cfg.Postgres)
		if err != nil {
			log.Fatalf("collector: failed to initialize PostgreSQL storage: %v", err)
		}
		defer store.Close()
	}

	var season *models.Season
	var err error
	switch {
	case fixturesPath != "":
		season, err = feed.LoadSeason(fixturesPath)
	case store != nil && seasonName != "":
		season, err = store.LoadSeason(ctx, seasonName)
	default:
		log.Fatalf("collector: provide -fixtures, or -season with a postgres DSN")
	}
	if err != nil {
		log.Fatalf("collector: %v", err)
	}

	dump, err := feed.OpenSearchDumpFile(videosPath)
	if err != nil {
		log.Fatalf("collector: %v", err)
	}

	stats, err := collector.New(&cfg.Scoring, dump).Run(ctx, season)
	if err != nil {
		log.Fatalf("collector: run failed: %v", err)
	}

	if cfg.Notify.TelegramBotToken != "" {
		notifier := notify.NewTelegramNotifier(cfg.Notify.TelegramBotToken, cfg.Notify.TelegramChatID)
		_ = notifier.SendRunSummary(ctx, notify.RunSummary{
			Service:        "collector",
			Season:         season.Season,
			Processed:      stats.Candidates,
			Matched:        stats.Admitted,
			VideosAttached: stats.Attached,
		})
		defer notifier.Stop()
	}

	if store != nil {
		if err := store.SaveSeason(ctx, season); err != nil {
			log.Fatalf("collector: failed to save season: %v", err)
		}
	}

	api := httpapi.NewServer("collector")
	api.SetSeason(season)
	api.Run(ctx, addr, cfg.API.ReadHeaderTimeoutOrDefault())

	<-ctx.Done()
	slog.Info("Collector stopped")
}
