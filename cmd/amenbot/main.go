// ABOUTME: Entry point for the amenbot Telegram bot
// ABOUTME: Loads config, wires the analysis stack, and runs the poll loop

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/projectnostradamus/amenbot/internal/analysis"
	"github.com/projectnostradamus/amenbot/internal/bot"
	"github.com/projectnostradamus/amenbot/internal/config"
	"github.com/projectnostradamus/amenbot/internal/mode"
	"github.com/projectnostradamus/amenbot/internal/store"
	"github.com/projectnostradamus/amenbot/internal/telegram"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
  __ _ _ __ ___   ___ _ __ | |__   ___ | |_
 / _' | '_ ' _ \ / _ \ '_ \| '_ \ / _ \| __|
| (_| | | | | | |  __/ | | | |_) | (_) | |_
 \__,_|_| |_| |_|\___|_| |_|_.__/ \___/ \__|
`

const (
	defaultSiteURL = "https://www.projectnostradamus.com/"
	defaultCoinURL = "https://www.coingecko.com/en/coins/project-nostradamus"
)

// getConfigPath returns the path to the bot config file.
// Priority: AMENBOT_CONFIG env var > XDG_CONFIG_HOME/amenbot/config.yaml > ~/.config/amenbot/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("AMENBOT_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "amenbot", "config.yaml")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("Database: %s\n", cfg.Database.Path)
	green.Print("    ▶ ")
	fmt.Printf("Analysis: %s\n", cfg.Analysis.BaseURL)
	fmt.Println()

	logger.Info("starting amenbot",
		"config", configPath,
		"database", cfg.Database.Path,
		"analysis_url", cfg.Analysis.BaseURL,
	)

	modeStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening mode store: %w", err)
	}
	defer modeStore.Close()

	analysisClient := analysis.NewClient(cfg.Analysis.BaseURL, cfg.Analysis.APIKey, cfg.Analysis.Timeout)

	handlers, fallback := bot.Handlers(analysisClient)
	registry, err := mode.NewRegistry(handlers, fallback)
	if err != nil {
		return fmt.Errorf("building mode registry: %w", err)
	}

	baseURL := cfg.Telegram.BaseURL
	if baseURL == "" {
		baseURL = telegram.DefaultBaseURL
	}
	tg := telegram.NewClient(&http.Client{Timeout: cfg.Telegram.PollTimeout + 30*time.Second}, baseURL, cfg.Telegram.Token)

	siteURL := cfg.Bot.SiteURL
	if siteURL == "" {
		siteURL = defaultSiteURL
	}
	coinURL := cfg.Bot.CoinURL
	if coinURL == "" {
		coinURL = defaultCoinURL
	}

	dispatcher := bot.NewDispatcher(bot.DispatcherConfig{
		Transport:  tg,
		Registry:   registry,
		Store:      modeStore,
		Plots:      analysisClient,
		Logger:     logger,
		ChunkLimit: cfg.Bot.ChunkLimit,
		SiteURL:    siteURL,
		CoinURL:    coinURL,
	})

	b := bot.New(tg, dispatcher, logger, cfg.Telegram.PollTimeout)
	return b.Run(ctx)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
