package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wb-price-bot/internal/bot"
	"wb-price-bot/internal/browser"
	"wb-price-bot/internal/config"
	"wb-price-bot/internal/observability"
	"wb-price-bot/internal/parser"
	"wb-price-bot/internal/ratelimit"
	"wb-price-bot/internal/scraper"
	"wb-price-bot/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("starting wb-price-bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown signal received")
		cancel()
	}()

	if cfg.Metrics.Enabled {
		observability.Start(cfg.Metrics.Port, logger)
	}

	session := browser.NewSession(&browser.Options{
		Headless:       cfg.Browser.Headless,
		UserAgent:      cfg.Browser.UserAgent,
		ViewportWidth:  cfg.Browser.ViewportWidth,
		ViewportHeight: cfg.Browser.ViewportHeight,
		NavTimeout:     cfg.Browser.NavTimeout,
		SettleDelay:    cfg.Browser.SettleDelay,
	}, logger)
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("failed to close browser session", "error", err)
		}
	}()

	wbParser := parser.NewWildberriesParser(logger)
	limiter := ratelimit.NewSimpleLimiter(cfg.Scraper.MinInterval, cfg.Scraper.MaxInterval)
	wbScraper := scraper.NewWildberriesScraper(session, wbParser, limiter, cfg.Scraper.RenderTimeout, logger)

	api, err := bot.Init(cfg.Telegram.Token, logger)
	if err != nil {
		logger.Error("failed to initialize bot", "error", err)
		os.Exit(1)
	}

	handler := bot.NewHandler(api, wbScraper,
		cfg.Scraper.ResultLimit, cfg.Telegram.MinQueryLength, cfg.Telegram.UpdateTimeout, logger)

	handler.Run(ctx)

	logger.Info("bot stopped")
}
