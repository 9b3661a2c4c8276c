package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/vidfetch/tg-video-bot/internal/auth"
	"github.com/vidfetch/tg-video-bot/internal/bot"
	"github.com/vidfetch/tg-video-bot/internal/config"
	"github.com/vidfetch/tg-video-bot/internal/delivery"
	"github.com/vidfetch/tg-video-bot/internal/download"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// A .env file is optional; variables may be set in the environment
	// directly.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Fetches the yt-dlp binary on first run if it is not installed.
	ytdlp.MustInstall(ctx, nil)

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot client")
	}

	extractor := download.NewYtdlpExtractor(cfg.MaxFileSize)
	pipeline := download.NewPipeline(extractor, cfg.TempDir, cfg.MaxFileSize, logger)
	sender := delivery.NewSender(api, cfg.MaxFileSize, logger)
	guard := auth.NewGuard(cfg.OwnerID)
	b := bot.New(api, guard, pipeline, sender, logger)

	logger.Info().
		Str("version", version).
		Str("bot", api.Self.UserName).
		Int64("owner", cfg.OwnerID).
		Str("temp_dir", cfg.TempDir).
		Msg("bot ready, polling for updates")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	b.Run(ctx, updates)
	logger.Info().Msg("shutting down")
}
