package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/vidfetch/tg-video-bot/internal/auth"
	"github.com/vidfetch/tg-video-bot/internal/download"
	"github.com/vidfetch/tg-video-bot/internal/model"
	"github.com/vidfetch/tg-video-bot/internal/platform"
	"github.com/vidfetch/tg-video-bot/internal/progress"
)

// Static reply texts
const (
	welcomeText = "👋 Welcome to the Video Downloader Bot!\n\n" +
		"🎬 I can download videos from:\n" +
		"• YouTube\n• Facebook\n• Instagram\n\n" +
		"📝 Just send me a video link!\n\n" +
		"💡 Type /help for details."

	helpText = "📖 How to use this bot\n\n" +
		"🎯 Supported platforms:\n" +
		"• YouTube (youtube.com, youtu.be)\n" +
		"• Facebook (facebook.com, fb.watch)\n" +
		"• Instagram (instagram.com/p/, instagram.com/reel/)\n\n" +
		"📝 Steps:\n" +
		"1. Copy a video link\n" +
		"2. Send it here\n" +
		"3. Wait for the download and delivery\n\n" +
		"⚠️ Notes:\n" +
		"• Videos must be under 50MB\n" +
		"• Some private videos cannot be downloaded\n\n" +
		"🔧 Commands:\n" +
		"/start - welcome message\n" +
		"/help - this text\n" +
		"/status - bot liveness"

	statusTextFmt = "✅ Bot is up and ready.\n⏱ Uptime: %s\n\n📤 Send a video link to start!"

	rejectionText = "⛔ This bot is private. Access denied."

	noLinkText = "❓ I could not find a supported video link in that message.\n\n" +
		"📝 Please send a link from:\n" +
		"• YouTube\n• Facebook\n• Instagram\n\n" +
		"💡 Type /help for details."

	unknownCommandText = "❓ Unknown command. Type /help for the command list."
)

// API is the slice of the Telegram client the bot needs.
// *tgbotapi.BotAPI satisfies it.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// JobRunner runs one download job. *download.Pipeline satisfies it.
type JobRunner interface {
	Run(ctx context.Context, chatID int64, url string, plat model.Platform, sink progress.Sink) (*model.Job, error)
}

// Deliverer uploads a finished download and cleans up after itself.
// *delivery.Sender satisfies it.
type Deliverer interface {
	Deliver(chatID int64, path string) error
}

// Bot routes incoming updates to command replies and download jobs
type Bot struct {
	api       API
	guard     *auth.Guard
	pipeline  JobRunner
	sender    Deliverer
	logger    zerolog.Logger
	startedAt time.Time
}

// New creates the bot dispatcher
func New(api API, guard *auth.Guard, pipeline JobRunner, sender Deliverer, logger zerolog.Logger) *Bot {
	return &Bot{
		api:       api,
		guard:     guard,
		pipeline:  pipeline,
		sender:    sender,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Run consumes the updates channel until ctx is cancelled or the
// channel closes. Each message is handled in its own goroutine; the
// pipeline serializes jobs per chat underneath.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			wg.Add(1)
			go func(msg *tgbotapi.Message) {
				defer wg.Done()
				b.HandleMessage(ctx, msg)
			}(update.Message)
		}
	}
}

// HandleMessage processes a single incoming message: access guard
// first, then command dispatch or the URL pipeline.
func (b *Bot) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Text == "" {
		return
	}

	if !b.guard.IsAuthorized(msg.From.ID) {
		b.logger.Info().Int64("user", msg.From.ID).Msg("rejected unauthorized user")
		b.reply(msg.Chat.ID, rejectionText)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	b.handleURLMessage(ctx, msg)
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, welcomeText)
	case "help":
		b.reply(msg.Chat.ID, helpText)
	case "status":
		uptime := time.Since(b.startedAt).Truncate(time.Second)
		b.reply(msg.Chat.ID, fmt.Sprintf(statusTextFmt, uptime))
	default:
		b.reply(msg.Chat.ID, unknownCommandText)
	}
}

// handleURLMessage is the job boundary: every job-level error is
// converted here into a single user-visible message, and cleanup has
// already happened below by the time an error surfaces.
func (b *Bot) handleURLMessage(ctx context.Context, msg *tgbotapi.Message) {
	url, plat := platform.ParseURL(msg.Text)
	if url == "" {
		b.reply(msg.Chat.ID, noLinkText)
		return
	}

	editor := progress.NewMessageEditor(b.api, msg.Chat.ID, b.logger)
	sink := progress.Throttle(editor, progress.DefaultMinInterval, progress.DefaultMinStep)

	job, err := b.pipeline.Run(ctx, msg.Chat.ID, url, plat, sink)
	if err != nil {
		editor.Finish(download.UserMessage(err))
		return
	}

	if err := b.sender.Deliver(msg.Chat.ID, job.TempPath); err != nil {
		job.Status = model.StatusFailed
		job.LastError = err.Error()
		job.FinishedAt = time.Now()
		b.logger.Warn().Str("job", job.ID).Err(err).Msg("delivery failed")
		editor.Finish(download.UserMessage(err))
		return
	}

	job.Status = model.StatusDone
	job.FinishedAt = time.Now()
	editor.Finish("")
	b.logger.Info().Str("job", job.ID).Int64("chat", msg.Chat.ID).Msg("job delivered")
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Warn().Err(err).Int64("chat", chatID).Msg("failed to send reply")
	}
}
