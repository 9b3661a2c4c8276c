// Package delivery uploads a finished download to the chat and
// guarantees the temporary file is removed on every exit path, success
// or failure. This is the one correctness-critical invariant of the
// bot: no orphaned temp file survives a completed job.
package delivery

import (
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/vidfetch/tg-video-bot/internal/download"
)

// API is the slice of the Telegram client the sender needs.
// *tgbotapi.BotAPI satisfies it.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Sender delivers video files to chats
type Sender struct {
	api         API
	maxFileSize int64
	logger      zerolog.Logger
}

// NewSender creates a sender enforcing the given upload cap
func NewSender(api API, maxFileSize int64, logger zerolog.Logger) *Sender {
	return &Sender{api: api, maxFileSize: maxFileSize, logger: logger}
}

// Deliver uploads the file at path to the chat as a video attachment.
// The file is removed before Deliver returns, whatever happens in
// between. Errors are classified for user-facing reporting.
func (s *Sender) Deliver(chatID int64, path string) error {
	defer s.removeFile(path)

	info, err := os.Stat(path)
	if err != nil {
		return download.NewError(download.KindDelivery, fmt.Errorf("video file missing before upload: %w", err))
	}

	// The transport enforces the cap at upload time as well; checking
	// here turns a doomed multi-second upload into an instant reply.
	if info.Size() > s.maxFileSize {
		return download.NewError(download.KindTooLarge,
			fmt.Errorf("file size %d exceeds the %d byte limit", info.Size(), s.maxFileSize))
	}

	s.logger.Info().Str("path", path).Int64("size", info.Size()).Int64("chat", chatID).Msg("uploading video")

	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	if _, err := s.api.Send(video); err != nil {
		// A rejection that names the size is the same failure as the
		// pre-check, whichever side caught it first.
		if download.Classify(err) == download.KindTooLarge {
			return download.NewError(download.KindTooLarge, err)
		}
		return download.NewError(download.KindDelivery, fmt.Errorf("upload failed: %w", err))
	}

	return nil
}

// removeFile deletes the temp file, tolerating it being gone already
func (s *Sender) removeFile(path string) {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return
		}
		s.logger.Error().Err(err).Str("path", path).Msg("failed to remove temp file")
		return
	}
	s.logger.Debug().Str("path", path).Msg("removed temp file")
}
