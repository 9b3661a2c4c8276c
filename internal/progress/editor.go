package progress

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/vidfetch/tg-video-bot/internal/model"
)

// Status message texts
const (
	textQueued      = "⏳ Queued..."
	textDownloading = "⬇️ Downloading video..."
	textUploading   = "📤 Uploading video..."
)

// API is the slice of the Telegram client the editor needs.
// *tgbotapi.BotAPI satisfies it.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// MessageEditor is a Sink that maintains a single status message in the
// chat: the first update sends it, later updates edit it in place.
// Finish deletes the message on success or rewrites it with the failure
// text. One editor serves exactly one job.
type MessageEditor struct {
	api    API
	chatID int64
	logger zerolog.Logger

	mu          sync.Mutex
	messageID   int
	lastText    string
	lastPercent int
}

// NewMessageEditor creates an editor for the given chat
func NewMessageEditor(api API, chatID int64, logger zerolog.Logger) *MessageEditor {
	return &MessageEditor{api: api, chatID: chatID, logger: logger}
}

// Publish renders the status into the chat message
func (m *MessageEditor) Publish(status model.JobStatus, bytesDone, bytesTotal int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	percent := percentOf(bytesDone, bytesTotal)
	if percent < m.lastPercent {
		percent = m.lastPercent
	}
	m.lastPercent = percent

	var text string
	switch status {
	case model.StatusQueued:
		text = textQueued
	case model.StatusDownloading:
		text = textDownloading
		if percent > 0 {
			text = fmt.Sprintf("%s %d%%", textDownloading, percent)
		}
	case model.StatusUploading:
		text = textUploading
	default:
		return
	}

	m.post(text)
}

// Finish closes out the status message: deleted when failure is empty,
// rewritten with the failure text otherwise.
func (m *MessageEditor) Finish(failure string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if failure == "" {
		if m.messageID != 0 {
			if _, err := m.api.Request(tgbotapi.NewDeleteMessage(m.chatID, m.messageID)); err != nil {
				m.logger.Warn().Err(err).Msg("failed to delete progress message")
			}
		}
		return
	}

	m.post("❌ " + failure)
}

// post sends or edits the status message, skipping no-op edits: the
// Bot API rejects edits that leave the text unchanged.
func (m *MessageEditor) post(text string) {
	if text == m.lastText {
		return
	}

	if m.messageID == 0 {
		msg, err := m.api.Send(tgbotapi.NewMessage(m.chatID, text))
		if err != nil {
			m.logger.Warn().Err(err).Msg("failed to send progress message")
			return
		}
		m.messageID = msg.MessageID
	} else {
		if _, err := m.api.Request(tgbotapi.NewEditMessageText(m.chatID, m.messageID, text)); err != nil {
			m.logger.Warn().Err(err).Msg("failed to edit progress message")
		}
	}
	m.lastText = text
}
