package progress

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/vidfetch/tg-video-bot/internal/model"
)

type fakeAPI struct {
	sent      []tgbotapi.MessageConfig
	edits     []tgbotapi.EditMessageTextConfig
	deletes   []tgbotapi.DeleteMessageConfig
	nextMsgID int
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	f.nextMsgID++
	return tgbotapi.Message{MessageID: f.nextMsgID}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	switch v := c.(type) {
	case tgbotapi.EditMessageTextConfig:
		f.edits = append(f.edits, v)
	case tgbotapi.DeleteMessageConfig:
		f.deletes = append(f.deletes, v)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func TestMessageEditor_SendThenEdit(t *testing.T) {
	api := &fakeAPI{}
	editor := NewMessageEditor(api, 42, zerolog.Nop())

	editor.Publish(model.StatusDownloading, 0, 0)
	editor.Publish(model.StatusDownloading, 500, 1000)
	editor.Publish(model.StatusUploading, 1000, 1000)

	if len(api.sent) != 1 {
		t.Fatalf("Expected 1 sent message, got %d", len(api.sent))
	}
	if api.sent[0].ChatID != 42 {
		t.Errorf("Expected chat ID 42, got %d", api.sent[0].ChatID)
	}
	if len(api.edits) != 2 {
		t.Fatalf("Expected 2 edits, got %d", len(api.edits))
	}
	if api.edits[0].MessageID != 1 {
		t.Errorf("Expected edits to target message 1, got %d", api.edits[0].MessageID)
	}
}

func TestMessageEditor_SkipsIdenticalText(t *testing.T) {
	api := &fakeAPI{}
	editor := NewMessageEditor(api, 42, zerolog.Nop())

	editor.Publish(model.StatusDownloading, 0, 0)
	editor.Publish(model.StatusDownloading, 0, 0)
	editor.Publish(model.StatusDownloading, 0, 0)

	if len(api.sent) != 1 || len(api.edits) != 0 {
		t.Errorf("Expected 1 send and 0 edits, got %d sends %d edits", len(api.sent), len(api.edits))
	}
}

func TestMessageEditor_FinishSuccessDeletes(t *testing.T) {
	api := &fakeAPI{}
	editor := NewMessageEditor(api, 42, zerolog.Nop())

	editor.Publish(model.StatusDownloading, 0, 0)
	editor.Finish("")

	if len(api.deletes) != 1 {
		t.Fatalf("Expected 1 delete, got %d", len(api.deletes))
	}
	if api.deletes[0].MessageID != 1 {
		t.Errorf("Expected delete of message 1, got %d", api.deletes[0].MessageID)
	}
}

func TestMessageEditor_FinishFailureEdits(t *testing.T) {
	api := &fakeAPI{}
	editor := NewMessageEditor(api, 42, zerolog.Nop())

	editor.Publish(model.StatusDownloading, 0, 0)
	editor.Finish("download failed, please try again later")

	if len(api.deletes) != 0 {
		t.Errorf("Expected no deletes on failure, got %d", len(api.deletes))
	}
	if len(api.edits) != 1 {
		t.Fatalf("Expected 1 edit, got %d", len(api.edits))
	}
	if api.edits[0].Text != "❌ download failed, please try again later" {
		t.Errorf("Unexpected failure text: %q", api.edits[0].Text)
	}
}

func TestMessageEditor_FinishFailureWithoutProgressSends(t *testing.T) {
	api := &fakeAPI{}
	editor := NewMessageEditor(api, 42, zerolog.Nop())

	editor.Finish("could not start the download")

	if len(api.sent) != 1 {
		t.Fatalf("Expected 1 sent message, got %d", len(api.sent))
	}
	if api.sent[0].Text != "❌ could not start the download" {
		t.Errorf("Unexpected failure text: %q", api.sent[0].Text)
	}
}

func TestMessageEditor_FinishSuccessWithoutProgressIsNoop(t *testing.T) {
	api := &fakeAPI{}
	editor := NewMessageEditor(api, 42, zerolog.Nop())

	editor.Finish("")

	if len(api.sent) != 0 || len(api.edits) != 0 || len(api.deletes) != 0 {
		t.Error("Expected no API calls for Finish on an untouched editor")
	}
}
