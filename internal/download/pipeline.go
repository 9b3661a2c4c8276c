package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vidfetch/tg-video-bot/internal/model"
	"github.com/vidfetch/tg-video-bot/internal/progress"
)

// Pipeline turns a URL into a local video file under a single-job-at-a
// time discipline per chat. On failure no temporary artifact survives
// the call; on success the caller takes ownership of the file at
// Job.TempPath.
type Pipeline struct {
	extractor   Extractor
	tempDir     string
	maxFileSize int64
	logger      zerolog.Logger

	mu        sync.Mutex
	chatLocks map[int64]*sync.Mutex
}

// NewPipeline creates a download pipeline
func NewPipeline(extractor Extractor, tempDir string, maxFileSize int64, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		tempDir:     tempDir,
		maxFileSize: maxFileSize,
		logger:      logger,
		chatLocks:   make(map[int64]*sync.Mutex),
	}
}

// chatLock returns the serialization lock for a chat, creating it on
// first use. The transport may deliver two URLs from one chat back to
// back; without the lock both jobs would race on temp storage and on
// the progress message.
func (p *Pipeline) chatLock(chatID int64) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.chatLocks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		p.chatLocks[chatID] = lock
	}
	return lock
}

// Run executes one job: queued -> downloading -> ready for upload.
// Progress goes to sink; the returned error is always classified.
func (p *Pipeline) Run(ctx context.Context, chatID int64, url string, plat model.Platform, sink progress.Sink) (*model.Job, error) {
	job := &model.Job{
		ID:        uuid.NewString(),
		URL:       url,
		Platform:  plat,
		ChatID:    chatID,
		Status:    model.StatusQueued,
		CreatedAt: time.Now(),
	}
	job.TempPath = filepath.Join(p.tempDir, job.ID+".mp4")

	if sink != nil {
		sink.Publish(model.StatusQueued, 0, 0)
	}

	lock := p.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	// Removal is registered before the first fallible step so that no
	// exit path below can leave an artifact behind.
	succeeded := false
	defer func() {
		if !succeeded {
			p.removeArtifacts(job.TempPath)
			job.Status = model.StatusFailed
			job.FinishedAt = time.Now()
		}
	}()

	p.logger.Info().
		Str("job", job.ID).
		Str("platform", plat.String()).
		Str("url", url).
		Msg("starting download")

	job.Status = model.StatusDownloading
	if sink != nil {
		sink.Publish(model.StatusDownloading, 0, 0)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tooLarge atomic.Bool
	var lastDone atomic.Int64
	onProgress := func(done, total int64) {
		if total > p.maxFileSize {
			// The transport would reject the upload anyway; stop early.
			tooLarge.Store(true)
			cancel()
			return
		}
		if done < lastDone.Load() {
			return
		}
		lastDone.Store(done)
		if sink != nil {
			sink.Publish(model.StatusDownloading, done, total)
		}
	}

	res, err := p.extractor.Extract(ctx, url, job.TempPath, onProgress)
	if err != nil {
		var jobErr *Error
		if tooLarge.Load() {
			jobErr = NewError(KindTooLarge, fmt.Errorf("reported size exceeds the %d byte limit", p.maxFileSize))
		} else {
			jobErr = WrapClassified(err)
		}
		job.LastError = jobErr.Error()
		p.logger.Warn().Str("job", job.ID).Str("kind", jobErr.Kind.String()).Err(err).Msg("download failed")
		return job, jobErr
	}

	if res.Size > p.maxFileSize {
		jobErr := NewError(KindTooLarge, fmt.Errorf("file size %d exceeds the %d byte limit", res.Size, p.maxFileSize))
		job.LastError = jobErr.Error()
		p.logger.Warn().Str("job", job.ID).Int64("size", res.Size).Msg("downloaded file over size limit")
		return job, jobErr
	}

	job.TempPath = res.Path
	job.BytesDone = res.Size
	job.BytesTotal = res.Size
	job.Status = model.StatusUploading
	if sink != nil {
		sink.Publish(model.StatusUploading, res.Size, res.Size)
	}

	p.logger.Info().Str("job", job.ID).Int64("size", res.Size).Str("path", res.Path).Msg("download complete")

	succeeded = true
	return job, nil
}

// removeArtifacts deletes the temp file and any partial leftovers
// (alternate containers, .part/.ytdl fragments) sharing its base name
func (p *Pipeline) removeArtifacts(outPath string) {
	base := strings.TrimSuffix(outPath, filepath.Ext(outPath))
	matches, err := filepath.Glob(base + ".*")
	if err != nil {
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			p.logger.Warn().Err(err).Str("path", m).Msg("failed to remove temp artifact")
		}
	}
}
