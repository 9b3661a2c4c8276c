package progress

import (
	"sync"
	"time"

	"github.com/vidfetch/tg-video-bot/internal/model"
)

// Default throttling parameters for chat progress edits
const (
	DefaultMinInterval = 2 * time.Second
	DefaultMinStep     = 5 // percent
)

// Throttled is a Sink decorator that limits how often updates reach the
// wrapped sink. The chat transport rate-limits message edits, while the
// extraction library may fire its progress hook hundreds of times per
// download. An update is forwarded when the phase changes, when the
// percentage advanced by at least minStep, when it reaches 100, or when
// it advanced at all and minInterval elapsed since the last forward.
// Forwarded percentages never decrease within a job.
type Throttled struct {
	next        Sink
	minInterval time.Duration
	minStep     int
	now         func() time.Time

	mu          sync.Mutex
	emitted     bool
	lastStatus  model.JobStatus
	lastPercent int
	lastEmit    time.Time
}

// Throttle wraps next with the given edit cadence limits
func Throttle(next Sink, minInterval time.Duration, minStep int) *Throttled {
	return &Throttled{
		next:        next,
		minInterval: minInterval,
		minStep:     minStep,
		now:         time.Now,
	}
}

// Publish forwards the update to the wrapped sink if it passes the
// cadence rules
func (t *Throttled) Publish(status model.JobStatus, bytesDone, bytesTotal int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	percent := percentOf(bytesDone, bytesTotal)
	if percent < t.lastPercent {
		percent = t.lastPercent
	}

	statusChanged := !t.emitted || status != t.lastStatus
	stepReached := percent-t.lastPercent >= t.minStep
	completed := percent == 100 && t.lastPercent < 100
	intervalElapsed := percent > t.lastPercent && t.now().Sub(t.lastEmit) >= t.minInterval

	if !statusChanged && !stepReached && !completed && !intervalElapsed {
		return
	}

	t.emitted = true
	t.lastStatus = status
	t.lastPercent = percent
	t.lastEmit = t.now()
	t.next.Publish(status, bytesDone, bytesTotal)
}
