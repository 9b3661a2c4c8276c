package progress

import "github.com/vidfetch/tg-video-bot/internal/model"

// Sink receives job progress updates. Implementations must tolerate
// being called from the extraction goroutine.
type Sink interface {
	Publish(status model.JobStatus, bytesDone, bytesTotal int64)
}

// SinkFunc adapts a plain function to the Sink interface
type SinkFunc func(status model.JobStatus, bytesDone, bytesTotal int64)

// Publish calls the wrapped function
func (f SinkFunc) Publish(status model.JobStatus, bytesDone, bytesTotal int64) {
	f(status, bytesDone, bytesTotal)
}

// percentOf converts a byte count pair to 0-100, returning 0 while the
// total is unknown
func percentOf(done, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(float64(done) / float64(total) * 100)
	if p > 100 {
		p = 100
	}
	return p
}
