package model

import "time"

// Job represents a single URL-to-delivered-file processing unit.
// A job is owned by the pipeline for its whole lifetime: created when a
// URL message passes the access guard, discarded after delivery or a
// terminal failure. TempPath is assigned once, before extraction starts,
// and the file behind it never outlives the job.
type Job struct {
	ID         string
	URL        string
	Platform   Platform
	ChatID     int64
	TempPath   string // path to the temporary video file
	Status     JobStatus
	LastError  string // last error message if any
	BytesDone  int64
	BytesTotal int64 // 0 if the extractor did not report a total
	CreatedAt  time.Time
	FinishedAt time.Time
}

// Percent returns download completion as 0-100, or 0 while the total
// size is unknown
func (j *Job) Percent() int {
	if j.BytesTotal <= 0 {
		return 0
	}
	p := int(float64(j.BytesDone) / float64(j.BytesTotal) * 100)
	if p > 100 {
		p = 100
	}
	return p
}
