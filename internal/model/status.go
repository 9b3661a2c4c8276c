package model

// JobStatus represents the status of a download-and-delivery job
type JobStatus string

const (
	// StatusQueued means the job is created but waiting for its chat slot
	StatusQueued JobStatus = "Queued"

	// StatusDownloading means the extraction library is fetching the video
	StatusDownloading JobStatus = "Downloading"

	// StatusUploading means the video is being sent back to the chat
	StatusUploading JobStatus = "Uploading"

	// StatusDone means the job finished and the file was delivered
	StatusDone JobStatus = "Done"

	// StatusFailed means the job failed at any stage
	StatusFailed JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (s JobStatus) String() string {
	return string(s)
}

// IsActive returns true if the job is in a non-terminal state
func (s JobStatus) IsActive() bool {
	return s == StatusQueued || s == StatusDownloading || s == StatusUploading
}

// IsFinished returns true if the job reached a terminal state
func (s JobStatus) IsFinished() bool {
	return s == StatusDone || s == StatusFailed
}
