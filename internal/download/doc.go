// Package download implements the core download pipeline built on top
// of yt-dlp (via github.com/lrstanley/go-ytdlp). It manages the job
// lifecycle, per-chat serialization, progress propagation, the size
// cap, and guaranteed removal of temporary artifacts on failure.
package download
