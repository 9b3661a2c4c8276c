package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

// Progress hook frequency for yt-dlp
const progressInterval = 500 * time.Millisecond

// Alternate containers yt-dlp may produce despite the mp4 merge
// preference
var altExtensions = []string{".mp4", ".mkv", ".webm", ".m4a"}

// YtdlpExtractor implements Extractor on top of the yt-dlp wrapper
type YtdlpExtractor struct {
	maxFileSize int64
}

// NewYtdlpExtractor creates an extractor that prefers formats under
// maxFileSize bytes
func NewYtdlpExtractor(maxFileSize int64) *YtdlpExtractor {
	return &YtdlpExtractor{maxFileSize: maxFileSize}
}

// Extract downloads the video behind url into outPath
func (e *YtdlpExtractor) Extract(ctx context.Context, url, outPath string, onProgress func(done, total int64)) (ExtractResult, error) {
	// Prefer a single format under the size cap; fall back to the best
	// merged pair since not every video reports a filesize upfront.
	format := fmt.Sprintf("best[filesize<%d]/bestvideo[filesize<%d]+bestaudio/best", e.maxFileSize, e.maxFileSize)

	dl := ytdlp.New().
		Format(format).
		MergeOutputFormat("mp4").
		NoPlaylist().
		ForceOverwrites().
		RestrictFilenames().
		Output(outPath)

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		if onProgress != nil {
			onProgress(int64(update.DownloadedBytes), int64(update.TotalBytes))
		}
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return ExtractResult{}, err
	}

	path := resolveOutputPath(result, outPath)
	info, err := os.Stat(path)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("no file produced for %s: %w", url, err)
	}

	return ExtractResult{Path: path, Size: info.Size()}, nil
}

// resolveOutputPath locates the downloaded file: the requested path
// first, then the filename yt-dlp reported, then the requested path
// under an alternate extension.
func resolveOutputPath(result *ytdlp.Result, outPath string) string {
	if _, err := os.Stat(outPath); err == nil {
		return outPath
	}

	if result != nil {
		info, err := result.GetExtractedInfo()
		if err == nil && len(info) > 0 && info[0].Filename != nil && *info[0].Filename != "" {
			if _, err := os.Stat(*info[0].Filename); err == nil {
				return *info[0].Filename
			}
		}
	}

	base := strings.TrimSuffix(outPath, filepath.Ext(outPath))
	for _, ext := range altExtensions {
		alt := base + ext
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return outPath
}
