package download

import "context"

// ExtractResult describes a finished extraction
type ExtractResult struct {
	// Path is the absolute path of the downloaded file. It may differ
	// from the requested output path in extension when the extractor
	// picked another container.
	Path string
	// Size is the downloaded file size in bytes
	Size int64
}

// Extractor resolves a platform URL into a local file. onProgress, when
// non-nil, receives periodic (bytesDone, bytesTotal) updates; bytesTotal
// is 0 while unknown. Implementations must respect ctx cancellation.
type Extractor interface {
	Extract(ctx context.Context, url, outPath string, onProgress func(done, total int64)) (ExtractResult, error)
}
