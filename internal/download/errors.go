package download

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a job-level failure for user-facing reporting
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAccessDenied
	KindNetwork
	KindTooLarge
	KindExtractor
	KindDelivery
)

// Error is a classified job failure wrapping the underlying cause
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error with an explicit kind
func NewError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// WrapClassified classifies err by its message and wraps it
func WrapClassified(err error) *Error {
	return &Error{Kind: Classify(err), Err: err}
}

// String returns a short identifier for the kind
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAccessDenied:
		return "access_denied"
	case KindNetwork:
		return "network"
	case KindTooLarge:
		return "too_large"
	case KindExtractor:
		return "extractor"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Message returns the user-facing text for the kind
func (k Kind) Message() string {
	switch k {
	case KindNotFound:
		return "The video does not exist or has been removed."
	case KindAccessDenied:
		return "The video is restricted and cannot be downloaded."
	case KindNetwork:
		return "Network error, please try again later."
	case KindTooLarge:
		return "The video is too large (over 50MB) and cannot be sent over Telegram."
	case KindExtractor:
		return "The downloader failed, it may need an update."
	case KindDelivery:
		return "Failed to send the video, please try again."
	default:
		return "Something went wrong, please try again."
	}
}

// Keyword groups matched against lowercased error text, checked in
// order. The first matching group wins.
var (
	notFoundKeywords = []string{
		"video unavailable", "not found", "does not exist",
		"has been removed", "deleted", "unavailable", "no video", "404",
	}
	accessDeniedKeywords = []string{
		"private", "restricted", "age-restricted", "age restricted",
		"login required", "sign in", "members only", "subscribers only",
		"permission denied", "access denied", "forbidden", "403",
	}
	networkKeywords = []string{
		"network", "connection", "timeout", "timed out", "unreachable",
		"dns", "socket", "ssl", "certificate", "connect error",
		"connection refused", "connection reset", "no internet",
	}
	tooLargeKeywords = []string{
		"too large", "too big", "request entity too large", "413",
	}
	extractorKeywords = []string{
		"update", "outdated", "upgrade", "new version", "please update",
		"yt-dlp needs", "extractor error",
	}
)

// Classify maps an arbitrary error to a Kind by inspecting its text.
// Errors that already carry a Kind keep it.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}

	text := strings.ToLower(err.Error())

	if containsAny(text, notFoundKeywords) {
		return KindNotFound
	}
	if containsAny(text, accessDeniedKeywords) {
		return KindAccessDenied
	}
	if containsAny(text, networkKeywords) {
		return KindNetwork
	}
	if containsAny(text, tooLargeKeywords) {
		return KindTooLarge
	}
	if containsAny(text, extractorKeywords) {
		return KindExtractor
	}
	return KindUnknown
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// UserMessage converts any job error to the single text shown to the
// user
func UserMessage(err error) string {
	return Classify(err).Message()
}
