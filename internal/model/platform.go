package model

// Platform identifies the video platform a URL belongs to
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformUnknown   Platform = "unknown"
)

// String returns the string representation of Platform
func (p Platform) String() string {
	return string(p)
}

// Supported returns true for platforms the bot can download from
func (p Platform) Supported() bool {
	return p == PlatformYouTube || p == PlatformFacebook || p == PlatformInstagram
}
