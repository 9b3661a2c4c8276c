package platform

import (
	"regexp"

	"github.com/vidfetch/tg-video-bot/internal/model"
)

// patternSet binds a platform to the URL shapes it accepts. The slice
// order fixes the match precedence when a message somehow contains links
// to more than one platform.
type patternSet struct {
	platform model.Platform
	patterns []*regexp.Regexp
}

var platformPatterns = []patternSet{
	{
		platform: model.PlatformYouTube,
		patterns: []*regexp.Regexp{
			// youtube.com/watch?v=VIDEO_ID
			regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=[\w-]+`),
			// youtube.com/shorts/VIDEO_ID
			regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/[\w-]+`),
			// youtu.be/VIDEO_ID
			regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/[\w-]+`),
		},
	},
	{
		platform: model.PlatformFacebook,
		patterns: []*regexp.Regexp{
			// facebook.com/*/videos/VIDEO_ID
			regexp.MustCompile(`(?:https?://)?(?:www\.)?facebook\.com/.+/videos/\d+`),
			// facebook.com/reel/REEL_ID
			regexp.MustCompile(`(?:https?://)?(?:www\.)?facebook\.com/reel/\d+`),
			// facebook.com/stories/STORY_ID
			regexp.MustCompile(`(?:https?://)?(?:www\.)?facebook\.com/stories/\d+`),
			// fb.watch/VIDEO_ID
			regexp.MustCompile(`(?:https?://)?fb\.watch/[\w-]+`),
		},
	},
	{
		platform: model.PlatformInstagram,
		patterns: []*regexp.Regexp{
			// instagram.com/p/POST_ID, instagram.com/reel(s)/REEL_ID
			regexp.MustCompile(`(?:https?://)?(?:www\.)?instagram\.com/(?:p|reel|reels)/[\w-]+`),
			// instagram.com/stories/USERNAME/STORY_ID
			regexp.MustCompile(`(?:https?://)?(?:www\.)?instagram\.com/stories/[\w._]+/\d+`),
		},
	},
}

// ParseURL scans message text for the first supported video URL and
// returns it together with its platform. Returns ("", PlatformUnknown)
// when no supported link is present.
func ParseURL(text string) (string, model.Platform) {
	for _, set := range platformPatterns {
		for _, pattern := range set.patterns {
			if match := pattern.FindString(text); match != "" {
				return match, set.platform
			}
		}
	}
	return "", model.PlatformUnknown
}
