package platform

import (
	"testing"

	"github.com/vidfetch/tg-video-bot/internal/model"
)

func TestParseURL_SupportedPlatforms(t *testing.T) {
	tests := []struct {
		text     string
		url      string
		platform model.Platform
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", model.PlatformYouTube},
		{"https://youtube.com/shorts/Ab3_xY9", "https://youtube.com/shorts/Ab3_xY9", model.PlatformYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ", model.PlatformYouTube},
		{"youtu.be/dQw4w9WgXcQ", "youtu.be/dQw4w9WgXcQ", model.PlatformYouTube},
		{"https://www.facebook.com/somepage/videos/123456789", "https://www.facebook.com/somepage/videos/123456789", model.PlatformFacebook},
		{"https://facebook.com/reel/987654321", "https://facebook.com/reel/987654321", model.PlatformFacebook},
		{"https://fb.watch/a1B2c3D4", "https://fb.watch/a1B2c3D4", model.PlatformFacebook},
		{"https://www.instagram.com/p/Cxyz123-_", "https://www.instagram.com/p/Cxyz123-_", model.PlatformInstagram},
		{"https://www.instagram.com/reel/Cxyz123", "https://www.instagram.com/reel/Cxyz123", model.PlatformInstagram},
		{"https://instagram.com/stories/some.user_1/12345", "https://instagram.com/stories/some.user_1/12345", model.PlatformInstagram},
	}

	for _, test := range tests {
		url, platform := ParseURL(test.text)
		if url != test.url {
			t.Errorf("ParseURL(%q) url = %q, expected %q", test.text, url, test.url)
		}
		if platform != test.platform {
			t.Errorf("ParseURL(%q) platform = %s, expected %s", test.text, platform, test.platform)
		}
	}
}

func TestParseURL_ExtractsFromSurroundingText(t *testing.T) {
	text := "check this out: https://youtu.be/dQw4w9WgXcQ really good"
	url, platform := ParseURL(text)

	if url != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("ParseURL() url = %q, expected the embedded link", url)
	}
	if platform != model.PlatformYouTube {
		t.Errorf("ParseURL() platform = %s, expected youtube", platform)
	}
}

func TestParseURL_Unsupported(t *testing.T) {
	tests := []string{
		"",
		"hello world",
		"https://example.com/watch?v=abc",
		"https://vimeo.com/123456",
		"https://youtube.com/",              // no video path
		"https://www.facebook.com/somepage", // no video
	}

	for _, text := range tests {
		url, platform := ParseURL(text)
		if url != "" {
			t.Errorf("ParseURL(%q) url = %q, expected empty", text, url)
		}
		if platform != model.PlatformUnknown {
			t.Errorf("ParseURL(%q) platform = %s, expected unknown", text, platform)
		}
	}
}
