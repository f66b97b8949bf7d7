package embed

import (
	"fmt"
	"regexp"
	"strings"
)

// Video holds the derived playback fields for a recognized YouTube URL.
type Video struct {
	ID        string `json:"id"`
	EmbedURL  string `json:"embedUrl"`
	Thumbnail string `json:"thumbnail"`
	IsMusic   bool   `json:"isMusic"`
}

// youtubeIDPattern captures the video id following any of the URL shapes
// YouTube serves: short links, /v/, /u/<word>/, /embed/, watch?v= and a
// trailing &v= parameter.
var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w/|/embed/|watch\?v=|&v=)([^#&?/]+)`)

const youtubeIDLength = 11

// ParseVideoURL recognizes a YouTube watch or share URL and derives the embed
// player URL and thumbnail for it. Candidate ids of any length other than the
// canonical eleven characters are rejected, so random URLs that merely contain
// the marker substrings do not pass.
func ParseVideoURL(raw string) (*Video, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty video url")
	}
	m := youtubeIDPattern.FindStringSubmatch(trimmed)
	if m == nil || len(m[1]) != youtubeIDLength {
		return nil, fmt.Errorf("unrecognized video url %q", trimmed)
	}
	id := m[1]
	return &Video{
		ID:        id,
		EmbedURL:  fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&modestbranding=1&rel=0", id),
		Thumbnail: fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id),
		IsMusic:   strings.Contains(trimmed, "music.youtube.com"),
	}, nil
}
