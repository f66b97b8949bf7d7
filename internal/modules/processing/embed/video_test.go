package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		wantID  string
		music   bool
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false, false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false, false},
		{"embed path", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false, false},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", false, false},
		{"trailing v param", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false, false},
		{"with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false, false},
		{"music", "https://music.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true, false},
		{"id too short", "https://www.youtube.com/watch?v=short", "", false, true},
		{"not youtube", "https://vimeo.com/123456789", "", false, true},
		{"empty", "  ", "", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseVideoURL(tc.url)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, got.ID)
			assert.Equal(t, tc.music, got.IsMusic)
			assert.Contains(t, got.EmbedURL, "youtube.com/embed/"+tc.wantID)
			assert.Contains(t, got.EmbedURL, "autoplay=1")
			assert.Equal(t, "https://img.youtube.com/vi/"+tc.wantID+"/hqdefault.jpg", got.Thumbnail)
		})
	}
}
