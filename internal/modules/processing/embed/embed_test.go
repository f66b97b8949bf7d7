package embed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTikTokURL(t *testing.T) {
	got := Normalize("https://www.tiktok.com/@someone/video/7123456789012345678")
	assert.Contains(t, got, `src="https://www.tiktok.com/embed/7123456789012345678"`)
	assert.Contains(t, got, `width="552"`)
	assert.Contains(t, got, `height="600"`)
}

func TestNormalizePinterest(t *testing.T) {
	short := Normalize("https://pin.it/4kQzXaB")
	assert.Contains(t, short, `data-pin-do="embedPin"`)
	assert.Contains(t, short, "pinit.js")

	canonical := Normalize("https://www.pinterest.com/pin/99360735500167749/")
	assert.Contains(t, canonical, "assets.pinterest.com/ext/embed.html?id=99360735500167749")
	assert.Contains(t, canonical, `width="552"`)
}

func TestNormalizeTwitterAndX(t *testing.T) {
	for _, url := range []string{
		"https://twitter.com/user/status/1234567890",
		"https://x.com/user/status/1234567890",
	} {
		got := Normalize(url)
		assert.Contains(t, got, `class="twitter-tweet"`)
		assert.Contains(t, got, `data-width="552"`)
		assert.Contains(t, got, "platform.twitter.com/widgets.js")
	}
}

func TestNormalizeInstagram(t *testing.T) {
	got := Normalize("https://www.instagram.com/p/Cabc123xyz/")
	assert.Contains(t, got, `class="instagram-media"`)
	assert.Contains(t, got, `data-instgrm-permalink="https://www.instagram.com/p/Cabc123xyz/"`)
	assert.Contains(t, got, "instagram.com/embed.js")
}

func TestNormalizeUnknownURLFallsBackToCard(t *testing.T) {
	long := "https://example.com/some/very/long/path/that/keeps/going/and/going/forever"
	got := Normalize(long)
	assert.Contains(t, got, `class="embed-fallback"`)
	assert.Contains(t, got, `href="`+long+`"`)
	// The visible label is truncated, the href is not.
	assert.Contains(t, got, "…")
}

func TestRewriteSnippetWidths(t *testing.T) {
	in := `<iframe src="https://example.com/e" width="1280" style="width:800px;border:0"></iframe>`
	got := Normalize(in)
	assert.Contains(t, got, `width="552"`)
	assert.Contains(t, got, "width:552px")
	assert.NotContains(t, got, "1280")
	assert.NotContains(t, got, "800px")
}

func TestRewriteSnippetIsFixedPoint(t *testing.T) {
	in := `<iframe src="https://example.com/e" width="1280"></iframe><div style="width:300px"></div>`
	once := Normalize(in)
	assert.Equal(t, once, Normalize(once))
}

func TestRewriteSnippetInjectsHeightIntoHeightlessIframes(t *testing.T) {
	got := Normalize(`<iframe src="https://example.com/e"></iframe>`)
	assert.Contains(t, got, `height="600"`)

	kept := Normalize(`<iframe src="https://example.com/e" height="315"></iframe>`)
	assert.Contains(t, kept, `height="315"`)
	assert.Equal(t, 1, strings.Count(kept, "height"))
}

func TestScriptsExtraction(t *testing.T) {
	markup := `<blockquote class="twitter-tweet"></blockquote>` +
		`<script async src="https://platform.twitter.com/widgets.js" charset="utf-8"></script>` +
		`<script>window.instgrm&&window.instgrm.Embeds.process()</script>`

	scripts := Scripts(markup)
	require.Len(t, scripts, 2)
	assert.Equal(t, "https://platform.twitter.com/widgets.js", scripts[0].Src)
	assert.Equal(t, "utf-8", scripts[0].Attrs["charset"])
	assert.Empty(t, scripts[1].Src)
	assert.Contains(t, scripts[1].Text, "instgrm")
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, Normalize("   "))
}
