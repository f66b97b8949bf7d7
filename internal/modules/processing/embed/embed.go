package embed

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
)

// The normalizer accepts an author-supplied string (a bare URL or a
// hand-pasted HTML embed snippet) and deterministically rewrites it into
// width-locked embeddable markup per recognized platform.
//
// On the existing-snippet path the content is passed through structurally
// unchanged apart from the width/height rewrite: script tags are NOT
// sanitized. That is the documented contract; callers embedding untrusted
// authors must put their own sanitization layer in front of this package.

const (
	// CanonicalWidth is the fixed pixel width every embed is locked to.
	CanonicalWidth = 552
	// DefaultHeight is injected into iframes that declare no height.
	DefaultHeight = 600
)

var (
	attrWidthPattern  = regexp.MustCompile(`(?i)width\s*=\s*(?:"(\d+)"|'(\d+)')`)
	styleWidthPattern = regexp.MustCompile(`(?i)width\s*:\s*\d+(?:\.\d+)?px`)
	iframeTagPattern  = regexp.MustCompile(`(?i)<iframe\b[^>]*>`)
	heightAttrPattern = regexp.MustCompile(`(?i)\bheight\s*[=:]`)
)

// Normalize maps raw author input to canonical embed markup. Bare URLs are
// dispatched by platform; anything unrecognized degrades to a fallback link
// card, never to inline embedding of arbitrary markup.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http") && !strings.Contains(trimmed, "<") {
		return normalizeURL(trimmed)
	}
	return rewriteSnippet(trimmed)
}

// normalizeURL dispatches a bare URL by substring match, first match wins.
func normalizeURL(url string) string {
	switch {
	case strings.Contains(url, "tiktok.com"):
		if id := lastPathSegment(url); id != "" {
			return fmt.Sprintf(
				`<iframe src="https://www.tiktok.com/embed/%s" width="%d" height="%d" frameborder="0" allowfullscreen></iframe>`,
				id, CanonicalWidth, DefaultHeight)
		}
		return fallbackCard(url)
	case strings.Contains(url, "pin.it"):
		// The short-link id cannot be resolved client-side: emit the widget
		// placeholder and let the platform loader expand it.
		return fmt.Sprintf(
			`<a data-pin-do="embedPin" data-pin-width="medium" href="%s"></a><script async defer src="//assets.pinterest.com/js/pinit.js"></script>`,
			html.EscapeString(url))
	case strings.Contains(url, "pinterest.") && strings.Contains(url, "/pin/"):
		if id := lastPathSegment(url); id != "" {
			return fmt.Sprintf(
				`<iframe src="https://assets.pinterest.com/ext/embed.html?id=%s" width="%d" height="%d" frameborder="0" scrolling="no"></iframe>`,
				id, CanonicalWidth, DefaultHeight)
		}
		return fallbackCard(url)
	case strings.Contains(url, "twitter.com"), strings.Contains(url, "//x.com"), strings.Contains(url, "www.x.com"):
		return fmt.Sprintf(
			`<blockquote class="twitter-tweet" data-width="%d"><a href="%s"></a></blockquote><script async src="https://platform.twitter.com/widgets.js" charset="utf-8"></script>`,
			CanonicalWidth, html.EscapeString(url))
	case strings.Contains(url, "instagram.com/p/"), strings.Contains(url, "instagram.com/reel/"):
		return fmt.Sprintf(
			`<blockquote class="instagram-media" data-instgrm-permalink="%s" data-instgrm-version="14" style="max-width:%dpx"></blockquote><script async src="//www.instagram.com/embed.js"></script>`,
			html.EscapeString(url), CanonicalWidth)
	default:
		return fallbackCard(url)
	}
}

// rewriteSnippet locks every explicit pixel width to the canonical width and
// injects the default height into height-less iframes. Nothing else changes.
func rewriteSnippet(snippet string) string {
	out := attrWidthPattern.ReplaceAllString(snippet, fmt.Sprintf(`width="%d"`, CanonicalWidth))
	out = styleWidthPattern.ReplaceAllString(out, fmt.Sprintf("width:%dpx", CanonicalWidth))
	out = iframeTagPattern.ReplaceAllStringFunc(out, func(tag string) string {
		if heightAttrPattern.MatchString(tag) {
			return tag
		}
		return strings.Replace(tag, "<iframe", fmt.Sprintf(`<iframe height="%d"`, DefaultHeight), 1)
	})
	return out
}

// fallbackCard renders an "open original link" card for unrecognized input.
func fallbackCard(url string) string {
	escaped := html.EscapeString(url)
	return fmt.Sprintf(
		`<div class="embed-fallback"><span class="embed-fallback-url">%s</span><a href="%s" target="_blank" rel="noopener noreferrer">Open original link</a></div>`,
		html.EscapeString(truncateURL(url)), escaped)
}

const fallbackLabelLimit = 48

func truncateURL(url string) string {
	if len(url) <= fallbackLabelLimit {
		return url
	}
	return url[:fallbackLabelLimit] + "…"
}

// lastPathSegment extracts the trailing non-empty path segment of a URL with
// any query string stripped.
func lastPathSegment(url string) string {
	trimmed := url
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if strings.Contains(trimmed, ".") && !strings.ContainsAny(trimmed, "0123456789") {
		// A bare host with no path yields its domain here; that is not an id.
		return ""
	}
	return trimmed
}

// Script is one script element found in normalized markup. Hosts re-inserting
// markup into a live document must build fresh script nodes from these,
// because previously parsed inline scripts do not re-execute on DOM
// re-insertion; afterwards any platform widget hooks should be re-run.
type Script struct {
	Src   string
	Attrs map[string]string
	Text  string
}

// Scripts extracts every script element from markup in document order.
func Scripts(markup string) []Script {
	var scripts []Script
	tz := xhtml.NewTokenizer(strings.NewReader(markup))
	for {
		switch tz.Next() {
		case xhtml.ErrorToken:
			return scripts
		case xhtml.StartTagToken:
			token := tz.Token()
			if token.Data != "script" {
				continue
			}
			s := Script{Attrs: map[string]string{}}
			for _, attr := range token.Attr {
				if attr.Key == "src" {
					s.Src = attr.Val
				}
				s.Attrs[attr.Key] = attr.Val
			}
			if tz.Next() == xhtml.TextToken {
				s.Text = strings.TrimSpace(string(tz.Text()))
			}
			scripts = append(scripts, s)
		}
	}
}
