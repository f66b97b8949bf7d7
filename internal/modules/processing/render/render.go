package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/blockpress/core/internal/modules/content/block"
	"github.com/blockpress/core/internal/modules/processing/embed"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Service renders a post's block sequence into a read-only HTML preview. The
// preview is derived output and never stored; authoring state stays in the
// block list.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// RenderedPost is the preview payload: concatenated section markup plus the
// loader scripts hosts must re-create as fresh nodes before re-inserting the
// markup into a live document.
type RenderedPost struct {
	HTML    string         `json:"html"`
	Scripts []embed.Script `json:"scripts"`
}

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// RenderBlocks renders the sequence in order, one section per block.
func (s *Service) RenderBlocks(blocks block.List) RenderedPost {
	var sb strings.Builder
	for i := range blocks {
		sb.WriteString(s.renderBlock(&blocks[i]))
	}
	html := sb.String()
	return RenderedPost{
		HTML:    html,
		Scripts: embed.Scripts(html),
	}
}

func (s *Service) renderBlock(b *block.Block) string {
	var body string
	switch b.Kind {
	case block.KindAudio:
		body = renderAudio(b)
	case block.KindFile:
		body = renderFile(b)
	case block.KindQuote:
		body = renderQuote(b)
	case block.KindBeforeAfter:
		body = renderBeforeAfter(b.BeforeAfter())
	case block.KindFlipCard:
		body = renderFlipCard(b.FlipCard())
	case block.KindPoll:
		body = renderPoll(b.Poll())
	case block.KindVersus:
		body = renderVersus(b.Versus())
	case block.KindQuiz:
		body = renderQuiz(b.Quiz())
	case block.KindReview:
		body = renderReview(b.Review())
	case block.KindSocial:
		body = renderSocial(b.Social())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<section class="block block-%s" data-block-id="%s">`, b.Kind, escape(b.ID))
	if b.Title != "" {
		fmt.Fprintf(&sb, "<h2>%s</h2>", escape(b.Title))
	}
	if b.Description != "" {
		sb.WriteString(richText(b.Description))
	}
	sb.WriteString(body)
	sb.WriteString("</section>")
	return sb.String()
}

func renderAudio(b *block.Block) string {
	source := b.MediaURL
	if source == "" {
		source = b.Source
	}
	if source == "" {
		return ""
	}
	if video, err := embed.ParseVideoURL(source); err == nil {
		cls := "audio-embed"
		if video.IsMusic {
			cls = "audio-embed audio-embed-music"
		}
		return fmt.Sprintf(
			`<iframe class="%s" src="%s" width="%d" height="%d" frameborder="0" allow="autoplay" data-thumbnail="%s"></iframe>`,
			cls, video.EmbedURL, embed.CanonicalWidth, embed.DefaultHeight, video.Thumbnail)
	}
	return fmt.Sprintf(`<audio controls src="%s"></audio>`, escape(source))
}

func renderFile(b *block.Block) string {
	if b.MediaURL == "" {
		return ""
	}
	label := b.Source
	if label == "" {
		label = b.MediaURL
	}
	return fmt.Sprintf(`<a class="file-download" href="%s" download>%s</a>`, escape(b.MediaURL), escape(label))
}

func renderQuote(b *block.Block) string {
	if b.Source == "" {
		return ""
	}
	return fmt.Sprintf(`<footer class="quote-source">%s</footer>`, escape(b.Source))
}

func renderBeforeAfter(d *block.BeforeAfterData) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf(
		`<div class="compare"><figure><img src="%s" alt=""><figcaption>%s</figcaption></figure><figure><img src="%s" alt=""><figcaption>%s</figcaption></figure></div>`,
		escape(d.BeforeImage), escape(d.BeforeLabel), escape(d.AfterImage), escape(d.AfterLabel))
}

func renderFlipCard(d *block.FlipCardData) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf(
		`<div class="flip-card"><div class="flip-card-front"><img src="%s" alt=""><h3>%s</h3>%s</div><div class="flip-card-back"><img src="%s" alt=""><h3>%s</h3>%s</div></div>`,
		escape(d.FrontImage), escape(d.FrontTitle), richText(d.FrontDescription),
		escape(d.BackImage), escape(d.BackTitle), richText(d.BackDescription))
}

func renderPoll(d *block.PollData) string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<ul class="poll poll-cols-%d">`, d.Columns)
	for _, o := range d.Options {
		sb.WriteString(`<li class="poll-option">`)
		if d.IsImagePoll && o.Image != "" {
			fmt.Fprintf(&sb, `<img src="%s" alt="">`, escape(o.Image))
		}
		fmt.Fprintf(&sb, `<span>%s</span><span class="votes">%d</span></li>`, escape(o.Text), o.Votes)
	}
	sb.WriteString("</ul>")
	return sb.String()
}

func renderVersus(d *block.VersusData) string {
	if d == nil || len(d.Options) != 2 {
		return ""
	}
	left, right := d.Options[0], d.Options[1]
	return fmt.Sprintf(
		`<div class="versus"><div class="versus-left">%s<span class="votes">%d</span></div><span class="versus-divider">vs</span><div class="versus-right">%s<span class="votes">%d</span></div></div>`,
		escape(left.Text), left.Votes, escape(right.Text), right.Votes)
}

func renderQuiz(d *block.QuizData) string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<ol class="quiz">`)
	for i, q := range d.Questions {
		sb.WriteString(`<li class="quiz-question">`)
		if ordinal, show := d.Ordinal(i); show {
			fmt.Fprintf(&sb, `<span class="ordinal">%d.</span>`, ordinal)
		}
		fmt.Fprintf(&sb, "<h3>%s</h3>", escape(q.Title))
		if q.Description != "" {
			sb.WriteString(richText(q.Description))
		}
		fmt.Fprintf(&sb, `<ul class="answers answers-%s">`, q.Layout)
		for _, a := range q.Answers {
			sb.WriteString(`<li class="answer">`)
			fmt.Fprintf(&sb, "<span>%s</span>", escape(a.Text))
			// A resultId that no longer resolves renders the same as no
			// result at all.
			if result := d.ResolveResult(a.ResultID); result != nil {
				fmt.Fprintf(&sb, `<span class="answer-result">%s</span>`, escape(result.Title))
			}
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul></li>")
	}
	sb.WriteString("</ol>")
	return sb.String()
}

func renderReview(d *block.ReviewData) string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<div class="review">`)
	fmt.Fprintf(&sb, `<h3>%s</h3><span class="review-score">%d</span>`, escape(d.ProductName), d.Score)
	if d.ProductImage != "" {
		fmt.Fprintf(&sb, `<img src="%s" alt="">`, escape(d.ProductImage))
	}
	if len(d.Breakdown) > 0 {
		sb.WriteString(`<table class="review-breakdown">`)
		for _, row := range d.Breakdown {
			fmt.Fprintf(&sb, "<tr><td>%s</td><td>%d</td></tr>", escape(row.Label), row.Score)
		}
		sb.WriteString("</table>")
	}
	writeStringList(&sb, "review-pros", d.Pros)
	writeStringList(&sb, "review-cons", d.Cons)
	if d.Verdict != "" {
		fmt.Fprintf(&sb, `<div class="review-verdict">%s</div>`, richText(d.Verdict))
	}
	sb.WriteString("</div>")
	return sb.String()
}

func renderSocial(d *block.SocialData) string {
	if d == nil || strings.TrimSpace(d.EmbedSource) == "" {
		return ""
	}
	return embed.Normalize(d.EmbedSource)
}

func writeStringList(sb *strings.Builder, class string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, `<ul class="%s">`, class)
	for _, item := range items {
		fmt.Fprintf(sb, "<li>%s</li>", escape(item))
	}
	sb.WriteString("</ul>")
}

// richText passes stored rich text (already HTML) through unchanged and runs
// plain text through the markdown engine.
func richText(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "<") {
		return trimmed
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(trimmed), &buf); err != nil {
		return "<p>" + escape(trimmed) + "</p>"
	}
	return buf.String()
}

func escape(s string) string {
	return template.HTMLEscapeString(s)
}
