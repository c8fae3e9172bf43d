package generation

import (
	"context"
	"fmt"
	"strings"

	"editorial-cms/aigateway"
	"editorial-cms/excerpt"
	"editorial-cms/richtext"
)

type DraftRequest struct {
	Topic     string   `json:"topic"`
	Keywords  []string `json:"keywords"`
	Tone      string   `json:"tone"`
	WordCount int      `json:"word_count"`
}

type Draft struct {
	Title    string           `json:"title"`
	Excerpt  string           `json:"excerpt"`
	Markdown string           `json:"markdown"`
	Content  richtext.Content `json:"content"`
	Tags     []string         `json:"tags"`
}

type draftResponse struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Markdown string   `json:"markdown"`
	Tags     []string `json:"tags"`
}

const draftSystemPrompt = `You are a senior editor writing long-form articles for an editorial website.
Respond ONLY with a JSON object with the keys:
title (string, 10 to 100 characters), excerpt (string, 50 to 300 characters),
markdown (string, the full article body in Markdown using ## and ### headings), tags (array of strings).
Do not wrap the JSON in a markdown code block.`

type DraftWriter struct{ base }

func NewDraftWriter(gen aigateway.Generator, tiers Tiers, language string) *DraftWriter {
	return &DraftWriter{newBase(gen, tiers, language)}
}

// Write produces a full draft on the strong tier.
func (w *DraftWriter) Write(ctx context.Context, req DraftRequest) (Draft, error) {
	words := req.WordCount
	if words == 0 {
		words = 900
	}
	words = clamp(words, 300, 3000)

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", clip(req.Topic, TitleLimit))
	if kws := cleanList(req.Keywords, 15); len(kws) > 0 {
		fmt.Fprintf(&b, "Keywords to cover: %s\n", strings.Join(kws, ", "))
	}
	if tone := clip(req.Tone, 60); tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", tone)
	}
	fmt.Fprintf(&b, "Length: about %d words. Write in %s.", words, w.language)

	// markdown for ~words words plus JSON overhead
	maxTokens := clamp(words*2+500, 1000, 8000)
	raw, err := aigateway.GenerateJSON[draftResponse](ctx, w.gen, b.String(), w.strong(draftSystemPrompt, maxTokens))
	if err != nil {
		return Draft{}, err
	}

	md := strings.TrimSpace(raw.Markdown)
	d := Draft{
		Title:    clip(raw.Title, 100),
		Excerpt:  clip(raw.Excerpt, 300),
		Markdown: md,
		Content:  richtext.FromNode(richtext.FromMarkdown([]byte(md))),
		Tags:     cleanList(raw.Tags, 10),
	}
	if d.Title == "" {
		d.Title = clip(req.Topic, 100)
	}
	if d.Excerpt == "" {
		d.Excerpt = excerpt.Generate(d.Content, excerpt.DefaultLength)
	}
	return d, nil
}
