package generation

import (
	"context"
	"fmt"
	"strings"

	"editorial-cms/aigateway"
)

type visualResponse struct {
	Keywords []string `json:"keywords"`
}

const visualSystemPrompt = `You pick search terms for stock photo libraries.
Given an article, suggest concrete, visual search terms in English (objects, places, scenes), most relevant first.
Avoid abstract concepts. Respond ONLY with a JSON object: {"keywords": ["...", "..."]} with 3 to 5 entries.`

// MaxVisualKeywords is the most terms Suggest returns.
const MaxVisualKeywords = 5

type VisualKeywords struct{ base }

func NewVisualKeywords(gen aigateway.Generator, tiers Tiers, language string) *VisualKeywords {
	return &VisualKeywords{newBase(gen, tiers, language)}
}

// Suggest returns English search terms; stock providers index English.
func (v *VisualKeywords) Suggest(ctx context.Context, title, content string) ([]string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", clip(title, TitleLimit))
	if c := clip(content, PreviewLimit); c != "" {
		fmt.Fprintf(&b, "Content:\n%s\n", c)
	}

	raw, err := aigateway.GenerateJSON[visualResponse](ctx, v.gen, b.String(), v.fast(visualSystemPrompt, 200))
	if err != nil {
		return nil, err
	}
	return cleanList(raw.Keywords, MaxVisualKeywords), nil
}
