package generation

import (
	"context"
	"fmt"
	"strings"

	"editorial-cms/aigateway"
	"editorial-cms/models"
)

type SEORequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	FocusKeyword string `json:"focus_keyword"`
}

type SEOResult struct {
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	FocusKeyword    string   `json:"focus_keyword"`
	Keywords        []string `json:"keywords"`
	Score           int      `json:"score"`
	Suggestions     []string `json:"suggestions"`
}

func (r SEOResult) Meta() models.SEOMeta {
	return models.SEOMeta{
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		FocusKeyword:    r.FocusKeyword,
		Keywords:        r.Keywords,
	}
}

const seoSystemPrompt = `You are an SEO analyst reviewing an article before publication.
Respond ONLY with a JSON object with the keys:
meta_title (string, at most 60 characters), meta_description (string, at most 160 characters),
focus_keyword (string), keywords (array of strings), score (integer from 0 to 100),
suggestions (array of short actionable strings).
Do not wrap the JSON in a markdown code block.`

const (
	metaTitleLimit       = 60
	metaDescriptionLimit = 160
)

type SEOOptimizer struct{ base }

func NewSEOOptimizer(gen aigateway.Generator, tiers Tiers, language string) *SEOOptimizer {
	return &SEOOptimizer{newBase(gen, tiers, language)}
}

func (o *SEOOptimizer) Optimize(ctx context.Context, req SEORequest) (SEOResult, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", clip(req.Title, TitleLimit))
	if kw := clip(req.FocusKeyword, 100); kw != "" {
		fmt.Fprintf(&b, "Focus keyword: %s\n", kw)
	}
	fmt.Fprintf(&b, "Content:\n%s\n\nWrite every value in %s.", clip(req.Content, PreviewLimit), o.language)

	raw, err := aigateway.GenerateJSON[SEOResult](ctx, o.gen, b.String(), o.fast(seoSystemPrompt, 600))
	if err != nil {
		return SEOResult{}, err
	}

	res := SEOResult{
		MetaTitle:       clip(raw.MetaTitle, metaTitleLimit),
		MetaDescription: clip(raw.MetaDescription, metaDescriptionLimit),
		FocusKeyword:    strings.TrimSpace(raw.FocusKeyword),
		Keywords:        cleanList(raw.Keywords, 10),
		Score:           clamp(raw.Score, 0, 100),
		Suggestions:     cleanList(raw.Suggestions, 0),
	}
	if res.MetaTitle == "" {
		res.MetaTitle = clip(req.Title, metaTitleLimit)
	}
	if res.FocusKeyword == "" {
		res.FocusKeyword = strings.TrimSpace(req.FocusKeyword)
	}
	return res, nil
}
