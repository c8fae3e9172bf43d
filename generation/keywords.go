package generation

import (
	"context"
	"fmt"
	"strings"

	"editorial-cms/aigateway"
)

type KeywordRequest struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
	Count    int    `json:"count"`
}

type KeywordPlan struct {
	PrimaryKeyword  string   `json:"primary_keyword"`
	Secondary       []string `json:"secondary_keywords"`
	LongTail        []string `json:"long_tail"`
	SearchIntent    string   `json:"search_intent"`
	SuggestedTitles []string `json:"suggested_titles"`
}

const keywordSystemPrompt = `You are an SEO strategist for an editorial website.
Respond ONLY with a JSON object with the keys:
primary_keyword (string), secondary_keywords (array of strings), long_tail (array of strings),
search_intent (one of "informational", "navigational", "commercial", "transactional"),
suggested_titles (array of strings, each at most 100 characters).
Do not wrap the JSON in a markdown code block.`

type KeywordPlanner struct{ base }

func NewKeywordPlanner(gen aigateway.Generator, tiers Tiers, language string) *KeywordPlanner {
	return &KeywordPlanner{newBase(gen, tiers, language)}
}

func (p *KeywordPlanner) Plan(ctx context.Context, req KeywordRequest) (KeywordPlan, error) {
	topic := clip(req.Topic, TitleLimit)
	count := clamp(req.Count, 3, 20)
	if req.Count == 0 {
		count = 8
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if a := clip(req.Audience, TitleLimit); a != "" {
		fmt.Fprintf(&b, "Audience: %s\n", a)
	}
	fmt.Fprintf(&b, "Suggest %d secondary keywords and 3 to 5 titles. Write every value in %s.", count, p.language)

	raw, err := aigateway.GenerateJSON[KeywordPlan](ctx, p.gen, b.String(), p.fast(keywordSystemPrompt, 800))
	if err != nil {
		return KeywordPlan{}, err
	}

	plan := KeywordPlan{
		PrimaryKeyword:  strings.TrimSpace(raw.PrimaryKeyword),
		Secondary:       cleanList(raw.Secondary, count),
		LongTail:        cleanList(raw.LongTail, 0),
		SearchIntent:    strings.ToLower(strings.TrimSpace(raw.SearchIntent)),
		SuggestedTitles: cleanList(raw.SuggestedTitles, 5),
	}
	if plan.PrimaryKeyword == "" {
		plan.PrimaryKeyword = topic
	}
	switch plan.SearchIntent {
	case "informational", "navigational", "commercial", "transactional":
	default:
		plan.SearchIntent = "informational"
	}
	return plan, nil
}
