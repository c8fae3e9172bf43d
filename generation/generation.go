// Package generation holds the AI-assisted editorial services. Each one builds
// a prompt from explicit inputs, calls the gateway and shapes a typed result.
// None of them keeps state between calls.
package generation

import (
	"strings"
	"unicode/utf8"

	"editorial-cms/aigateway"
	"editorial-cms/config"
)

const (
	// PreviewLimit caps content interpolated into a prompt, in runes.
	PreviewLimit = 3000
	// TitleLimit caps titles interpolated into a prompt, in runes.
	TitleLimit = 200
)

// DefaultLanguage is the language generated text is written in.
const DefaultLanguage = "Brazilian Portuguese"

// Tiers maps task classes to model ids. Fast serves classification-like
// tasks, Strong long-form writing.
type Tiers struct {
	Fast   string
	Strong string
}

func TiersFrom(ai config.AIConfig) Tiers {
	t := Tiers{Fast: ai.FastModel, Strong: ai.StrongModel}
	if t.Fast == "" {
		t.Fast = ai.DefaultModel
	}
	if t.Strong == "" {
		t.Strong = ai.DefaultModel
	}
	return t
}

type base struct {
	gen      aigateway.Generator
	tiers    Tiers
	language string
}

func newBase(gen aigateway.Generator, tiers Tiers, language string) base {
	if language == "" {
		language = DefaultLanguage
	}
	return base{gen: gen, tiers: tiers, language: language}
}

func (b base) fast(system string, maxTokens int) aigateway.Options {
	return aigateway.Options{Model: b.tiers.Fast, SystemPrompt: system, MaxTokens: maxTokens}
}

func (b base) strong(system string, maxTokens int) aigateway.Options {
	return aigateway.Options{Model: b.tiers.Strong, SystemPrompt: system, MaxTokens: maxTokens}
}

// Services bundles every generation service over one gateway.
type Services struct {
	Keywords   *KeywordPlanner
	Drafts     *DraftWriter
	Categories *Categorizer
	SEO        *SEOOptimizer
	Rewriter   *Rewriter
	Newsletter *NewsletterComposer
	Inline     *InlineEditor
	Visual     *VisualKeywords
}

func NewServices(gen aigateway.Generator, tiers Tiers, language string) *Services {
	return &Services{
		Keywords:   NewKeywordPlanner(gen, tiers, language),
		Drafts:     NewDraftWriter(gen, tiers, language),
		Categories: NewCategorizer(gen, tiers, language),
		SEO:        NewSEOOptimizer(gen, tiers, language),
		Rewriter:   NewRewriter(gen, tiers, language),
		Newsletter: NewNewsletterComposer(gen, tiers, language),
		Inline:     NewInlineEditor(gen, tiers, language),
		Visual:     NewVisualKeywords(gen, tiers, language),
	}
}

// clip trims s and cuts it to n runes.
func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}

// cleanList trims entries, drops empties and duplicates (case-insensitive)
// and never returns nil.
func cleanList(items []string, max int) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
