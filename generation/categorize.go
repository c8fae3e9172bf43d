package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"editorial-cms/aigateway"
	"editorial-cms/models"
)

// BatchSize is how many categorizations run concurrently. Batches run one after another.
const BatchSize = 3

type CategorizeInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CategorySuggestion is the model's pick. CategoryID is nil when the
// suggested name matches no catalog entry.
type CategorySuggestion struct {
	Name       string   `json:"name"`
	CategoryID *string  `json:"category_id"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
	Tags       []string `json:"tags"`
}

type CategorizeOutcome struct {
	Input      CategorizeInput
	Suggestion CategorySuggestion
	Err        error
}

type categorizeResponse struct {
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
	Tags       []string `json:"tags"`
}

const categorizeSystemPrompt = `You classify editorial articles into exactly one category of a fixed catalog.
Respond ONLY with a JSON object with the keys:
category (string, copied verbatim from the catalog), confidence (number between 0 and 1),
reasoning (string, one sentence), tags (array of 3 to 6 lowercase strings).
Do not wrap the JSON in a markdown code block.`

type Categorizer struct{ base }

func NewCategorizer(gen aigateway.Generator, tiers Tiers, language string) *Categorizer {
	return &Categorizer{newBase(gen, tiers, language)}
}

func (c *Categorizer) Categorize(ctx context.Context, in CategorizeInput, catalog []models.Category) (CategorySuggestion, error) {
	var b strings.Builder
	b.WriteString("Catalog:\n")
	for _, cat := range catalog {
		fmt.Fprintf(&b, "- %s", cat.Name)
		if cat.Description != "" {
			fmt.Fprintf(&b, ": %s", clip(cat.Description, TitleLimit))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nTitle: %s\n", clip(in.Title, TitleLimit))
	fmt.Fprintf(&b, "Content:\n%s\n\nWrite reasoning and tags in %s.", clip(in.Content, PreviewLimit), c.language)

	raw, err := aigateway.GenerateJSON[categorizeResponse](ctx, c.gen, b.String(), c.fast(categorizeSystemPrompt, 300))
	if err != nil {
		return CategorySuggestion{}, err
	}

	s := CategorySuggestion{
		Name:       strings.TrimSpace(raw.Category),
		Confidence: raw.Confidence,
		Reasoning:  strings.TrimSpace(raw.Reasoning),
		Tags:       cleanList(raw.Tags, 6),
	}
	if s.Confidence < 0 {
		s.Confidence = 0
	}
	if s.Confidence > 1 {
		s.Confidence = 1
	}
	if cat := MatchCategory(s.Name, catalog); cat != nil {
		id := cat.ID.Hex()
		s.CategoryID = &id
		s.Name = cat.Name
	}
	return s, nil
}

// CategorizeBatch runs BatchSize inputs concurrently and waits for the batch
// before starting the next. Outcomes keep input order.
func (c *Categorizer) CategorizeBatch(ctx context.Context, inputs []CategorizeInput, catalog []models.Category) []CategorizeOutcome {
	out := make([]CategorizeOutcome, len(inputs))
	for start := 0; start < len(inputs); start += BatchSize {
		end := min(start+BatchSize, len(inputs))
		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s, err := c.Categorize(ctx, inputs[i], catalog)
				out[i] = CategorizeOutcome{Input: inputs[i], Suggestion: s, Err: err}
			}(i)
		}
		wg.Wait()
	}
	return out
}

// MatchCategory finds the catalog entry whose name or slug equals name,
// ignoring case. There is no fuzzy matching.
func MatchCategory(name string, catalog []models.Category) *models.Category {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, name) || strings.EqualFold(catalog[i].Slug, name) {
			return &catalog[i]
		}
	}
	return nil
}
