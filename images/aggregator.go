package images

import (
	"context"
	"errors"
	"strings"
	"sync"

	"editorial-cms/logger"
	"editorial-cms/models"
	"editorial-cms/validation"
)

// ProviderAll searches every configured provider.
const ProviderAll = "all"

type SearchParams struct {
	Query       string      `json:"query"`
	Provider    string      `json:"provider"`
	Orientation Orientation `json:"orientation"`
	Page        int         `json:"page"`
	PerPage     int         `json:"per_page"`
}

type SearchResult struct {
	Images  []models.NormalizedImage `json:"images"`
	HasMore bool                     `json:"hasMore"`
	// Providers tells, per queried provider, whether it contributed a page.
	Providers map[models.ImageProvider]bool `json:"providers"`
}

// Aggregator fans a search out to its providers and merges the pages.
type Aggregator struct {
	providers []Provider
}

func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// Configured reports whether at least one provider can be queried.
func (a *Aggregator) Configured() bool {
	for _, p := range a.providers {
		if p.Configured() {
			return true
		}
	}
	return false
}

// Search only fails on invalid params. Provider failures are logged and
// reported as false in Providers.
func (a *Aggregator) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	targets, err := a.targets(params)
	if err != nil {
		return SearchResult{}, err
	}
	q := Query{
		Text:        params.Query,
		Orientation: params.Orientation,
		Page:        params.Page,
		PerPage:     params.PerPage,
	}.normalized()

	pages := make([]Page, len(targets))
	ok := make([]bool, len(targets))
	var wg sync.WaitGroup
	for i, p := range targets {
		if !p.Configured() {
			continue
		}
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()
			page, err := p.Search(ctx, q)
			if err != nil {
				fields := logger.Fields{
					"provider": string(p.Name()),
					"query":    q.Text,
					"error":    err.Error(),
				}
				var perr *ProviderError
				if errors.As(err, &perr) && perr.StatusCode != 0 {
					fields["status_code"] = perr.StatusCode
				}
				logger.WarnWithFields("image provider search failed", fields)
				return
			}
			pages[i] = page
			ok[i] = true
		}(i, p)
	}
	wg.Wait()

	res := SearchResult{
		Images:    []models.NormalizedImage{},
		Providers: make(map[models.ImageProvider]bool, len(targets)),
	}
	for i, p := range targets {
		res.Providers[p.Name()] = ok[i]
		if ok[i] && pages[i].HasMore {
			res.HasMore = true
		}
	}
	res.Images = interleave(pages)
	return res, nil
}

func (a *Aggregator) targets(params SearchParams) ([]Provider, error) {
	v := &validation.ValidationError{}
	if strings.TrimSpace(params.Query) == "" {
		v.Add("query", "query is required")
	}

	name := strings.ToLower(strings.TrimSpace(params.Provider))
	targets := a.providers
	if name != "" && name != ProviderAll {
		targets = nil
		for _, p := range a.providers {
			if string(p.Name()) == name {
				targets = []Provider{p}
				break
			}
		}
		if targets == nil {
			v.Add("provider", "provider must be one of: "+strings.Join(a.names(), ", "))
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}

func (a *Aggregator) names() []string {
	out := []string{ProviderAll}
	for _, p := range a.providers {
		out = append(out, string(p.Name()))
	}
	return out
}

// interleave takes the first image of every page, then the second, and so
// on, skipping repeats by (provider, id) or URL.
func interleave(pages []Page) []models.NormalizedImage {
	type key struct {
		provider models.ImageProvider
		id       string
	}
	seenID := make(map[key]struct{})
	seenURL := make(map[string]struct{})

	longest := 0
	for _, p := range pages {
		longest = max(longest, len(p.Images))
	}

	out := []models.NormalizedImage{}
	for i := 0; i < longest; i++ {
		for _, p := range pages {
			if i >= len(p.Images) {
				continue
			}
			img := p.Images[i]
			k := key{img.Provider, img.ID}
			if _, dup := seenID[k]; dup {
				continue
			}
			if _, dup := seenURL[img.URL]; dup && img.URL != "" {
				continue
			}
			seenID[k] = struct{}{}
			if img.URL != "" {
				seenURL[img.URL] = struct{}{}
			}
			out = append(out, img)
		}
	}
	return out
}
