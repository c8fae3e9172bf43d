package services

import (
	"context"
	"strings"

	"editorial-cms/images"
	"editorial-cms/logger"
	"editorial-cms/trace"
)

// autoQueryTerms is how many suggested keywords form the search query.
const autoQueryTerms = 2

type VisualSuggester interface {
	Suggest(ctx context.Context, title, content string) ([]string, error)
}

type ImageSearcher interface {
	Configured() bool
	Search(ctx context.Context, params images.SearchParams) (images.SearchResult, error)
}

type AutoSearchResult struct {
	images.SearchResult
	Query    string   `json:"query"`
	Keywords []string `json:"keywords"`
}

// CoverImageService couples keyword suggestion with the image search.
type CoverImageService struct {
	visual   VisualSuggester
	searcher ImageSearcher
}

func NewCoverImageService(visual VisualSuggester, searcher ImageSearcher) *CoverImageService {
	return &CoverImageService{visual: visual, searcher: searcher}
}

// Configured reports whether any image provider can be queried.
func (s *CoverImageService) Configured() bool {
	return s.searcher.Configured()
}

func (s *CoverImageService) Search(ctx context.Context, params images.SearchParams) (images.SearchResult, error) {
	return s.searcher.Search(ctx, params)
}

// AutoSearch derives the query from title and content. When no keywords
// come back the title itself is the query. params.Query is ignored.
func (s *CoverImageService) AutoSearch(ctx context.Context, title, content string, params images.SearchParams) (AutoSearchResult, error) {
	keywords := []string{}
	if s.visual != nil {
		kws, err := s.visual.Suggest(ctx, title, content)
		if err != nil {
			logger.WarnWithFields("visual keyword suggestion failed, searching by title", logger.Fields{
				"request_id": trace.RequestIDFromContext(ctx),
				"error":      err.Error(),
			})
		} else if len(kws) > 0 {
			keywords = kws
		}
	}

	params.Query = strings.TrimSpace(title)
	if len(keywords) > 0 {
		params.Query = strings.Join(keywords[:min(len(keywords), autoQueryTerms)], " ")
	}

	res, err := s.searcher.Search(ctx, params)
	if err != nil {
		return AutoSearchResult{}, err
	}
	return AutoSearchResult{SearchResult: res, Query: params.Query, Keywords: keywords}, nil
}
