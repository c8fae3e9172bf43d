package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/images"
	"editorial-cms/services"
)

type stubVisual struct {
	keywords []string
	err      error
}

func (v stubVisual) Suggest(context.Context, string, string) ([]string, error) {
	return v.keywords, v.err
}

type recordingSearcher struct {
	got images.SearchParams
}

func (s *recordingSearcher) Configured() bool { return true }

func (s *recordingSearcher) Search(_ context.Context, params images.SearchParams) (images.SearchResult, error) {
	s.got = params
	return images.SearchResult{HasMore: true}, nil
}

func TestAutoSearch(t *testing.T) {
	tests := []struct {
		name      string
		visual    services.VisualSuggester
		wantQuery string
	}{
		{"keywords", stubVisual{keywords: []string{"dentist chair", "smile", "toothbrush"}}, "dentist chair smile"},
		{"single keyword", stubVisual{keywords: []string{"coffee"}}, "coffee"},
		{"suggestion fails", stubVisual{err: errors.New("boom")}, "Clínica Dental"},
		{"no keywords", stubVisual{keywords: []string{}}, "Clínica Dental"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &recordingSearcher{}
			svc := services.NewCoverImageService(tt.visual, searcher)

			res, err := svc.AutoSearch(context.Background(), " Clínica Dental ", "conteúdo", images.SearchParams{Query: "ignored", Page: 2})
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, searcher.got.Query)
			assert.Equal(t, 2, searcher.got.Page)
			assert.Equal(t, tt.wantQuery, res.Query)
			assert.NotNil(t, res.Keywords)
			assert.True(t, res.HasMore)
		})
	}
}
