package images_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/config"
	"editorial-cms/images"
	"editorial-cms/models"
)

func upstream(t *testing.T, path string, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, path, r.URL.Path)
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func providerConfig(baseURL string) config.ImageProviderConfig {
	return config.ImageProviderConfig{APIKey: "k", BaseURL: baseURL}
}

func TestPexelsSearch(t *testing.T) {
	var query url.Values
	srv := upstream(t, "/v1/search", `{
		"page": 1, "per_page": 2, "total_results": 40, "next_page": "https://api.pexels.com/v1/search?page=2",
		"photos": [{
			"id": 123, "width": 4000, "height": 3000, "url": "https://www.pexels.com/photo/123/",
			"photographer": "Ana", "photographer_url": "https://www.pexels.com/@ana", "alt": "xícara de café",
			"src": {"original": "o.jpg", "large2x": "l2.jpg", "large": "l.jpg", "medium": "m.jpg", "tiny": "t.jpg"}
		}]
	}`, func(r *http.Request) {
		assert.Equal(t, "k", r.Header.Get("Authorization"))
		query = r.URL.Query()
	})

	p := images.NewPexels(providerConfig(srv.URL+"/v1"), srv.Client())
	page, err := p.Search(context.Background(), images.Query{Text: " café ", Orientation: images.OrientationSquare, PerPage: 100})
	require.NoError(t, err)

	assert.Equal(t, "café", query.Get("query"))
	assert.Equal(t, "square", query.Get("orientation"))
	assert.Equal(t, "30", query.Get("per_page"))
	assert.Equal(t, "1", query.Get("page"))

	require.Len(t, page.Images, 1)
	img := page.Images[0]
	assert.Equal(t, "123", img.ID)
	assert.Equal(t, "l2.jpg", img.URL)
	assert.Equal(t, "m.jpg", img.ThumbnailURL)
	assert.Equal(t, "xícara de café", img.Alt)
	require.NotNil(t, img.Photographer)
	assert.Equal(t, "Ana", *img.Photographer)
	assert.Equal(t, models.ProviderPexels, img.Provider)
	assert.True(t, page.HasMore)
}

func TestUnsplashSearch(t *testing.T) {
	srv := upstream(t, "/search/photos", `{
		"total": 3, "total_pages": 1,
		"results": [{
			"id": "abc", "width": 10, "height": 20, "alt_description": "", "description": "mesa",
			"urls": {"regular": "r.jpg", "small": "s.jpg"},
			"links": {"html": "https://unsplash.com/photos/abc"},
			"user": {"name": "", "links": {"html": "https://unsplash.com/@x"}}
		}]
	}`, func(r *http.Request) {
		assert.Equal(t, "Client-ID k", r.Header.Get("Authorization"))
		assert.Equal(t, "squarish", r.URL.Query().Get("orientation"))
	})

	u := images.NewUnsplash(providerConfig(srv.URL), srv.Client())
	page, err := u.Search(context.Background(), images.Query{Text: "mesa", Orientation: images.OrientationSquare})
	require.NoError(t, err)

	require.Len(t, page.Images, 1)
	img := page.Images[0]
	assert.Equal(t, "abc", img.ID)
	assert.Equal(t, "r.jpg", img.URL)
	assert.Equal(t, "mesa", img.Alt)
	assert.Nil(t, img.Photographer)
	assert.False(t, page.HasMore)
}

func TestPixabaySearch(t *testing.T) {
	srv := upstream(t, "/api/", `{
		"total": 100, "totalHits": 10,
		"hits": [
			{"id": 1, "pageURL": "p1", "tags": "sol, praia", "previewURL": "pv1", "webformatURL": "w1", "largeImageURL": "L1", "imageWidth": 1, "imageHeight": 2, "user": "joao", "user_id": 7},
			{"id": 2, "largeImageURL": "L2"},
			{"id": 3, "largeImageURL": "L3"}
		]
	}`, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "k", q.Get("key"))
		assert.Equal(t, "praia", q.Get("q"))
		assert.Equal(t, "3", q.Get("per_page"))
		assert.Equal(t, "vertical", q.Get("orientation"))
	})

	p := images.NewPixabay(providerConfig(srv.URL+"/api/"), srv.Client())
	page, err := p.Search(context.Background(), images.Query{Text: "praia", PerPage: 1, Orientation: images.OrientationPortrait})
	require.NoError(t, err)

	require.Len(t, page.Images, 1)
	img := page.Images[0]
	assert.Equal(t, "1", img.ID)
	assert.Equal(t, "L1", img.URL)
	assert.Equal(t, "w1", img.ThumbnailURL)
	assert.Equal(t, "sol, praia", img.Alt)
	assert.Equal(t, "https://pixabay.com/users/joao-7/", img.PhotographerURL)
	assert.True(t, page.HasMore)
}

// pixabayCatalog serves totalHits sequential hits and honors page/per_page.
func pixabayCatalog(t *testing.T, totalHits int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		per, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		assert.GreaterOrEqual(t, per, 3)
		hits := []map[string]any{}
		for i := (page - 1) * per; i < page*per && i < totalHits; i++ {
			hits = append(hits, map[string]any{"id": i, "largeImageURL": "L" + strconv.Itoa(i)})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"total": totalHits, "totalHits": totalHits, "hits": hits})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPixabayPagingBelowMinimum(t *testing.T) {
	srv := pixabayCatalog(t, 10)
	p := images.NewPixabay(providerConfig(srv.URL+"/api/"), srv.Client())

	collect := func(perPage, pages int) ([]string, bool) {
		var ids []string
		var more bool
		for n := 1; n <= pages; n++ {
			page, err := p.Search(context.Background(), images.Query{Text: "praia", Page: n, PerPage: perPage})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page.Images), perPage)
			for _, img := range page.Images {
				ids = append(ids, img.ID)
			}
			more = page.HasMore
		}
		return ids, more
	}

	t.Run("two per page walks every hit in order", func(t *testing.T) {
		ids, more := collect(2, 3)
		assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, ids)
		assert.True(t, more)
	})

	t.Run("one per page", func(t *testing.T) {
		ids, _ := collect(1, 4)
		assert.Equal(t, []string{"0", "1", "2", "3"}, ids)
	})

	t.Run("last page reports no more", func(t *testing.T) {
		ids, more := collect(2, 5)
		assert.Len(t, ids, 10)
		assert.False(t, more)
	})
}

func TestProvidersSkipUnusableResults(t *testing.T) {
	t.Run("pexels", func(t *testing.T) {
		srv := upstream(t, "/v1/search", `{"photos": [
			{"id": 1, "src": {"original": "o1.jpg"}},
			{"id": 2, "src": {"tiny": "t2.jpg"}}
		]}`, nil)
		page, err := images.NewPexels(providerConfig(srv.URL+"/v1"), srv.Client()).Search(context.Background(), images.Query{Text: "x"})
		require.NoError(t, err)
		require.Len(t, page.Images, 1)
		assert.Equal(t, "1", page.Images[0].ID)
		assert.Equal(t, "o1.jpg", page.Images[0].ThumbnailURL)
	})

	t.Run("unsplash", func(t *testing.T) {
		srv := upstream(t, "/search/photos", `{"total_pages": 1, "results": [
			{"id": "a", "urls": {"full": "f.jpg"}},
			{"id": "b", "urls": {"thumb": "t.jpg"}},
			{"id": "", "urls": {"regular": "r.jpg"}}
		]}`, nil)
		page, err := images.NewUnsplash(providerConfig(srv.URL), srv.Client()).Search(context.Background(), images.Query{Text: "x"})
		require.NoError(t, err)
		require.Len(t, page.Images, 1)
		assert.Equal(t, "a", page.Images[0].ID)
		assert.Equal(t, "f.jpg", page.Images[0].ThumbnailURL)
	})

	t.Run("pixabay", func(t *testing.T) {
		srv := upstream(t, "/api/", `{"totalHits": 2, "hits": [
			{"id": 1, "largeImageURL": "L1"},
			{"id": 2, "previewURL": "pv2"}
		]}`, nil)
		page, err := images.NewPixabay(providerConfig(srv.URL+"/api/"), srv.Client()).Search(context.Background(), images.Query{Text: "x"})
		require.NoError(t, err)
		require.Len(t, page.Images, 1)
		assert.Equal(t, "L1", page.Images[0].ThumbnailURL)
	})
}

func TestProviderErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid key", http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := images.NewPexels(providerConfig(srv.URL), srv.Client()).Search(context.Background(), images.Query{Text: "x"})
		var perr *images.ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, http.StatusUnauthorized, perr.StatusCode)
		assert.Equal(t, models.ProviderPexels, perr.Provider)
		assert.Contains(t, perr.Message, "invalid key")
	})

	t.Run("not configured", func(t *testing.T) {
		disabled := false
		cfgs := []config.ImageProviderConfig{
			{BaseURL: "http://unused"},
			{APIKey: "k", BaseURL: "http://unused", Enabled: &disabled},
		}
		for _, cfg := range cfgs {
			u := images.NewUnsplash(cfg, nil)
			assert.False(t, u.Configured())
			_, err := u.Search(context.Background(), images.Query{Text: "x"})
			var perr *images.ProviderError
			assert.True(t, errors.As(err, &perr))
		}
	})
}

func TestFromConfig(t *testing.T) {
	ps := images.FromConfig(config.ImagesConfig{Pixabay: providerConfig("http://x")}, nil)
	require.Len(t, ps, 3)
	assert.Equal(t, models.ProviderPexels, ps[0].Name())
	assert.Equal(t, models.ProviderUnsplash, ps[1].Name())
	assert.Equal(t, models.ProviderPixabay, ps[2].Name())
	assert.False(t, ps[0].Configured())
	assert.True(t, ps[2].Configured())
}
