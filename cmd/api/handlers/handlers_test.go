package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"editorial-cms/aigateway"
	"editorial-cms/cmd/api/dto"
	"editorial-cms/generation"
	"editorial-cms/images"
	"editorial-cms/lifecycle"
	"editorial-cms/models"
	"editorial-cms/repositories"
	"editorial-cms/services"
	"editorial-cms/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(h gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, "/t", h)
	r.Handle(method, "/t/:id", h)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponseDTO {
	t.Helper()
	var body dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validation.New("title", "title is required"), http.StatusBadRequest, CodeValidationFailed},
		{"empty text", generation.ErrEmptyText, http.StatusBadRequest, CodeInvalidRequest},
		{"no posts", fmt.Errorf("compose: %w", generation.ErrNoPosts), http.StatusBadRequest, CodeInvalidRequest},
		{"not found", services.ErrPostNotFound, http.StatusNotFound, CodeNotFound},
		{"ai not configured", aigateway.ErrNotConfigured, http.StatusServiceUnavailable, CodeAINotConfigured},
		{"images not configured", errImagesNotConfigured, http.StatusServiceUnavailable, CodeImagesNotConfigured},
		{"malformed", &aigateway.MalformedResponseError{Raw: "oops"}, http.StatusBadGateway, CodeAIMalformedResponse},
		{"upstream 429", &aigateway.RemoteError{StatusCode: http.StatusTooManyRequests}, http.StatusTooManyRequests, CodeRateLimited},
		{"upstream 500", &aigateway.RemoteError{StatusCode: http.StatusInternalServerError}, http.StatusBadGateway, CodeAIFailed},
		{"image provider", &images.ProviderError{Provider: models.ProviderPexels, StatusCode: 401}, http.StatusBadGateway, CodeAIFailed},
		{"deadline", fmt.Errorf("chat: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, CodeTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := normalizeError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
		})
	}
}

// memPosts is an in-memory PostStore.
type memPosts struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]models.Post
}

func newMemPosts() *memPosts {
	return &memPosts{posts: map[primitive.ObjectID]models.Post{}}
}

func (s *memPosts) FindExactSlug(_ context.Context, slug string) (bool, error) {
	n, _ := s.CountSlug(context.Background(), slug)
	return n > 0, nil
}

func (s *memPosts) FindSlugsContaining(_ context.Context, fragment string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []string{}
	for _, p := range s.posts {
		if strings.Contains(p.Slug, fragment) && len(out) < limit {
			out = append(out, p.Slug)
		}
	}
	return out, nil
}

func (s *memPosts) CountSlug(_ context.Context, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, p := range s.posts {
		if p.Slug == slug {
			n++
		}
	}
	return n, nil
}

func (s *memPosts) Find(_ context.Context, _ repositories.ListPostsOptions) ([]models.Post, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Post{}
	for _, p := range s.posts {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (s *memPosts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (s *memPosts) Create(_ context.Context, p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = primitive.NewObjectID()
	s.posts[p.ID] = *p
	return nil
}

func (s *memPosts) Update(_ context.Context, p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID]; !ok {
		return repositories.ErrNotFound
	}
	s.posts[p.ID] = *p
	return nil
}

func newPostService(store *memPosts) *services.PostService {
	return services.NewPostService(store, lifecycle.NewHooks(store))
}

const validPostBody = `{
	"title": "Guia completo de clareamento dental",
	"content": "<p>Tudo sobre clareamento dental no consultório e em casa.</p>",
	"category": "saude",
	"tags": ["Saúde", {"tag": "dentes"}]
}`

func TestCreatePostHandler(t *testing.T) {
	t.Run("creates with derived slug", func(t *testing.T) {
		store := newMemPosts()
		w := perform(CreatePostHandler(newPostService(store)), http.MethodPost, "/t", validPostBody)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var res dto.SavePostResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "guia-completo-de-clareamento-dental", res.Post.Slug)
		assert.True(t, res.SlugVerified)
		assert.Empty(t, res.SlugWarning)
		assert.NotEmpty(t, res.Post.ID)
		assert.NotEmpty(t, res.Post.Excerpt)
		assert.Equal(t, "draft", res.Post.State)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		w := perform(CreatePostHandler(newPostService(newMemPosts())), http.MethodPost, "/t", `{"title":"curto"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, CodeValidationFailed, body.Error)
		fields := map[string]bool{}
		for _, d := range body.Details {
			fields[d.Field] = true
		}
		assert.True(t, fields["title"])
		assert.True(t, fields["category"])
	})

	t.Run("malformed json", func(t *testing.T) {
		w := perform(CreatePostHandler(newPostService(newMemPosts())), http.MethodPost, "/t", `{"title":`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeInvalidRequest, decodeError(t, w).Error)
	})
}

func TestGetPostHandler(t *testing.T) {
	svc := newPostService(newMemPosts())

	w := perform(GetPostHandler(svc), http.MethodGet, "/t/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeNotFound, decodeError(t, w).Error)

	w = perform(GetPostHandler(svc), http.MethodGet, "/t/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeValidationFailed, decodeError(t, w).Error)
}

type fakeGenerator struct {
	reply string
	err   error
}

func (f fakeGenerator) Generate(context.Context, string, aigateway.Options) (string, error) {
	return f.reply, f.err
}

var tiers = generation.Tiers{Fast: "fast", Strong: "strong"}

func TestRewriteHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rw := generation.NewRewriter(fakeGenerator{reply: "Texto revisado."}, tiers, "")
		w := perform(RewriteHandler(rw), http.MethodPost, "/t", `{"content":"texto original"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var res dto.TextResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Texto revisado.", res.Text)
	})

	t.Run("empty content", func(t *testing.T) {
		rw := generation.NewRewriter(fakeGenerator{reply: "x"}, tiers, "")
		w := perform(RewriteHandler(rw), http.MethodPost, "/t", `{"content":"   "}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeInvalidRequest, decodeError(t, w).Error)
	})

	t.Run("ai not configured", func(t *testing.T) {
		rw := generation.NewRewriter(fakeGenerator{err: aigateway.ErrNotConfigured}, tiers, "")
		w := perform(RewriteHandler(rw), http.MethodPost, "/t", `{"content":"texto"}`)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, CodeAINotConfigured, decodeError(t, w).Error)
	})
}

func TestVisualKeywordsHandlerRequiresTitle(t *testing.T) {
	v := generation.NewVisualKeywords(fakeGenerator{reply: `["sorriso"]`}, tiers, "")
	w := perform(VisualKeywordsHandler(v), http.MethodPost, "/t", `{"content":"abc"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, CodeValidationFailed, body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "title", body.Details[0].Field)
}

type fakeStreamer struct {
	deltas []string
	errAt  int // index at which err is yielded; -1 for none
	err    error
}

func (f fakeStreamer) ChatStream(context.Context, aigateway.ChatRequest) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for i, d := range f.deltas {
			if i == f.errAt {
				yield("", f.err)
				return
			}
			if !yield(d, nil) {
				return
			}
		}
		if f.errAt == len(f.deltas) {
			yield("", f.err)
		}
	}
}

func TestGenerateStreamHandler(t *testing.T) {
	t.Run("deltas then done", func(t *testing.T) {
		s := fakeStreamer{deltas: []string{"Hello", " world"}, errAt: -1}
		w := perform(GenerateStreamHandler(s), http.MethodPost, "/t", `{"prompt":"hi"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "event:delta")
		assert.Contains(t, body, `"content":"Hello"`)
		assert.Contains(t, body, `"content":" world"`)
		assert.Contains(t, body, "event:done")
		assert.Less(t, strings.Index(body, `"content":"Hello"`), strings.Index(body, "event:done"))
	})

	t.Run("error before output is plain json", func(t *testing.T) {
		s := fakeStreamer{errAt: 0, err: aigateway.ErrNotConfigured}
		w := perform(GenerateStreamHandler(s), http.MethodPost, "/t", `{"prompt":"hi"}`)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, CodeAINotConfigured, decodeError(t, w).Error)
	})

	t.Run("error mid stream becomes an error event", func(t *testing.T) {
		s := fakeStreamer{deltas: []string{"Hello", "never"}, errAt: 1, err: &aigateway.RemoteError{StatusCode: 500}}
		w := perform(GenerateStreamHandler(s), http.MethodPost, "/t", `{"prompt":"hi"}`)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"content":"Hello"`)
		assert.Contains(t, body, "event:error")
		assert.Contains(t, body, CodeAIFailed)
		assert.NotContains(t, body, "never")
		assert.NotContains(t, body, "event:done")
	})

	t.Run("prompt required", func(t *testing.T) {
		w := perform(GenerateStreamHandler(fakeStreamer{errAt: -1}), http.MethodPost, "/t", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeValidationFailed, decodeError(t, w).Error)
	})
}

type fakeProvider struct {
	name       models.ImageProvider
	configured bool
	page       images.Page
}

func (p fakeProvider) Name() models.ImageProvider { return p.name }
func (p fakeProvider) Configured() bool { return p.configured }
func (p fakeProvider) Search(context.Context, images.Query) (images.Page, error) {
	return p.page, nil
}

func TestSearchImagesHandler(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		svc := services.NewCoverImageService(nil, images.NewAggregator(fakeProvider{name: models.ProviderPexels}))
		w := perform(SearchImagesHandler(svc), http.MethodGet, "/t?query=dentes", "")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, CodeImagesNotConfigured, decodeError(t, w).Error)
	})

	t.Run("merges provider results", func(t *testing.T) {
		img := models.NormalizedImage{ID: "1", URL: "https://img/1.jpg", Provider: models.ProviderPexels}
		svc := services.NewCoverImageService(nil, images.NewAggregator(fakeProvider{
			name:       models.ProviderPexels,
			configured: true,
			page:       images.Page{Images: []models.NormalizedImage{img}, HasMore: true},
		}))
		w := perform(SearchImagesHandler(svc), http.MethodGet, "/t?query=dentes&orientation=landscape", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res images.SearchResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Images, 1)
		assert.Equal(t, "https://img/1.jpg", res.Images[0].URL)
		assert.True(t, res.HasMore)
		assert.True(t, res.Providers[models.ProviderPexels])
	})

	t.Run("query required", func(t *testing.T) {
		svc := services.NewCoverImageService(nil, images.NewAggregator(fakeProvider{name: models.ProviderPexels, configured: true}))
		w := perform(SearchImagesHandler(svc), http.MethodGet, "/t", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeValidationFailed, decodeError(t, w).Error)
	})
}

type staticFeature bool

func (f staticFeature) Configured() bool { return bool(f) }

func TestHealthHandler(t *testing.T) {
	up := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("no servers") })

	w := perform(HealthHandler(up, staticFeature(false), staticFeature(true)), http.MethodGet, "/t", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","ai":false,"images":true}`, w.Body.String())

	w = perform(HealthHandler(down, staticFeature(true), staticFeature(true)), http.MethodGet, "/t", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"down"`)
}
