package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/trace"
)

func TestNewRequestJoinsPathAndQuery(t *testing.T) {
	c := NewBaseClient("https://api.example.com/v1")

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/search", url.Values{"query": {"cats"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1/search?query=cats", req.URL.String())
}

func TestNewRequestRejectsQueryInPath(t *testing.T) {
	c := NewBaseClient("https://api.example.com")

	_, err := c.NewRequest(context.Background(), http.MethodGet, "/search?query=cats", nil, nil)
	assert.Error(t, err)
}

func TestRoundTripperPropagatesTraceAndRestoresBody(t *testing.T) {
	var gotRequestID, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL)
	ctx := trace.WithRequestAndSpan(context.Background(), "req-42", 0)
	req, err := c.NewRequest(ctx, http.MethodPost, "/echo", nil, strings.NewReader(`{"a":1}`))
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, `{"a":1}`, gotBody)
}

func TestRedactURLHidesKeys(t *testing.T) {
	u, _ := url.Parse("https://pixabay.com/api/?key=secret&q=sea")
	out := redactURL(u)
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "q=sea")
}
