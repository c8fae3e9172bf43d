package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/trace"
)

func TestRequestTrace(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seenID, seenBody string
	r := gin.New()
	r.Use(RequestTrace(), ErrorLogging())
	r.POST("/echo", func(c *gin.Context) {
		seenID = trace.RequestIDFromContext(c.Request.Context())
		b, _ := io.ReadAll(c.Request.Body)
		seenBody = string(b)
		_ = c.Error(errors.New("rejected"))
		c.Status(http.StatusBadRequest)
	})

	t.Run("keeps incoming id and restores body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":1}`))
		req.Header.Set("X-Request-Id", "req-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
		assert.Equal(t, "req-123", seenID)
		assert.Equal(t, `{"a":1}`, seenBody)
	})

	t.Run("generates id when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", nil))

		require.NotEmpty(t, w.Header().Get("X-Request-Id"))
		assert.Equal(t, w.Header().Get("X-Request-Id"), seenID)
	})
}
