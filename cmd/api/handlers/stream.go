package handlers

import (
	"context"
	"iter"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"editorial-cms/aigateway"
	"editorial-cms/cmd/api/dto"
	"editorial-cms/logger"
	"editorial-cms/trace"
	"editorial-cms/validation"
)

type ChatStreamer interface {
	ChatStream(ctx context.Context, req aigateway.ChatRequest) iter.Seq2[string, error]
}

// GenerateStreamHandler godoc
// @Summary      Stream a completion
// @Description  Server-sent events: "delta" frames carry {content}, then one "done" or "error" frame.
// @Description  Errors before the first delta are plain JSON responses.
// @Tags         generation
// @Accept       json
// @Produce      text/event-stream
// @Param        body  body  dto.GenerateStreamRequestDTO  true  "prompt"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/stream [post]
func GenerateStreamHandler(s ChatStreamer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateStreamRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		if len(req.Messages) == 0 && strings.TrimSpace(req.Prompt) == "" {
			respondError(c, validation.New("prompt", "prompt is required"))
			return
		}

		ctx := c.Request.Context()
		started := false
		chunks := 0
		for delta, err := range s.ChatStream(ctx, req.ToChatRequest()) {
			if err != nil {
				if !started {
					respondError(c, err)
					return
				}
				_ = c.Error(err)
				_, code := normalizeError(err)
				c.SSEvent("error", gin.H{"error": code})
				c.Writer.Flush()
				return
			}
			if !started {
				started = true
				c.Header("Content-Type", "text/event-stream")
				c.Header("Cache-Control", "no-cache")
				c.Header("Connection", "keep-alive")
				c.Header("X-Accel-Buffering", "no")
				c.Status(http.StatusOK)
			}
			if delta == "" {
				continue
			}
			chunks++
			c.SSEvent("delta", gin.H{"content": delta})
			c.Writer.Flush()
		}

		if !started {
			// empty stream
			c.Header("Content-Type", "text/event-stream")
			c.Status(http.StatusOK)
		}
		c.SSEvent("done", gin.H{"chunks": chunks})
		c.Writer.Flush()

		logger.DebugWithFields("stream finished", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"chunks":     chunks,
		})
	}
}
