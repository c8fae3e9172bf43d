package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"editorial-cms/aigateway"
	"editorial-cms/cmd/api/dto"
	"editorial-cms/generation"
	"editorial-cms/images"
	"editorial-cms/services"
	"editorial-cms/validation"
)

const (
	CodeInvalidRequest      = "invalid_request"
	CodeValidationFailed    = "validation_failed"
	CodeNotFound            = "not_found"
	CodeAINotConfigured     = "ai_not_configured"
	CodeAIFailed            = "ai_failed"
	CodeAIMalformedResponse = "ai_malformed_response"
	CodeRateLimited         = "rate_limited"
	CodeImagesNotConfigured = "images_not_configured"
	CodeTimeout             = "timeout"
	CodeInternal            = "internal_error"
)

var errImagesNotConfigured = errors.New("no image provider configured")

// normalizeError maps a service error to its HTTP status and error code, so
// clients can tell "not configured" from "failed" from "fix your input".
func normalizeError(err error) (status int, code string) {
	var (
		verr      *validation.ValidationError
		remote    *aigateway.RemoteError
		malformed *aigateway.MalformedResponseError
		provider  *images.ProviderError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, CodeValidationFailed
	case errors.Is(err, generation.ErrEmptyText), errors.Is(err, generation.ErrNoPosts):
		return http.StatusBadRequest, CodeInvalidRequest
	case errors.Is(err, services.ErrPostNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, aigateway.ErrNotConfigured):
		return http.StatusServiceUnavailable, CodeAINotConfigured
	case errors.Is(err, errImagesNotConfigured):
		return http.StatusServiceUnavailable, CodeImagesNotConfigured
	case errors.As(err, &malformed):
		return http.StatusBadGateway, CodeAIMalformedResponse
	case errors.As(err, &remote):
		if remote.StatusCode == http.StatusTooManyRequests {
			return http.StatusTooManyRequests, CodeRateLimited
		}
		return http.StatusBadGateway, CodeAIFailed
	case errors.As(err, &provider):
		return http.StatusBadGateway, CodeAIFailed
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// respondError writes the normalized error body and attaches err to the
// context for ErrorLogging.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, code := normalizeError(err)
	body := dto.ErrorResponseDTO{Error: code}
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		body.Details = verr.Items
	}
	c.AbortWithStatusJSON(status, body)
}

func respondInvalidBody(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: CodeInvalidRequest})
}
