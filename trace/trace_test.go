package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSpanIDIncrementsWithinRequest(t *testing.T) {
	ctx := WithRequestAndSpan(context.Background(), "req-1", 0)

	assert.Equal(t, "0", CurrentSpanID(ctx))

	reqID, span := NextSpanID(ctx)
	assert.Equal(t, "req-1", reqID)
	assert.Equal(t, "1", span)

	_, span = NextSpanID(ctx)
	assert.Equal(t, "2", span)
	assert.Equal(t, "2", CurrentSpanID(ctx))
}

func TestNextSpanIDWithoutTrace(t *testing.T) {
	reqID, span := NextSpanID(context.Background())
	assert.Empty(t, reqID)
	assert.Empty(t, span)
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestGenerateIDIsUnique(t *testing.T) {
	assert.NotEqual(t, GenerateID(), GenerateID())
}
