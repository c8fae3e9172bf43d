package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"editorial-cms/events"
)

func TestSerializeEvent(t *testing.T) {
	id := primitive.NewObjectID()
	evt := events.SlugCollisionEvent{
		BaseEvent: events.NewBaseEvent(events.PostSlugCollision, "api", time.Now()),
		PostID:    id,
		Slug:      "clinica-dental",
		Count:     2,
	}

	data, typ, err := events.SerializeEvent(evt)
	require.NoError(t, err)
	assert.Equal(t, events.PostSlugCollision, typ)

	out, err := events.DeserializeEvent(typ, data)
	require.NoError(t, err)
	got, ok := out.(*events.SlugCollisionEvent)
	require.True(t, ok)
	assert.Equal(t, id, got.PostID)
	assert.Equal(t, int64(2), got.Count)
	assert.Equal(t, events.Version, got.Version)
	assert.NotEmpty(t, got.ID)
}

func TestSerializeEventRejectsUnknown(t *testing.T) {
	_, _, err := events.SerializeEvent(struct{}{})
	assert.Error(t, err)

	_, err = events.DeserializeEvent("post.deleted", []byte(`{}`))
	assert.Error(t, err)
}
