package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/models"
)

func TestApplyPublishPolicy(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name       string
		status     models.Status
		at         *time.Time
		wantStatus models.Status
		wantAt     *time.Time
		wantKind   models.PublishKind
	}{
		{"published without date gets now", models.StatusPublished, nil, models.StatusPublished, &now, models.PublishPublished},
		{"published with past date kept", models.StatusPublished, &past, models.StatusPublished, &past, models.PublishPublished},
		{"published with future date is scheduled", models.StatusPublished, &future, models.StatusDraft, &future, models.PublishScheduled},
		{"draft with future date stays scheduled", models.StatusDraft, &future, models.StatusDraft, &future, models.PublishScheduled},
		{"draft with elapsed date is promoted", models.StatusDraft, &past, models.StatusPublished, &past, models.PublishPublished},
		{"missing status with elapsed date is promoted", "", &now, models.StatusPublished, &now, models.PublishPublished},
		{"plain draft", models.StatusDraft, nil, models.StatusDraft, nil, models.PublishDraft},
		{"archived keeps date", models.StatusArchived, &past, models.StatusArchived, &past, models.PublishArchived},
		{"archived without date", models.StatusArchived, nil, models.StatusArchived, nil, models.PublishArchived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, models.DerivePublishState(tt.status, tt.at, now).Kind)

			status, at := models.ApplyPublishPolicy(tt.status, tt.at, now)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantAt == nil {
				assert.Nil(t, at)
				return
			}
			require.NotNil(t, at)
			assert.True(t, tt.wantAt.Equal(*at))
		})
	}
}

func TestPublishedInvariantHolds(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Minute)
	for _, st := range []models.Status{"", models.StatusDraft, models.StatusPublished, models.StatusArchived} {
		for _, at := range []*time.Time{nil, &now, &future} {
			status, published := models.ApplyPublishPolicy(st, at, now)
			if status == models.StatusPublished {
				require.NotNil(t, published)
				assert.False(t, published.After(now))
			}
		}
	}
}

func TestPostState(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	p := models.Post{Status: models.StatusDraft, PublishedAt: &future}
	st := p.State(now)
	assert.Equal(t, models.PublishScheduled, st.Kind)
	assert.Equal(t, "scheduled", st.Kind.String())
	assert.True(t, future.Equal(st.At))
}
