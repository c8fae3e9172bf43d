package lifecycle

import (
	"context"
	"sync"
	"time"

	"editorial-cms/events"
	"editorial-cms/logger"
	"editorial-cms/models"
	"editorial-cms/trace"
)

// verifyTimeout bounds one background uniqueness check.
const verifyTimeout = 10 * time.Second

// SlugVerifier re-checks, after the write, slugs that could not be verified
// before it. A collision is logged and audited; the record is left untouched.
type SlugVerifier struct {
	store   SlugStore
	auditor Auditor
	source  string
	now     func() time.Time
	wg      sync.WaitGroup
}

func NewSlugVerifier(store SlugStore, auditor Auditor, source string) *SlugVerifier {
	return &SlugVerifier{store: store, auditor: auditor, source: source, now: time.Now}
}

// Enqueue starts a check detached from ctx cancellation so it outlives the request.
func (v *SlugVerifier) Enqueue(ctx context.Context, p models.Post) {
	if v == nil || v.store == nil || p.Slug == "" {
		return
	}
	ctx = context.WithoutCancel(ctx)
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		v.verify(ctx, p)
	}()
}

// Wait blocks until every enqueued check has finished.
func (v *SlugVerifier) Wait() {
	if v == nil {
		return
	}
	v.wg.Wait()
}

func (v *SlugVerifier) verify(ctx context.Context, p models.Post) {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	fields := logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"post_id":    p.ID.Hex(),
		"slug":       p.Slug,
	}

	count, err := v.store.CountSlug(ctx, p.Slug)
	if err != nil {
		fields["error"] = err.Error()
		logger.WarnWithFields("slug re-verification failed", fields)
		return
	}
	if count <= 1 {
		logger.DebugWithFields("slug verified after write", fields)
		return
	}

	fields["count"] = count
	logger.WarnWithFields("slug collision detected after write", fields)
	if v.auditor == nil {
		return
	}
	evt := events.SlugCollisionEvent{
		BaseEvent: events.NewBaseEvent(events.PostSlugCollision, v.source, v.now()),
		PostID:    p.ID,
		Slug:      p.Slug,
		Count:     count,
	}
	if err := v.auditor.Record(ctx, evt); err != nil {
		fields["error"] = err.Error()
		logger.WarnWithFields("slug collision audit failed", fields)
	}
}
