package lifecycle_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/events"
	"editorial-cms/excerpt"
	"editorial-cms/lifecycle"
	"editorial-cms/models"
	"editorial-cms/richtext"
	"editorial-cms/validation"
)

type fakeStore struct {
	mu         sync.Mutex
	slugs      map[string]int64
	exactErr   error
	containErr error
	countErr   error
	calls      []string
}

func newFakeStore(slugs ...string) *fakeStore {
	s := &fakeStore{slugs: map[string]int64{}}
	for _, sl := range slugs {
		s.slugs[sl]++
	}
	return s
}

func (s *fakeStore) FindExactSlug(_ context.Context, slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "exact:"+slug)
	if s.exactErr != nil {
		return false, s.exactErr
	}
	return s.slugs[slug] > 0, nil
}

func (s *fakeStore) FindSlugsContaining(_ context.Context, fragment string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "contains:"+fragment)
	if s.containErr != nil {
		return nil, s.containErr
	}
	var out []string
	for sl := range s.slugs {
		if strings.Contains(sl, fragment) && len(out) < limit {
			out = append(out, sl)
		}
	}
	return out, nil
}

func (s *fakeStore) CountSlug(_ context.Context, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.slugs[slug], nil
}

type fakeAuditor struct {
	mu     sync.Mutex
	events []any
	err    error
}

func (a *fakeAuditor) Record(_ context.Context, event any) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
	return a.err
}

func (a *fakeAuditor) types() []events.EventType {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []events.EventType
	for _, e := range a.events {
		switch v := e.(type) {
		case events.PostChangedEvent:
			out = append(out, v.Type)
		case events.SlugCollisionEvent:
			out = append(out, v.Type)
		}
	}
	return out
}

var fixedNow = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func newHooks(store *fakeStore, auditor *fakeAuditor) *lifecycle.Hooks {
	opts := []lifecycle.Option{lifecycle.WithClock(func() time.Time { return fixedNow })}
	if auditor != nil {
		opts = append(opts, lifecycle.WithAuditor(auditor))
	}
	return lifecycle.NewHooks(store, opts...)
}

func basePost() models.Post {
	return models.Post{
		Title:    "Dez caracteres",
		Content:  richtext.FromNode(richtext.Group(richtext.Text("Um corpo de texto qualquer."))),
		Category: "tecnologia",
	}
}

func TestBeforeValidateShortTitle(t *testing.T) {
	h := newHooks(newFakeStore(), nil)
	p := basePost()
	p.Title = "A"

	err := h.BeforeValidate(p)
	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"title must be at least 10 characters"}, verr.Messages())
}

func TestBeforeValidateAggregates(t *testing.T) {
	h := newHooks(newFakeStore(), nil)
	p := models.Post{Title: "curto", Excerpt: "pequeno"}

	err := h.BeforeValidate(p)
	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"title must be at least 10 characters",
		"content is required",
		"category is required",
		"excerpt must be at least 50 characters",
	}, verr.Messages())
}

func TestBeforeValidateOK(t *testing.T) {
	h := newHooks(newFakeStore(), nil)
	assert.NoError(t, h.BeforeValidate(basePost()))
}

func TestBeforeChangeGeneratesSlug(t *testing.T) {
	store := newFakeStore()
	h := newHooks(store, nil)

	got, res := h.BeforeChange(context.Background(), models.OperationCreate, basePost())
	assert.Equal(t, "dez-caracteres", got.Slug)
	assert.True(t, res.Verified)
	assert.NoError(t, res.Err)
	// unique candidate: no broad fetch
	assert.Equal(t, []string{"exact:dez-caracteres"}, store.calls)
}

func TestBeforeChangeResolvesCollision(t *testing.T) {
	store := newFakeStore("clinica-dental")
	h := newHooks(store, nil)
	p := basePost()
	p.Title = "Clínica Dental"

	got, res := h.BeforeChange(context.Background(), models.OperationCreate, p)
	assert.Equal(t, "clinica-dental-1", got.Slug)
	assert.Equal(t, "clinica-dental-1", res.Slug)
	assert.True(t, res.Verified)
	assert.Equal(t, []string{"exact:clinica-dental", "contains:clinica-dental"}, store.calls)
}

func TestBeforeChangeSkipsTakenSuffixes(t *testing.T) {
	store := newFakeStore("clinica-dental", "clinica-dental-1", "clinica-dental-2")
	h := newHooks(store, nil)
	p := basePost()
	p.Slug = "clinica-dental"

	got, _ := h.BeforeChange(context.Background(), models.OperationCreate, p)
	assert.Equal(t, "clinica-dental-3", got.Slug)
}

func TestBeforeChangeUpdateKeepsSlug(t *testing.T) {
	store := newFakeStore("dez-caracteres")
	h := newHooks(store, nil)
	p := basePost()
	p.Slug = "dez-caracteres"

	got, res := h.BeforeChange(context.Background(), models.OperationUpdate, p)
	assert.Equal(t, "dez-caracteres", got.Slug)
	assert.True(t, res.Verified)
	assert.Empty(t, store.calls)
}

func TestBeforeChangeDegradesOnStoreError(t *testing.T) {
	store := newFakeStore()
	store.exactErr = errors.New("store unavailable")
	h := newHooks(store, nil)

	got, res := h.BeforeChange(context.Background(), models.OperationCreate, basePost())
	assert.Equal(t, "dez-caracteres", got.Slug)
	assert.False(t, res.Verified)
	assert.EqualError(t, res.Err, "store unavailable")

	store = newFakeStore("dez-caracteres")
	store.containErr = errors.New("timeout")
	h = newHooks(store, nil)
	got, res = h.BeforeChange(context.Background(), models.OperationCreate, basePost())
	assert.Equal(t, "dez-caracteres", got.Slug)
	assert.False(t, res.Verified)
}

func TestBeforeChangeTruncatedOracleIsUnverified(t *testing.T) {
	var slugs []string
	slugs = append(slugs, "a-post")
	for i := 1; i <= lifecycle.SlugFetchLimit+5; i++ {
		slugs = append(slugs, fmt.Sprintf("a-post-%d", i))
	}
	h := newHooks(newFakeStore(slugs...), nil)
	p := basePost()
	p.Slug = "a-post"

	_, res := h.BeforeChange(context.Background(), models.OperationCreate, p)
	assert.False(t, res.Verified)
	assert.ErrorIs(t, res.Err, lifecycle.ErrOracleTruncated)
}

func TestBeforeChangeUnsluggableTitle(t *testing.T) {
	h := newHooks(newFakeStore("post"), nil)
	p := basePost()
	p.Title = "日本語のタイトルです"

	got, _ := h.BeforeChange(context.Background(), models.OperationCreate, p)
	assert.Equal(t, "post-1", got.Slug)
}

func TestBeforeChangeExcerptTagsAndPolicy(t *testing.T) {
	h := newHooks(newFakeStore(), nil)
	p := basePost()
	p.Content = richtext.FromHTML(strings.Repeat("Palavra ", 40))
	p.Tags = models.TagList{" Go ", "GO", "", "Cloud"}
	p.Status = models.StatusPublished

	got, _ := h.BeforeChange(context.Background(), models.OperationCreate, p)
	assert.True(t, strings.HasSuffix(got.Excerpt, "…"))
	assert.LessOrEqual(t, utf8.RuneCountInString(got.Excerpt), excerpt.DefaultLength+1)
	assert.Equal(t, models.TagList{"go", "cloud"}, got.Tags)
	assert.Equal(t, models.StatusPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
	assert.True(t, fixedNow.Equal(*got.PublishedAt))

	// input copy is untouched
	assert.Nil(t, p.PublishedAt)
	assert.Empty(t, p.Excerpt)
}

func TestBeforeChangeKeepsAuthorExcerpt(t *testing.T) {
	h := newHooks(newFakeStore(), nil)
	p := basePost()
	p.Excerpt = strings.Repeat("e", 60)

	got, _ := h.BeforeChange(context.Background(), models.OperationUpdate, p)
	assert.Equal(t, p.Excerpt, got.Excerpt)
}

func TestBeforeChangeScheduledAndPromoted(t *testing.T) {
	h := newHooks(newFakeStore(), nil)

	future := fixedNow.Add(48 * time.Hour)
	p := basePost()
	p.Status = models.StatusDraft
	p.PublishedAt = &future
	got, _ := h.BeforeChange(context.Background(), models.OperationUpdate, p)
	assert.Equal(t, models.StatusDraft, got.Status)
	assert.Equal(t, models.PublishScheduled, got.State(fixedNow).Kind)

	past := fixedNow.Add(-time.Minute)
	p.PublishedAt = &past
	p.Status = ""
	got, _ = h.BeforeChange(context.Background(), models.OperationUpdate, p)
	assert.Equal(t, models.StatusPublished, got.Status)
}

func TestAfterChangeAudits(t *testing.T) {
	auditor := &fakeAuditor{}
	h := newHooks(newFakeStore(), auditor)

	published := fixedNow.Add(-time.Hour)
	p := basePost()
	p.Slug = "dez-caracteres"
	p.Status = models.StatusPublished
	p.PublishedAt = &published

	h.AfterChange(context.Background(), lifecycle.Change{
		Op:   models.OperationCreate,
		Post: p,
		Slug: lifecycle.SlugResult{Slug: p.Slug, Verified: true},
	})
	h.Verifier().Wait()
	assert.Equal(t, []events.EventType{events.PostCreated, events.PostPublished}, auditor.types())

	// already published before: no second publish event
	prev := p
	h.AfterChange(context.Background(), lifecycle.Change{
		Op:       models.OperationUpdate,
		Previous: &prev,
		Post:     p,
		Slug:     lifecycle.SlugResult{Slug: p.Slug, Verified: true},
	})
	assert.Equal(t, []events.EventType{events.PostCreated, events.PostPublished, events.PostUpdated}, auditor.types())
}

func TestAfterChangeSwallowsAuditErrors(t *testing.T) {
	auditor := &fakeAuditor{err: errors.New("broker down")}
	h := newHooks(newFakeStore(), auditor)

	assert.NotPanics(t, func() {
		h.AfterChange(context.Background(), lifecycle.Change{Op: models.OperationUpdate, Post: basePost(), Slug: lifecycle.SlugResult{Verified: true}})
	})
	assert.Len(t, auditor.types(), 1)
}

func TestAfterChangeReverifiesUnverifiedSlug(t *testing.T) {
	store := newFakeStore("dez-caracteres", "dez-caracteres")
	auditor := &fakeAuditor{}
	h := newHooks(store, auditor)

	p := basePost()
	p.Slug = "dez-caracteres"
	ctx, cancel := context.WithCancel(context.Background())
	h.AfterChange(ctx, lifecycle.Change{
		Op:   models.OperationCreate,
		Post: p,
		Slug: lifecycle.SlugResult{Slug: p.Slug, Err: errors.New("store unavailable")},
	})
	cancel()
	h.Verifier().Wait()

	assert.Equal(t, []events.EventType{events.PostCreated, events.PostSlugCollision}, auditor.types())
	collision := auditor.events[1].(events.SlugCollisionEvent)
	assert.Equal(t, int64(2), collision.Count)
}

func TestAfterChangeVerifiedUniqueSlugNoCollision(t *testing.T) {
	store := newFakeStore("dez-caracteres")
	auditor := &fakeAuditor{}
	h := newHooks(store, auditor)

	p := basePost()
	p.Slug = "dez-caracteres"
	h.AfterChange(context.Background(), lifecycle.Change{
		Op:   models.OperationCreate,
		Post: p,
		Slug: lifecycle.SlugResult{Slug: p.Slug},
	})
	h.Verifier().Wait()
	assert.Equal(t, []events.EventType{events.PostCreated}, auditor.types())
}
