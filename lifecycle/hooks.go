// Package lifecycle runs the save-time hooks of a post: validation before the
// write, normalization right before it, and audit after it.
package lifecycle

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"

	"editorial-cms/events"
	"editorial-cms/excerpt"
	"editorial-cms/logger"
	"editorial-cms/models"
	"editorial-cms/slug"
	"editorial-cms/trace"
	"editorial-cms/validation"
)

// SlugFetchLimit bounds the substring fetch used as uniqueness oracle.
const SlugFetchLimit = 100

// fallbackSlug is used when a title has no characters a slug can keep.
const fallbackSlug = "post"

// ErrOracleTruncated marks a uniqueness check whose candidate set hit SlugFetchLimit.
var ErrOracleTruncated = errors.New("slug oracle truncated")

// SlugStore is the read side of the content store the hooks depend on.
type SlugStore interface {
	FindExactSlug(ctx context.Context, slug string) (bool, error)
	FindSlugsContaining(ctx context.Context, fragment string, limit int) ([]string, error)
	CountSlug(ctx context.Context, slug string) (int64, error)
}

// Auditor receives values from the events package.
type Auditor interface {
	Record(ctx context.Context, event any) error
}

// SlugResult reports whether the slug of a write was checked against the store.
// Verified is false when the store could not be asked; Err says why.
type SlugResult struct {
	Slug     string
	Verified bool
	Err      error
}

// Change describes one committed write for AfterChange.
type Change struct {
	Op       models.WriteOperation
	Previous *models.Post
	Post     models.Post
	Slug     SlugResult
}

type Hooks struct {
	store         SlugStore
	auditor       Auditor
	now           func() time.Time
	slugs         slug.Generator
	excerptLength int
	source        string
	verifier      *SlugVerifier
}

type Option func(*Hooks)

func WithAuditor(a Auditor) Option {
	return func(h *Hooks) { h.auditor = a }
}

func WithClock(now func() time.Time) Option {
	return func(h *Hooks) { h.now = now }
}

func WithLocale(tag language.Tag) Option {
	return func(h *Hooks) { h.slugs = slug.NewGenerator(tag) }
}

func WithExcerptLength(n int) Option {
	return func(h *Hooks) {
		if n > 0 {
			h.excerptLength = n
		}
	}
}

// WithSource sets the Source of emitted events.
func WithSource(source string) Option {
	return func(h *Hooks) { h.source = source }
}

func NewHooks(store SlugStore, opts ...Option) *Hooks {
	h := &Hooks{
		store:         store,
		now:           time.Now,
		slugs:         slug.NewGenerator(slug.DefaultLocale),
		excerptLength: excerpt.DefaultLength,
		source:        "api",
	}
	for _, opt := range opts {
		opt(h)
	}
	h.verifier = NewSlugVerifier(store, h.auditor, h.source)
	return h
}

// Verifier exposes the background slug checker, mostly so callers can Wait on shutdown.
func (h *Hooks) Verifier() *SlugVerifier {
	return h.verifier
}

// BeforeValidate runs the field rules and then re-checks the title and
// excerpt bounds on their own. Every failure ends up in one *validation.ValidationError.
func (h *Hooks) BeforeValidate(p models.Post) error {
	out := &validation.ValidationError{}

	err := validation.ValidatePost(p)
	var verr *validation.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		out.Merge(verr)
	default:
		return err
	}

	title := strings.TrimSpace(p.Title)
	if n := utf8.RuneCountInString(title); title != "" && n < validation.TitleMinLength {
		out.Add("title", "title must be at least 10 characters")
	}
	if ex := strings.TrimSpace(p.Excerpt); ex != "" {
		n := utf8.RuneCountInString(ex)
		if n < validation.ExcerptMinLength {
			out.Add("excerpt", "excerpt must be at least 50 characters")
		}
		if n > validation.ExcerptMaxLength {
			out.Add("excerpt", "excerpt must be at most 300 characters")
		}
	}
	return out.Err()
}

// BeforeChange fills in what the author left blank, in this order: slug (and,
// on create, its uniqueness), excerpt, tags, publish date. p is a copy and the
// normalized copy is returned.
func (h *Hooks) BeforeChange(ctx context.Context, op models.WriteOperation, p models.Post) (models.Post, SlugResult) {
	p.Slug = strings.TrimSpace(p.Slug)
	if p.Slug == "" && strings.TrimSpace(p.Title) != "" {
		p.Slug = h.slugs.Generate(p.Title)
		if p.Slug == "" {
			p.Slug = fallbackSlug
		}
	}

	res := SlugResult{Slug: p.Slug, Verified: true}
	if op == models.OperationCreate && p.Slug != "" {
		res = h.resolveSlug(ctx, p.Slug)
		p.Slug = res.Slug
	}

	if strings.TrimSpace(p.Excerpt) == "" && !p.Content.IsZero() {
		p.Excerpt = excerpt.Generate(p.Content, h.excerptLength)
	}

	p.Tags = models.NormalizeTags(p.Tags)

	p.Status, p.PublishedAt = models.ApplyPublishPolicy(p.Status, p.PublishedAt, h.now())

	return p, res
}

// resolveSlug probes for an exact match first and only pays for the broad
// substring fetch when the candidate is taken.
func (h *Hooks) resolveSlug(ctx context.Context, candidate string) SlugResult {
	taken, err := h.store.FindExactSlug(ctx, candidate)
	if err != nil {
		h.warnUnverified(ctx, candidate, err)
		return SlugResult{Slug: candidate, Err: err}
	}
	if !taken {
		return SlugResult{Slug: candidate, Verified: true}
	}

	similar, err := h.store.FindSlugsContaining(ctx, candidate, SlugFetchLimit)
	if err != nil {
		h.warnUnverified(ctx, candidate, err)
		return SlugResult{Slug: candidate, Err: err}
	}
	existing := make(map[string]struct{}, len(similar)+1)
	existing[candidate] = struct{}{}
	for _, s := range similar {
		existing[s] = struct{}{}
	}

	res := SlugResult{Slug: slug.EnsureUnique(candidate, existing), Verified: true}
	if len(similar) >= SlugFetchLimit {
		res.Verified = false
		res.Err = ErrOracleTruncated
		h.warnUnverified(ctx, res.Slug, res.Err)
	}
	return res
}

func (h *Hooks) warnUnverified(ctx context.Context, candidate string, err error) {
	logger.WarnWithFields("slug uniqueness unverified, keeping local slug", logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"slug":       candidate,
		"error":      err.Error(),
	})
}

// AfterChange records the write. It never fails: the record is already
// committed, so audit errors are logged and dropped.
func (h *Hooks) AfterChange(ctx context.Context, c Change) {
	now := h.now()
	state := c.Post.State(now)

	eventType := events.PostUpdated
	if c.Op == models.OperationCreate {
		eventType = events.PostCreated
	}
	h.record(ctx, h.changedEvent(eventType, c, state, now))

	if state.Kind == models.PublishPublished && (c.Previous == nil || c.Previous.State(now).Kind != models.PublishPublished) {
		h.record(ctx, h.changedEvent(events.PostPublished, c, state, now))
	}

	if !c.Slug.Verified {
		h.verifier.Enqueue(ctx, c.Post)
	}
}

func (h *Hooks) changedEvent(t events.EventType, c Change, state models.PublishState, now time.Time) events.PostChangedEvent {
	return events.PostChangedEvent{
		BaseEvent:    events.NewBaseEvent(t, h.source, now),
		PostID:       c.Post.ID,
		Title:        c.Post.Title,
		Slug:         c.Post.Slug,
		Status:       string(c.Post.Status),
		State:        state.Kind.String(),
		PublishedAt:  c.Post.PublishedAt,
		SlugVerified: c.Slug.Verified,
	}
}

func (h *Hooks) record(ctx context.Context, evt events.PostChangedEvent) {
	fields := logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"event_type": string(evt.Type),
		"post_id":    evt.PostID.Hex(),
		"slug":       evt.Slug,
	}
	if h.auditor == nil {
		logger.InfoWithFields("post audit", fields)
		return
	}
	if err := h.auditor.Record(ctx, evt); err != nil {
		fields["error"] = err.Error()
		logger.WarnWithFields("post audit failed", fields)
	}
}
